package storage

import (
	"context"

	"github.com/chris/dashboard-wallpaper/pkg/models"
)

// TaskReader defines the interface for reading tasks.
type TaskReader interface {
	// ListTasks returns every task keyed by its ISO date.
	ListTasks(ctx context.Context) (map[string][]models.TaskRecord, error)

	// ListTasksByDate returns the tasks for one date, or an empty slice.
	ListTasksByDate(ctx context.Context, date string) ([]models.TaskRecord, error)
}

// TaskManager defines the interface for capturing and editing tasks.
type TaskManager interface {
	// CreateTask appends a new task under date. Id, status and timestamps are filled in.
	CreateTask(ctx context.Context, date string, task *models.TaskRecord) (*models.TaskRecord, error)

	// UpdateTask applies patch to the task and returns the updated record.
	UpdateTask(ctx context.Context, date, id string, patch models.TaskPatch) (*models.TaskRecord, error)

	// DeleteTask removes the task permanently.
	DeleteTask(ctx context.Context, date, id string) error
}

// TaskStore combines the reader and manager interfaces.
type TaskStore interface {
	TaskReader
	TaskManager
}
