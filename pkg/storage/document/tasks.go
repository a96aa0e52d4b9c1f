package document

import (
	"context"
	"fmt"
	"slices"

	"github.com/chris/dashboard-wallpaper/pkg/models"
	"github.com/chris/dashboard-wallpaper/pkg/storage"
)

// ListTasks returns every task keyed by date.
func (s *Store) ListTasks(ctx context.Context) (map[string][]models.TaskRecord, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Tasks, nil
}

// ListTasksByDate returns the tasks for date in insertion order.
func (s *Store) ListTasksByDate(ctx context.Context, date string) ([]models.TaskRecord, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	tasks, ok := doc.Tasks[date]
	if !ok {
		return []models.TaskRecord{}, nil
	}
	return tasks, nil
}

// CreateTask appends task to the list for date.
func (s *Store) CreateTask(ctx context.Context, date string, task *models.TaskRecord) (*models.TaskRecord, error) {
	var created models.TaskRecord
	err := s.update(ctx, func(doc *models.DataDocument) error {
		created = *task
		if created.Id == "" {
			id, err := s.NewID()
			if err != nil {
				return fmt.Errorf("failed to generate task id: %w", err)
			}
			created.Id = id
		}
		now := s.Now().UTC()
		if created.CreatedAt.IsZero() {
			created.CreatedAt = now
		}
		created.UpdatedAt = now
		created.Assignees = slices.Clone(created.Assignees)

		doc.Tasks[date] = append(doc.Tasks[date], created)
		// Normalize fills status and empty lists on the stored copy.
		doc.Normalize(s.Capacity)
		created = doc.Tasks[date][len(doc.Tasks[date])-1]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateTask applies patch to the task identified by date and id.
func (s *Store) UpdateTask(ctx context.Context, date, id string, patch models.TaskPatch) (*models.TaskRecord, error) {
	var updated models.TaskRecord
	err := s.update(ctx, func(doc *models.DataDocument) error {
		tasks := doc.Tasks[date]
		i := slices.IndexFunc(tasks, func(t models.TaskRecord) bool { return t.Id == id })
		if i < 0 {
			return fmt.Errorf("task %s on %s: %w", id, date, storage.ErrTaskNotFound)
		}

		patch.Apply(&tasks[i])
		tasks[i].UpdatedAt = s.Now().UTC()
		doc.RegisterStatus(tasks[i].Status)
		updated = tasks[i]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteTask removes the task. An emptied date keeps its key with an empty list.
func (s *Store) DeleteTask(ctx context.Context, date, id string) error {
	return s.update(ctx, func(doc *models.DataDocument) error {
		tasks := doc.Tasks[date]
		i := slices.IndexFunc(tasks, func(t models.TaskRecord) bool { return t.Id == id })
		if i < 0 {
			return fmt.Errorf("task %s on %s: %w", id, date, storage.ErrTaskNotFound)
		}
		doc.Tasks[date] = slices.Delete(tasks, i, i+1)
		return nil
	})
}
