package models

import "time"

// DefaultTaskStatus is assigned to tasks created without an explicit status.
const DefaultTaskStatus = "todo"

// DefaultStatuses seeds the user-extensible status list of a new document.
var DefaultStatuses = []string{"todo", "in-progress", "blocked", "done"}

// Subtask is a checklist item nested under a task.
type Subtask struct {
	Id        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// TaskRecord is a task captured from the UI, a voice shortcut or the URL scheme.
type TaskRecord struct {
	Id           string    `json:"id"`
	Text         string    `json:"text"`
	Completed    bool      `json:"completed"`
	Assignee     string    `json:"assignee,omitempty"` // legacy single assignee, folded into Assignees on load
	Assignees    []string  `json:"assignees"`
	Status       string    `json:"status"`
	Note         string    `json:"note,omitempty"`
	Issues       []string  `json:"issues"`
	Appreciation []string  `json:"appreciation"`
	Subtasks     []Subtask `json:"subtasks"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// TaskPatch carries a partial update. Nil fields are left untouched; Issues and
// Appreciation entries are appended.
type TaskPatch struct {
	Text         *string    `json:"text,omitempty"`
	Completed    *bool      `json:"completed,omitempty"`
	Status       *string    `json:"status,omitempty"`
	Assignees    *[]string  `json:"assignees,omitempty"`
	Note         *string    `json:"note,omitempty"`
	Subtasks     *[]Subtask `json:"subtasks,omitempty"`
	Issues       []string   `json:"issues,omitempty"`
	Appreciation []string   `json:"appreciation,omitempty"`
}

// Apply mutates t in place.
func (p TaskPatch) Apply(t *TaskRecord) {
	if p.Text != nil {
		t.Text = *p.Text
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.Assignees != nil {
		t.Assignees = append([]string{}, (*p.Assignees)...)
	}
	if p.Note != nil {
		t.Note = *p.Note
	}
	if p.Subtasks != nil {
		t.Subtasks = append([]Subtask{}, (*p.Subtasks)...)
	}
	t.Issues = append(t.Issues, p.Issues...)
	t.Appreciation = append(t.Appreciation, p.Appreciation...)
}
