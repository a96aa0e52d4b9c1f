package models

import (
	"slices"
	"strings"
)

// QuickNote is a free-form sticky note shown on the dashboard.
type QuickNote struct {
	Id        string `json:"id"`
	Text      string `json:"text"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// QuickLink is a labelled shortcut shown on the dashboard.
type QuickLink struct {
	Id    string `json:"id"`
	Label string `json:"label"`
	URL   string `json:"url"`
}

// TeamMember is a possible task assignee.
type TeamMember struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}

// DataDocument is the single aggregate persisted by every backend.
type DataDocument struct {
	Revision     int64                   `json:"revision"`
	Tasks        map[string][]TaskRecord `json:"tasks"`
	Transactions []TransactionRecord     `json:"transactions"`
	QuickNotes   []QuickNote             `json:"quickNotes"`
	QuickLinks   []QuickLink             `json:"quickLinks"`
	TeamMembers  []TeamMember            `json:"teamMembers"`
	Statuses     []string                `json:"statuses"`
}

// NewDataDocument returns the document written on first access.
func NewDataDocument() *DataDocument {
	doc := &DataDocument{}
	doc.Normalize(DefaultTransactionCapacity)
	return doc
}

// Normalize fills every default a loaded document may be missing. It is the only
// place defaults are applied; callers after load may rely on a fully populated value.
func (d *DataDocument) Normalize(capacity int) {
	if capacity <= 0 {
		capacity = DefaultTransactionCapacity
	}
	if d.Tasks == nil {
		d.Tasks = map[string][]TaskRecord{}
	}
	if d.Transactions == nil {
		d.Transactions = []TransactionRecord{}
	}
	if d.QuickNotes == nil {
		d.QuickNotes = []QuickNote{}
	}
	if d.QuickLinks == nil {
		d.QuickLinks = []QuickLink{}
	}
	if d.TeamMembers == nil {
		d.TeamMembers = []TeamMember{}
	}
	if len(d.Statuses) == 0 {
		d.Statuses = slices.Clone(DefaultStatuses)
	}

	for date, tasks := range d.Tasks {
		if tasks == nil {
			d.Tasks[date] = []TaskRecord{}
			continue
		}
		for i := range tasks {
			normalizeTask(&tasks[i])
			d.RegisterStatus(tasks[i].Status)
		}
	}

	for i := range d.Transactions {
		normalizeTransaction(&d.Transactions[i])
	}
	if len(d.Transactions) > capacity {
		d.Transactions = d.Transactions[:capacity]
	}
}

// RegisterStatus adds status to the user-extensible status list if it is new.
func (d *DataDocument) RegisterStatus(status string) {
	if status == "" || slices.Contains(d.Statuses, status) {
		return
	}
	d.Statuses = append(d.Statuses, status)
}

func normalizeTask(t *TaskRecord) {
	if t.Assignee != "" {
		if !slices.Contains(t.Assignees, t.Assignee) {
			t.Assignees = append([]string{t.Assignee}, t.Assignees...)
		}
		t.Assignee = ""
	}
	if t.Assignees == nil {
		t.Assignees = []string{}
	}
	if t.Status == "" {
		if t.Completed {
			t.Status = "done"
		} else {
			t.Status = DefaultTaskStatus
		}
	}
	if t.Issues == nil {
		t.Issues = []string{}
	}
	if t.Appreciation == nil {
		t.Appreciation = []string{}
	}
	if t.Subtasks == nil {
		t.Subtasks = []Subtask{}
	}
}

func normalizeTransaction(tx *TransactionRecord) {
	if tx.Amount.IsNegative() {
		tx.Amount = tx.Amount.Abs()
	}
	if !tx.Type.Valid() {
		tx.Type = Direction(strings.ToLower(string(tx.Type)))
		if !tx.Type.Valid() {
			tx.Type = DEBITED
		}
	}
	if tx.Bank == "" {
		tx.Bank = UnknownLabel
	}
	if tx.Mode == "" {
		tx.Mode = UnknownLabel
	}
	if tx.Description == "" {
		tx.Description = DefaultDescription
	}
}
