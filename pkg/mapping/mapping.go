package mapping

import (
	"encoding/json"
	"time"

	"github.com/chris/dashboard-wallpaper/pkg/api"
	"github.com/chris/dashboard-wallpaper/pkg/classifier"
	"github.com/chris/dashboard-wallpaper/pkg/models"
)

// ToTransactionRecord converts a classifier Result into a record ready to be stored.
// Id and timestamp are left for the store to assign.
func ToTransactionRecord(res classifier.Result, source models.Source, originID string) *models.TransactionRecord {
	rec := &models.TransactionRecord{
		Amount:      res.Amount,
		Type:        res.Direction,
		Bank:        res.Bank,
		Mode:        res.Mode,
		Description: res.Description,
		RawMessage:  res.RawMessage,
		OriginId:    originID,
		Source:      source,
		Evidence:    res.Evidence,
		Confidence:  res.Confidence,
	}
	if res.Balance != nil {
		balance := *res.Balance
		rec.Balance = &balance
	}
	return rec
}

// ToApiTransaction converts a domain TransactionRecord to an API Transaction model.
func ToApiTransaction(tx *models.TransactionRecord) *api.Transaction {
	out := &api.Transaction{
		Id:          tx.Id,
		Amount:      json.Number(tx.Amount.String()),
		Type:        api.TransactionType(tx.Type),
		Bank:        tx.Bank,
		Mode:        tx.Mode,
		Description: tx.Description,
		RawMessage:  tx.RawMessage,
		Timestamp:   tx.Timestamp,
		Read:        tx.Read,
		Confidence:  string(tx.Confidence),
		Evidence:    api.Evidence(tx.Evidence),
	}
	if tx.Balance != nil {
		balance := json.Number(tx.Balance.String())
		out.Balance = &balance
	}
	if tx.OriginId != "" {
		out.OriginId = &tx.OriginId
	}
	if tx.Source != "" {
		source := string(tx.Source)
		out.Source = &source
	}
	return out
}

// ToApiTransactions converts a list, preserving order.
func ToApiTransactions(txs []models.TransactionRecord) []api.Transaction {
	out := make([]api.Transaction, len(txs))
	for i := range txs {
		out[i] = *ToApiTransaction(&txs[i])
	}
	return out
}

// ToApiTask converts a domain TaskRecord stored under date to an API Task model.
func ToApiTask(date string, task *models.TaskRecord) *api.Task {
	out := &api.Task{
		Id:           task.Id,
		Text:         task.Text,
		Completed:    task.Completed,
		Assignees:    nonNil(task.Assignees),
		Status:       task.Status,
		Issues:       nonNil(task.Issues),
		Appreciation: nonNil(task.Appreciation),
		Subtasks:     make([]api.Subtask, len(task.Subtasks)),
		CreatedAt:    task.CreatedAt,
		UpdatedAt:    task.UpdatedAt,
	}
	if d, err := time.Parse(time.DateOnly, date); err == nil {
		out.Date.Time = d
	}
	if task.Note != "" {
		out.Note = &task.Note
	}
	for i, s := range task.Subtasks {
		out.Subtasks[i] = api.Subtask(s)
	}
	return out
}

// ToApiTasks converts the tasks of one date.
func ToApiTasks(date string, tasks []models.TaskRecord) []api.Task {
	out := make([]api.Task, len(tasks))
	for i := range tasks {
		out[i] = *ToApiTask(date, &tasks[i])
	}
	return out
}

// ToDomainTaskPatch converts an API TaskUpdate to a domain TaskPatch.
func ToDomainTaskPatch(u *api.TaskUpdate) models.TaskPatch {
	patch := models.TaskPatch{
		Text:      u.Text,
		Completed: u.Completed,
		Status:    u.Status,
		Assignees: u.Assignees,
		Note:      u.Note,
	}
	if u.Subtasks != nil {
		subtasks := make([]models.Subtask, len(*u.Subtasks))
		for i, s := range *u.Subtasks {
			subtasks[i] = models.Subtask(s)
		}
		patch.Subtasks = &subtasks
	}
	if u.Issues != nil {
		patch.Issues = *u.Issues
	}
	if u.Appreciation != nil {
		patch.Appreciation = *u.Appreciation
	}
	return patch
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
