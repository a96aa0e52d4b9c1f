package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	t.Run("Empty Document", func(t *testing.T) {
		doc := &DataDocument{}
		doc.Normalize(0)

		assert.NotNil(t, doc.Tasks)
		assert.NotNil(t, doc.Transactions)
		assert.NotNil(t, doc.QuickNotes)
		assert.NotNil(t, doc.QuickLinks)
		assert.NotNil(t, doc.TeamMembers)
		assert.Equal(t, DefaultStatuses, doc.Statuses)
	})

	t.Run("Legacy Task Fields", func(t *testing.T) {
		raw := `{"tasks":{"2024-03-01":[{"id":"1","text":"ship it","assignee":"sam","status":"waiting"},{"id":"2","text":"done already","completed":true}]}}`
		var doc DataDocument
		require.NoError(t, json.Unmarshal([]byte(raw), &doc))

		doc.Normalize(DefaultTransactionCapacity)

		tasks := doc.Tasks["2024-03-01"]
		require.Len(t, tasks, 2)
		assert.Equal(t, []string{"sam"}, tasks[0].Assignees)
		assert.Empty(t, tasks[0].Assignee)
		assert.Equal(t, "waiting", tasks[0].Status)
		assert.Equal(t, "done", tasks[1].Status)
		assert.NotNil(t, tasks[1].Subtasks)
		assert.Contains(t, doc.Statuses, "waiting")
	})

	t.Run("Legacy Transaction Fields", func(t *testing.T) {
		doc := &DataDocument{Transactions: []TransactionRecord{
			{Id: "a", Amount: decimal.NewFromInt(-20), Type: "CREDITED"},
			{Id: "b", Type: "sideways"},
		}}

		doc.Normalize(DefaultTransactionCapacity)

		assert.True(t, doc.Transactions[0].Amount.Equal(decimal.NewFromInt(20)))
		assert.Equal(t, CREDITED, doc.Transactions[0].Type)
		assert.Equal(t, DEBITED, doc.Transactions[1].Type)
		assert.Equal(t, UnknownLabel, doc.Transactions[1].Bank)
		assert.Equal(t, UnknownLabel, doc.Transactions[1].Mode)
		assert.Equal(t, DefaultDescription, doc.Transactions[1].Description)
	})

	t.Run("Over Capacity", func(t *testing.T) {
		doc := &DataDocument{}
		for i := 0; i < 8; i++ {
			doc.Transactions = append(doc.Transactions, TransactionRecord{Id: string(rune('a' + i))})
		}

		doc.Normalize(5)

		require.Len(t, doc.Transactions, 5)
		assert.Equal(t, "a", doc.Transactions[0].Id)
		assert.Equal(t, "e", doc.Transactions[4].Id)
	})

	t.Run("Idempotent", func(t *testing.T) {
		doc := NewDataDocument()
		doc.Tasks["2024-03-01"] = []TaskRecord{{Id: "1", Text: "x", Assignee: "kai"}}
		doc.Normalize(DefaultTransactionCapacity)
		first, err := json.Marshal(doc)
		require.NoError(t, err)

		doc.Normalize(DefaultTransactionCapacity)
		second, err := json.Marshal(doc)
		require.NoError(t, err)

		assert.JSONEq(t, string(first), string(second))
	})
}

func TestTaskPatchApply(t *testing.T) {
	status := "blocked"
	done := true
	assignees := []string{"ana", "lee"}
	task := TaskRecord{Text: "write report", Status: "todo", Issues: []string{"first"}}

	TaskPatch{
		Status:    &status,
		Completed: &done,
		Assignees: &assignees,
		Issues:    []string{"second"},
	}.Apply(&task)

	assert.Equal(t, "write report", task.Text)
	assert.Equal(t, "blocked", task.Status)
	assert.True(t, task.Completed)
	assert.Equal(t, []string{"ana", "lee"}, task.Assignees)
	assert.Equal(t, []string{"first", "second"}, task.Issues)

	assignees[0] = "mutated"
	assert.Equal(t, "ana", task.Assignees[0])
}
