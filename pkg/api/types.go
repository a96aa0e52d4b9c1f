// Package api defines the HTTP wire types of the dashboard service and binds
// their routes onto a chi router.
package api

import (
	"encoding/json"
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// TransactionType defines model for Transaction.Type.
type TransactionType string

const (
	Credited TransactionType = "credited"
	Debited  TransactionType = "debited"
)

// Evidence defines model for Evidence.
type Evidence struct {
	Amount      bool `json:"amount"`
	Direction   bool `json:"direction"`
	Bank        bool `json:"bank"`
	Mode        bool `json:"mode"`
	Balance     bool `json:"balance"`
	Description bool `json:"description"`
}

// Transaction defines model for Transaction.
type Transaction struct {
	Amount      json.Number     `json:"amount"`
	Balance     *json.Number    `json:"balance,omitempty"`
	Bank        string          `json:"bank"`
	Confidence  string          `json:"confidence,omitempty"`
	Description string          `json:"description"`
	Evidence    Evidence        `json:"evidence"`
	Id          string          `json:"id"`
	Mode        string          `json:"mode"`
	OriginId    *string         `json:"originId,omitempty"`
	RawMessage  string          `json:"rawMessage"`
	Read        bool            `json:"read"`
	Source      *string         `json:"source,omitempty"`
	Timestamp   time.Time       `json:"timestamp"`
	Type        TransactionType `json:"type"`
}

// Subtask defines model for Subtask.
type Subtask struct {
	Id        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// Task defines model for Task.
type Task struct {
	Appreciation []string           `json:"appreciation"`
	Assignees    []string           `json:"assignees"`
	Completed    bool               `json:"completed"`
	CreatedAt    time.Time          `json:"createdAt"`
	Date         openapi_types.Date `json:"date"`
	Id           string             `json:"id"`
	Issues       []string           `json:"issues"`
	Note         *string            `json:"note,omitempty"`
	Status       string             `json:"status"`
	Subtasks     []Subtask          `json:"subtasks"`
	Text         string             `json:"text"`
	UpdatedAt    time.Time          `json:"updatedAt"`
}

// NewTask defines model for NewTask. Task is accepted as an alias of Text.
type NewTask struct {
	Assignee *string `json:"assignee,omitempty"`
	Date     *string `json:"date,omitempty"`
	Task     *string `json:"task,omitempty"`
	Text     *string `json:"text,omitempty"`
}

// TaskUpdate defines model for TaskUpdate.
type TaskUpdate struct {
	Appreciation *[]string  `json:"appreciation,omitempty"`
	Assignees    *[]string  `json:"assignees,omitempty"`
	Completed    *bool      `json:"completed,omitempty"`
	Issues       *[]string  `json:"issues,omitempty"`
	Note         *string    `json:"note,omitempty"`
	Status       *string    `json:"status,omitempty"`
	Subtasks     *[]Subtask `json:"subtasks,omitempty"`
	Text         *string    `json:"text,omitempty"`
}

// ImportTransaction defines model for ImportTransaction.
type ImportTransaction struct {
	Message  string  `json:"message"`
	OriginId *string `json:"originId,omitempty"`
	Source   *string `json:"source,omitempty"`
}

// TransactionMessage defines model for TransactionMessage.
type TransactionMessage struct {
	Message *string `json:"message,omitempty"`
}

// TaskResponse defines model for TaskResponse.
type TaskResponse struct {
	Success bool  `json:"success"`
	Task    *Task `json:"task,omitempty"`
}

// TaskListResponse defines model for TaskListResponse.
type TaskListResponse struct {
	Success bool              `json:"success"`
	Tasks   map[string][]Task `json:"tasks"`
}

// TasksByDateResponse defines model for TasksByDateResponse.
type TasksByDateResponse struct {
	Date    openapi_types.Date `json:"date"`
	Success bool               `json:"success"`
	Tasks   []Task             `json:"tasks"`
}

// TransactionResponse defines model for TransactionResponse.
type TransactionResponse struct {
	Duplicate   *bool        `json:"duplicate,omitempty"`
	Ignored     *bool        `json:"ignored,omitempty"`
	Success     bool         `json:"success"`
	Transaction *Transaction `json:"transaction,omitempty"`
}

// TransactionListResponse defines model for TransactionListResponse.
type TransactionListResponse struct {
	Success      bool          `json:"success"`
	Transactions []Transaction `json:"transactions"`
}

// HealthResponse defines model for HealthResponse.
type HealthResponse struct {
	Status  string `json:"status"`
	Success bool   `json:"success"`
}

// DocumentResponse defines model for DocumentResponse. Document is the raw
// persisted data document.
type DocumentResponse struct {
	Document json.RawMessage `json:"document"`
	Success  bool            `json:"success"`
}

// ErrorResponse defines model for ErrorResponse.
type ErrorResponse struct {
	Code    string `json:"code"`
	Error   string `json:"error"`
	Success bool   `json:"success"`
}

// SiriAddTaskParams defines parameters for SiriAddTask.
type SiriAddTaskParams struct {
	Text     *string `form:"text,omitempty" json:"text,omitempty"`
	Task     *string `form:"task,omitempty" json:"task,omitempty"`
	Date     *string `form:"date,omitempty" json:"date,omitempty"`
	Assignee *string `form:"assignee,omitempty" json:"assignee,omitempty"`
}

// SiriAddTransactionParams defines parameters for SiriAddTransaction.
type SiriAddTransactionParams struct {
	Message *string `form:"message,omitempty" json:"message,omitempty"`
}

// ListTransactionsParams defines parameters for ListTransactions.
type ListTransactionsParams struct {
	Limit *int `form:"limit,omitempty" json:"limit,omitempty"`
}
