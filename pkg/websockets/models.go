package websockets

import "github.com/chris/dashboard-wallpaper/pkg/api"

// MessageType defines the type of a WebSocket message.
type MessageType string

const (
	MessageTypeTransactionAdded MessageType = "transactionAdded"
	MessageTypeTransactionRead  MessageType = "transactionRead"
	MessageTypeTaskAdded        MessageType = "taskAdded"
	MessageTypeTaskUpdated      MessageType = "taskUpdated"
	MessageTypeTaskDeleted      MessageType = "taskDeleted"
)

// Message represents a generic WebSocket message.
type Message struct {
	Type    MessageType `json:"type"`
	Payload interface{} `json:"payload"`
}

// TransactionPayload is the payload for transactionAdded and transactionRead messages.
type TransactionPayload struct {
	Transaction *api.Transaction `json:"transaction"`
}

// TaskPayload is the payload for taskAdded and taskUpdated messages.
type TaskPayload struct {
	Date string    `json:"date"`
	Task *api.Task `json:"task"`
}

// TaskDeletedPayload is the payload for a taskDeleted message.
type TaskDeletedPayload struct {
	Date   string `json:"date"`
	TaskID string `json:"task_id"`
}
