package models

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Direction records which way money moved.
type Direction string

const (
	CREDITED Direction = "credited"
	DEBITED  Direction = "debited"
)

// Valid reports whether d is one of the two known directions.
func (d Direction) Valid() bool {
	return d == CREDITED || d == DEBITED
}

// Source identifies the inbound channel a transaction arrived on.
type Source string

const (
	SourceVoice    Source = "voice"
	SourceEmail    Source = "email"
	SourceSMSRelay Source = "sms-relay"
	SourceManual   Source = "manual"
	SourceAPI      Source = "api"
)

// Valid reports whether s is a known source.
func (s Source) Valid() bool {
	switch s {
	case SourceVoice, SourceEmail, SourceSMSRelay, SourceManual, SourceAPI:
		return true
	}
	return false
}

// Confidence summarises how much evidence the classifier found.
type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

const (
	UnknownLabel       = "Unknown"
	DefaultDescription = "Transaction"

	// DefaultTransactionCapacity bounds the newest-first transaction list.
	DefaultTransactionCapacity = 50
)

// Evidence marks which fields were extracted from the message rather than defaulted.
type Evidence struct {
	Amount      bool `json:"amount"`
	Direction   bool `json:"direction"`
	Bank        bool `json:"bank"`
	Mode        bool `json:"mode"`
	Balance     bool `json:"balance"`
	Description bool `json:"description"`
}

// TransactionRecord is a classified transaction as persisted in the data document.
type TransactionRecord struct {
	Id          string           `json:"id"`
	Amount      decimal.Decimal  `json:"amount"`
	Type        Direction        `json:"type"`
	Bank        string           `json:"bank"`
	Mode        string           `json:"mode"`
	Balance     *decimal.Decimal `json:"balance,omitempty"`
	Description string           `json:"description"`
	RawMessage  string           `json:"rawMessage"`
	Timestamp   time.Time        `json:"timestamp"`
	Read        bool             `json:"read"`
	OriginId    string           `json:"originId,omitempty"`
	Source      Source           `json:"source,omitempty"`
	Evidence    Evidence         `json:"evidence"`
	Confidence  Confidence       `json:"confidence,omitempty"`
}

// MarshalJSON writes Amount and Balance as plain JSON numbers. decimal's own
// UnmarshalJSON accepts both quoted and bare numbers, so no decoder is needed.
func (t TransactionRecord) MarshalJSON() ([]byte, error) {
	type record TransactionRecord
	out := struct {
		record
		Amount  json.Number  `json:"amount"`
		Balance *json.Number `json:"balance,omitempty"`
	}{
		record: record(t),
		Amount: json.Number(t.Amount.String()),
	}
	if t.Balance != nil {
		balance := json.Number(t.Balance.String())
		out.Balance = &balance
	}
	return json.Marshal(out)
}
