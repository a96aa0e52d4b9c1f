// Package ingest runs an inbound message through the classifier and records it.
// Every inbound channel (voice shortcut, email import, SMS relay) goes through Service.
package ingest

import (
	"context"
	"errors"
	"fmt"

	"github.com/chris/dashboard-wallpaper/pkg/classifier"
	"github.com/chris/dashboard-wallpaper/pkg/logger"
	"github.com/chris/dashboard-wallpaper/pkg/mapping"
	"github.com/chris/dashboard-wallpaper/pkg/models"
	"github.com/chris/dashboard-wallpaper/pkg/storage"
	"github.com/chris/dashboard-wallpaper/pkg/websockets"
)

// Status is the outcome of ingesting one message.
type Status string

const (
	StatusRecorded  Status = "recorded"
	StatusIgnored   Status = "ignored"
	StatusDuplicate Status = "duplicate"
)

// Message is one inbound notification.
type Message struct {
	Text     string
	Source   models.Source
	OriginId string
}

// Result carries the stored record when Status is StatusRecorded.
type Result struct {
	Status      Status
	Transaction *models.TransactionRecord
}

// Service classifies and stores inbound messages.
type Service struct {
	Classifier *classifier.Classifier
	Store      storage.TransactionManager
	Publisher  websockets.Publisher
}

// NewService creates a new Service. A nil classifier uses the embedded rules.
func NewService(c *classifier.Classifier, store storage.TransactionManager, publisher websockets.Publisher) *Service {
	if c == nil {
		c = classifier.Default()
	}
	return &Service{
		Classifier: c,
		Store:      store,
		Publisher:  publisher,
	}
}

// Ingest classifies msg and appends it to the store. Messages rejected by the gate
// and repeated origin ids are reported through Status, not as errors.
func (s *Service) Ingest(ctx context.Context, msg Message) (*Result, error) {
	log, ctx := logger.With(ctx, "source", msg.Source, "originId", msg.OriginId)

	res, ok := s.Classifier.Classify(msg.Text)
	if !ok {
		log.Debug("message ignored by classifier")
		return &Result{Status: StatusIgnored}, nil
	}

	rec, err := s.Store.AppendTransaction(ctx, mapping.ToTransactionRecord(res, msg.Source, msg.OriginId))
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateTransaction) {
			log.Info("duplicate message skipped")
			return &Result{Status: StatusDuplicate}, nil
		}
		return nil, fmt.Errorf("failed to record transaction: %w", err)
	}

	log.Info("transaction recorded", "transactionId", rec.Id, "confidence", rec.Confidence)

	// The record is already durable, so a failed notification is only logged.
	if err := s.Publisher.Publish(ctx, websockets.Message{
		Type:    websockets.MessageTypeTransactionAdded,
		Payload: websockets.TransactionPayload{Transaction: mapping.ToApiTransaction(rec)},
	}); err != nil {
		log.Error("failed to publish transaction", "error", err)
	}

	return &Result{Status: StatusRecorded, Transaction: rec}, nil
}
