package document

import (
	"context"
	"fmt"

	"github.com/chris/dashboard-wallpaper/pkg/models"
	"github.com/chris/dashboard-wallpaper/pkg/storage"
)

// DefaultListLimit is used when ListTransactions is called without a positive limit.
const DefaultListLimit = 5

// AppendTransaction inserts rec at the head of the transaction list.
func (s *Store) AppendTransaction(ctx context.Context, rec *models.TransactionRecord) (*models.TransactionRecord, error) {
	var stored models.TransactionRecord
	err := s.update(ctx, func(doc *models.DataDocument) error {
		if rec.OriginId != "" {
			for _, existing := range doc.Transactions {
				if existing.OriginId == rec.OriginId {
					return fmt.Errorf("origin %s: %w", rec.OriginId, storage.ErrDuplicateTransaction)
				}
			}
		}

		stored = *rec
		if stored.Id == "" {
			id, err := s.NewID()
			if err != nil {
				return fmt.Errorf("failed to generate transaction id: %w", err)
			}
			stored.Id = id
		}
		if stored.Timestamp.IsZero() {
			stored.Timestamp = s.Now().UTC()
		}

		doc.Transactions = append([]models.TransactionRecord{stored}, doc.Transactions...)
		if len(doc.Transactions) > s.Capacity {
			doc.Transactions = doc.Transactions[:s.Capacity]
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

// ListTransactions returns up to limit transactions, newest first.
func (s *Store) ListTransactions(ctx context.Context, limit int) ([]models.TransactionRecord, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if len(doc.Transactions) < limit {
		limit = len(doc.Transactions)
	}
	return doc.Transactions[:limit], nil
}

// GetTransaction retrieves a transaction by its ID.
func (s *Store) GetTransaction(ctx context.Context, id string) (*models.TransactionRecord, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range doc.Transactions {
		if doc.Transactions[i].Id == id {
			return &doc.Transactions[i], nil
		}
	}
	return nil, fmt.Errorf("transaction %s: %w", id, storage.ErrTransactionNotFound)
}

// MarkTransactionRead sets the read flag. Marking an already read transaction is a no-op success.
func (s *Store) MarkTransactionRead(ctx context.Context, id string) (*models.TransactionRecord, error) {
	var updated models.TransactionRecord
	err := s.update(ctx, func(doc *models.DataDocument) error {
		for i := range doc.Transactions {
			if doc.Transactions[i].Id == id {
				doc.Transactions[i].Read = true
				updated = doc.Transactions[i]
				return nil
			}
		}
		return fmt.Errorf("transaction %s: %w", id, storage.ErrTransactionNotFound)
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
