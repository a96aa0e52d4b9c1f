package storage

import (
	"context"

	"github.com/chris/dashboard-wallpaper/pkg/models"
)

// TransactionReader defines the interface for reading transaction data.
type TransactionReader interface {
	// ListTransactions returns the newest transactions first. A non-positive limit
	// uses the default of five.
	ListTransactions(ctx context.Context, limit int) ([]models.TransactionRecord, error)

	// GetTransaction retrieves a transaction by its ID.
	GetTransaction(ctx context.Context, id string) (*models.TransactionRecord, error)
}

// TransactionManager defines the interface for recording transactions.
// This is all the SMS relay consumers need.
type TransactionManager interface {
	// AppendTransaction inserts rec at the head of the bounded collection, evicting the
	// oldest entries beyond capacity. A record whose OriginId is already stored is
	// rejected with ErrDuplicateTransaction.
	AppendTransaction(ctx context.Context, rec *models.TransactionRecord) (*models.TransactionRecord, error)

	// MarkTransactionRead sets the read flag on a stored transaction.
	MarkTransactionRead(ctx context.Context, id string) (*models.TransactionRecord, error)
}

// TransactionStore combines the reader and manager interfaces.
type TransactionStore interface {
	TransactionReader
	TransactionManager
}
