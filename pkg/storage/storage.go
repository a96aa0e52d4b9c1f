package storage

import (
	"context"

	"github.com/chris/dashboard-wallpaper/pkg/models"
)

// Backend persists the whole DataDocument. Implementations are the only code that
// touches the underlying medium.
type Backend interface {
	// Load returns the stored document, or a fresh one with defaults when none exists yet.
	Load(ctx context.Context) (*models.DataDocument, error)

	// Save replaces the stored document. It fails with ErrRevisionConflict when the
	// stored revision no longer equals doc.Revision, and increments doc.Revision on success.
	Save(ctx context.Context, doc *models.DataDocument) error
}

// DocumentReader exposes a read-only snapshot of the whole document for wallpaper renderers.
type DocumentReader interface {
	Document(ctx context.Context) (*models.DataDocument, error)
}

// Storage defines the root interface for the entire data layer.
// Components should depend on the more granular interfaces (ApiStore, TransactionManager, etc.).
type Storage interface {
	ApiStore
	DocumentReader
}
