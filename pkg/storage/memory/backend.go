// Package memory keeps the data document in process memory. It backs tests and
// throwaway local runs.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/chris/dashboard-wallpaper/pkg/models"
	"github.com/chris/dashboard-wallpaper/pkg/storage"
)

// Backend stores the encoded document so callers never share memory with it.
type Backend struct {
	mu   sync.Mutex
	data []byte
	rev  int64
}

// New creates an empty Backend.
func New() *Backend {
	return &Backend{}
}

var _ storage.Backend = (*Backend)(nil)

// Load decodes a copy of the stored document.
func (b *Backend) Load(_ context.Context) (*models.DataDocument, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.data == nil {
		return models.NewDataDocument(), nil
	}
	var doc models.DataDocument
	if err := json.Unmarshal(b.data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", storage.ErrCorruptDocument, err)
	}
	return &doc, nil
}

// Save stores doc when its revision matches the stored one.
func (b *Backend) Save(_ context.Context, doc *models.DataDocument) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if doc.Revision != b.rev {
		return fmt.Errorf("stored revision %d, document revision %d: %w", b.rev, doc.Revision, storage.ErrRevisionConflict)
	}

	next := *doc
	next.Revision++
	data, err := json.Marshal(&next)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	b.data = data
	b.rev = next.Revision
	doc.Revision = next.Revision
	return nil
}
