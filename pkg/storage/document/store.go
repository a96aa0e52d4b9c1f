// Package document implements the storage interfaces on top of a whole-document
// Backend. Every mutation is a load, mutate, save cycle; the store never holds a
// long-lived copy of the document.
package document

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/chris/dashboard-wallpaper/pkg/logger"
	"github.com/chris/dashboard-wallpaper/pkg/models"
	"github.com/chris/dashboard-wallpaper/pkg/storage"
)

// maxUpdateAttempts bounds how often a cycle is retried after a revision conflict.
const maxUpdateAttempts = 3

// Store implements storage.Storage over a storage.Backend.
type Store struct {
	Backend  storage.Backend
	Capacity int
	Now      func() time.Time
	NewID    func() (string, error)

	mu sync.Mutex
}

// New creates a new Store. A non-positive capacity uses models.DefaultTransactionCapacity.
func New(backend storage.Backend, capacity int) *Store {
	if capacity <= 0 {
		capacity = models.DefaultTransactionCapacity
	}
	return &Store{
		Backend:  backend,
		Capacity: capacity,
		Now:      time.Now,
		NewID:    newID,
	}
}

// Make sure we conform to the interface
var _ storage.Storage = (*Store)(nil)

func newID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// Document returns a freshly loaded, normalized copy of the whole document.
func (s *Store) Document(ctx context.Context) (*models.DataDocument, error) {
	return s.load(ctx)
}

func (s *Store) load(ctx context.Context) (*models.DataDocument, error) {
	doc, err := s.Backend.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load document: %w", err)
	}
	doc.Normalize(s.Capacity)
	return doc, nil
}

// update runs fn against a freshly loaded document and saves the result. A revision
// conflict restarts the whole cycle, so fn must not have side effects outside doc.
func (s *Store) update(ctx context.Context, fn func(doc *models.DataDocument) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var saveErr error
	for attempt := 1; attempt <= maxUpdateAttempts; attempt++ {
		doc, err := s.load(ctx)
		if err != nil {
			return err
		}
		if err := fn(doc); err != nil {
			return err
		}

		saveErr = s.Backend.Save(ctx, doc)
		if saveErr == nil {
			return nil
		}
		if !errors.Is(saveErr, storage.ErrRevisionConflict) {
			return fmt.Errorf("failed to save document: %w", saveErr)
		}
		logger.FromContext(ctx).Warn("document changed underneath, retrying",
			"attempt", attempt, "revision", doc.Revision)
	}
	return fmt.Errorf("failed to save document after %d attempts: %w", maxUpdateAttempts, saveErr)
}
