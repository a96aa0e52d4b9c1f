// Package file persists the data document as a single JSON file, replaced
// atomically on every save.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gofrs/flock"

	"github.com/chris/dashboard-wallpaper/pkg/models"
	"github.com/chris/dashboard-wallpaper/pkg/storage"
)

const (
	dirName  = ".dashboard-wallpaper"
	fileName = "data.json"

	// lockRetry is how often a blocked lock attempt is retried.
	lockRetry = 5 * time.Millisecond
)

// DefaultPath returns ~/.dashboard-wallpaper/data.json.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, dirName, fileName), nil
}

// Backend reads and writes one JSON file. Every access holds an advisory lock on
// <path>.lock, so separate Backends and separate processes on the same path see
// each other's revisions.
type Backend struct {
	Path string

	// mu serializes use of lock, which is not safe to share between goroutines.
	mu   sync.Mutex
	lock *flock.Flock
}

// New creates a Backend for path.
func New(path string) *Backend {
	return &Backend{Path: path, lock: flock.New(path + ".lock")}
}

var _ storage.Backend = (*Backend)(nil)

// Load returns a fresh document when the file does not exist. A file that cannot be
// decoded is moved aside to <path>.corrupt and ErrCorruptDocument is returned.
func (b *Backend) Load(ctx context.Context) (*models.DataDocument, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, err := os.Stat(filepath.Dir(b.Path)); errors.Is(err, fs.ErrNotExist) {
		return models.NewDataDocument(), nil
	}
	if err := b.acquire(ctx, b.lock.TryRLockContext); err != nil {
		return nil, err
	}
	defer b.release()

	doc, err := b.read()
	if errors.Is(err, fs.ErrNotExist) {
		return models.NewDataDocument(), nil
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// Save compares the on-disk revision with doc.Revision, then writes the document to
// a temp file in the same directory, syncs it and renames it over the original. The
// exclusive lock is held from the revision check until the rename.
func (b *Backend) Save(ctx context.Context, doc *models.DataDocument) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(b.Path), 0o700); err != nil {
		return fmt.Errorf("storage error creating directories: %w", err)
	}
	if err := b.acquire(ctx, b.lock.TryLockContext); err != nil {
		return err
	}
	defer b.release()

	var current int64
	stored, err := b.read()
	switch {
	case err == nil:
		current = stored.Revision
	case errors.Is(err, fs.ErrNotExist):
	default:
		return err
	}
	if current != doc.Revision {
		return fmt.Errorf("file revision %d, document revision %d: %w", current, doc.Revision, storage.ErrRevisionConflict)
	}

	next := *doc
	next.Revision++
	data, err := json.MarshalIndent(&next, "", "  ")
	if err != nil {
		return fmt.Errorf("storage error marshalling JSON: %w", err)
	}
	if err := writeAtomic(b.Path, data); err != nil {
		return err
	}

	doc.Revision = next.Revision
	return nil
}

func (b *Backend) acquire(ctx context.Context, try func(context.Context, time.Duration) (bool, error)) error {
	locked, err := try(ctx, lockRetry)
	if err != nil {
		return fmt.Errorf("storage error locking %s: %w", b.lock.Path(), err)
	}
	if !locked {
		return fmt.Errorf("storage error locking %s: lock not acquired", b.lock.Path())
	}
	return nil
}

func (b *Backend) release() {
	_ = b.lock.Unlock()
}

func (b *Backend) read() (*models.DataDocument, error) {
	data, err := os.ReadFile(b.Path)
	if err != nil {
		return nil, fmt.Errorf("storage error reading %s: %w", b.Path, err)
	}

	var doc models.DataDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		backupPath := b.Path + ".corrupt"
		_ = os.Rename(b.Path, backupPath)
		return nil, fmt.Errorf("%w in %s (backed up to %s): %v", storage.ErrCorruptDocument, b.Path, backupPath, err)
	}
	return &doc, nil
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("storage error creating temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("storage error writing temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("storage error syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage error closing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("storage error renaming temp file: %w", err)
	}
	return nil
}
