package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chris/dashboard-wallpaper/pkg/classifier"
	"github.com/chris/dashboard-wallpaper/pkg/config"
	"github.com/chris/dashboard-wallpaper/pkg/storage/file"
	"github.com/chris/dashboard-wallpaper/pkg/storage/memory"
)

func TestNewBackend(t *testing.T) {
	ctx := context.Background()

	t.Run("File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "data.json")
		backend, err := NewBackend(ctx, &config.Config{StorageBackend: config.BackendFile, DataFile: path})

		require.NoError(t, err)
		require.IsType(t, &file.Backend{}, backend)
		assert.Equal(t, path, backend.(*file.Backend).Path)
	})

	t.Run("Memory", func(t *testing.T) {
		backend, err := NewBackend(ctx, &config.Config{StorageBackend: config.BackendMemory})

		require.NoError(t, err)
		assert.IsType(t, &memory.Backend{}, backend)
	})

	t.Run("Unknown", func(t *testing.T) {
		_, err := NewBackend(ctx, &config.Config{StorageBackend: "sqlite"})

		assert.ErrorContains(t, err, "sqlite")
	})
}

func TestNewClassifier(t *testing.T) {
	t.Run("Default", func(t *testing.T) {
		c, err := NewClassifier(&config.Config{})

		require.NoError(t, err)
		assert.Same(t, classifier.Default(), c)
	})

	t.Run("Rules File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "rules.yaml")
		require.NoError(t, os.WriteFile(path, []byte("gate: [zap]\n"), 0o600))

		c, err := NewClassifier(&config.Config{ClassifierRulesFile: path})

		require.NoError(t, err)
		assert.True(t, c.IsTransaction("zap 5"))
		assert.False(t, c.IsTransaction("Rs.5 debited"))
	})

	t.Run("Missing File", func(t *testing.T) {
		_, err := NewClassifier(&config.Config{ClassifierRulesFile: filepath.Join(t.TempDir(), "none.yaml")})

		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
