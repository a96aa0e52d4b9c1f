package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chris/dashboard-wallpaper/pkg/models"
	"github.com/chris/dashboard-wallpaper/pkg/storage"
)

func TestBackend(t *testing.T) {
	ctx := context.Background()
	b := New()

	doc, err := b.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), doc.Revision)

	doc.QuickNotes = append(doc.QuickNotes, models.QuickNote{Id: "n1", Text: "water plants"})
	require.NoError(t, b.Save(ctx, doc))
	assert.Equal(t, int64(1), doc.Revision)

	// Mutating the caller's copy must not leak into the backend.
	doc.QuickNotes[0].Text = "changed"

	loaded, err := b.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "water plants", loaded.QuickNotes[0].Text)

	stale := &models.DataDocument{Revision: 0}
	assert.ErrorIs(t, b.Save(ctx, stale), storage.ErrRevisionConflict)
}
