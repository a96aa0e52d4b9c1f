package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestNew(t *testing.T) {
	t.Run("JSON", func(t *testing.T) {
		var buf bytes.Buffer
		log := New(&buf, "info", "json")

		log.Debug("hidden")
		log.Info("visible", "key", "value")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "visible", entry["msg"])
		assert.Equal(t, "value", entry["key"])
	})

	t.Run("Text", func(t *testing.T) {
		var buf bytes.Buffer
		New(&buf, "debug", "text").Debug("shown")

		assert.Contains(t, buf.String(), "msg=shown")
	})
}

func TestContext(t *testing.T) {
	assert.Same(t, slog.Default(), FromContext(context.Background()))

	var buf bytes.Buffer
	base := New(&buf, "info", "text")
	ctx := ToContext(context.Background(), base)
	assert.Same(t, base, FromContext(ctx))

	log, ctx := With(ctx, "request_id", "abc")
	assert.Same(t, log, FromContext(ctx))

	log.Info("tagged")
	assert.Contains(t, buf.String(), "request_id=abc")
}
