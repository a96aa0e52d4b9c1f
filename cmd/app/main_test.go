package main

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chris/dashboard-wallpaper/pkg/logger"
)

func TestBaseContext(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	parent, cancel := context.WithCancel(logger.ToContext(context.Background(), log))

	base := baseContext(parent)(nil)
	cancel()

	assert.NoError(t, base.Err())
	select {
	case <-base.Done():
		t.Fatal("request context cancelled with the signal context")
	default:
	}
	assert.Same(t, log, logger.FromContext(base))
}
