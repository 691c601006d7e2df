package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleRendersRecordAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewPlainHandler(&buf, slog.LevelInfo))

	logger.Info("sweep done", "joined", 2)

	line := buf.String()
	assert.Contains(t, line, "sweep done")
	assert.Contains(t, line, "joined=2")
}

func TestHandleRendersHandlerAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewPlainHandler(&buf, slog.LevelInfo)).With("node", "node-1")

	logger.Info("announcing", "peers", 3)

	line := buf.String()
	assert.Contains(t, line, "node=node-1")
	assert.Contains(t, line, "peers=3")
	assert.True(t, strings.Index(line, "node=node-1") < strings.Index(line, "peers=3"),
		"handler attrs should precede record attrs")
}

func TestEnabledRespectsMinLevel(t *testing.T) {
	h := NewPlainHandler(&bytes.Buffer{}, slog.LevelWarn)

	assert.False(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, h.Enabled(context.Background(), slog.LevelError))
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("warn")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)

	level, err = ParseLevel("bogus")
	assert.Error(t, err)
	assert.Equal(t, slog.LevelInfo, level)
}
