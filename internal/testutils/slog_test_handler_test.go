package testutils

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestSlogHandler(t *testing.T) {
	h := NewTestSlogHandler()
	log := h.NewTestLogger().With(slog.String("component", "test"))

	log.Info("first", slog.Int("n", 1))
	log.Error("second")

	entries := h.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "INFO", entries[0]["level"])
	assert.Equal(t, "first", entries[0]["message"])
	assert.Equal(t, int64(1), entries[0]["n"])
	assert.Equal(t, "test", entries[1]["component"], "attrs from With are kept")

	assert.Len(t, h.Find("second"), 1)

	h.Clear()
	assert.Empty(t, h.Entries())
}
