package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel(" DEBUG "))
	assert.Equal(t, slog.LevelWarn, parseLevel("warn"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel(""))
	assert.Equal(t, slog.LevelInfo, parseLevel("verbose"))
}

func TestConfigure(t *testing.T) {
	prev := L()
	t.Cleanup(func() { def.Store(prev) })

	t.Run("Should write JSON records at or above the level", func(t *testing.T) {
		var buf bytes.Buffer
		Configure(Options{Level: "warn", JSON: true, Output: &buf})

		L().Info("hidden")
		L().Warn("shown", "rows", 3)

		var rec map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
		assert.Equal(t, "shown", rec["msg"])
		assert.EqualValues(t, 3, rec["rows"])
	})

	t.Run("Should write text records", func(t *testing.T) {
		var buf bytes.Buffer
		Configure(Options{Output: &buf})
		L().Info("hello", "k", "v")
		assert.Contains(t, buf.String(), "msg=hello k=v")
	})
}
