package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPrettyLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	log := NewPrettyLogger(&buf, false)

	log.Debug("hidden")
	log.Info("Curve sampled", zap.Int("points", 51))
	log.Warn("Allocation mismatch")
	require.NoError(t, log.Sync())

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "[INFO]")
	assert.Contains(t, out, "Curve sampled")
	assert.Contains(t, out, `"points": 51`)
	assert.Contains(t, out, "[WARN]")

	buf.Reset()
	debugLog := NewPrettyLogger(&buf, true)
	debugLog.Debug("visible")
	assert.Contains(t, buf.String(), "[DEBUG]")
}

func TestTUILoggerWritesJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "tokenforge.log")

	log, closeFn, err := CreateTUILogger(FileConfig{Path: path, MaxSizeMB: 1, MaxBackups: 1, MaxAgeDays: 1})
	require.NoError(t, err)

	log.Info("Token launch initiated", zap.String("symbol", "SFT"))
	require.NoError(t, log.Sync())
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "Token launch initiated", entry["msg"])
	assert.Equal(t, "SFT", entry["symbol"])
	assert.Contains(t, entry, "timestamp")
}

func TestTUILoggerRequiresPath(t *testing.T) {
	_, _, err := CreateTUILogger(FileConfig{})
	assert.Error(t, err)
}
