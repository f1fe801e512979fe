package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewWithWriter(&buf, "warn")
	require.NoError(t, err)

	log.Info("hidden %d", 1)
	log.Warn("visible %s", "warn")
	log.Error("visible %s", "error")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "visible warn", entry["message"])
}

func TestNew_UnknownLevel(t *testing.T) {
	_, err := New("", "verbose")
	assert.Error(t, err)
}

func TestNop(t *testing.T) {
	log := Nop()
	log.Info("nothing %s", "here")
	assert.NoError(t, log.Close())
}
