package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	return entry
}

func TestLoggerFields(t *testing.T) {
	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	log.WithFields(map[string]any{"theme": "default"}).With("classes", 3).Debug("compiled")

	entry := decode(t, buf)
	assert.Equal(t, "compiled", entry["message"])
	assert.Equal(t, "default", entry["theme"])
	assert.Equal(t, float64(3), entry["classes"])
	assert.Equal(t, "debug", entry["level"])
}

func TestLoggerDefaultLevelIsWarn(t *testing.T) {
	buf := &bytes.Buffer{}
	log, err := New(Options{Writer: buf})
	require.NoError(t, err)

	log.Info("hidden")
	assert.Empty(t, strings.TrimSpace(buf.String()))
	assert.False(t, log.Enabled(zerolog.InfoLevel))

	log.Error(errors.New("boom"), "failed")
	entry := decode(t, buf)
	assert.Equal(t, "boom", entry["error"])
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	_, err := New(Options{Level: "loud"})
	assert.Error(t, err)
}

func TestNilLoggerIsSafe(t *testing.T) {
	var log *Logger
	assert.NotPanics(t, func() {
		log.WithFields(map[string]any{"a": 1}).With("b", 2).Info("x")
		log.Error(errors.New("boom"), "x")
		assert.False(t, log.Enabled(zerolog.ErrorLevel))
	})
	assert.NotPanics(t, func() { Nop().Warn("x") })
}
