package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"path": "themes/default.yaml", "components": 3})
	log.Info("theme loaded")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "theme loaded", entry["message"])
	require.Equal(t, "themes/default.yaml", entry["path"])
	require.Equal(t, float64(3), entry["components"])
	require.Equal(t, "info", entry["level"])
}

func TestLoggerDefaultsToWarn(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Writer: buf})
	require.NoError(t, err)

	log.Info("hidden")
	log.Debug("hidden")
	require.Equal(t, "", strings.TrimSpace(buf.String()))

	log.Warn("selector is not valid CSS")
	require.Contains(t, buf.String(), "selector is not valid CSS")
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
}

func TestLoggerErrorIncludesContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"component": "link"})
	log.Error(errors.New("boom"), "failed")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "failed", entry["message"])
	require.Equal(t, "link", entry["component"])
	require.Equal(t, "boom", entry["error"])
}

func TestHumanReadableOutput(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: true, NoColor: true, Writer: buf})
	require.NoError(t, err)

	log.Info("rendered")
	require.Contains(t, buf.String(), "INF rendered")
}

func TestNilLoggerIsSafe(t *testing.T) {
	t.Parallel()

	var log *Logger
	require.NotPanics(t, func() {
		log.WithFields(map[string]any{"k": "v"}).Info("ignored")
		log.Error(errors.New("x"), "ignored")
		z := log.Zerolog()
		z.Info().Msg("ignored")
	})
}
