package logging_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/campusnav/internal/config"
	"github.com/katalvlaran/campusnav/internal/logging"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New(&buf, config.LogConfig{Level: "warn", Format: "json"})
	require.NoError(t, err)

	log.Info("dropped")
	log.Warn("kept", slog.Int("n", 1))
	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, `"msg":"kept"`)
	assert.Contains(t, out, `"service":"campusnav"`)
}

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New(&buf, config.LogConfig{Level: "debug", Format: "text"})
	require.NoError(t, err)

	log.Debug("hello")
	assert.Contains(t, buf.String(), "msg=hello")
}

func TestNew_Errors(t *testing.T) {
	_, err := logging.New(&bytes.Buffer{}, config.LogConfig{Level: "loud"})
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = logging.New(&bytes.Buffer{}, config.LogConfig{Level: "info", Format: "xml"})
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"":      slog.LevelInfo,
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		got, err := logging.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}
