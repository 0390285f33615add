package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"payproc/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestNewWithWriter_Format(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(config.LoggingConfig{Level: "info", Format: "json"}, &buf)
	l.Info("payment sent", "path", "/payments/paypal")

	assert.Contains(t, buf.String(), `"msg":"payment sent"`)
	assert.Contains(t, buf.String(), `"path":"/payments/paypal"`)
}

func TestNewWithWriter_Level(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(config.LoggingConfig{Level: "warn"}, &buf)
	l.Info("dropped")
	assert.Empty(t, buf.String())

	l.Warn("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel(" DEBUG "))
	assert.Equal(t, slog.LevelWarn, parseLevel("warning"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel("whatever"))
}
