package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("bogus"))
}

func TestInitJSON(t *testing.T) {
	var buf bytes.Buffer
	l := Init(&buf, "info", "json")

	l.Debug("hidden")
	l.Info("payment processed", "transaction_id", "TXN-1")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"payment processed"`)
	assert.Contains(t, out, `"transaction_id":"TXN-1"`)
}

func TestInitTextWithoutColour(t *testing.T) {
	var buf bytes.Buffer
	l := Init(&buf, "debug", "text")

	l.Debug("quote computed", "method", "card")

	out := buf.String()
	assert.Contains(t, out, "quote computed")
	assert.Contains(t, out, "method=card")
	assert.NotContains(t, out, "\x1b[")
}
