package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger_TextHandler(t *testing.T) {
	defer Level.Set(Level.lvl.Level())
	Level.Set(slog.LevelInfo)

	var buf bytes.Buffer
	l := New(&buf).With("component", "test")

	l.Info("comparing", "layers", "L1L2")
	l.Debug("hidden")

	out := buf.String()
	assert.Contains(t, out, "level=info")
	assert.Contains(t, out, "msg=comparing")
	assert.Contains(t, out, "component=test")
	assert.Contains(t, out, "layers=L1L2")
	assert.NotContains(t, out, "hidden")
	assert.NotContains(t, out, "time=")
}

func TestLevel_SetByName(t *testing.T) {
	defer Level.Set(Level.lvl.Level())

	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"err":     slog.LevelError,
	}
	for name, want := range tests {
		t.Run(name, func(t *testing.T) {
			Level.SetByName(name)
			assert.Equal(t, want, Level.lvl.Level())
			assert.True(t, ValidName(name))
		})
	}
	assert.False(t, ValidName("verbose"))
}

func TestLogger_NilSafe(t *testing.T) {
	var l *Logger
	assert.NotPanics(t, func() { l.Info("x"); l.With("a", 1).Debugf("%d", 1) })
	assert.NotPanics(t, func() { Discard().Error("dropped") })
}
