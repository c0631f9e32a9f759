package logger

import (
	"log/slog"
	"strings"
)

// Level is shared by every handler built in this package.
var Level = &level{lvl: &slog.LevelVar{}}

type level struct {
	lvl *slog.LevelVar
}

func (l *level) Enabled(level slog.Level) bool {
	return level >= l.lvl.Level()
}

func (l *level) Set(level slog.Level) {
	l.lvl.Set(level)
}

// SetByName accepts err|error, warn|warning, info, debug. Unknown names are ignored.
func (l *level) SetByName(level string) {
	switch strings.ToLower(level) {
	case "err", "error":
		l.lvl.Set(slog.LevelError)
	case "warn", "warning":
		l.lvl.Set(slog.LevelWarn)
	case "info":
		l.lvl.Set(slog.LevelInfo)
	case "debug":
		l.lvl.Set(slog.LevelDebug)
	}
}

// ValidName reports whether SetByName understands name.
func ValidName(name string) bool {
	switch strings.ToLower(name) {
	case "err", "error", "warn", "warning", "info", "debug":
		return true
	}
	return false
}
