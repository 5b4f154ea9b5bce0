package mapspace

import (
	"context"
	"log/slog"
)

// LevelTrace sits below slog.LevelDebug and carries per-level configuration
// detail.
const LevelTrace slog.Level = slog.LevelDebug - 4

// Trace logs at LevelTrace on the default logger.
func Trace(msg string, args ...any) {
	slog.Log(context.Background(), LevelTrace, msg, args...)
}
