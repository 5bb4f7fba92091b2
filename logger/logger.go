package logger

import (
	"log/slog"
	"os"
)

// Setup routes slog output to a file so interactive views stay clean.
// Logging is best-effort: when the file cannot be opened the default
// handler is left untouched.
func Setup(path string) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
}
