package cli

import (
	"log/slog"

	"github.com/ayeganov/gptree/internal/logging"
)

// createLogger configures the application logger.
// In debug mode, it writes to Stderr (to separate from Stdout tree output).
func createLogger(debug bool) *slog.Logger {
	if debug {
		return logging.New(slog.LevelDebug)
	}
	return logging.NewNop()
}
