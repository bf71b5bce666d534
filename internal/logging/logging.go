package logging

import (
	"log/slog"
	"os"
)

// New initializes a new slog logger and sets it as the default.
// The format argument selects the output handler; it is normally
// sourced from the LOG_FORMAT configuration entry. Defaults to "text"
// for development, can be set to "json" for production.
func New(format string) *slog.Logger {
	if format == "" {
		format = "text" // Default to text for development
	}

	var handler slog.Handler
	switch format {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
	default:
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level:     slog.LevelDebug,
			AddSource: true, // Adds source file and line number
		})
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
