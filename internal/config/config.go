package config

import (
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for a theme-enabled application.
type Config struct {
	// AppID is the application identifier themes must declare to be loaded.
	AppID string

	// ThemePaths is the ordered list of extra directories to scan for
	// themes, in addition to the packaged <root>/themes directory.
	ThemePaths []string

	// LogFormat selects the slog handler ("text" or "json").
	LogFormat string
}

// New loads configuration from environment variables.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, relying on environment variables")
	}

	return &Config{
		AppID:      os.Getenv("APP_ID"),
		ThemePaths: SplitThemePaths(os.Getenv("THEME_PATHS")),
		LogFormat:  os.Getenv("LOG_FORMAT"),
	}
}

// SplitThemePaths normalizes a ";"-delimited search path value into an
// ordered list of paths. Segments are trimmed of surrounding whitespace
// and empty segments are dropped. The normalization happens here, at the
// configuration boundary, so nothing downstream ever branches on a
// string-or-list shape.
func SplitThemePaths(value string) []string {
	if value == "" {
		return nil
	}

	var paths []string
	for _, segment := range strings.Split(value, ";") {
		if p := strings.TrimSpace(segment); p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}
