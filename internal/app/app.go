// Package app wires the concrete application context the theme
// subsystem runs against: configuration, logging, the Echo instance,
// the template registry, and the filesystem to scan.
package app

import (
	"log/slog"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/veneer/internal/config"
	"github.com/nfrund/veneer/internal/logging"
	"github.com/nfrund/veneer/internal/rendering"
	"github.com/spf13/afero"
)

// App is the host application themes are loaded for. It satisfies
// themes.Application.
type App struct {
	Echo *echo.Echo

	cfg       *config.Config
	logger    *slog.Logger
	fs        afero.Fs
	rootPath  string
	templates *rendering.Registry
}

// Options configures a new App. Zero-value fields fall back to
// environment configuration, the default logger, the OS filesystem,
// and the current working directory.
type Options struct {
	Config   *config.Config
	Logger   *slog.Logger
	Fs       afero.Fs
	RootPath string
}

// New constructs an App with an Echo instance whose renderer serves
// templates from the app's registry.
func New(opts Options) *App {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.New()
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.New(cfg.LogFormat)
	}

	fsys := opts.Fs
	if fsys == nil {
		fsys = afero.NewOsFs()
	}

	rootPath := opts.RootPath
	if rootPath == "" {
		if wd, err := os.Getwd(); err == nil {
			rootPath = wd
		}
	}

	registry := rendering.NewRegistry()

	e := echo.New()
	e.HideBanner = true
	e.Renderer = rendering.NewRenderer(registry)

	return &App{
		Echo:      e,
		cfg:       cfg,
		logger:    logger,
		fs:        fsys,
		rootPath:  rootPath,
		templates: registry,
	}
}

// RootPath returns the application's root directory; packaged themes
// live under <root>/themes.
func (a *App) RootPath() string {
	return a.rootPath
}

// Fs returns the filesystem the application reads themes from.
func (a *App) Fs() afero.Fs {
	return a.fs
}

// Config returns the application configuration.
func (a *App) Config() *config.Config {
	return a.cfg
}

// Logger returns the application logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Templates returns the application's template registry.
func (a *App) Templates() *rendering.Registry {
	return a.templates
}
