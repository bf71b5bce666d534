// Package themes discovers themes on disk and maintains the registry of
// loaded themes for one application, registering each theme's static
// assets with the shared asset environment.
package themes

import (
	"iter"
	"log/slog"
	"path/filepath"

	"github.com/nfrund/veneer/internal/config"
	"github.com/nfrund/veneer/internal/rendering"
	"github.com/nfrund/veneer/internal/theme"
	"github.com/spf13/afero"
)

// packagedDir is the subdirectory of the application root that holds
// themes shipped with the application itself.
const packagedDir = "themes"

// Application is the slice of the host application the theme subsystem
// needs: a root path to find packaged themes under, a filesystem to
// scan, configuration for the search paths, a logger for registration
// events, and the template registry that carries the shared asset
// environment.
type Application interface {
	RootPath() string
	Fs() afero.Fs
	Config() *config.Config
	Logger() *slog.Logger
	Templates() *rendering.Registry
}

// Loader produces a lazy sequence of candidate themes from some source.
// The built-in loaders scan the packaged themes directory and the
// configured search paths; applications with another way to find themes
// supply their own.
type Loader func(app Application) iter.Seq[*theme.Theme]

// listDirs yields the names of the subdirectories of path, in
// enumeration order. A path that does not exist (or cannot be read)
// yields nothing.
func listDirs(fsys afero.Fs, path string) iter.Seq[string] {
	return func(yield func(string) bool) {
		entries, err := afero.ReadDir(fsys, path)
		if err != nil {
			return
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			if !yield(entry.Name()) {
				return
			}
		}
	}
}

// LoadThemesFrom yields every valid theme found directly under path.
// A subdirectory qualifies only if its name is a valid identifier, it
// loads as a theme, and the loaded theme's identifier matches the
// directory name. Candidates failing any of these checks are skipped;
// an unloadable directory is simply not a theme.
func LoadThemesFrom(fsys afero.Fs, path string) iter.Seq[*theme.Theme] {
	return func(yield func(*theme.Theme) bool) {
		for name := range listDirs(fsys, path) {
			if !theme.ValidIdentifier(name) {
				continue
			}

			t, err := theme.Load(fsys, filepath.Join(path, name))
			if err != nil {
				// Not a loadable theme; discard the error deliberately.
				continue
			}

			if t.Identifier() != name {
				continue
			}

			if !yield(t) {
				return
			}
		}
	}
}

// PackagedLoader finds themes shipped with the application, under the
// "themes" directory of the application root. A missing directory means
// no packaged themes.
func PackagedLoader(app Application) iter.Seq[*theme.Theme] {
	themesPath := filepath.Join(app.RootPath(), packagedDir)
	if exists, _ := afero.DirExists(app.Fs(), themesPath); !exists {
		return func(yield func(*theme.Theme) bool) {}
	}
	return LoadThemesFrom(app.Fs(), themesPath)
}

// PathsLoader finds themes in the directories named by the application's
// theme search path configuration, scanning each directory in the
// configured order.
func PathsLoader(app Application) iter.Seq[*theme.Theme] {
	paths := app.Config().ThemePaths
	return func(yield func(*theme.Theme) bool) {
		for _, path := range paths {
			for t := range LoadThemesFrom(app.Fs(), path) {
				if !yield(t) {
					return
				}
			}
		}
	}
}
