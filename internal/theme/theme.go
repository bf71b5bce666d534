// Package theme models a single theme on disk: a directory holding an
// info.yaml metadata file, template overrides under templates/, and
// static assets under static/.
package theme

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/nfrund/veneer/internal/assets"
	"github.com/spf13/afero"
)

const (
	infoFilename = "info.yaml"
	staticDir    = "static"
	templatesDir = "templates"
)

// Theme is a loaded theme. Construct one with Load.
type Theme struct {
	Info Info

	fs   afero.Fs
	path string
}

// Load constructs a Theme from a directory. It fails if the directory
// has no readable info.yaml or the metadata is invalid; loaders treat
// any load failure as "not a theme" and move on.
func Load(fsys afero.Fs, dir string) (*Theme, error) {
	data, err := afero.ReadFile(fsys, filepath.Join(dir, infoFilename))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s in %s: %w", infoFilename, dir, err)
	}

	info, err := ParseInfo(data)
	if err != nil {
		return nil, fmt.Errorf("theme at %s: %w", dir, err)
	}

	return &Theme{
		Info: *info,
		fs:   fsys,
		path: dir,
	}, nil
}

// Identifier returns the theme's unique name.
func (t *Theme) Identifier() string {
	return t.Info.Identifier
}

// Application returns the host application identifier the theme targets.
func (t *Theme) Application() string {
	return t.Info.Application
}

// Path returns the theme's directory.
func (t *Theme) Path() string {
	return t.path
}

// StaticPath returns the directory holding the theme's static assets.
func (t *Theme) StaticPath() string {
	return filepath.Join(t.path, staticDir)
}

// TemplatesPath returns the directory holding the theme's template
// overrides.
func (t *Theme) TemplatesPath() string {
	return filepath.Join(t.path, templatesDir)
}

// StaticFile resolves a path relative to the theme's static directory.
// It rejects paths that escape the directory.
func (t *Theme) StaticFile(relpath string) (string, error) {
	cleaned := path.Clean("/" + filepath.ToSlash(relpath))
	if cleaned == "/" {
		return "", fmt.Errorf("empty static file path")
	}
	return filepath.Join(t.StaticPath(), filepath.FromSlash(cleaned)), nil
}

// Bundle collects the theme's static assets with the given extension
// (e.g. ".css") into an asset bundle carrying the given filter name.
// It returns a manifest entry describing the result and the bundle, or
// nil when the theme has no assets of that extension. The manifest
// entry is produced either way.
func (t *Theme) Bundle(ext, filter string) (string, *assets.Bundle) {
	var files []string

	static := t.StaticPath()
	if exists, _ := afero.DirExists(t.fs, static); exists {
		afero.Walk(t.fs, static, func(p string, info os.FileInfo, err error) error {
			if err != nil || info.IsDir() {
				return nil
			}
			if strings.EqualFold(filepath.Ext(p), ext) {
				rel, relErr := filepath.Rel(static, p)
				if relErr != nil {
					return nil
				}
				files = append(files, filepath.ToSlash(rel))
			}
			return nil
		})
	}
	sort.Strings(files)

	manifest := fmt.Sprintf("theme %s: %d %s asset(s), filter %s",
		t.Identifier(), len(files), strings.TrimPrefix(ext, "."), filter)

	if len(files) == 0 {
		return manifest, nil
	}

	suffix := strings.TrimPrefix(ext, ".")
	return manifest, &assets.Bundle{
		Contents: files,
		Filters:  filter,
		Output:   fmt.Sprintf("gen/%s_%s.min.%s", t.Identifier(), suffix, suffix),
	}
}
