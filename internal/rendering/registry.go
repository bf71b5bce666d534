package rendering

import (
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/nfrund/veneer/internal/assets"
	"github.com/spf13/afero"
)

// themeNamespace prefixes every theme-provided template so overrides
// never shadow an application template by accident.
const themeNamespace = "_themes"

// Registry holds all parsed templates for the application, including
// per-theme overrides. It also carries the asset environment shared by
// everything that registers static assets, so a single environment is
// reused across subsystems.
type Registry struct {
	mu        sync.RWMutex
	templates *template.Template
	assetEnv  assets.Registrar
}

// NewRegistry creates an empty template registry.
func NewRegistry() *Registry {
	return &Registry{
		templates: template.New("").Funcs(template.FuncMap{
			// Add global template functions here if needed.
		}),
	}
}

// AssetEnv returns the asset environment bound to this registry, or nil
// if none has been bound yet.
func (r *Registry) AssetEnv() assets.Registrar {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.assetEnv
}

// BindAssetEnv attaches an asset environment to the registry. Rebinding
// replaces the previous environment.
func (r *Registry) BindAssetEnv(env assets.Registrar) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.assetEnv = env
}

// AddFS parses all templates matching the patterns from the given
// filesystem into the base template set.
func (r *Registry) AddFS(templateFS fs.FS, patterns ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tmpl, err := r.templates.ParseFS(templateFS, patterns...)
	if err != nil {
		return err
	}
	r.templates = tmpl
	return nil
}

// AddThemeDir loads every .html template below dir into the registry,
// namespaced as "_themes/<namespace>/<relative path>". A missing dir is
// not an error; themes are not required to override templates.
func (r *Registry) AddThemeDir(fsys afero.Fs, namespace, dir string) error {
	exists, err := afero.DirExists(fsys, dir)
	if err != nil {
		return fmt.Errorf("failed to check theme templates dir %s: %w", dir, err)
	}
	if !exists {
		slog.Debug("no templates directory found in theme, skipping", "theme", namespace)
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return afero.Walk(fsys, dir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() || !strings.HasSuffix(path, ".html") {
			return err
		}

		content, err := afero.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("could not read theme template %s: %w", path, err)
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}

		// e.g. "_themes/winter/layouts/base.html"
		templateName := filepath.ToSlash(filepath.Join(themeNamespace, namespace, rel))
		slog.Debug("Registering theme template", "name", templateName)

		_, err = r.templates.New(templateName).Parse(string(content))
		return err
	})
}

// Get retrieves a specific template definition by its name.
func (r *Registry) Get(name string) (*template.Template, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tmpl := r.templates.Lookup(name)
	return tmpl, tmpl != nil
}
