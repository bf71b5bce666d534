package themes

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/nfrund/veneer/internal/assets"
	"github.com/nfrund/veneer/internal/theme"
)

// extensionFilters pairs each asset extension with the minification
// filter its bundles are registered under. Order matters only for
// stable log output.
var extensionFilters = []struct {
	Ext    string
	Filter string
}{
	{".css", "cssmin"},
	{".js", "rjsmin"},
}

// Manager loads and stores all the themes for an application. It is the
// single owner of the theme registry; Refresh rebuilds the registry
// wholesale by invoking each loader in order.
//
// The Manager itself does no locking: it is designed for synchronous
// use during application startup or explicit administrative refreshes.
// Callers introducing concurrency (see Watcher) must serialize access.
type Manager struct {
	app        Application
	appID      string
	loaders    []Loader
	validAppID func(string) bool
	logEvents  bool
	deferLoad  bool
	assetEnv   assets.Registrar

	// themes is nil until the first refresh; Themes forces the
	// transition. After that, only Refresh replaces it.
	themes map[string]*theme.Theme
}

// Option configures a Manager.
type Option func(*Manager)

// WithLoaders replaces the default loaders (PackagedLoader then
// PathsLoader). Loaders run in the given order; themes from later
// loaders override earlier ones on identifier collision.
func WithLoaders(loaders ...Loader) Option {
	return func(m *Manager) {
		m.loaders = loaders
	}
}

// WithValidator replaces the application-identifier check applied to
// each candidate theme. The default accepts themes whose declared
// application equals the manager's app id; supply a custom predicate
// for prefix or set-membership policies.
func WithValidator(valid func(appID string) bool) Option {
	return func(m *Manager) {
		m.validAppID = valid
	}
}

// WithLogging enables or disables logging of refresh and bundle
// registration events. Enabled by default.
func WithLogging(enabled bool) Option {
	return func(m *Manager) {
		m.logEvents = enabled
	}
}

// WithDeferredRefresh skips the refresh normally performed during
// construction; the first call to Themes (or an explicit Refresh) scans
// instead. Intended for administrative tooling that constructs a
// manager without necessarily reading the registry.
func WithDeferredRefresh() Option {
	return func(m *Manager) {
		m.deferLoad = true
	}
}

// New creates a Manager bound to the given application and performs the
// initial Refresh, so a successfully constructed manager always holds a
// populated registry. The one construction failure mode is an asset
// bundle name collision, which propagates from the initial refresh.
//
// The manager reuses the asset environment already bound to the
// application's template registry if there is one, and otherwise
// creates and binds a fresh environment.
func New(app Application, appID string, opts ...Option) (*Manager, error) {
	m := &Manager{
		app:       app,
		appID:     appID,
		logEvents: true,
	}
	for _, opt := range opts {
		opt(m)
	}

	if len(m.loaders) == 0 {
		m.loaders = []Loader{PackagedLoader, PathsLoader}
	}
	if m.validAppID == nil {
		m.validAppID = func(id string) bool { return id == m.appID }
	}

	if env := app.Templates().AssetEnv(); env != nil {
		m.assetEnv = env
	} else {
		m.assetEnv = assets.NewEnvironment()
		app.Templates().BindAssetEnv(m.assetEnv)
	}

	if !m.deferLoad {
		if err := m.Refresh(); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// AppID returns the application identifier the manager filters themes by.
func (m *Manager) AppID() string {
	return m.appID
}

// AssetEnv returns the shared asset environment the manager registers
// bundles with.
func (m *Manager) AssetEnv() assets.Registrar {
	return m.assetEnv
}

// Refresh rebuilds the theme registry from scratch. Loaders are invoked
// in the order they were given, so themes from later loaders override
// earlier ones with the same identifier. Themes declaring a different
// application identifier are skipped. After the rebuild, every theme's
// asset bundles are registered with the asset environment; a bundle
// name collision there is the only error.
func (m *Manager) Refresh() error {
	refreshID := uuid.NewString()

	registry := make(map[string]*theme.Theme)
	for _, load := range m.loaders {
		for t := range load(m.app) {
			if !m.validAppID(t.Application()) {
				continue
			}
			registry[t.Identifier()] = t
		}
	}
	m.themes = registry

	if m.logEvents {
		m.app.Logger().Info("theme registry refreshed",
			"refresh_id", refreshID, "themes", len(registry))
	}

	return m.registerAssets(refreshID)
}

// Themes returns the registry of loaded themes keyed by identifier,
// refreshing first if no refresh has happened yet. Repeated calls do
// not rescan.
func (m *Manager) Themes() (map[string]*theme.Theme, error) {
	if m.themes == nil {
		if err := m.Refresh(); err != nil {
			return nil, err
		}
	}
	return m.themes, nil
}

// Lookup returns the theme registered under identifier, if any.
func (m *Manager) Lookup(identifier string) (*theme.Theme, bool) {
	t, ok := m.themes[identifier]
	return t, ok
}

// ListThemes returns the loaded themes sorted by identifier, refreshing
// first if no refresh has happened yet. The slice is rebuilt on every
// call.
func (m *Manager) ListThemes() ([]*theme.Theme, error) {
	if _, err := m.Themes(); err != nil {
		return nil, err
	}
	return m.sortedThemes(), nil
}

func (m *Manager) sortedThemes() []*theme.Theme {
	list := make([]*theme.Theme, 0, len(m.themes))
	for _, t := range m.themes {
		list = append(list, t)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Identifier() < list[j].Identifier()
	})
	return list
}

// BindTemplates loads every registered theme's template overrides into
// the application's template registry, namespaced per theme.
func (m *Manager) BindTemplates() error {
	for _, t := range m.sortedThemes() {
		if err := m.app.Templates().AddThemeDir(m.app.Fs(), t.Identifier(), t.TemplatesPath()); err != nil {
			return fmt.Errorf("failed to load templates for theme %s: %w", t.Identifier(), err)
		}
	}
	return nil
}

// registerAssets walks the registry in identifier order and registers
// each theme's per-extension bundles with the asset environment. Bundle
// names already present are skipped, which makes re-registration across
// refreshes idempotent; an actual name collision propagates.
func (m *Manager) registerAssets(refreshID string) error {
	for _, t := range m.sortedThemes() {
		for _, ef := range extensionFilters {
			manifest, bundle := t.Bundle(ef.Ext, ef.Filter)
			if m.logEvents {
				m.app.Logger().Info(manifest, "refresh_id", refreshID)
			}
			if bundle == nil {
				continue
			}

			name := fmt.Sprintf("%s_%s", t.Identifier(), strings.TrimPrefix(ef.Ext, "."))
			if m.assetEnv.Contains(name) {
				continue
			}
			if err := m.assetEnv.Register(name, bundle); err != nil {
				return fmt.Errorf("failed to register bundle %s: %w", name, err)
			}
		}
	}
	return nil
}
