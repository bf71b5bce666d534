package assets

import (
	"fmt"
	"sort"
	"sync"
)

// RegisterError is returned when a bundle name is already bound to a
// different bundle. A genuine collision indicates a caller bug and is
// never swallowed.
type RegisterError struct {
	Name string
}

func (e *RegisterError) Error() string {
	return fmt.Sprintf("assets: bundle name %q is already registered with different contents", e.Name)
}

// Registrar is the surface asset-registering subsystems need from an
// asset environment: membership testing and registration.
type Registrar interface {
	Contains(name string) bool
	Register(name string, bundle *Bundle) error
}

// Environment is the shared registry of asset bundles for one
// application. It is bound to the application's template registry so a
// single instance is reused by everything that registers assets.
type Environment struct {
	mu      sync.RWMutex
	bundles map[string]*Bundle
}

// NewEnvironment creates an empty asset environment.
func NewEnvironment() *Environment {
	return &Environment{
		bundles: make(map[string]*Bundle),
	}
}

// Contains reports whether a bundle is registered under name.
func (e *Environment) Contains(name string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()

	_, ok := e.bundles[name]
	return ok
}

// Register binds a bundle to a name. Registering an equal bundle under
// an existing name is a no-op; a different bundle under an existing
// name returns a *RegisterError.
func (e *Environment) Register(name string, bundle *Bundle) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if existing, ok := e.bundles[name]; ok {
		if existing.Equal(bundle) {
			return nil
		}
		return &RegisterError{Name: name}
	}

	e.bundles[name] = bundle
	return nil
}

// Bundle retrieves a registered bundle by name.
func (e *Environment) Bundle(name string) (*Bundle, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	b, ok := e.bundles[name]
	return b, ok
}

// Names returns all registered bundle names in sorted order.
func (e *Environment) Names() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	names := make([]string, 0, len(e.bundles))
	for name := range e.bundles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
