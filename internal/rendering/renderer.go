package rendering

import (
	"fmt"
	"io"

	"github.com/labstack/echo/v4"
)

// Renderer implements the echo.Renderer interface using the template
// registry, so handlers can render theme-namespaced templates by name.
type Renderer struct {
	registry *Registry
}

// NewRenderer creates a new renderer instance.
func NewRenderer(registry *Registry) *Renderer {
	return &Renderer{registry: registry}
}

// Render looks up a template by name in the registry and executes it.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	tmpl, ok := r.registry.Get(name)
	if !ok {
		return fmt.Errorf("template not found: %s", name)
	}

	return tmpl.Execute(w, data)
}
