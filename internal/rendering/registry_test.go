package rendering

import (
	"strings"
	"testing"

	"github.com/nfrund/veneer/internal/assets"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_AddThemeDir(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/themes/winter/templates/layouts/base.html",
		[]byte("<title>{{.Title}}</title>"), 0644))
	require.NoError(t, afero.WriteFile(fsys, "/themes/winter/templates/notes.txt",
		[]byte("not a template"), 0644))

	reg := NewRegistry()
	require.NoError(t, reg.AddThemeDir(fsys, "winter", "/themes/winter/templates"))

	t.Run("templates are namespaced per theme", func(t *testing.T) {
		tmpl, ok := reg.Get("_themes/winter/layouts/base.html")
		require.True(t, ok)

		var sb strings.Builder
		require.NoError(t, tmpl.Execute(&sb, map[string]string{"Title": "hello"}))
		assert.Equal(t, "<title>hello</title>", sb.String())
	})

	t.Run("non-html files are not registered", func(t *testing.T) {
		_, ok := reg.Get("_themes/winter/notes.txt")
		assert.False(t, ok)
	})

	t.Run("missing directory is not an error", func(t *testing.T) {
		assert.NoError(t, reg.AddThemeDir(fsys, "ghost", "/themes/ghost/templates"))
	})
}

func TestRegistry_AssetEnvBinding(t *testing.T) {
	reg := NewRegistry()
	assert.Nil(t, reg.AssetEnv())

	env := assets.NewEnvironment()
	reg.BindAssetEnv(env)
	assert.Same(t, env, reg.AssetEnv())
}

func TestRenderer_Render(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/themes/winter/templates/hello.html",
		[]byte("hello {{.}}"), 0644))

	reg := NewRegistry()
	require.NoError(t, reg.AddThemeDir(fsys, "winter", "/themes/winter/templates"))
	renderer := NewRenderer(reg)

	t.Run("renders a registered template", func(t *testing.T) {
		var sb strings.Builder
		require.NoError(t, renderer.Render(&sb, "_themes/winter/hello.html", "world", nil))
		assert.Equal(t, "hello world", sb.String())
	})

	t.Run("unknown template is an error", func(t *testing.T) {
		var sb strings.Builder
		assert.Error(t, renderer.Render(&sb, "missing.html", nil, nil))
	})
}
