package theme

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTheme lays out a theme directory on the in-memory filesystem.
func writeTheme(t *testing.T, fsys afero.Fs, dir, identifier, application string, files map[string]string) {
	t.Helper()

	info := fmt.Sprintf("application: %s\nidentifier: %s\nname: %s theme\nversion: 1.0.0\n",
		application, identifier, identifier)
	require.NoError(t, fsys.MkdirAll(dir, 0755))
	require.NoError(t, afero.WriteFile(fsys, filepath.Join(dir, "info.yaml"), []byte(info), 0644))

	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, fsys.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, afero.WriteFile(fsys, path, []byte(content), 0644))
	}
}

func TestLoad(t *testing.T) {
	t.Run("loads a valid theme", func(t *testing.T) {
		fsys := afero.NewMemMapFs()
		writeTheme(t, fsys, "/themes/winter", "winter", "shop", nil)

		th, err := Load(fsys, "/themes/winter")
		require.NoError(t, err)
		assert.Equal(t, "winter", th.Identifier())
		assert.Equal(t, "shop", th.Application())
		assert.Equal(t, "winter theme", th.Info.Name)
		assert.Equal(t, "/themes/winter", th.Path())
	})

	t.Run("fails without info.yaml", func(t *testing.T) {
		fsys := afero.NewMemMapFs()
		require.NoError(t, fsys.MkdirAll("/themes/empty", 0755))

		_, err := Load(fsys, "/themes/empty")
		assert.Error(t, err)
	})

	t.Run("fails on malformed yaml", func(t *testing.T) {
		fsys := afero.NewMemMapFs()
		require.NoError(t, fsys.MkdirAll("/themes/broken", 0755))
		require.NoError(t, afero.WriteFile(fsys, "/themes/broken/info.yaml", []byte("{not yaml"), 0644))

		_, err := Load(fsys, "/themes/broken")
		assert.Error(t, err)
	})

	t.Run("fails when required metadata is missing", func(t *testing.T) {
		fsys := afero.NewMemMapFs()
		require.NoError(t, fsys.MkdirAll("/themes/anon", 0755))
		// No name, no application.
		require.NoError(t, afero.WriteFile(fsys, "/themes/anon/info.yaml", []byte("identifier: anon\n"), 0644))

		_, err := Load(fsys, "/themes/anon")
		assert.Error(t, err)
	})

	t.Run("fails on a malformed identifier", func(t *testing.T) {
		fsys := afero.NewMemMapFs()
		info := "application: shop\nidentifier: bad-name\nname: Bad\n"
		require.NoError(t, fsys.MkdirAll("/themes/bad", 0755))
		require.NoError(t, afero.WriteFile(fsys, "/themes/bad/info.yaml", []byte(info), 0644))

		_, err := Load(fsys, "/themes/bad")
		assert.Error(t, err)
	})
}

func TestValidIdentifier(t *testing.T) {
	valid := []string{"winter", "Winter", "_private", "theme2", "a_b_c"}
	invalid := []string{"", "2fast", "bad-name", "with space", "dot.name", "é"}

	for _, name := range valid {
		assert.True(t, ValidIdentifier(name), name)
	}
	for _, name := range invalid {
		assert.False(t, ValidIdentifier(name), name)
	}
}

func TestTheme_Bundle(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeTheme(t, fsys, "/themes/winter", "winter", "shop", map[string]string{
		"static/css/print.css": "body{}",
		"static/main.css":      "body{}",
		"static/app.js":        "void 0;",
		"static/notes.txt":     "not an asset",
	})

	th, err := Load(fsys, "/themes/winter")
	require.NoError(t, err)

	t.Run("collects matching assets sorted", func(t *testing.T) {
		manifest, bundle := th.Bundle(".css", "cssmin")
		require.NotNil(t, bundle)
		assert.Equal(t, []string{"css/print.css", "main.css"}, bundle.Contents)
		assert.Equal(t, "cssmin", bundle.Filters)
		assert.Equal(t, "gen/winter_css.min.css", bundle.Output)
		assert.Contains(t, manifest, "winter")
		assert.Contains(t, manifest, "2")
	})

	t.Run("js assets get their own bundle", func(t *testing.T) {
		_, bundle := th.Bundle(".js", "rjsmin")
		require.NotNil(t, bundle)
		assert.Equal(t, []string{"app.js"}, bundle.Contents)
		assert.Equal(t, "gen/winter_js.min.js", bundle.Output)
	})

	t.Run("no matching assets still yields a manifest entry", func(t *testing.T) {
		manifest, bundle := th.Bundle(".scss", "sass")
		assert.Nil(t, bundle)
		assert.Contains(t, manifest, "0")
	})

	t.Run("missing static directory yields no bundle", func(t *testing.T) {
		bare := afero.NewMemMapFs()
		writeTheme(t, bare, "/themes/plain", "plain", "shop", nil)

		th, err := Load(bare, "/themes/plain")
		require.NoError(t, err)

		manifest, bundle := th.Bundle(".css", "cssmin")
		assert.Nil(t, bundle)
		assert.NotEmpty(t, manifest)
	})
}

func TestTheme_StaticFile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeTheme(t, fsys, "/themes/winter", "winter", "shop", map[string]string{
		"static/main.css": "body{}",
	})

	th, err := Load(fsys, "/themes/winter")
	require.NoError(t, err)

	t.Run("resolves inside the static dir", func(t *testing.T) {
		path, err := th.StaticFile("main.css")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join("/themes/winter/static", "main.css"), path)
	})

	t.Run("cleans traversal attempts", func(t *testing.T) {
		path, err := th.StaticFile("../../../etc/passwd")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join("/themes/winter/static", "etc", "passwd"), path)
	})

	t.Run("rejects an empty path", func(t *testing.T) {
		_, err := th.StaticFile(".")
		assert.Error(t, err)
	})
}
