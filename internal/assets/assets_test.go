package assets

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbedded(t *testing.T) {
	for _, name := range []string{"site.css", "site.js", "favicon.svg"} {
		t.Run(name, func(t *testing.T) {
			data, err := fs.ReadFile(Embedded(), name)
			require.NoError(t, err)
			assert.NotEmpty(t, data)
		})
	}
}

func TestFSOverride(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "site.css"), []byte("body{}"), 0o600))

	data, err := fs.ReadFile(FS(dir), "site.css")
	require.NoError(t, err)
	assert.Equal(t, "body{}", string(data))

	_, err = fs.Stat(FS(""), "site.js")
	assert.NoError(t, err)
}

func TestMotion(t *testing.T) {
	css := string(Motion())
	assert.True(t, strings.Contains(css, `[data-animate="fade-in-up"]`))
	assert.Contains(t, css, "prefers-reduced-motion")
}
