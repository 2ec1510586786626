package export

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fusionprintdesign/fusionsite/internal/logging"
	"github.com/fusionprintdesign/fusionsite/internal/pages"
)

func TestPagePath(t *testing.T) {
	testCases := map[string]string{
		"/":                  "index.html",
		"/about":             "about/index.html",
		"/services/printing": "services/printing/index.html",
		"/contact/":          "contact/index.html",
	}

	for route, expected := range testCases {
		assert.Equal(t, expected, PagePath(route), route)
	}
}

func TestExport(t *testing.T) {
	out := t.TempDir()
	exporter := New(Options{OutDir: out, BaseURL: "https://fusionprint.example/"}, logging.Nop())
	exporter.now = func() time.Time { return time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC) }

	m, err := exporter.Export(context.Background())
	require.NoError(t, err)

	assert.Equal(t, len(pages.Routes())+1, m.Count(KindPage))
	assert.Equal(t, 1, m.Count(KindSitemap))
	assert.GreaterOrEqual(t, m.Count(KindAsset), 4)
	assert.IsIncreasing(t, paths(m))

	for _, f := range m.Files {
		info, err := os.Stat(filepath.Join(out, filepath.FromSlash(f.Path)))
		require.NoError(t, err, f.Path)
		assert.Equal(t, f.Bytes, info.Size(), f.Path)
	}
	assert.Positive(t, m.TotalBytes())

	page, err := os.ReadFile(filepath.Join(out, "services", "printing", "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(page), `<link rel="canonical" href="https://fusionprint.example/services/printing">`)

	motion, err := os.ReadFile(filepath.Join(out, "static", "motion.css"))
	require.NoError(t, err)
	assert.Contains(t, string(motion), "data-animate")

	sitemap, err := os.ReadFile(filepath.Join(out, "sitemap.xml"))
	require.NoError(t, err)
	assert.Contains(t, string(sitemap), "<loc>https://fusionprint.example/</loc>")
	assert.Contains(t, string(sitemap), "<loc>https://fusionprint.example/services/design</loc>")
	assert.Contains(t, string(sitemap), "<lastmod>2026-05-01</lastmod>")
}

func TestExportCustomAssets(t *testing.T) {
	out := t.TempDir()
	assets := fstest.MapFS{
		"site.css":     {Data: []byte("body{}")},
		"img/logo.svg": {Data: []byte("<svg/>")},
		".hidden":      {Data: []byte("secret")},
		".git/HEAD":    {Data: []byte("ref")},
	}

	m, err := New(Options{OutDir: out, BaseURL: "http://localhost:8080", Assets: assets}, logging.Nop()).
		Export(context.Background())
	require.NoError(t, err)

	assert.Contains(t, paths(m), "static/img/logo.svg")
	assert.NotContains(t, paths(m), "static/.hidden")
	assert.NoFileExists(t, filepath.Join(out, "static", ".git", "HEAD"))
}

func TestExportOverwrites(t *testing.T) {
	out := t.TempDir()
	target := filepath.Join(out, "index.html")
	require.NoError(t, os.WriteFile(target, []byte("stale"), 0o600))

	_, err := New(Options{OutDir: out, BaseURL: "http://localhost:8080"}, logging.Nop()).Export(context.Background())
	require.NoError(t, err)

	body, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(body), "<!doctype html>"))
}

func TestExportErrors(t *testing.T) {
	_, err := New(Options{}, logging.Nop()).Export(context.Background())
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = New(Options{OutDir: t.TempDir(), BaseURL: "http://localhost:8080"}, logging.Nop()).Export(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = Sitemap("", pages.Routes(), time.Now())
	assert.Error(t, err)
}

func paths(m *Manifest) []string {
	out := make([]string, 0, len(m.Files))
	for _, f := range m.Files {
		out = append(out, f.Path)
	}

	return out
}
