// Package export renders the site to a directory of static files.
package export

import (
	"bytes"
	"context"
	"encoding/xml"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/a-h/templ"
	"github.com/google/renameio/v2"
	"golang.org/x/sync/errgroup"

	"github.com/fusionprintdesign/fusionsite/internal/assets"
	siteerrors "github.com/fusionprintdesign/fusionsite/internal/errors"
	"github.com/fusionprintdesign/fusionsite/internal/logging"
	"github.com/fusionprintdesign/fusionsite/internal/pages"
)

// File kinds recorded in the manifest.
const (
	KindPage    = "page"
	KindAsset   = "asset"
	KindSitemap = "sitemap"
)

const renderWorkers = 4

// Options configures an export.
type Options struct {
	OutDir    string
	BaseURL   string
	Preloader bool
	// Assets are copied to <OutDir>/static. Defaults to the embedded files.
	Assets fs.FS
}

// File is one written file, its path relative to the output directory.
type File struct {
	Path  string `json:"path" yaml:"path"`
	Kind  string `json:"kind" yaml:"kind"`
	Bytes int64  `json:"bytes" yaml:"bytes"`
}

// Manifest lists everything an export wrote, sorted by path.
type Manifest struct {
	OutDir      string    `json:"out_dir" yaml:"out_dir"`
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`
	Files       []File    `json:"files" yaml:"files"`
}

// TotalBytes sums the sizes of all written files.
func (m *Manifest) TotalBytes() int64 {
	var n int64
	for _, f := range m.Files {
		n += f.Bytes
	}

	return n
}

// Count returns the number of files of the given kind.
func (m *Manifest) Count(kind string) int {
	n := 0
	for _, f := range m.Files {
		if f.Kind == kind {
			n++
		}
	}

	return n
}

// Exporter writes the rendered site to disk.
type Exporter struct {
	opts   Options
	logger logging.Logger
	now    func() time.Time

	mu    sync.Mutex
	files []File
}

// New creates an Exporter.
func New(opts Options, logger logging.Logger) *Exporter {
	if opts.Assets == nil {
		opts.Assets = assets.Embedded()
	}

	return &Exporter{
		opts:   opts,
		logger: logger.WithComponent("export"),
		now:    time.Now,
	}
}

// Export renders every route to <out>/<path>/index.html, copies the static
// assets, writes the motion stylesheet and a sitemap. Every file is replaced
// atomically, so a failed export never leaves a half-written page behind.
func (e *Exporter) Export(ctx context.Context) (*Manifest, error) {
	if strings.TrimSpace(e.opts.OutDir) == "" {
		return nil, siteerrors.NewConfigError("EXPORT_OUT_DIR", "output directory is required")
	}

	e.files = nil
	data := pages.Data{Preloader: e.opts.Preloader, BaseURL: e.opts.BaseURL}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(renderWorkers)

	for _, route := range pages.Routes() {
		g.Go(func() error {
			return e.writeComponent(gctx, PagePath(route.Path), pages.Render(route, data))
		})
	}
	g.Go(func() error {
		return e.writeComponent(gctx, "404.html", pages.NotFound("/404", data))
	})
	g.Go(func() error {
		return e.copyAssets(gctx)
	})
	g.Go(func() error {
		return e.write("static/"+assets.MotionStylesheet, KindAsset, assets.Motion())
	})
	g.Go(func() error {
		body, err := Sitemap(e.opts.BaseURL, pages.Routes(), e.now())
		if err != nil {
			return err
		}

		return e.write("sitemap.xml", KindSitemap, body)
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	m := &Manifest{OutDir: e.opts.OutDir, GeneratedAt: e.now().UTC(), Files: slices.Clone(e.files)}
	slices.SortFunc(m.Files, func(a, b File) int { return strings.Compare(a.Path, b.Path) })

	e.logger.Info(ctx, "site exported",
		"out_dir", e.opts.OutDir,
		"pages", m.Count(KindPage),
		"assets", m.Count(KindAsset),
		"bytes", m.TotalBytes())

	return m, nil
}

// PagePath maps a route path to the file serving it: "/" is index.html and
// "/services/printing" is services/printing/index.html.
func PagePath(route string) string {
	trimmed := strings.Trim(route, "/")
	if trimmed == "" {
		return "index.html"
	}

	return path.Join(trimmed, "index.html")
}

func (e *Exporter) writeComponent(ctx context.Context, rel string, c templ.Component) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := c.Render(ctx, &buf); err != nil {
		return siteerrors.NewInternalError("EXPORT_RENDER", "failed to render page", err).
			WithContext("path", rel)
	}

	return e.write(rel, KindPage, buf.Bytes())
}

func (e *Exporter) copyAssets(ctx context.Context) error {
	return fs.WalkDir(e.opts.Assets, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			if p != "." && strings.HasPrefix(d.Name(), ".") {
				return fs.SkipDir
			}

			return nil
		}
		if strings.HasPrefix(d.Name(), ".") {
			return nil
		}

		body, err := fs.ReadFile(e.opts.Assets, p)
		if err != nil {
			return siteerrors.NewIOError("EXPORT_READ_ASSET", "failed to read asset", err).
				WithContext("path", p)
		}

		return e.write(path.Join("static", p), KindAsset, body)
	})
}

func (e *Exporter) write(rel, kind string, body []byte) error {
	target := filepath.Join(e.opts.OutDir, filepath.FromSlash(rel))

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return siteerrors.NewIOError("EXPORT_MKDIR", "failed to create directory", err).
			WithContext("path", rel)
	}
	pending, err := renameio.NewPendingFile(target, renameio.WithPermissions(0o644))
	if err != nil {
		return siteerrors.NewIOError("EXPORT_WRITE", "failed to create pending file", err).
			WithContext("path", rel)
	}
	defer func() {
		// no-op once committed
		if err := pending.Cleanup(); err != nil {
			e.logger.Debug(context.Background(), "cleanup pending file", "path", rel, "error", err.Error())
		}
	}()

	if _, err := pending.Write(body); err != nil {
		return siteerrors.NewIOError("EXPORT_WRITE", "failed to write file", err).
			WithContext("path", rel)
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return siteerrors.NewIOError("EXPORT_WRITE", "failed to replace file", err).
			WithContext("path", rel)
	}

	e.mu.Lock()
	e.files = append(e.files, File{Path: rel, Kind: kind, Bytes: int64(len(body))})
	e.mu.Unlock()

	e.logger.Debug(context.Background(), "file written", "path", rel, "bytes", len(body))

	return nil
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc      string `xml:"loc"`
	LastMod  string `xml:"lastmod"`
	Priority string `xml:"priority"`
}

// Sitemap renders a sitemap.xml listing every route under baseURL.
func Sitemap(baseURL string, routes []pages.Route, at time.Time) ([]byte, error) {
	base := strings.TrimSuffix(baseURL, "/")
	if base == "" {
		return nil, siteerrors.NewConfigError("EXPORT_BASE_URL", "site.base_url is required for the sitemap")
	}

	set := urlSet{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, r := range routes {
		priority := "0.8"
		if r.Path == "/" {
			priority = "1.0"
		}
		set.URLs = append(set.URLs, sitemapURL{
			Loc:      base + r.Path,
			LastMod:  at.UTC().Format("2006-01-02"),
			Priority: priority,
		})
	}

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, siteerrors.NewInternalError("EXPORT_SITEMAP", "failed to encode sitemap", err)
	}

	return append([]byte(xml.Header), append(out, '\n')...), nil
}
