// Package server serves the site: the page routes, the contact wizard, static
// assets, health and metrics endpoints and, in development, live reload.
package server

import (
	"context"
	"errors"
	"io/fs"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/fusionprintdesign/fusionsite/internal/assets"
	"github.com/fusionprintdesign/fusionsite/internal/config"
	siteerrors "github.com/fusionprintdesign/fusionsite/internal/errors"
	"github.com/fusionprintdesign/fusionsite/internal/logging"
	"github.com/fusionprintdesign/fusionsite/internal/pages"
	"github.com/fusionprintdesign/fusionsite/internal/quote"
	"github.com/fusionprintdesign/fusionsite/internal/session"
	"github.com/fusionprintdesign/fusionsite/internal/watcher"
)

const watchDebounce = 300 * time.Millisecond

// Options overrides the collaborators New would otherwise build from the
// configuration.
type Options struct {
	Store  session.Store
	Sink   quote.Sink
	Assets fs.FS
	// Now stamps submitted quote requests. Defaults to time.Now.
	Now func() time.Time
}

// Server is the site's HTTP server.
type Server struct {
	cfg      *config.Config
	logger   logging.Logger
	store    session.Store
	sink     quote.Sink
	assets   fs.FS
	cookie   session.CookieConfig
	registry *prometheus.Registry
	metrics  *siteMetrics
	hub      *reloadHub
	handler  http.Handler
	motion   []byte
	now      func() time.Time

	serverMutex sync.RWMutex
	httpServer  *http.Server
	stopWatcher func()

	// ownStore and ownSink mark collaborators New created.
	ownStore bool
	ownSink  bool

	shutdownOnce sync.Once
	shutdownErr  error
	closed       chan struct{}
}

// New wires a server from cfg. Collaborators missing from opts are created
// here and owned by the server, which closes them on Shutdown. A Store or
// Sink passed in opts stays open and remains the caller's to close.
func New(cfg *config.Config, logger logging.Logger, opts Options) (*Server, error) {
	logger = logger.WithComponent("server")

	s := &Server{
		cfg:      cfg,
		logger:   logger,
		store:    opts.Store,
		sink:     opts.Sink,
		assets:   opts.Assets,
		now:      opts.Now,
		registry: prometheus.NewRegistry(),
		motion:   assets.Motion(),
		closed:   make(chan struct{}),
		cookie: session.CookieConfig{
			Name:   cfg.Session.CookieName,
			TTL:    cfg.Session.TTL,
			Secure: cfg.Session.SecureCookie,
		},
	}

	if s.store == nil {
		s.store = session.NewMemoryStore(session.Config{
			TTL:             cfg.Session.TTL,
			CleanupInterval: cfg.Session.CleanupInterval,
			MaxEntries:      cfg.Session.MaxEntries,
		}, pages.NewWizard, logger)
		s.ownStore = true
	}
	if s.sink == nil {
		sink, err := quote.NewSink(cfg, logger)
		if err != nil {
			if s.ownStore {
				_ = s.store.Close()
			}

			return nil, err
		}
		s.sink = sink
		s.ownSink = true
	}
	if s.assets == nil {
		s.assets = assets.FS(cfg.Site.StaticDir)
	}
	if s.now == nil {
		s.now = time.Now
	}

	registerRuntimeCollectors(s.registry)
	s.metrics = newSiteMetrics(s.registry, func() float64 { return float64(s.store.Len()) })

	if cfg.Development.LiveReload {
		s.hub = newReloadHub(logger)
	}

	s.handler = s.routes()

	return s, nil
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start listens on the configured address and serves until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr())
	if err != nil {
		return siteerrors.NewNetworkError("SERVER_LISTEN", "failed to listen", err).
			WithContext("addr", s.cfg.Addr())
	}

	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled or Shutdown is
// called, then shuts down gracefully within server.shutdown_timeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: s.cfg.Server.ReadHeaderTimeout,
	}

	s.serverMutex.Lock()
	s.httpServer = srv
	s.serverMutex.Unlock()

	g, gctx := errgroup.WithContext(ctx)

	if s.hub != nil {
		if err := s.startWatcher(gctx); err != nil {
			s.logger.Warn(ctx, err, "live reload watcher not started")
		}
	}

	g.Go(func() error {
		s.logger.Info(ctx, "server listening",
			"addr", ln.Addr().String(),
			"environment", s.cfg.Server.Environment,
			"live_reload", s.hub != nil)

		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return siteerrors.NewNetworkError("SERVER_SERVE", "server stopped unexpectedly", err)
		}

		return nil
	})

	g.Go(func() error {
		select {
		case <-s.closed:
			return nil
		case <-gctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
		defer cancel()

		return s.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func (s *Server) startWatcher(ctx context.Context) error {
	fw, err := watcher.NewFileWatcher(watchDebounce, s.logger)
	if err != nil {
		return err
	}

	fw.AddFilter(watcher.AssetFilter)
	fw.AddFilter(watcher.NoHiddenFilter)
	fw.AddFilter(watcher.NoGitFilter)
	fw.AddHandler(s.hub.handleChanges)

	for _, path := range s.cfg.Development.WatchPaths {
		if err := fw.AddRecursive(path); err != nil {
			s.logger.Warn(ctx, err, "failed to watch path", "path", path)
		}
	}

	watchCtx, cancel := context.WithCancel(ctx)
	if err := fw.Start(watchCtx); err != nil {
		cancel()
		fw.Stop()

		return err
	}

	s.serverMutex.Lock()
	s.stopWatcher = func() {
		cancel()
		fw.Stop()
	}
	s.serverMutex.Unlock()

	return nil
}

// Shutdown stops the HTTP server, the watcher and the live reload hub, then
// closes the session store and quote sink. It is safe to call more than once.
func (s *Server) Shutdown(ctx context.Context) error {
	s.shutdownOnce.Do(func() {
		s.logger.Info(ctx, "shutting down server")
		close(s.closed)

		s.serverMutex.RLock()
		srv := s.httpServer
		stopWatcher := s.stopWatcher
		s.serverMutex.RUnlock()

		var errs []error
		if srv != nil {
			errs = append(errs, srv.Shutdown(ctx))
		}
		if stopWatcher != nil {
			stopWatcher()
		}
		if s.hub != nil {
			s.hub.Close()
		}
		if s.ownStore {
			errs = append(errs, s.store.Close())
		}
		if s.ownSink {
			errs = append(errs, s.sink.Close())
		}

		s.shutdownErr = errors.Join(errs...)
	})

	return s.shutdownErr
}
