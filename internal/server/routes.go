package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/fusionprintdesign/fusionsite/internal/assets"
	"github.com/fusionprintdesign/fusionsite/internal/pages"
	"github.com/fusionprintdesign/fusionsite/internal/server/middleware"
)

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()

	stack := middleware.StackConfig{
		Logger:         s.logger,
		CSP:            middleware.DefaultCSP,
		AllowedOrigins: s.cfg.Server.AllowedOrigins,
	}
	if s.cfg.Metrics.Enabled {
		stack.Registerer = s.registry
	}
	middleware.ApplyStack(r, stack)
	r.Use(chimw.StripSlashes)

	for _, route := range pages.Routes() {
		if route.Path == "/contact" {
			continue
		}
		r.Get(route.Path, s.handlePage(route))
	}
	r.Get("/contact", s.handleContact)

	r.Group(func(r chi.Router) {
		// zero disables limiting
		if s.cfg.Contact.RequestsPerMin > 0 {
			r.Use(middleware.RateLimit(middleware.RateLimitConfig{
				RequestLimit: s.cfg.Contact.RequestsPerMin,
				WindowSize:   time.Minute,
			}))
		}
		r.Post("/contact", s.handleContactPost)
		r.Post("/contact/services/toggle", s.handleServiceToggle)
	})

	r.Get("/static/"+assets.MotionStylesheet, s.handleMotionCSS)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(s.assets))))

	r.Get("/healthz", s.handleHealth)
	if s.cfg.Metrics.Enabled {
		r.Handle(s.cfg.Metrics.Path, metricsHandler(s.registry))
	}
	if s.hub != nil {
		r.Handle("/livereload", s.hub)
	}

	r.NotFound(s.handleNotFound)

	return r
}
