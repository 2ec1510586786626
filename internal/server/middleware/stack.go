// Package middleware holds the HTTP ingress stack shared by every route:
// panic recovery, request ids, security headers, same-origin checks for
// state-changing requests, Prometheus metrics, request logging and per-IP
// rate limits.
package middleware

import (
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/fusionprintdesign/fusionsite/internal/logging"
)

// StackConfig configures the ingress middleware stack.
type StackConfig struct {
	Logger logging.Logger

	// Security headers
	CSP string

	// Origins accepted on POST besides the request's own origin.
	AllowedOrigins []string

	// Registerer receives the HTTP metrics; nil disables them.
	Registerer prometheus.Registerer
}

// ApplyStack applies the middleware stack to r in order.
func ApplyStack(r chi.Router, cfg StackConfig) {
	// 1. Recoverer (outermost safety net)
	r.Use(Recoverer(cfg.Logger))
	// 2. RequestID (correlation early)
	r.Use(RequestID)
	// 3. Security headers
	r.Use(SecurityHeaders(cfg.CSP))
	// 4. Same-origin check for state-changing methods
	r.Use(CSRFProtection(cfg.AllowedOrigins))
	// 5. Metrics
	if cfg.Registerer != nil {
		r.Use(Metrics(cfg.Registerer))
	}
	// 6. Logging
	r.Use(RequestLogger(cfg.Logger))
}
