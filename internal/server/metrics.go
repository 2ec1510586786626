package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// siteMetrics are the wizard and quote counters exported next to the HTTP
// metrics of the middleware stack.
type siteMetrics struct {
	transitions *prometheus.CounterVec
	submissions *prometheus.CounterVec
	toggles     *prometheus.CounterVec
}

func newSiteMetrics(reg prometheus.Registerer, sessions func() float64) *siteMetrics {
	factory := promauto.With(reg)

	factory.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "fusionsite_sessions_active",
		Help: "Contact wizard sessions currently held in memory",
	}, sessions)

	return &siteMetrics{
		transitions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "fusionsite_wizard_transitions_total",
			Help: "Contact wizard form posts by action and outcome",
		}, []string{"action", "result"}),
		submissions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "fusionsite_quote_submissions_total",
			Help: "Quote requests handed to the sink by outcome",
		}, []string{"result"}),
		toggles: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "fusionsite_service_toggles_total",
			Help: "Service checkbox toggles by outcome",
		}, []string{"result"}),
	}
}

// registerRuntimeCollectors adds the Go runtime and process collectors.
func registerRuntimeCollectors(reg prometheus.Registerer) {
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

func metricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
}

func result(err error) string {
	if err != nil {
		return "error"
	}

	return "ok"
}
