// Package metrics exposes prometheus collectors for the game server.
// Labels are limited to action names, classes and outcomes so cardinality
// stays bounded no matter how many agents join.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

var (
	requestTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pokemonou_requests_total",
		Help: "Agent requests handled, by action and outcome",
	}, []string{"action", "outcome"})

	requestLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pokemonou_request_duration_seconds",
		Help:    "Time spent handling an agent request",
		Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
	}, []string{"action"})

	agentsRegistered = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "pokemonou_agents_registered",
		Help: "Registered agents by class",
	}, []string{"class"})

	capturesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pokemonou_captures_total",
		Help: "Successful captures",
	})

	movesRejected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pokemonou_moves_rejected_total",
		Help: "Moves refused because the target cell held the same class",
	})

	connectionsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "pokemonou_connections_active",
		Help: "Open agent connections",
	})

	rateLimited = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pokemonou_rate_limited_total",
		Help: "Agent requests delayed by the per-connection limiter",
	})
)

func RecordRequest(action string, duration time.Duration, err error) {
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}

	requestTotal.WithLabelValues(action, outcome).Inc()
	requestLatency.WithLabelValues(action).Observe(duration.Seconds())
}

func AgentRegistered(class string) {
	agentsRegistered.WithLabelValues(class).Inc()
}

func CaptureRecorded() {
	capturesTotal.Inc()
}

func MoveRejected() {
	movesRejected.Inc()
}

func ConnectionOpened() {
	connectionsActive.Inc()
}

func ConnectionClosed() {
	connectionsActive.Dec()
}

func RateLimited() {
	rateLimited.Inc()
}

func Handler() http.Handler {
	return promhttp.Handler()
}
