package metrics

import (
	"encoding/json"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/BaseMax/travel-planner-graphql/internal/health"
)

var (
	// GraphQL metrics

	GraphQLOperationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tripplanner",
		Name:      "graphql_operations_total",
		Help:      "Total GraphQL operations executed, by type and name.",
	}, []string{"type", "operation"})

	GraphQLOperationDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "tripplanner",
		Name:      "graphql_operation_duration_seconds",
		Help:      "GraphQL operation execution latency.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
	}, []string{"type", "operation"})

	GraphQLErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tripplanner",
		Name:      "graphql_errors_total",
		Help:      "Total GraphQL operations that answered with errors.",
	}, []string{"type", "operation"})

	// Event hub metrics

	EventsPublishedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tripplanner",
		Name:      "events_published_total",
		Help:      "Total trip mutation events published, by event name.",
	}, []string{"event"})

	SubscribersActive = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "tripplanner",
		Name:      "subscribers_active",
		Help:      "Number of open subscriptions.",
	})

	// Reminder metrics

	RemindersSentTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "tripplanner",
		Name:      "reminders_sent_total",
		Help:      "Total trip reminder emails sent.",
	})

	ReminderCycleDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "tripplanner",
		Name:      "reminder_cycle_duration_seconds",
		Help:      "Time taken for one reminder cycle.",
		Buckets:   prometheus.DefBuckets,
	})

	// HTTP metrics

	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "tripplanner",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tripplanner",
		Name:      "http_requests_total",
		Help:      "Total HTTP requests.",
	}, []string{"method", "path", "status"})
)

func Register() {
	prometheus.MustRegister(
		GraphQLOperationsTotal,
		GraphQLOperationDuration,
		GraphQLErrorsTotal,
		EventsPublishedTotal,
		SubscribersActive,
		RemindersSentTotal,
		ReminderCycleDuration,
		HTTPRequestDuration,
		HTTPRequestsTotal,
	)
}

// NewServer exposes Prometheus metrics plus liveness and readiness probes
// on a dedicated port.
func NewServer(addr string, checker *health.Checker) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, checker.Liveness(r.Context()))
	})
	mux.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) {
		result := checker.Readiness(r.Context())
		status := http.StatusOK
		if result.Status != "up" {
			status = http.StatusServiceUnavailable
		}
		writeJSON(w, status, result)
	})
	return &http.Server{Addr: addr, Handler: mux}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
