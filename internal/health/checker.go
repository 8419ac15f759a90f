package health

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const checkTimeout = 2 * time.Second

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// CheckFunc probes one dependency. A nil error means reachable.
type CheckFunc func(ctx context.Context) error

// CheckResult represents the health of a single dependency.
type CheckResult struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// HealthResult is the top-level health response.
type HealthResult struct {
	Status string                 `json:"status"`
	Checks map[string]CheckResult `json:"checks,omitempty"`
}

// Checker runs registered dependency probes and reports per-check status.
type Checker struct {
	logger *slog.Logger
	gauge  *prometheus.GaugeVec

	mu     sync.RWMutex
	checks map[string]CheckFunc
}

// NewChecker creates a health checker with the database registered as its
// "postgres" dependency, and registers the readiness gauge.
func NewChecker(db Pinger, logger *slog.Logger, reg prometheus.Registerer) *Checker {
	gauge := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "tripplanner",
		Name:      "health_check_up",
		Help:      "Whether a dependency is reachable. 1 = up, 0 = down.",
	}, []string{"dependency"})
	reg.MustRegister(gauge)

	c := &Checker{
		logger: logger.With("component", "health"),
		gauge:  gauge,
		checks: make(map[string]CheckFunc),
	}
	c.Register("postgres", db.Ping)
	return c
}

// Register adds a named dependency probe to readiness checks.
func (c *Checker) Register(name string, fn CheckFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.checks[name] = fn
}

// Liveness returns a simple "up" response if the process is running.
func (c *Checker) Liveness(_ context.Context) HealthResult {
	return HealthResult{Status: "up"}
}

// Readiness probes every registered dependency. Any failure turns the
// top-level status to "down".
func (c *Checker) Readiness(ctx context.Context) HealthResult {
	checkCtx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	c.mu.RLock()
	names := make([]string, 0, len(c.checks))
	for name := range c.checks {
		names = append(names, name)
	}
	sort.Strings(names)
	fns := make([]CheckFunc, len(names))
	for i, name := range names {
		fns[i] = c.checks[name]
	}
	c.mu.RUnlock()

	result := HealthResult{
		Status: "up",
		Checks: make(map[string]CheckResult, len(names)),
	}

	for i, name := range names {
		if err := fns[i](checkCtx); err != nil {
			c.logger.Warn("health check failed", "dependency", name, "error", err)
			result.Status = "down"
			result.Checks[name] = CheckResult{Status: "down", Error: err.Error()}
			c.gauge.WithLabelValues(name).Set(0)
			continue
		}
		result.Checks[name] = CheckResult{Status: "up"}
		c.gauge.WithLabelValues(name).Set(1)
	}

	return result
}
