package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/ignite/campaign-chat/internal/domain"
	"github.com/ignite/campaign-chat/internal/service/campaign"
	"github.com/ignite/campaign-chat/internal/service/datasource"
)

const healthVersion = "1.0.0"

// Component and aggregate states.
const (
	statusUp        = "up"
	statusDown      = "down"
	statusDegraded  = "degraded"
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"
	notConfigured   = "not configured"
)

// HealthStatus is the body of GET /health.
type HealthStatus struct {
	Status  string                    `json:"status"` // healthy, degraded or unhealthy
	Version string                    `json:"version"`
	Uptime  string                    `json:"uptime"`
	Checks  map[string]ComponentCheck `json:"checks"`
}

// ReadinessStatus is the body of GET /health/ready.
type ReadinessStatus struct {
	Ready  bool                      `json:"ready"`
	Status string                    `json:"status"`
	Checks map[string]ComponentCheck `json:"checks"`
}

// ComponentCheck is the result of probing one component.
type ComponentCheck struct {
	Status  string `json:"status"` // up, down or degraded
	Latency string `json:"latency,omitempty"`
	Message string `json:"message,omitempty"`
}

// dryRunSeed seeds the engine dry run. The dry run owns its generator so
// health polling never advances the random stream chat replies draw from.
const dryRunSeed = 1

// HealthChecker checks the in-process components: the connector registry
// and the campaign engine. Nil components report "not configured".
type HealthChecker struct {
	registry  *datasource.Registry
	generator *campaign.Generator
	renderer  *campaign.Renderer
	startTime time.Time
}

// NewHealthChecker creates a HealthChecker whose uptime starts now. A nil
// renderer leaves the engine check unconfigured.
func NewHealthChecker(registry *datasource.Registry, renderer *campaign.Renderer) *HealthChecker {
	hc := &HealthChecker{
		registry:  registry,
		renderer:  renderer,
		startTime: time.Now(),
	}
	if renderer != nil {
		hc.generator = campaign.NewGenerator(campaign.NewRand(dryRunSeed))
	}
	return hc
}

// HandleHealth always answers 200; the status field carries the verdict.
//
//	GET /health
func (hc *HealthChecker) HandleHealth(w http.ResponseWriter, r *http.Request) {
	checks := hc.runChecks()
	respondJSON(w, http.StatusOK, HealthStatus{
		Status:  determineOverallStatus(checks),
		Version: healthVersion,
		Uptime:  hc.uptime(),
		Checks:  checks,
	})
}

// HandleLiveness answers 200 while the process is up.
//
//	GET /health/live
func (hc *HealthChecker) HandleLiveness(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "alive",
		"uptime": hc.uptime(),
	})
}

// HandleReadiness answers 503 when the service should not take traffic.
//
//	GET /health/ready
func (hc *HealthChecker) HandleReadiness(w http.ResponseWriter, r *http.Request) {
	checks := hc.runChecks()
	overall := determineOverallStatus(checks)

	code := http.StatusOK
	if overall == statusUnhealthy {
		code = http.StatusServiceUnavailable
	}
	respondJSON(w, code, ReadinessStatus{
		Ready:  overall != statusUnhealthy,
		Status: overall,
		Checks: checks,
	})
}

func (hc *HealthChecker) uptime() string {
	return time.Since(hc.startTime).Truncate(time.Second).String()
}

// runChecks runs every component check. Each is in-memory and fast, so
// they run sequentially.
func (hc *HealthChecker) runChecks() map[string]ComponentCheck {
	components := []struct {
		name  string
		check func() ComponentCheck
	}{
		{"registry", hc.checkRegistry},
		{"engine", hc.checkEngine},
	}

	checks := make(map[string]ComponentCheck, len(components))
	for _, comp := range components {
		start := time.Now()
		c := comp.check()
		if c.Message != notConfigured {
			c.Latency = time.Since(start).String()
		}
		checks[comp.name] = c
	}
	return checks
}

// checkRegistry verifies the full connector catalog is present.
func (hc *HealthChecker) checkRegistry() ComponentCheck {
	if hc.registry == nil {
		return ComponentCheck{Status: statusDown, Message: notConfigured}
	}

	sources := hc.registry.List()
	if want := len(domain.SourceIDs()); len(sources) != want {
		return ComponentCheck{
			Status:  statusDown,
			Message: fmt.Sprintf("expected %d connectors, found %d", want, len(sources)),
		}
	}
	return ComponentCheck{
		Status:  statusUp,
		Message: fmt.Sprintf("%d of %d connectors connected", len(hc.registry.Connected()), len(sources)),
	}
}

// checkEngine generates and renders a throwaway campaign.
func (hc *HealthChecker) checkEngine() ComponentCheck {
	if hc.generator == nil || hc.renderer == nil {
		return ComponentCheck{Status: statusDown, Message: notConfigured}
	}

	c := hc.generator.Generate("health check", domain.NewSourceSet(domain.SourceShopify))
	if c.Audience.Size <= 0 || hc.renderer.Render(c) == "" {
		return ComponentCheck{Status: statusDegraded, Message: "dry run produced an empty campaign"}
	}
	return ComponentCheck{Status: statusUp, Message: "dry run ok"}
}

// determineOverallStatus folds component checks into one verdict: any
// configured component down is unhealthy, any degraded component is
// degraded, and everything else is healthy.
func determineOverallStatus(checks map[string]ComponentCheck) string {
	overall := statusHealthy
	for _, c := range checks {
		switch {
		case c.Status == statusDown && c.Message != notConfigured:
			return statusUnhealthy
		case c.Status == statusDegraded:
			overall = statusDegraded
		}
	}
	return overall
}
