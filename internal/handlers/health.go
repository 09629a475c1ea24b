package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Checker reports whether a dependency is reachable.
type Checker func(ctx context.Context) error

// Stats reports counters of a dependency, such as its connection pool.
type Stats func() map[string]interface{}

type HealthHandler struct {
	checks  map[string]Checker
	stats   map[string]Stats
	timeout time.Duration
}

func NewHealthHandler(checks map[string]Checker) *HealthHandler {
	return &HealthHandler{checks: checks, stats: map[string]Stats{}, timeout: 2 * time.Second}
}

// WithStats adds the counters of name to the health payload.
func (h *HealthHandler) WithStats(name string, stats Stats) *HealthHandler {
	h.stats[name] = stats
	return h
}

func (h *HealthHandler) HealthCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), h.timeout)
	defer cancel()

	status := "ok"
	services := fiber.Map{}
	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			services[name] = "unavailable"
			status = "degraded"
			continue
		}
		services[name] = "connected"
	}

	code := fiber.StatusOK
	if status != "ok" {
		code = fiber.StatusServiceUnavailable
	}
	body := fiber.Map{
		"status":   status,
		"version":  "1.0.0",
		"services": services,
	}
	if len(h.stats) > 0 {
		stats := fiber.Map{}
		for name, collect := range h.stats {
			stats[name] = collect()
		}
		body["stats"] = stats
	}
	return c.Status(code).JSON(body)
}
