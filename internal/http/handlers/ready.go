package handlers

import (
	"sync/atomic"

	"github.com/gofiber/fiber/v2"

	applog "classplus/internal/log"
)

// Readiness is the startup barrier between "process listening" and "store
// connected and seeded". main marks it after the store is usable; until
// then, store-backed routes answer 503 instead of touching a dead handle.
type Readiness struct {
	ok atomic.Bool
}

func (r *Readiness) Mark() { r.ok.Store(true) }

func (r *Readiness) Ready() bool { return r.ok.Load() }

// Gate is a per-route middleware for routes that hit the store.
func (r *Readiness) Gate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !r.ok.Load() {
			applog.Warn(c, "store.not_ready", nil)
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error": "store not ready",
			})
		}
		return c.Next()
	}
}
