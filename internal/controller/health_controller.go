package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"sungraze_backend/internal/catalog"
	"sungraze_backend/internal/enquiry"
	"sungraze_backend/pkg/features"
)

type HealthController struct {
	store    *catalog.Store
	registry *enquiry.Registry
	features features.Set
	started  time.Time
}

func NewHealthController(store *catalog.Store, registry *enquiry.Registry, set features.Set) *HealthController {
	return &HealthController{store: store, registry: registry, features: set, started: time.Now()}
}

func (hc *HealthController) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":     "ok",
		"projects":   hc.store.Len(),
		"open_forms": hc.registry.Len(),
		"features":   hc.features.Enabled(),
		"uptime":     time.Since(hc.started).Round(time.Second).String(),
	})
}
