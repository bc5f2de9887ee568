package middleware

import (
	"github.com/gofiber/fiber/v2"

	"sungraze_backend/pkg/features"
)

// CheckFeatureAccess hides a route group when its feature is switched off.
func CheckFeatureAccess(set features.Set, feature features.Feature) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !set.CanUseFeature(feature) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "This feature is not available",
			})
		}
		return c.Next()
	}
}
