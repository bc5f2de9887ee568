// internal/controller/location_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"

	"sungraze_backend/internal/catalog"
	"sungraze_backend/internal/model"
	"sungraze_backend/pkg/utils/location"
)

type regionSummary struct {
	location.State
	ProjectCount int `json:"project_count"`
}

type LocationController struct {
	store *catalog.Store
}

func NewLocationController(store *catalog.Store) *LocationController {
	return &LocationController{store: store}
}

// GetRegions lists the served regions with how many projects each has.
func (lc *LocationController) GetRegions(c *fiber.Ctx) error {
	states := location.GetStates()
	regions := make([]regionSummary, 0, len(states))
	for _, s := range states {
		regions = append(regions, regionSummary{
			State:        s,
			ProjectCount: len(lc.store.ListByRegion(model.Region(s.Name))),
		})
	}
	return c.JSON(fiber.Map{
		"regions": regions,
	})
}

func (lc *LocationController) GetCitiesByState(c *fiber.Ctx) error {
	stateCode := c.Params("stateCode")
	if _, ok := location.GetState(stateCode); !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Region not found",
		})
	}
	return c.JSON(fiber.Map{
		"cities": location.GetCitiesByState(stateCode),
	})
}
