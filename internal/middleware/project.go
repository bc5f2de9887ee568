package middleware

import (
	"github.com/gofiber/fiber/v2"

	"sungraze_backend/internal/catalog"
	"sungraze_backend/internal/model"
)

const projectKey = "project"

// LoadProject resolves the :slug route parameter and stores the project in
// the request locals. Unknown slugs end the request with 404.
func LoadProject(store *catalog.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		project, ok := store.GetBySlug(c.Params("slug"))
		if !ok {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Project not found",
			})
		}
		c.Locals(projectKey, project)
		return c.Next()
	}
}

// Project returns the project stored by LoadProject.
func Project(c *fiber.Ctx) (model.Project, bool) {
	p, ok := c.Locals(projectKey).(model.Project)
	return p, ok
}
