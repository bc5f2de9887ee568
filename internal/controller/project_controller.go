package controller

import (
	"github.com/gofiber/fiber/v2"

	"sungraze_backend/internal/catalog"
	"sungraze_backend/internal/middleware"
	"sungraze_backend/internal/model"
	"sungraze_backend/pkg/features"
)

const (
	featuredCount = 3
	relatedCount  = 3
	maxRelated    = 12
)

type ProjectController struct {
	store    *catalog.Store
	features features.Set
}

func NewProjectController(store *catalog.Store, set features.Set) *ProjectController {
	return &ProjectController{store: store, features: set}
}

func listResponse(projects []model.Project) fiber.Map {
	return fiber.Map{
		"projects": projects,
		"total":    len(projects),
	}
}

// ListProjects serves the listing page: ?type=&status=&region=&sort=
func (pc *ProjectController) ListProjects(c *fiber.Ctx) error {
	filter := catalog.ParseFilter(c.Query("type"), c.Query("status"), c.Query("region"))
	order := catalog.ParseSort(c.Query("sort"))

	resp := listResponse(pc.store.Query(filter, order))
	resp["sort"] = order
	return c.JSON(resp)
}

func (pc *ProjectController) Featured(c *fiber.Ctx) error {
	return c.JSON(listResponse(pc.store.Featured(featuredCount)))
}

func (pc *ProjectController) Regions(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"regions": pc.store.Regions(),
	})
}

func (pc *ProjectController) ListByType(c *fiber.Ctx) error {
	return c.JSON(listResponse(pc.store.ListByType(model.ProjectType(c.Params("type")))))
}

func (pc *ProjectController) ListByStatus(c *fiber.Ctx) error {
	return c.JSON(listResponse(pc.store.ListByStatus(model.ProjectStatus(c.Params("status")))))
}

func (pc *ProjectController) ListByRegion(c *fiber.Ctx) error {
	return c.JSON(listResponse(pc.store.ListByRegion(model.Region(c.Params("region")))))
}

// GetByID serves old links that used the internal id.
func (pc *ProjectController) GetByID(c *fiber.Ctx) error {
	project, ok := pc.store.GetByID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Project not found",
		})
	}
	return c.JSON(fiber.Map{
		"project":   project,
		"canonical": "/projects/" + project.Slug,
	})
}

// GetBySlug serves the detail page. Runs after middleware.LoadProject.
func (pc *ProjectController) GetBySlug(c *fiber.Ctx) error {
	project, _ := middleware.Project(c)

	resp := fiber.Map{
		"project": project,
		"related": pc.store.RelatedTo(project, relatedCount),
	}
	if pc.features.CanUseFeature(features.FarmlandSections) {
		resp["sections"] = pc.store.Sections(project)
	}
	return c.JSON(resp)
}

func (pc *ProjectController) Related(c *fiber.Ctx) error {
	project, _ := middleware.Project(c)

	limit := c.QueryInt("limit", relatedCount)
	if limit > maxRelated {
		limit = maxRelated
	}
	return c.JSON(listResponse(pc.store.RelatedTo(project, limit)))
}

func (pc *ProjectController) Section(c *fiber.Ctx) error {
	project, _ := middleware.Project(c)

	if !pc.features.CanUseFeature(features.FarmlandSections) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Section not found",
		})
	}
	section, ok := pc.store.Section(project, c.Params("section"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Section not found",
		})
	}
	return c.JSON(fiber.Map{
		"project": fiber.Map{
			"id":   project.ID,
			"slug": project.Slug,
			"name": project.Name,
		},
		"section": section,
	})
}
