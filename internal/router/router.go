// Package router builds the fiber application and its routes.
package router

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"sungraze_backend/internal/catalog"
	"sungraze_backend/internal/controller"
	"sungraze_backend/internal/enquiry"
	"sungraze_backend/internal/middleware"
	"sungraze_backend/pkg/config"
	"sungraze_backend/pkg/features"
)

type Deps struct {
	Server   config.ServerConfig
	Store    *catalog.Store
	Registry *enquiry.Registry
	Sink     enquiry.LeadSink // used by the one-shot endpoint
	Features features.Set
	Logger   *zap.Logger

	AccessLog bool
}

// New returns an app with every route mounted under /api.
func New(d Deps) *fiber.App {
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}

	app := fiber.New(fiber.Config{
		AppName:               "sungraze",
		UnescapePath:          true, // region names contain spaces
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler(d.Logger),
	})

	app.Use(recover.New())
	if d.AccessLog {
		app.Use(logger.New())
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: d.Server.CORSOrigins,
	}))

	setupRoutes(app, d)

	app.Use(func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Not found")
	})
	return app
}

func setupRoutes(app *fiber.App, d Deps) {
	projects := controller.NewProjectController(d.Store, d.Features)
	locations := controller.NewLocationController(d.Store)
	enquiries := controller.NewEnquiryController(d.Registry, d.Sink, d.Store, d.Logger)
	health := controller.NewHealthController(d.Store, d.Registry, d.Features)

	api := app.Group("/api")
	api.Get("/health", health.Health)

	// Catalog routes. Fixed segments go before /:slug.
	p := api.Group("/projects")
	p.Get("/", projects.ListProjects)
	p.Get("/featured", projects.Featured)
	p.Get("/regions", projects.Regions)
	p.Get("/type/:type", projects.ListByType)
	p.Get("/status/:status", projects.ListByStatus)
	p.Get("/region/:region", projects.ListByRegion)
	p.Get("/id/:id", projects.GetByID)

	bySlug := p.Group("/:slug", middleware.LoadProject(d.Store))
	bySlug.Get("/", projects.GetBySlug)
	bySlug.Get("/related", projects.Related)
	bySlug.Get("/sections/:section", projects.Section)

	// Location routes
	api.Get("/locations/regions", locations.GetRegions)
	api.Get("/locations/regions/:stateCode/cities", locations.GetCitiesByState)

	// Enquiry routes
	e := api.Group("/enquiries", middleware.CheckFeatureAccess(d.Features, features.EnquiryForm))
	// each write route keeps its own per-IP budget
	e.Post("/", rateLimit(d.Server), enquiries.CreateEnquiry)
	e.Post("/forms", rateLimit(d.Server), enquiries.OpenForm)
	e.Get("/forms/:id", enquiries.GetForm)
	e.Post("/forms/:id/submit", rateLimit(d.Server), enquiries.SubmitForm)
	e.Post("/forms/:id/reset", enquiries.ResetForm)
}

func rateLimit(cfg config.ServerConfig) fiber.Handler {
	limit, every := cfg.RateLimitMax, cfg.RateLimitEvery
	if limit <= 0 {
		limit = 10
	}
	if every <= 0 {
		every = time.Minute
	}
	return limiter.New(limiter.Config{
		Max:        limit,
		Expiration: every,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later",
			})
		},
	})
}

func errorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		msg := "Internal server error"

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			msg = fe.Message
		}
		if code >= fiber.StatusInternalServerError {
			log.Error("request failed",
				zap.String("method", c.Method()),
				zap.String("path", strings.Clone(c.Path())),
				zap.Error(err),
			)
		}
		return c.Status(code).JSON(fiber.Map{
			"error": msg,
		})
	}
}
