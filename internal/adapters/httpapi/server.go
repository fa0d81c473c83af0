// Package httpapi exposes the event listing, registration and dashboard use
// cases over HTTP.
package httpapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"eventhub/internal/ports/input"
	"eventhub/internal/ports/output"
)

// NewServer wires the use cases into a fiber application.
func NewServer(
	events input.EventUseCase,
	registrations input.RegistrationUseCase,
	stats input.StatsUseCase,
	translator output.T,
) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "eventhub",
	})
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(cors.New())

	h := &handler{
		events:        events,
		registrations: registrations,
		stats:         stats,
		t:             translator,
	}

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")
	api.Get("/events", h.listEvents)
	api.Post("/events", h.createEvent)
	api.Get("/events/facets", h.facets)
	api.Get("/events/:id", h.getEvent)
	api.Post("/registrations", h.register)

	admin := api.Group("/admin")
	admin.Get("/registrations/daily", h.dailyRegistrations)
	admin.Get("/popular-events", h.popularEvents)

	return app
}
