package httpapi

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"eventhub/internal/domain"
	"eventhub/internal/domain/entities"
	"eventhub/internal/domain/filter"
	"eventhub/internal/ports/input"
	"eventhub/internal/ports/output"
)

type handler struct {
	events        input.EventUseCase
	registrations input.RegistrationUseCase
	stats         input.StatsUseCase
	t             output.T
}

func (h *handler) listEvents(c *fiber.Ctx) error {
	f := filtersFromQuery(c)
	events, err := h.events.ListFiltered(c.Context(), f)
	if err != nil {
		return h.internalError(c, err)
	}
	out := make([]eventPayload, 0, len(events))
	for i := range events {
		out = append(out, toEventPayload(&events[i]))
	}
	return c.JSON(out)
}

func (h *handler) getEvent(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return h.badRequest(c, "error.bad_request")
	}
	event, err := h.events.GetEvent(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			return h.notFound(c)
		}
		return h.internalError(c, err)
	}
	return c.JSON(toEventPayload(event))
}

func (h *handler) createEvent(c *fiber.Ctx) error {
	var req createEventRequest
	if err := c.BodyParser(&req); err != nil {
		return h.badRequest(c, "error.bad_request")
	}
	event := &entities.Event{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Date:        req.Date,
		Price:       req.Price,
		Tags:        req.Tags,
		Organizer:   req.Organizer,
	}
	if err := h.events.CreateEvent(c.Context(), event); err != nil {
		if errors.Is(err, domain.ErrInvalidEvent) {
			return h.badRequest(c, "event.invalid")
		}
		return h.internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toEventPayload(event))
}

func (h *handler) facets(c *fiber.Ctx) error {
	facets, err := h.events.Facets(c.Context())
	if err != nil {
		return h.internalError(c, err)
	}
	return c.JSON(fiber.Map{
		"locations":  facets.Locations,
		"categories": facets.Categories,
		"organizers": facets.Organizers,
	})
}

func (h *handler) register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return h.badRequest(c, "error.bad_request")
	}
	registration, err := h.registrations.Register(c.Context(), input.RegisterInput{
		EventID: req.EventID,
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidRegistration):
			return h.badRequest(c, "registration.invalid")
		case errors.Is(err, domain.ErrEventNotFound):
			return h.notFound(c)
		default:
			return h.internalError(c, err)
		}
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":   true,
		"reference": registration.Reference,
		"message": h.t.T(locale(c), "registration.success", map[string]any{
			"Reference": registration.Reference,
		}),
	})
}

func (h *handler) dailyRegistrations(c *fiber.Ctx) error {
	counts, err := h.stats.DailyRegistrations(c.Context())
	if err != nil {
		return h.internalError(c, err)
	}
	out := make([]dailyCountPayload, 0, len(counts))
	for _, dc := range counts {
		out = append(out, dailyCountPayload{Date: dc.Date, Count: dc.Count})
	}
	return c.JSON(out)
}

func (h *handler) popularEvents(c *fiber.Ctx) error {
	ranking, err := h.stats.PopularEvents(c.Context())
	if err != nil {
		return h.internalError(c, err)
	}
	out := make([]popularEventPayload, 0, len(ranking))
	for _, pe := range ranking {
		out = append(out, popularEventPayload{
			ID:                 pe.EventID,
			Title:              pe.Title,
			TotalRegistrations: pe.TotalRegistrations,
		})
	}
	return c.JSON(out)
}

// filtersFromQuery maps the filter query parameters onto the engine's filter
// state. The UI's "clear" values ("all", "any") mean no constraint.
func filtersFromQuery(c *fiber.Ctx) filter.Filters {
	get := func(name string) string {
		v := strings.TrimSpace(c.Query(name))
		if v == "all" || v == "any" {
			return ""
		}
		return v
	}
	return filter.Filters{
		Search:     get("search"),
		Location:   get("location"),
		Category:   get("category"),
		DateRange:  get("dateRange"),
		PriceRange: get("priceRange"),
		Organizer:  get("organizer"),
		Status:     get("status"),
	}
}

// locale extracts the primary language tag from Accept-Language.
func locale(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAcceptLanguage)
	if header == "" {
		return ""
	}
	primary := strings.TrimSpace(strings.SplitN(header, ",", 2)[0])
	return strings.SplitN(primary, ";", 2)[0]
}
