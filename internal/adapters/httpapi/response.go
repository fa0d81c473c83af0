package httpapi

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"eventhub/internal/domain/entities"
)

type eventPayload struct {
	ID          uint             `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Location    string           `json:"location,omitempty"`
	Date        time.Time        `json:"date"`
	Price       *float64         `json:"price,omitempty"`
	Tags        entities.TagList `json:"tags"`
	Organizer   string           `json:"organizer,omitempty"`
	Attendees   int              `json:"attendees"`
}

func toEventPayload(e *entities.Event) eventPayload {
	return eventPayload{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Location:    e.Location,
		Date:        e.Date,
		Price:       e.Price,
		Tags:        e.Tags,
		Organizer:   e.Organizer,
		Attendees:   e.Attendees,
	}
}

type createEventRequest struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Location    string           `json:"location"`
	Date        time.Time        `json:"date"`
	Price       *float64         `json:"price"`
	Tags        entities.TagList `json:"tags"`
	Organizer   string           `json:"organizer"`
}

type registerRequest struct {
	EventID uint   `json:"event_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

type dailyCountPayload struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type popularEventPayload struct {
	ID                 uint   `json:"id"`
	Title              string `json:"title"`
	TotalRegistrations int    `json:"total_registrations"`
}

func (h *handler) badRequest(c *fiber.Ctx, key string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": h.t.T(locale(c), key, nil),
	})
}

func (h *handler) notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": h.t.T(locale(c), "event.not_found", nil),
	})
}

func (h *handler) internalError(c *fiber.Ctx, err error) error {
	slog.Error("request failed", "path", c.Path(), "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": h.t.T(locale(c), "error.internal", nil),
	})
}
