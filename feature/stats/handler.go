package stats

import (
	"ebook-library/core/logger"
	"ebook-library/core/server"

	"github.com/gofiber/fiber/v2"
)

// Handler handles HTTP requests for catalog aggregates.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the aggregate routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/authors", h.HandleAuthors)
	app.Get("/genres", h.HandleGenres)
	app.Get("/stats", h.HandleStats)
}

// HandleAuthors lists the top 100 authors.
// @Summary List Authors
// @Description Returns up to 100 authors ordered by descending book count.
// @Tags stats
// @Produce json
// @Success 200 {array} catalog.AuthorCount "Authors"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /authors [get]
func (h *Handler) HandleAuthors(c *fiber.Ctx) error {
	rows, err := h.service.Authors(c.UserContext())
	if err != nil {
		return server.WriteError(c, logger.WithRayID(h.service.logger, c), err)
	}
	return c.JSON(rows)
}

// HandleGenres lists every assigned genre.
// @Summary List Genres
// @Tags stats
// @Produce json
// @Success 200 {array} catalog.GenreCount "Genres"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /genres [get]
func (h *Handler) HandleGenres(c *fiber.Ctx) error {
	rows, err := h.service.Genres(c.UserContext())
	if err != nil {
		return server.WriteError(c, logger.WithRayID(h.service.logger, c), err)
	}
	return c.JSON(rows)
}

// HandleStats returns catalog totals.
// @Summary Catalog Stats
// @Tags stats
// @Produce json
// @Success 200 {object} catalog.Stats "Stats"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /stats [get]
func (h *Handler) HandleStats(c *fiber.Ctx) error {
	st, err := h.service.Stats(c.UserContext())
	if err != nil {
		return server.WriteError(c, logger.WithRayID(h.service.logger, c), err)
	}
	return c.JSON(st)
}
