package dataset

import (
	"fmt"
	"time"

	"ebook-library/core/logger"
	"ebook-library/core/server"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves catalog exports.
type Handler struct {
	exporter *Exporter
	logger   *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(exporter *Exporter, logger *zap.Logger) *Handler {
	return &Handler{exporter: exporter, logger: logger}
}

// RegisterRoutes registers the export route.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/export", h.HandleExport)
}

// HandleExport downloads the catalog.
// @Summary Export Catalog
// @Description Downloads every book as a JSON array or a CSV file.
// @Tags dataset
// @Produce json
// @Produce text/csv
// @Param format query string false "json or csv" default(json)
// @Success 200 {array} catalog.Book "Books"
// @Failure 400 {object} map[string]string "Unsupported export format"
// @Router /export [get]
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	format, err := ParseFormat(c.Query("format"))
	if err != nil {
		return server.WriteError(c, l, err)
	}

	name := fmt.Sprintf("ebooks_%s.%s", time.Now().Format("20060102"), format)
	c.Set(fiber.HeaderContentType, format.ContentType())
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, name))

	n, err := h.exporter.Write(c.UserContext(), c, format)
	if err != nil {
		l.Error("Export failed", zap.Int("written", n), zap.Error(err))
		return server.WriteError(c, l, err)
	}
	return nil
}
