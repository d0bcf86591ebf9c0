package integrity

import (
	"ebook-library/core/logger"
	"ebook-library/core/server"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/schema", h.HandleSchemaCheck)
}

// HandleIntegrityCheck compares a directory with the catalog.
// @Summary Run Integrity Check
// @Description Scans the directory without writing and compares per-extension counts with the catalog, reports the pending reconcile plan and verifies the books table schema. This operation may take a long time.
// @Tags integrity
// @Produce json
// @Param dirPath query string true "Directory to compare"
// @Success 200 {object} integrity.Report "Integrity Report"
// @Failure 400 {object} map[string]string "Invalid directory path"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	root := c.Query("dirPath")

	report, err := h.service.CheckRoot(c.UserContext(), root)
	if err != nil {
		l.Warn("Integrity check failed", zap.String("root", root), zap.Error(err))
		return server.WriteError(c, l, err)
	}

	if !report.Counts.Matched || !report.Schema.Matched {
		l.Warn("Integrity mismatch detected",
			zap.String("root", report.Root),
			zap.Int64("difference", report.Counts.Total.Difference),
			zap.Strings("missing_columns", report.Schema.MissingColumns),
		)
	}
	return c.JSON(report)
}

// HandleSchemaCheck verifies the books table.
// @Summary Check Schema
// @Description Verifies the books table carries every column the catalog uses.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.SchemaReport "Schema Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/schema [get]
func (h *Handler) HandleSchemaCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckSchema()
	if err != nil {
		l.Error("Schema check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}
