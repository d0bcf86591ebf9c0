package scan

import (
	"ebook-library/core/apperrors"
	"ebook-library/core/logger"
	"ebook-library/core/reconcile"
	"ebook-library/core/server"
	"ebook-library/core/validation"

	"github.com/gofiber/fiber/v2"
)

// Handler handles HTTP requests for scans.
type Handler struct {
	service   *Service
	validator *validation.Validator
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service, validator: validation.New()}
}

// RegisterRoutes registers the scan route.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/scan", h.HandleScan)
}

// Request is the body of POST /scan.
type Request struct {
	DirPath string `json:"dirPath" validate:"max=4096"`
	DryRun  bool   `json:"dryRun"`
}

// Response reports the outcome of a scan.
type Response struct {
	Message      string             `json:"message"`
	AddedCount   int                `json:"addedCount"`
	RemovedCount int                `json:"removedCount"`
	TotalFound   int                `json:"totalFound"`
	Truncated    bool               `json:"truncated"`
	DryRun       bool               `json:"dryRun,omitempty"`
	Actions      []reconcile.Action `json:"actions,omitempty"`
}

// HandleScan scans a directory and reconciles the catalog with it.
// @Summary Scan Directory
// @Description Walks dirPath and inserts new book files and deletes records under dirPath whose files are gone, in one transaction. With dryRun the planned changes are returned and nothing is written.
// @Tags scan
// @Accept json
// @Produce json
// @Param request body scan.Request true "Directory to scan"
// @Success 200 {object} scan.Response "Scan result"
// @Failure 400 {object} map[string]string "Invalid directory path"
// @Failure 500 {object} map[string]string "Database update failed"
// @Router /scan [post]
func (h *Handler) HandleScan(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req Request
	if err := c.BodyParser(&req); err != nil {
		return server.WriteError(c, l, apperrors.Validation("Invalid request body"))
	}
	if err := h.validator.Validate(req); err != nil {
		return server.WriteError(c, l, err)
	}

	plan, result, err := h.service.Scan(c.UserContext(), req.DirPath, req.DryRun, ModeRequest)
	if err != nil {
		return server.WriteError(c, l, err)
	}

	resp := Response{
		Message:      "Scan completed",
		AddedCount:   result.Added,
		RemovedCount: result.Removed,
		TotalFound:   result.TotalFound,
		Truncated:    result.Truncated,
	}
	if req.DryRun {
		resp.Message = "Dry run completed"
		resp.DryRun = true
		resp.Actions = plan.Actions
	}
	return c.JSON(resp)
}
