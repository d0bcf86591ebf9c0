package books

import (
	"ebook-library/core/apperrors"
	"ebook-library/core/catalog"
	"ebook-library/core/logger"
	"ebook-library/core/server"
	"ebook-library/core/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for books.
type Handler struct {
	service   *Service
	validator *validation.Validator
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service, validator: validation.New()}
}

// RegisterRoutes registers the book routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/books")
	group.Get("/", h.HandleListBooks)
	group.Get("/:id", h.HandleGetBook)
	group.Put("/:id/genre", h.HandleUpdateGenre)
	app.Post("/open-folder", h.HandleOpenFolder)
}

// UpdateGenreRequest is the body of PUT /books/{id}/genre.
type UpdateGenreRequest struct {
	Genre       *string `json:"genre" validate:"omitempty,max=128"`
	Description *string `json:"description"`
}

// OpenFolderRequest is the body of POST /open-folder.
type OpenFolderRequest struct {
	FilePath string `json:"filePath"`
}

// HandleListBooks lists books with filters and pagination.
// @Summary List Books
// @Description Returns books ordered by title. search matches title, author or path; genre and author are substring matches; fileType is an exact extension.
// @Tags books
// @Produce json
// @Param search query string false "Search text"
// @Param genre query string false "Genre substring"
// @Param author query string false "Author substring"
// @Param fileType query string false "File extension (e.g. 'epub')"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} books.ListResponse "Books"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /books [get]
func (h *Handler) HandleListBooks(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	resp, err := h.service.List(c.UserContext(), catalog.Filter{
		Search:   c.Query("search"),
		Genre:    c.Query("genre"),
		Author:   c.Query("author"),
		FileType: c.Query("fileType"),
		Page:     c.QueryInt("page", 1),
		Limit:    c.QueryInt("limit", 20),
	})
	if err != nil {
		return server.WriteError(c, l, err)
	}
	return c.JSON(resp)
}

// HandleGetBook returns a single book.
// @Summary Get Book
// @Tags books
// @Produce json
// @Param id path int true "Book ID"
// @Success 200 {object} catalog.Book "Book"
// @Failure 404 {object} map[string]string "Book not found"
// @Router /books/{id} [get]
func (h *Handler) HandleGetBook(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return server.WriteError(c, l, apperrors.NotFound("Book not found"))
	}

	book, err := h.service.Get(c.UserContext(), uint(id))
	if err != nil {
		return server.WriteError(c, l, err)
	}
	return c.JSON(book)
}

// HandleUpdateGenre sets a book's genre and description.
// @Summary Update Genre
// @Description Overwrites both genre and description; an omitted field is cleared.
// @Tags books
// @Accept json
// @Produce json
// @Param id path int true "Book ID"
// @Param body body books.UpdateGenreRequest true "Genre and description"
// @Success 200 {object} map[string]interface{} "Updated"
// @Failure 400 {object} map[string]string "Invalid body"
// @Failure 404 {object} map[string]string "Book not found"
// @Router /books/{id}/genre [put]
func (h *Handler) HandleUpdateGenre(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return server.WriteError(c, l, apperrors.NotFound("Book not found"))
	}

	var req UpdateGenreRequest
	if err := c.BodyParser(&req); err != nil {
		return server.WriteError(c, l, apperrors.Validation("Invalid request body"))
	}
	if err := h.validator.Validate(req); err != nil {
		return server.WriteError(c, l, err)
	}

	if err := h.service.UpdateGenre(c.UserContext(), uint(id), req.Genre, req.Description); err != nil {
		return server.WriteError(c, l, err)
	}

	l.Info("Genre updated", zap.Int("id", id))
	return c.JSON(fiber.Map{
		"message":     "Genre updated",
		"id":          id,
		"genre":       req.Genre,
		"description": req.Description,
	})
}

// HandleOpenFolder reveals a book file in the desktop file manager.
// @Summary Open Folder
// @Description Maps the stored path onto the local disk and reveals it in Finder, Explorer or the default file manager.
// @Tags books
// @Accept json
// @Produce json
// @Param body body books.OpenFolderRequest true "File path"
// @Success 200 {object} map[string]string "Opened"
// @Failure 400 {object} map[string]string "Missing file path"
// @Failure 404 {object} map[string]string "File not found"
// @Failure 500 {object} map[string]string "Command failed"
// @Router /open-folder [post]
func (h *Handler) HandleOpenFolder(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req OpenFolderRequest
	if err := c.BodyParser(&req); err != nil {
		return server.WriteError(c, l, apperrors.Validation("Invalid request body"))
	}

	mapped, err := h.service.OpenFolder(c.UserContext(), req.FilePath)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			l.Warn("File to reveal not found", zap.String("path", mapped))
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "File not found. Make sure the drive is connected.", "path": mapped})
		}
		return server.WriteError(c, l, err)
	}
	return c.JSON(fiber.Map{"message": "Folder opened"})
}
