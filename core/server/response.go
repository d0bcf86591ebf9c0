package server

import (
	"errors"

	"ebook-library/core/apperrors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// WriteError renders err as {"error": message} with the status mapped from its code.
// Internal errors are logged and their cause is not sent to the client.
func WriteError(c *fiber.Ctx, l *zap.Logger, err error) error {
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		status := appErr.HTTPStatus()
		if status >= fiber.StatusInternalServerError {
			l.Error("Request failed", zap.Error(err))
		}
		body := fiber.Map{"error": appErr.Message}
		if appErr.Details != nil {
			body["details"] = appErr.Details
		}
		return c.Status(status).JSON(body)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{"error": fiberErr.Message})
	}

	l.Error("Request failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}

// ErrorHandler is the fiber error handler for errors returned by handlers.
func ErrorHandler(l *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		return WriteError(c, l, err)
	}
}

// NewApp creates the fiber application with the shared error handler.
func NewApp(l *zap.Logger) *fiber.App {
	return fiber.New(fiber.Config{
		AppName:               "ebook-library",
		DisableStartupMessage: true,
		ErrorHandler:          ErrorHandler(l),
	})
}
