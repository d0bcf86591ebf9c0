package stats

import (
	"ebook-library/core/catalog"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	handler *Handler
}

// NewFeature creates the stats feature.
func NewFeature(store *catalog.Store, logger *zap.Logger) *Feature {
	return &Feature{handler: NewHandler(NewService(store, logger))}
}

func (f *Feature) Name() string    { return "stats" }
func (f *Feature) IsEnabled() bool { return true }

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
