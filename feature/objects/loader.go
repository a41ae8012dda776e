package objects

import (
	"asset-uploader/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature exposes object operations over HTTP.
type Feature struct {
	handler *Handler
}

// NewFeature creates the objects feature.
func NewFeature(client storage.Client, cfg storage.Config, logger *zap.Logger, opts ...Option) *Feature {
	return &Feature{handler: NewHandler(NewService(client, cfg, logger, opts...))}
}

// Name returns the feature name.
func (f *Feature) Name() string {
	return "objects"
}

// IsEnabled reports whether the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
