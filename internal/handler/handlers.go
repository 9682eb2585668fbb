package handler

import (
	"github.com/MKhiriev/streama/internal/config"
	"github.com/MKhiriev/streama/internal/handler/http"
	"github.com/MKhiriev/streama/internal/logger"
	"github.com/MKhiriev/streama/internal/service"
	"github.com/MKhiriev/streama/internal/validators"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the transport handlers enabled in cfg.Server.
func NewHandlers(services *service.Services, validator validators.Validator, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, validator, cfg, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
