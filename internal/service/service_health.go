package service

import (
	"context"
	"time"

	"github.com/MKhiriev/streama/internal/config"
	"github.com/MKhiriev/streama/internal/logger"
	"github.com/MKhiriev/streama/models"
)

type healthService struct {
	serviceName string
	appVersion  string

	now func() time.Time

	logger *logger.Logger
}

// NewHealthService reports cfg.Name and the build version, falling back to
// cfg.Version for binaries built without version ldflags.
func NewHealthService(cfg config.App, build models.AppBuildInfo, logger *logger.Logger) (HealthService, error) {
	version := build.BuildVersion()
	if version == "" || version == "N/A" {
		version = cfg.Version
	}
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &healthService{
		serviceName: cfg.Name,
		appVersion:  version,
		now:         time.Now,
		logger:      logger,
	}, nil
}

func (s *healthService) Health(ctx context.Context) models.HealthResponse {
	return models.HealthResponse{
		Status:    "ok",
		Timestamp: s.now().UTC(),
		Service:   s.serviceName,
		Version:   s.appVersion,
	}
}
