// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/streama/internal/config"
	"github.com/MKhiriev/streama/internal/logger"
	"github.com/MKhiriev/streama/internal/service"
	"github.com/MKhiriev/streama/internal/validators"
)

type Handler struct {
	services  *service.Services
	validator validators.Validator
	limiter   *rateLimiter
	settings  settings

	logger *logger.Logger
}

// settings is the slice of the application config the HTTP layer reads.
type settings struct {
	apiPrefix   string
	production  bool
	corsOrigins []string

	cookieName     string
	cookieMaxAge   time.Duration
	cookieSameSite http.SameSite
}

func NewHandler(services *service.Services, validator validators.Validator, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		validator: validator,
		limiter:   newRateLimiter(cfg.RateLimit),
		settings:  newSettings(cfg),
		logger:    logger,
	}
}

func newSettings(cfg *config.StructuredConfig) settings {
	return settings{
		apiPrefix:      strings.TrimRight(cfg.App.APIPrefix, "/"),
		production:     cfg.App.IsProduction(),
		corsOrigins:    cfg.Server.CORSOrigins,
		cookieName:     cfg.Auth.CookieName,
		cookieMaxAge:   cfg.Auth.CookieMaxAge,
		cookieSameSite: parseSameSite(cfg.Auth.CookieSameSite),
	}
}

func parseSameSite(value string) http.SameSite {
	switch strings.ToLower(value) {
	case "lax":
		return http.SameSiteLaxMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteStrictMode
	}
}
