// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
)

// MinTokenSignKeyLength is the shortest accepted JWT signing secret.
const MinTokenSignKeyLength = 32

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup. The first violated
// group is reported.
func (cfg *StructuredConfig) validate() error {
	switch cfg.App.Env {
	case EnvDevelopment, EnvProduction, EnvTest, EnvStaging:
	default:
		return fmt.Errorf("%w: unknown env %q", ErrInvalidAppConfigs, cfg.App.Env)
	}
	if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("%w: log level: %w", ErrInvalidAppConfigs, err)
	}
	if cfg.App.APIPrefix != "" && !strings.HasPrefix(cfg.App.APIPrefix, "/") {
		return fmt.Errorf("%w: api prefix must start with '/'", ErrInvalidAppConfigs)
	}

	if len(cfg.Auth.TokenSignKey) < MinTokenSignKeyLength {
		return fmt.Errorf("%w: token sign key must be at least %d characters", ErrInvalidAuthConfigs, MinTokenSignKeyLength)
	}
	if cfg.Auth.TokenIssuer == "" || cfg.Auth.TokenDuration <= 0 {
		return fmt.Errorf("%w: token issuer and duration are required", ErrInvalidAuthConfigs)
	}
	if cfg.Auth.CookieName == "" || cfg.Auth.CookieMaxAge <= 0 {
		return fmt.Errorf("%w: cookie name and max age are required", ErrInvalidAuthConfigs)
	}
	switch strings.ToLower(cfg.Auth.CookieSameSite) {
	case "strict", "lax", "none":
	default:
		return fmt.Errorf("%w: unknown cookie same-site mode %q", ErrInvalidAuthConfigs, cfg.Auth.CookieSameSite)
	}

	if cfg.RateLimit.Window <= 0 || cfg.RateLimit.Limit <= 0 {
		return ErrInvalidRateLimitConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 || cfg.Server.ShutdownTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Providers.HTTPTimeout <= 0 || cfg.Providers.HTTPMaxRedirects < 0 {
		return fmt.Errorf("%w: outbound http timeout and redirects", ErrInvalidProviderConfigs)
	}
	if !isAbsoluteURL(cfg.Providers.TMDB.APIURL) || cfg.Providers.TMDB.APIKey == "" {
		return fmt.Errorf("%w: tmdb api url and key are required", ErrInvalidProviderConfigs)
	}
	if !isAbsoluteURL(cfg.Providers.Trakt.APIURL) || cfg.Providers.Trakt.ClientID == "" {
		return fmt.Errorf("%w: trakt api url and client id are required", ErrInvalidProviderConfigs)
	}

	return nil
}

func isAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.Scheme != "" && u.Host != ""
}
