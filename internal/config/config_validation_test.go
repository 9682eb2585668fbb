package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *StructuredConfig {
	cfg := defaultConfig()
	cfg.Auth.TokenSignKey = testSignKey
	cfg.Storage.DB.DSN = "postgres://localhost/streama"
	cfg.Providers.TMDB.APIKey = "tmdb"
	cfg.Providers.Trakt.ClientID = "trakt"
	return cfg
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{name: "unknown env", mutate: func(c *StructuredConfig) { c.App.Env = "qa" }, wantErr: ErrInvalidAppConfigs},
		{name: "bad log level", mutate: func(c *StructuredConfig) { c.App.LogLevel = "loud" }, wantErr: ErrInvalidAppConfigs},
		{name: "prefix without slash", mutate: func(c *StructuredConfig) { c.App.APIPrefix = "api" }, wantErr: ErrInvalidAppConfigs},
		{name: "sign key 31 chars", mutate: func(c *StructuredConfig) { c.Auth.TokenSignKey = testSignKey[:31] }, wantErr: ErrInvalidAuthConfigs},
		{name: "zero token duration", mutate: func(c *StructuredConfig) { c.Auth.TokenDuration = 0 }, wantErr: ErrInvalidAuthConfigs},
		{name: "zero cookie max age", mutate: func(c *StructuredConfig) { c.Auth.CookieMaxAge = 0 }, wantErr: ErrInvalidAuthConfigs},
		{name: "bad same site", mutate: func(c *StructuredConfig) { c.Auth.CookieSameSite = "sometimes" }, wantErr: ErrInvalidAuthConfigs},
		{name: "zero rate limit", mutate: func(c *StructuredConfig) { c.RateLimit.Limit = 0 }, wantErr: ErrInvalidRateLimitConfigs},
		{name: "missing dsn", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "missing address", mutate: func(c *StructuredConfig) { c.Server.HTTPAddress = "" }, wantErr: ErrInvalidServerConfigs},
		{name: "zero provider timeout", mutate: func(c *StructuredConfig) { c.Providers.HTTPTimeout = 0 }, wantErr: ErrInvalidProviderConfigs},
		{name: "relative tmdb url", mutate: func(c *StructuredConfig) { c.Providers.TMDB.APIURL = "/3" }, wantErr: ErrInvalidProviderConfigs},
		{name: "missing tmdb key", mutate: func(c *StructuredConfig) { c.Providers.TMDB.APIKey = "" }, wantErr: ErrInvalidProviderConfigs},
		{name: "missing trakt client", mutate: func(c *StructuredConfig) { c.Providers.Trakt.ClientID = "" }, wantErr: ErrInvalidProviderConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestApp_IsProduction(t *testing.T) {
	assert.True(t, App{Env: EnvProduction}.IsProduction())
	assert.False(t, App{Env: EnvDevelopment}.IsProduction())
}
