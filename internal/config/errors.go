package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid. Each is wrapped with the
// offending field.
var (
	// ErrInvalidAppConfigs indicates an unknown runtime environment or log level.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidAuthConfigs indicates a missing or short token sign key,
	// non-positive token or cookie lifetimes, or an unknown SameSite mode.
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrInvalidRateLimitConfigs indicates a non-positive window or limit.
	ErrInvalidRateLimitConfigs = errors.New("invalid rate limit configuration")
	// ErrInvalidStorageConfigs indicates a missing database DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates a missing listen address or
	// non-positive timeouts.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidProviderConfigs indicates missing provider URLs or
	// credentials, or invalid outbound HTTP limits.
	ErrInvalidProviderConfigs = errors.New("invalid provider configuration")
)
