// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the external catalog providers.
//
// The primary abstraction is [CatalogProvider], which decouples the service
// layer from each provider's endpoints, credentials and error shapes. Two
// implementations ship: a TMDB-like adapter ([NewTMDBAdapter]) and a
// Trakt-like adapter ([NewTraktAdapter]).
//
// Every upstream failure is returned as a [*ProviderError] whose Kind is one
// of the sentinels in errors.go, so callers can use [errors.Is] without
// knowing which provider answered.
package adapter

import (
	"context"
	"time"

	"github.com/MKhiriev/streama/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/catalog_provider_mock.go -package=mock

// Clock returns the current time. Date windows of time-bound categories are
// computed from it.
type Clock func() time.Time

// CatalogProvider fetches catalog listings and titles from one upstream API.
//
// prefs carries only the caller's defined preferences; apiKey overrides the
// process-wide credential when non-empty.
type CatalogProvider interface {
	// Name returns the provider name accepted in catalog queries.
	Name() string

	// FetchList returns one page of the given category.
	// Unsupported media/category combinations yield ErrUnsupportedCategory.
	FetchList(ctx context.Context, media models.MediaType, category models.Category, prefs models.Preferences, apiKey string) (models.Page, error)

	// FetchDetails returns the provider payload of a single title unchanged.
	FetchDetails(ctx context.Context, media models.MediaType, id string, prefs models.Preferences, apiKey string) (models.Details, error)

	// Search returns one page of titles matching query.
	Search(ctx context.Context, media models.MediaType, query string, prefs models.Preferences, apiKey string) (models.Page, error)
}
