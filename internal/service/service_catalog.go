package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/streama/internal/adapter"
	"github.com/MKhiriev/streama/internal/logger"
	"github.com/MKhiriev/streama/internal/store"
	"github.com/MKhiriev/streama/models"
)

// catalogService resolves the provider, preferences and credentials of a
// catalog query and forwards it to the matching adapter.
type catalogService struct {
	providers       map[string]adapter.CatalogProvider
	defaultProvider string

	users store.UserRepository

	logger *logger.Logger
}

// NewCatalogService registers providers by their Name. Queries without a
// provider go to TMDB.
func NewCatalogService(users store.UserRepository, logger *logger.Logger, providers ...adapter.CatalogProvider) CatalogService {
	registry := make(map[string]adapter.CatalogProvider, len(providers))
	for _, p := range providers {
		registry[p.Name()] = p
	}

	return &catalogService{
		providers:       registry,
		defaultProvider: models.ProviderTMDB,
		users:           users,
		logger:          logger,
	}
}

func (s *catalogService) List(ctx context.Context, query models.CatalogQuery) (models.Page, error) {
	p, prefs, apiKey, err := s.resolve(ctx, query)
	if err != nil {
		return models.Page{}, err
	}

	page, err := p.FetchList(ctx, query.Media, query.Category, prefs, apiKey)
	if err != nil {
		return models.Page{}, s.providerError(ctx, "catalogService.List", p.Name(), err)
	}
	return page, nil
}

func (s *catalogService) Details(ctx context.Context, query models.CatalogQuery) (models.Details, error) {
	if strings.TrimSpace(query.ID) == "" {
		return nil, fmt.Errorf("%w: id is required", ErrInvalidQuery)
	}

	p, prefs, apiKey, err := s.resolve(ctx, query)
	if err != nil {
		return nil, err
	}

	details, err := p.FetchDetails(ctx, query.Media, query.ID, prefs, apiKey)
	if err != nil {
		return nil, s.providerError(ctx, "catalogService.Details", p.Name(), err)
	}
	return details, nil
}

func (s *catalogService) Search(ctx context.Context, query models.CatalogQuery) (models.Page, error) {
	if strings.TrimSpace(query.Query) == "" {
		return models.Page{}, fmt.Errorf("%w: query is required", ErrInvalidQuery)
	}

	p, prefs, apiKey, err := s.resolve(ctx, query)
	if err != nil {
		return models.Page{}, err
	}

	page, err := p.Search(ctx, query.Media, query.Query, prefs, apiKey)
	if err != nil {
		return models.Page{}, s.providerError(ctx, "catalogService.Search", p.Name(), err)
	}
	return page, nil
}

// resolve picks the provider and computes effective preferences and key.
//
// Stored preferences of an authenticated caller fill only the fields the
// query left undefined. The key is taken from the query, else from the
// caller's stored key for that provider, else left empty so the adapter
// falls back to the process default.
func (s *catalogService) resolve(ctx context.Context, query models.CatalogQuery) (adapter.CatalogProvider, models.Preferences, string, error) {
	name := strings.ToLower(strings.TrimSpace(query.Provider))
	if name == "" {
		name = s.defaultProvider
	}

	p, ok := s.providers[name]
	if !ok {
		return nil, models.Preferences{}, "", fmt.Errorf("%w: %q", ErrUnknownProvider, query.Provider)
	}

	prefs, apiKey := query.Preferences, query.APIKey
	if query.UserID == "" {
		return p, prefs, apiKey, nil
	}

	user, err := s.users.FindByID(ctx, query.UserID, models.FindOptions{})
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		return p, prefs, apiKey, nil
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("func", "catalogService.resolve").Str("user_id", query.UserID).Msg("failed to load caller")
		return nil, models.Preferences{}, "", err
	}

	prefs, err = models.MergePreferences(prefs, user.Preferences)
	if err != nil {
		return nil, models.Preferences{}, "", err
	}

	if apiKey == "" {
		apiKey = storedProviderKey(user, p.Name())
	}

	return p, prefs, apiKey, nil
}

func (s *catalogService) providerError(ctx context.Context, funcName, provider string, err error) error {
	if errors.Is(err, adapter.ErrUnsupportedCategory) {
		return fmt.Errorf("%w: %w", ErrInvalidQuery, err)
	}

	logger.FromContext(ctx).Warn().Err(err).Str("func", funcName).Str("provider", provider).Msg("provider call failed")
	return err
}

func storedProviderKey(user models.User, provider string) string {
	var key *string
	switch provider {
	case models.ProviderTMDB:
		key = user.TMDBKey
	case models.ProviderTrakt:
		key = user.TraktKey
	}

	if key == nil {
		return ""
	}
	return *key
}
