package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/streama/internal/config"
	"github.com/MKhiriev/streama/internal/logger"
	"github.com/MKhiriev/streama/internal/utils"
	"github.com/MKhiriev/streama/models"
)

const (
	traktDisplayName = "Trakt"
	traktAPIVersion  = "2"

	headerPaginationPage      = "X-Pagination-Page"
	headerPaginationPageCount = "X-Pagination-Page-Count"
	headerPaginationItemCount = "X-Pagination-Item-Count"
)

type traktAdapter struct {
	client   *utils.HTTPClient
	clientID string
	now      Clock

	logger *logger.Logger
}

// NewTraktAdapter constructs the Trakt-like [CatalogProvider]. Requests carry
// the trakt-api-key header: the per-request key when given, else
// cfg.Trakt.ClientID.
func NewTraktAdapter(cfg config.Providers, now Clock, log *logger.Logger) (CatalogProvider, error) {
	baseURL, err := normalizeBaseURL(cfg.Trakt.APIURL)
	if err != nil {
		return nil, fmt.Errorf("invalid trakt api url: %w", err)
	}

	return &traktAdapter{
		client:   utils.NewHTTPClient(baseURL, cfg.HTTPTimeout, cfg.HTTPMaxRedirects),
		clientID: cfg.Trakt.ClientID,
		now:      now,
		logger:   log,
	}, nil
}

func (t *traktAdapter) Name() string {
	return models.ProviderTrakt
}

// FetchList implements [CatalogProvider].
func (t *traktAdapter) FetchList(ctx context.Context, media models.MediaType, category models.Category, prefs models.Preferences, apiKey string) (models.Page, error) {
	endpoint, err := t.listEndpoint(media, category)
	if err != nil {
		return models.Page{}, err
	}

	return t.getPage(ctx, endpoint, t.params(prefs), apiKey)
}

// FetchDetails implements [CatalogProvider].
func (t *traktAdapter) FetchDetails(ctx context.Context, media models.MediaType, id string, prefs models.Preferences, apiKey string) (models.Details, error) {
	var endpoint string
	switch media {
	case models.MediaMovie:
		endpoint = "/movies/" + pathSegment(id)
	case models.MediaTV:
		endpoint = "/shows/" + pathSegment(id)
	default:
		return nil, fmt.Errorf("%w: %s details", ErrUnsupportedCategory, media)
	}

	body, _, err := t.get(ctx, endpoint, Params{"extended": "full"}, apiKey)
	if err != nil {
		return nil, err
	}

	if !json.Valid(body) {
		return nil, decodeError(traktDisplayName, fmt.Errorf("invalid json body"))
	}
	return models.Details(body), nil
}

// Search implements [CatalogProvider].
func (t *traktAdapter) Search(ctx context.Context, media models.MediaType, query string, prefs models.Preferences, apiKey string) (models.Page, error) {
	var endpoint string
	switch media {
	case models.MediaMovie:
		endpoint = "/search/movie"
	case models.MediaTV:
		endpoint = "/search/show"
	default:
		return models.Page{}, fmt.Errorf("%w: %s search", ErrUnsupportedCategory, media)
	}

	params := t.params(prefs)
	params["query"] = query

	return t.getPage(ctx, endpoint, params, apiKey)
}

func (t *traktAdapter) params(prefs models.Preferences) Params {
	return mergeParams(Params{"extended": "full"}, BuildTraktParams(prefs))
}

func (t *traktAdapter) listEndpoint(media models.MediaType, category models.Category) (string, error) {
	now := t.now()

	switch media {
	case models.MediaMovie:
		switch category {
		case models.CategoryTrending:
			return "/movies/trending", nil
		case models.CategoryPopular:
			return "/movies/popular", nil
		case models.CategoryTopRated:
			return "/movies/favorited/weekly", nil
		case models.CategoryNowPlaying:
			return fmt.Sprintf("/calendars/all/movies/%s/%d", formatDate(TraktRecentMoviesStart(now)), traktRecentMoviesDays), nil
		case models.CategoryUpcoming:
			return fmt.Sprintf("/calendars/all/movies/%s/%d", formatDate(now), traktUpcomingDays), nil
		}
	case models.MediaTV:
		switch category {
		case models.CategoryTrending:
			return "/shows/trending", nil
		case models.CategoryPopular:
			return "/shows/popular", nil
		case models.CategoryTopRated:
			return "/shows/favorited/weekly", nil
		case models.CategoryAiring:
			return fmt.Sprintf("/calendars/all/shows/%s/%d", formatDate(TraktAiringShowsStart(now)), traktAiringShowsDays), nil
		case models.CategoryUpcoming:
			return fmt.Sprintf("/calendars/all/shows/premieres/%s/%d", formatDate(now), traktUpcomingDays), nil
		}
	}

	return "", fmt.Errorf("%w: %s %s", ErrUnsupportedCategory, media, category)
}

func (t *traktAdapter) get(ctx context.Context, endpoint string, params Params, apiKey string) ([]byte, http.Header, error) {
	log := logger.FromContext(ctx)

	key := t.clientID
	if apiKey != "" {
		key = apiKey
	}

	resp, err := t.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("trakt-api-version", traktAPIVersion).
		SetHeader("trakt-api-key", key).
		SetQueryParams(params).
		Get(endpoint)
	if err != nil {
		log.Err(err).Str("func", "traktAdapter.get").Str("endpoint", endpoint).Msg("trakt request failed")
		return nil, nil, transportError(traktDisplayName, err)
	}

	if mapped := mapProviderError(traktDisplayName, endpoint, resp.StatusCode(), upstreamDetail(resp.Body(), "error")); mapped != nil {
		log.Warn().
			Str("func", "traktAdapter.get").
			Str("endpoint", endpoint).
			Int("status", resp.StatusCode()).
			Err(mapped).
			Msg("trakt answered with an error")
		return nil, nil, mapped
	}

	return resp.Body(), resp.Header(), nil
}

// getPage fetches a JSON array and builds the page envelope from the
// pagination headers. Missing headers default to a single page.
func (t *traktAdapter) getPage(ctx context.Context, endpoint string, params Params, apiKey string) (models.Page, error) {
	body, header, err := t.get(ctx, endpoint, params, apiKey)
	if err != nil {
		return models.Page{}, err
	}

	var results []json.RawMessage
	if err = json.Unmarshal(body, &results); err != nil {
		return models.Page{}, decodeError(traktDisplayName, err)
	}
	if results == nil {
		results = []json.RawMessage{}
	}

	requested, _ := strconv.Atoi(params["page"])

	return models.Page{
		Page:         headerInt(header, headerPaginationPage, max(requested, 1)),
		Results:      results,
		TotalPages:   headerInt(header, headerPaginationPageCount, 1),
		TotalResults: headerInt(header, headerPaginationItemCount, len(results)),
	}, nil
}

func headerInt(h http.Header, name string, fallback int) int {
	v, err := strconv.Atoi(h.Get(name))
	if err != nil {
		return fallback
	}
	return v
}
