package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/streama/internal/config"
	"github.com/MKhiriev/streama/internal/logger"
	"github.com/MKhiriev/streama/internal/utils"
	"github.com/MKhiriev/streama/models"
)

const tmdbDisplayName = "TMDB"

type tmdbAdapter struct {
	client *utils.HTTPClient
	apiKey string
	now    Clock

	logger *logger.Logger
}

// NewTMDBAdapter constructs the TMDB-like [CatalogProvider]. The client
// authenticates with a bearer token: the per-request key when given, else
// cfg.TMDB.APIKey.
func NewTMDBAdapter(cfg config.Providers, now Clock, log *logger.Logger) (CatalogProvider, error) {
	baseURL, err := normalizeBaseURL(cfg.TMDB.APIURL)
	if err != nil {
		return nil, fmt.Errorf("invalid tmdb api url: %w", err)
	}

	return &tmdbAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.HTTPTimeout, cfg.HTTPMaxRedirects),
		apiKey: cfg.TMDB.APIKey,
		now:    now,
		logger: log,
	}, nil
}

func (t *tmdbAdapter) Name() string {
	return models.ProviderTMDB
}

// FetchList implements [CatalogProvider]. Base filters of the category are
// applied first and the caller's preferences override them.
func (t *tmdbAdapter) FetchList(ctx context.Context, media models.MediaType, category models.Category, prefs models.Preferences, apiKey string) (models.Page, error) {
	endpoint, base, err := t.listEndpoint(media, category)
	if err != nil {
		return models.Page{}, err
	}

	body, err := t.get(ctx, endpoint, mergeParams(base, BuildTMDBParams(prefs)), apiKey)
	if err != nil {
		return models.Page{}, err
	}

	return t.decodePage(body)
}

// FetchDetails implements [CatalogProvider].
func (t *tmdbAdapter) FetchDetails(ctx context.Context, media models.MediaType, id string, prefs models.Preferences, apiKey string) (models.Details, error) {
	var endpoint string
	switch media {
	case models.MediaMovie:
		endpoint = "/movie/" + pathSegment(id)
	case models.MediaTV:
		endpoint = "/tv/" + pathSegment(id)
	default:
		return nil, fmt.Errorf("%w: %s details", ErrUnsupportedCategory, media)
	}

	body, err := t.get(ctx, endpoint, BuildTMDBParams(prefs), apiKey)
	if err != nil {
		return nil, err
	}

	if !json.Valid(body) {
		return nil, decodeError(tmdbDisplayName, fmt.Errorf("invalid json body"))
	}
	return models.Details(body), nil
}

// Search implements [CatalogProvider].
func (t *tmdbAdapter) Search(ctx context.Context, media models.MediaType, query string, prefs models.Preferences, apiKey string) (models.Page, error) {
	var endpoint string
	switch media {
	case models.MediaMovie:
		endpoint = "/search/movie"
	case models.MediaTV:
		endpoint = "/search/tv"
	default:
		return models.Page{}, fmt.Errorf("%w: %s search", ErrUnsupportedCategory, media)
	}

	params := BuildTMDBParams(prefs)
	params["query"] = query

	body, err := t.get(ctx, endpoint, params, apiKey)
	if err != nil {
		return models.Page{}, err
	}

	return t.decodePage(body)
}

// listEndpoint returns the endpoint and base filters of a category.
func (t *tmdbAdapter) listEndpoint(media models.MediaType, category models.Category) (string, Params, error) {
	now := t.now()

	switch media {
	case models.MediaMovie:
		switch category {
		case models.CategoryTrending:
			return "/trending/movie/week", nil, nil
		case models.CategoryPopular:
			return "/discover/movie", nil, nil
		case models.CategoryTopRated:
			return "/discover/movie", Params{
				"sort_by":        "vote_average.desc",
				"without_genres": "99,10755",
				"vote_count.gte": "200",
			}, nil
		case models.CategoryNowPlaying:
			w := NowPlayingWindow(now)
			return "/discover/movie", Params{
				"with_release_type": "2|3",
				"release_date.gte":  w.FromDate(),
				"release_date.lte":  w.ToDate(),
			}, nil
		case models.CategoryUpcoming:
			w := UpcomingMoviesWindow(now)
			return "/discover/movie", Params{
				"with_release_type": "2|3",
				"release_date.gte":  w.FromDate(),
				"release_date.lte":  w.ToDate(),
			}, nil
		}
	case models.MediaTV:
		switch category {
		case models.CategoryTrending:
			return "/trending/tv/week", nil, nil
		case models.CategoryPopular:
			return "/discover/tv", nil, nil
		case models.CategoryTopRated:
			return "/discover/tv", Params{
				"sort_by":        "vote_average.desc",
				"vote_count.gte": "200",
			}, nil
		case models.CategoryAiring:
			w := AiringWindow(now)
			return "/discover/tv", Params{
				"air_date.gte": w.FromDate(),
				"air_date.lte": w.ToDate(),
			}, nil
		case models.CategoryUpcoming:
			return "/discover/tv", Params{
				"first_air_date.gte": formatDate(now),
				"sort_by":            "first_air_date.asc",
			}, nil
		}
	}

	return "", nil, fmt.Errorf("%w: %s %s", ErrUnsupportedCategory, media, category)
}

func (t *tmdbAdapter) get(ctx context.Context, endpoint string, params Params, apiKey string) ([]byte, error) {
	log := logger.FromContext(ctx)

	key := t.apiKey
	if apiKey != "" {
		key = apiKey
	}

	resp, err := t.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+key).
		SetHeader("Accept", "application/json").
		SetQueryParams(params).
		Get(endpoint)
	if err != nil {
		log.Err(err).Str("func", "tmdbAdapter.get").Str("endpoint", endpoint).Msg("tmdb request failed")
		return nil, transportError(tmdbDisplayName, err)
	}

	if mapped := mapProviderError(tmdbDisplayName, endpoint, resp.StatusCode(), upstreamDetail(resp.Body(), "status_message")); mapped != nil {
		log.Warn().
			Str("func", "tmdbAdapter.get").
			Str("endpoint", endpoint).
			Int("status", resp.StatusCode()).
			Err(mapped).
			Msg("tmdb answered with an error")
		return nil, mapped
	}

	return resp.Body(), nil
}

func (t *tmdbAdapter) decodePage(body []byte) (models.Page, error) {
	var page models.Page
	if err := json.Unmarshal(body, &page); err != nil {
		return models.Page{}, decodeError(tmdbDisplayName, err)
	}
	if page.Results == nil {
		page.Results = []json.RawMessage{}
	}
	return page, nil
}
