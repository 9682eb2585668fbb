package http

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/streama/internal/adapter"
	"github.com/MKhiriev/streama/internal/service"
	"github.com/MKhiriev/streama/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// catalogRecorder returns services whose catalog fake records the last
// query it received.
func catalogRecorder(got *models.CatalogQuery) *service.Services {
	svcs := newTestServices()
	record := func(_ context.Context, q models.CatalogQuery) (models.Page, error) {
		*got = q
		return models.Page{Page: 1, Results: []json.RawMessage{json.RawMessage(`{"id":1}`)}, TotalPages: 1, TotalResults: 1}, nil
	}
	svcs.CatalogService = &fakeCatalogService{
		listFn:   record,
		searchFn: record,
		detailsFn: func(_ context.Context, q models.CatalogQuery) (models.Details, error) {
			*got = q
			return models.Details(`{"id":1}`), nil
		},
	}
	return svcs
}

// ─────────────────────────────────────────────
// listings
// ─────────────────────────────────────────────

func TestCatalogList_CategorySlugs(t *testing.T) {
	tests := []struct {
		path         string
		wantMedia    models.MediaType
		wantCategory models.Category
	}{
		{"/api/v1/movies/trending", models.MediaMovie, models.CategoryTrending},
		{"/api/v1/movies/popular", models.MediaMovie, models.CategoryPopular},
		{"/api/v1/movies/top-rated", models.MediaMovie, models.CategoryTopRated},
		{"/api/v1/movies/new", models.MediaMovie, models.CategoryNowPlaying},
		{"/api/v1/movies/upcoming", models.MediaMovie, models.CategoryUpcoming},
		{"/api/v1/tv/trending", models.MediaTV, models.CategoryTrending},
		{"/api/v1/tv/top-rated", models.MediaTV, models.CategoryTopRated},
		{"/api/v1/tv/new", models.MediaTV, models.CategoryAiring},
		{"/api/v1/tv/airing", models.MediaTV, models.CategoryAiring},
		{"/api/v1/tv/upcoming", models.MediaTV, models.CategoryUpcoming},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			var got models.CatalogQuery
			router := newTestHandler(t, catalogRecorder(&got), nil).Init()

			rec := serve(router, http.MethodGet, tt.path, "", "")

			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			assert.Equal(t, tt.wantMedia, got.Media)
			assert.Equal(t, tt.wantCategory, got.Category)
			assert.Empty(t, got.UserID)
		})
	}
}

func TestCatalogList_UnknownSlug(t *testing.T) {
	router := newTestHandler(t, nil, nil).Init()

	for _, path := range []string{"/api/v1/movies/airing", "/api/v1/movies/classics", "/api/v1/tv/now_playing"} {
		rec := serve(router, http.MethodGet, path, "", "")
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
	}
}

func TestCatalogList_QueryParameters(t *testing.T) {
	var got models.CatalogQuery
	router := newTestHandler(t, catalogRecorder(&got), nil).Init()

	rec := serve(router, http.MethodGet,
		"/api/v1/movies/popular?language=fr-FR&include_adult=true&include_video=false&page=3&sort_by=popularity.desc&region=FR&api_key=k&provider=trakt",
		"", "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "trakt", got.Provider)
	assert.Equal(t, "k", got.APIKey)
	require.NotNil(t, got.Preferences.Language)
	assert.Equal(t, "fr-FR", *got.Preferences.Language)
	require.NotNil(t, got.Preferences.IncludeAdult)
	assert.True(t, *got.Preferences.IncludeAdult)
	require.NotNil(t, got.Preferences.IncludeVideo)
	assert.False(t, *got.Preferences.IncludeVideo)
	require.NotNil(t, got.Preferences.Page)
	assert.Equal(t, 3, *got.Preferences.Page)
	assert.Equal(t, "popularity.desc", *got.Preferences.SortBy)
	assert.Equal(t, "FR", *got.Preferences.Region)
	assert.Nil(t, got.Preferences.Theme)
}

func TestCatalogList_AbsentParametersStayUndefined(t *testing.T) {
	var got models.CatalogQuery
	router := newTestHandler(t, catalogRecorder(&got), nil).Init()

	rec := serve(router, http.MethodGet, "/api/v1/movies/popular", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, got.Preferences.IsEmpty())
	assert.Empty(t, got.Provider)
}

func TestCatalogList_MalformedParameters(t *testing.T) {
	tests := []struct {
		query string
		field string
	}{
		{"include_adult=yes-please", "include_adult"},
		{"include_video=2", "include_video"},
		{"page=two", "page"},
		{"page=0", "page"},
		{"page=501", "page"},
		{"region=France", "region"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			router := newTestHandler(t, nil, nil).Init()

			rec := serve(router, http.MethodGet, "/api/v1/movies/popular?"+tt.query, "", "")

			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, decodeEnvelope(t, rec).Message, tt.field)
		})
	}
}

func TestCatalogList_OptionalAuth(t *testing.T) {
	var got models.CatalogQuery
	router := newTestHandler(t, catalogRecorder(&got), nil).Init()

	rec := serve(router, http.MethodGet, "/api/v1/movies/trending", "", userToken)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, testUser.ID, got.UserID)

	rec = serve(router, http.MethodGet, "/api/v1/movies/trending", "", "expired-token")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, got.UserID)
}

func TestCatalogList_ProviderErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "not found",
			err:        &adapter.ProviderError{Provider: "tmdb", Kind: adapter.ErrNotFound, Message: "TMDB: resource not found"},
			wantStatus: http.StatusNotFound,
			wantMsg:    "TMDB: resource not found",
		},
		{
			name:       "unavailable",
			err:        &adapter.ProviderError{Provider: "trakt", Kind: adapter.ErrServiceUnavailable, Message: "Trakt: service unavailable"},
			wantStatus: http.StatusServiceUnavailable,
			wantMsg:    "Trakt: service unavailable",
		},
		{
			name:       "rejected key",
			err:        &adapter.ProviderError{Provider: "tmdb", Kind: adapter.ErrUnauthorized, Message: "TMDB: invalid API key"},
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "TMDB: invalid API key",
		},
		{
			name:       "upstream failure",
			err:        &adapter.ProviderError{Provider: "tmdb", Kind: adapter.ErrUpstream, Message: "TMDB: upstream error"},
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "TMDB: upstream error",
		},
		{
			name:       "unknown provider",
			err:        fmt.Errorf("%w: %q", service.ErrUnknownProvider, "imdb"),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "unknown provider",
		},
		{
			name:       "unsupported category",
			err:        fmt.Errorf("%w: %w", service.ErrInvalidQuery, adapter.ErrUnsupportedCategory),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "invalid catalog query",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svcs := newTestServices()
			svcs.CatalogService = &fakeCatalogService{
				listFn: func(context.Context, models.CatalogQuery) (models.Page, error) {
					return models.Page{}, tt.err
				},
			}
			router := newTestHandler(t, svcs, nil).Init()

			rec := serve(router, http.MethodGet, "/api/v1/tv/popular", "", "")

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMsg, decodeEnvelope(t, rec).Message)
		})
	}
}

// ─────────────────────────────────────────────
// details / search
// ─────────────────────────────────────────────

func TestCatalogDetails(t *testing.T) {
	var got models.CatalogQuery
	router := newTestHandler(t, catalogRecorder(&got), nil).Init()

	rec := serve(router, http.MethodGet, "/api/v1/tv/details?id=1399&language=de-DE", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":1}`, rec.Body.String())
	assert.Equal(t, models.MediaTV, got.Media)
	assert.Equal(t, "1399", got.ID)
	assert.Equal(t, "de-DE", *got.Preferences.Language)
}

func TestCatalogSearch(t *testing.T) {
	var got models.CatalogQuery
	router := newTestHandler(t, catalogRecorder(&got), nil).Init()

	rec := serve(router, http.MethodGet, "/api/v1/movies/search?query=blade+runner&page=2", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.MediaMovie, got.Media)
	assert.Equal(t, "blade runner", got.Query)

	var page models.Page
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Len(t, page.Results, 1)
}

func TestCatalog_GzipResponse(t *testing.T) {
	router := newTestHandler(t, nil, nil).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/movies/trending", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))

	gr, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(gr)
	require.NoError(t, err)

	var page models.Page
	require.NoError(t, json.Unmarshal(body, &page))
	assert.Equal(t, 1, page.Page)
}
