package adapter

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/streama/models"
)

func newTestTrakt(t *testing.T, handler http.HandlerFunc) (CatalogProvider, *recordedRequest) {
	t.Helper()

	srv, rec := newUpstream(t, handler)
	p, err := NewTraktAdapter(testProvidersConfig("http://unused.test", srv.URL), fixedClock, nopLogger())
	require.NoError(t, err)

	return p, rec
}

func traktList(body string, pagination map[string]string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		for k, v := range pagination {
			w.Header().Set(k, v)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}
}

func TestNewTraktAdapter_Name(t *testing.T) {
	p, _ := newTestTrakt(t, traktList(`[]`, nil))
	assert.Equal(t, models.ProviderTrakt, p.Name())
}

func TestTrakt_FetchList_Endpoints(t *testing.T) {
	tests := []struct {
		name     string
		media    models.MediaType
		category models.Category
		wantPath string
	}{
		{"movie trending", models.MediaMovie, models.CategoryTrending, "/movies/trending"},
		{"movie popular", models.MediaMovie, models.CategoryPopular, "/movies/popular"},
		{"movie top rated", models.MediaMovie, models.CategoryTopRated, "/movies/favorited/weekly"},
		{"movie now playing", models.MediaMovie, models.CategoryNowPlaying, "/calendars/all/movies/2026-02-13/30"},
		{"movie upcoming", models.MediaMovie, models.CategoryUpcoming, "/calendars/all/movies/2026-03-15/30"},
		{"tv trending", models.MediaTV, models.CategoryTrending, "/shows/trending"},
		{"tv popular", models.MediaTV, models.CategoryPopular, "/shows/popular"},
		{"tv top rated", models.MediaTV, models.CategoryTopRated, "/shows/favorited/weekly"},
		{"tv airing", models.MediaTV, models.CategoryAiring, "/calendars/all/shows/2026-03-08/14"},
		{"tv upcoming", models.MediaTV, models.CategoryUpcoming, "/calendars/all/shows/premieres/2026-03-15/30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, rec := newTestTrakt(t, traktList(`[{"movie":{"title":"A"}}]`, nil))

			_, err := p.FetchList(context.Background(), tt.media, tt.category, models.Preferences{}, "")
			require.NoError(t, err)

			assert.Equal(t, tt.wantPath, rec.path)
			assert.Equal(t, "full", rec.query["extended"])
		})
	}
}

func TestTrakt_FetchList_UnsupportedCategory(t *testing.T) {
	p, _ := newTestTrakt(t, traktList(`[]`, nil))

	_, err := p.FetchList(context.Background(), models.MediaTV, models.CategoryNowPlaying, models.Preferences{}, "")
	assert.ErrorIs(t, err, ErrUnsupportedCategory)
}

func TestTrakt_FetchList_PaginationHeaders(t *testing.T) {
	p, _ := newTestTrakt(t, traktList(`[{"id":1},{"id":2},{"id":3}]`, map[string]string{
		"X-Pagination-Page":       "4",
		"X-Pagination-Page-Count": "9",
		"X-Pagination-Item-Count": "87",
	}))

	page, err := p.FetchList(context.Background(), models.MediaMovie, models.CategoryPopular, models.Preferences{}, "")
	require.NoError(t, err)

	assert.Equal(t, 4, page.Page)
	assert.Equal(t, 9, page.TotalPages)
	assert.Equal(t, 87, page.TotalResults)
	assert.Len(t, page.Results, 3)
}

func TestTrakt_FetchList_PaginationFallbacks(t *testing.T) {
	p, _ := newTestTrakt(t, traktList(`[{"id":1},{"id":2}]`, nil))

	pageNum := 3
	page, err := p.FetchList(context.Background(), models.MediaMovie, models.CategoryPopular, models.Preferences{Page: &pageNum}, "")
	require.NoError(t, err)

	assert.Equal(t, 3, page.Page)
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, 2, page.TotalResults)
}

func TestTrakt_OnlyPageIsForwarded(t *testing.T) {
	p, rec := newTestTrakt(t, traktList(`[]`, nil))

	lang, adult, pageNum := "de-DE", true, 2
	prefs := models.Preferences{Language: &lang, IncludeAdult: &adult, Page: &pageNum}

	_, err := p.FetchList(context.Background(), models.MediaTV, models.CategoryTrending, prefs, "")
	require.NoError(t, err)

	assert.Equal(t, "2", rec.query["page"])
	assert.NotContains(t, rec.query, "language")
	assert.NotContains(t, rec.query, "include_adult")
}

func TestTrakt_Headers(t *testing.T) {
	t.Run("default client id", func(t *testing.T) {
		p, rec := newTestTrakt(t, traktList(`[]`, nil))

		_, err := p.FetchList(context.Background(), models.MediaMovie, models.CategoryTrending, models.Preferences{}, "")
		require.NoError(t, err)

		assert.Equal(t, "2", rec.header.Get("trakt-api-version"))
		assert.Equal(t, "default-trakt-id", rec.header.Get("trakt-api-key"))
		assert.Equal(t, "application/json", rec.header.Get("Content-Type"))
	})

	t.Run("override key", func(t *testing.T) {
		p, rec := newTestTrakt(t, traktList(`[]`, nil))

		_, err := p.FetchList(context.Background(), models.MediaMovie, models.CategoryTrending, models.Preferences{}, "mine")
		require.NoError(t, err)
		assert.Equal(t, "mine", rec.header.Get("trakt-api-key"))
	})
}

func TestTrakt_ObjectBodyIsMalformed(t *testing.T) {
	p, _ := newTestTrakt(t, traktList(`{"not":"an array"}`, nil))

	_, err := p.FetchList(context.Background(), models.MediaMovie, models.CategoryTrending, models.Preferences{}, "")
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestTrakt_UpstreamErrorUsesErrorField(t *testing.T) {
	p, _ := newTestTrakt(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid page"}`))
	})

	_, err := p.Search(context.Background(), models.MediaTV, "x", models.Preferences{}, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRequest)

	var pe *ProviderError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "Invalid request to Trakt API: invalid page", pe.Message)
	assert.Equal(t, "Trakt", pe.Provider)
}

func TestTrakt_FetchDetails(t *testing.T) {
	p, rec := newTestTrakt(t, okJSON(`{"title":"Breaking Bad","ids":{"trakt":1}}`))

	details, err := p.FetchDetails(context.Background(), models.MediaTV, "breaking-bad", models.Preferences{}, "")
	require.NoError(t, err)

	assert.Equal(t, "/shows/breaking-bad", rec.path)
	assert.Equal(t, "full", rec.query["extended"])
	assert.Contains(t, string(details), "Breaking Bad")
}

func TestTrakt_Search(t *testing.T) {
	p, rec := newTestTrakt(t, traktList(`[{"type":"show"}]`, nil))

	page, err := p.Search(context.Background(), models.MediaTV, "breaking", models.Preferences{}, "")
	require.NoError(t, err)

	assert.Equal(t, "/search/show", rec.path)
	assert.Equal(t, "breaking", rec.query["query"])
	assert.Len(t, page.Results, 1)
}
