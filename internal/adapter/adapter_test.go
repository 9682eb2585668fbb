package adapter

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/streama/internal/config"
	"github.com/MKhiriev/streama/internal/logger"
)

// fixedNow is the clock every adapter test runs on.
var fixedNow = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

type recordedRequest struct {
	path   string
	query  map[string]string
	header http.Header
}

// newUpstream starts a test server answering every request with handler and
// records the last request it saw.
func newUpstream(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *recordedRequest) {
	t.Helper()

	rec := &recordedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.path = r.URL.EscapedPath()
		rec.query = map[string]string{}
		for k, v := range r.URL.Query() {
			rec.query[k] = v[0]
		}
		rec.header = r.Header.Clone()
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	return srv, rec
}

func testProvidersConfig(tmdbURL, traktURL string) config.Providers {
	return config.Providers{
		HTTPTimeout:      time.Second,
		HTTPMaxRedirects: 2,
		TMDB: config.TMDB{
			APIURL: tmdbURL,
			APIKey: "default-tmdb-key",
		},
		Trakt: config.Trakt{
			APIURL:   traktURL,
			ClientID: "default-trakt-id",
		},
	}
}

func nopLogger() *logger.Logger {
	return logger.Nop()
}
