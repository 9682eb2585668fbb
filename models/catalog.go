package models

import "encoding/json"

// MediaType selects the catalog section a request targets.
type MediaType string

const (
	MediaMovie MediaType = "movie"
	MediaTV    MediaType = "tv"
)

// Category is a provider-independent catalog listing.
type Category string

const (
	CategoryTrending   Category = "trending"
	CategoryPopular    Category = "popular"
	CategoryTopRated   Category = "top_rated"
	CategoryNowPlaying Category = "now_playing"
	CategoryUpcoming   Category = "upcoming"
	CategoryAiring     Category = "airing"
)

// Provider names accepted in catalog queries.
const (
	ProviderTMDB  = "tmdb"
	ProviderTrakt = "trakt"
)

// Page is the paginated list envelope returned by catalog listings.
// Results are kept as raw JSON so provider items pass through unchanged.
type Page struct {
	Page         int               `json:"page"`
	Results      []json.RawMessage `json:"results"`
	TotalPages   int               `json:"total_pages"`
	TotalResults int               `json:"total_results"`
}

// Details is a single title payload as returned by the provider.
type Details = json.RawMessage

// CatalogQuery describes one catalog request after HTTP decoding.
type CatalogQuery struct {
	// Provider is the adapter name; empty selects the default provider.
	Provider string
	Media    MediaType
	Category Category

	// ID is the provider title id for details requests.
	ID string
	// Query is the search text for search requests.
	Query string

	Preferences Preferences

	// APIKey explicitly overrides provider credentials for this request.
	APIKey string
	// UserID is set when the caller is authenticated; stored preferences
	// and provider keys of that user are applied.
	UserID string
}
