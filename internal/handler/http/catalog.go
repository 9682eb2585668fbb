package http

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/MKhiriev/streama/internal/utils"
	"github.com/MKhiriev/streama/models"
	"github.com/go-chi/chi/v5"
)

// categorySlugs maps the public path segment of a listing to its category.
// "new" means in theatres for movies and on air for TV.
var categorySlugs = map[models.MediaType]map[string]models.Category{
	models.MediaMovie: {
		"trending":  models.CategoryTrending,
		"popular":   models.CategoryPopular,
		"top-rated": models.CategoryTopRated,
		"new":       models.CategoryNowPlaying,
		"upcoming":  models.CategoryUpcoming,
	},
	models.MediaTV: {
		"trending":  models.CategoryTrending,
		"popular":   models.CategoryPopular,
		"top-rated": models.CategoryTopRated,
		"new":       models.CategoryAiring,
		"airing":    models.CategoryAiring,
		"upcoming":  models.CategoryUpcoming,
	},
}

func (h *Handler) catalogList(media models.MediaType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category, ok := categorySlugs[media][chi.URLParam(r, "category")]
		if !ok {
			h.writeError(w, r, ErrRouteNotFound)
			return
		}

		query, err := h.catalogQuery(r, media)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		query.Category = category

		page, err := h.services.CatalogService.List(r.Context(), query)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		utils.WriteJSON(w, page, http.StatusOK)
	}
}

func (h *Handler) catalogDetails(media models.MediaType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query, err := h.catalogQuery(r, media)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		query.ID = r.URL.Query().Get("id")

		details, err := h.services.CatalogService.Details(r.Context(), query)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		utils.WriteJSON(w, details, http.StatusOK)
	}
}

func (h *Handler) catalogSearch(media models.MediaType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query, err := h.catalogQuery(r, media)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		query.Query = r.URL.Query().Get("query")

		page, err := h.services.CatalogService.Search(r.Context(), query)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		utils.WriteJSON(w, page, http.StatusOK)
	}
}

// catalogQuery builds the provider-independent part of a catalog request
// from the URL and the optional caller identity.
func (h *Handler) catalogQuery(r *http.Request, media models.MediaType) (models.CatalogQuery, error) {
	values := r.URL.Query()

	prefs, err := preferencesFromQuery(values)
	if err != nil {
		return models.CatalogQuery{}, err
	}
	if err := h.validator.Validate(r.Context(), &prefs); err != nil {
		return models.CatalogQuery{}, err
	}

	query := models.CatalogQuery{
		Provider:    values.Get("provider"),
		Media:       media,
		Preferences: prefs,
		APIKey:      values.Get("api_key"),
	}
	if caller, ok := utils.IdentityFromContext(r.Context()); ok {
		query.UserID = caller.ID
	}

	return query, nil
}

// preferencesFromQuery reads the preference overrides of a catalog request.
// Absent parameters stay undefined; malformed booleans and integers fail.
func preferencesFromQuery(values url.Values) (models.Preferences, error) {
	var prefs models.Preferences

	if v := values.Get("language"); v != "" {
		prefs.Language = &v
	}
	if v := values.Get("sort_by"); v != "" {
		prefs.SortBy = &v
	}
	if v := values.Get("region"); v != "" {
		prefs.Region = &v
	}

	flags := []struct {
		name string
		dst  **bool
	}{
		{"include_adult", &prefs.IncludeAdult},
		{"include_video", &prefs.IncludeVideo},
	}
	for _, flag := range flags {
		raw := values.Get(flag.name)
		if raw == "" {
			continue
		}
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return models.Preferences{}, invalidParam(flag.name, "must be a boolean")
		}
		*flag.dst = &b
	}

	if raw := values.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return models.Preferences{}, invalidParam("page", "must be an integer")
		}
		prefs.Page = &page
	}

	return prefs, nil
}
