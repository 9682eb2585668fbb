package adapter

import (
	"net/url"
	"strconv"
	"strings"

	"dario.cat/mergo"
	"github.com/MKhiriev/streama/models"
)

// Params are upstream query parameters.
type Params map[string]string

// BuildTMDBParams forwards every defined preference. Page is forwarded only
// when positive.
func BuildTMDBParams(prefs models.Preferences) Params {
	params := Params{}

	if prefs.Language != nil && *prefs.Language != "" {
		params["language"] = *prefs.Language
	}
	if prefs.IncludeAdult != nil {
		params["include_adult"] = strconv.FormatBool(*prefs.IncludeAdult)
	}
	if prefs.IncludeVideo != nil {
		params["include_video"] = strconv.FormatBool(*prefs.IncludeVideo)
	}
	if prefs.Page != nil && *prefs.Page > 0 {
		params["page"] = strconv.Itoa(*prefs.Page)
	}
	if prefs.SortBy != nil && *prefs.SortBy != "" {
		params["sort_by"] = *prefs.SortBy
	}
	if prefs.Region != nil && *prefs.Region != "" {
		params["region"] = *prefs.Region
	}

	return params
}

// BuildTraktParams forwards the page only; Trakt has no language, adult or
// video filters.
func BuildTraktParams(prefs models.Preferences) Params {
	params := Params{}
	if prefs.Page != nil && *prefs.Page > 0 {
		params["page"] = strconv.Itoa(*prefs.Page)
	}
	return params
}

// mergeParams applies user on top of base. Neither input is modified and
// user values win on key collision.
func mergeParams(base, user Params) Params {
	merged := make(Params, len(base)+len(user))
	_ = mergo.Merge(&merged, base)
	_ = mergo.Merge(&merged, user, mergo.WithOverride)
	return merged
}

// pathSegment escapes a caller-supplied id for use in an endpoint path.
func pathSegment(id string) string {
	return url.PathEscape(strings.TrimSpace(id))
}
