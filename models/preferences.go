package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// Preferences is the user's catalog preference sub-document.
// Every field is optional: only defined values are forwarded to providers.
type Preferences struct {
	Theme        *string `json:"theme,omitempty" validate:"omitempty,oneof=dark light system"`
	Language     *string `json:"language,omitempty" validate:"omitempty,bcp47_language_tag"`
	IncludeAdult *bool   `json:"include_adult,omitempty"`
	IncludeVideo *bool   `json:"include_video,omitempty"`
	Page         *int    `json:"page,omitempty" validate:"omitempty,min=1,max=500"`
	SortBy       *string `json:"sort_by,omitempty" validate:"omitempty,max=64"`
	Region       *string `json:"region,omitempty" validate:"omitempty,iso3166_1_alpha2"`
}

// DefaultPreferences returns the preferences stored for new accounts.
// Each call allocates fresh values.
func DefaultPreferences() Preferences {
	theme, language := "dark", "en-US"
	adult, video := false, false
	page := 1

	return Preferences{
		Theme:        &theme,
		Language:     &language,
		IncludeAdult: &adult,
		IncludeVideo: &video,
		Page:         &page,
	}
}

// MergePreferences returns primary with every undefined field taken from
// fallback. Defined fields of primary are never overwritten.
func MergePreferences(primary, fallback Preferences) (Preferences, error) {
	if err := mergo.Merge(&primary, fallback, mergo.WithoutDereference); err != nil {
		return Preferences{}, fmt.Errorf("error merging preferences: %w", err)
	}

	return primary, nil
}

// IsEmpty reports whether no field is defined.
func (p Preferences) IsEmpty() bool {
	return p == Preferences{}
}

// Value implements driver.Valuer, storing preferences as jsonb text.
func (p Preferences) Value() (driver.Value, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner for the jsonb column. NULL yields empty
// preferences.
func (p *Preferences) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*p = Preferences{}
		return nil
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	default:
		return errors.New("unsupported preferences column type")
	}
}
