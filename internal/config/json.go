package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		Env       string `json:"env"`
		Name      string `json:"name"`
		Version   string `json:"version"`
		APIPrefix string `json:"api_prefix"`
		LogLevel  string `json:"log_level"`
	} `json:"app,omitempty"`

	Auth struct {
		TokenSignKey   string   `json:"token_sign_key"`
		TokenIssuer    string   `json:"token_issuer"`
		TokenDuration  Duration `json:"token_duration"`
		CookieName     string   `json:"cookie_name"`
		CookieMaxAge   Duration `json:"cookie_max_age"`
		CookieSameSite string   `json:"cookie_same_site"`
	} `json:"auth,omitempty"`

	RateLimit struct {
		Window Duration `json:"window"`
		Limit  int      `json:"limit"`
	} `json:"rate_limit,omitempty"`

	Storage struct {
		DB struct {
			DSN          string `json:"dsn"`
			MaxOpenConns int    `json:"max_open_conns"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
		CORSOrigins     []string `json:"cors_origins"`
	} `json:"server,omitempty"`

	Providers struct {
		HTTPTimeout      Duration `json:"http_timeout"`
		HTTPMaxRedirects int      `json:"http_max_redirects"`
		TMDB             struct {
			APIURL   string `json:"api_url"`
			APIKey   string `json:"api_key"`
			ImageURL string `json:"image_url"`
		} `json:"tmdb,omitempty"`
		Trakt struct {
			APIURL       string `json:"api_url"`
			ClientID     string `json:"client_id"`
			ClientSecret string `json:"client_secret"`
		} `json:"trakt,omitempty"`
	} `json:"providers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Env:       jsonCfg.App.Env,
			Name:      jsonCfg.App.Name,
			Version:   jsonCfg.App.Version,
			APIPrefix: jsonCfg.App.APIPrefix,
			LogLevel:  jsonCfg.App.LogLevel,
		},
		Auth: Auth{
			TokenSignKey:   jsonCfg.Auth.TokenSignKey,
			TokenIssuer:    jsonCfg.Auth.TokenIssuer,
			TokenDuration:  time.Duration(jsonCfg.Auth.TokenDuration),
			CookieName:     jsonCfg.Auth.CookieName,
			CookieMaxAge:   time.Duration(jsonCfg.Auth.CookieMaxAge),
			CookieSameSite: jsonCfg.Auth.CookieSameSite,
		},
		RateLimit: RateLimit{
			Window: time.Duration(jsonCfg.RateLimit.Window),
			Limit:  jsonCfg.RateLimit.Limit,
		},
		Storage: Storage{
			DB: DB{
				DSN:          jsonCfg.Storage.DB.DSN,
				MaxOpenConns: jsonCfg.Storage.DB.MaxOpenConns,
			},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
			CORSOrigins:     jsonCfg.Server.CORSOrigins,
		},
		Providers: Providers{
			HTTPTimeout:      time.Duration(jsonCfg.Providers.HTTPTimeout),
			HTTPMaxRedirects: jsonCfg.Providers.HTTPMaxRedirects,
			TMDB: TMDB{
				APIURL:   jsonCfg.Providers.TMDB.APIURL,
				APIKey:   jsonCfg.Providers.TMDB.APIKey,
				ImageURL: jsonCfg.Providers.TMDB.ImageURL,
			},
			Trakt: Trakt{
				APIURL:       jsonCfg.Providers.Trakt.APIURL,
				ClientID:     jsonCfg.Providers.Trakt.ClientID,
				ClientSecret: jsonCfg.Providers.Trakt.ClientSecret,
			},
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
