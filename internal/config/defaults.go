package config

import "time"

// defaultConfig returns the baseline every other source is merged over.
// Secrets, the DSN and provider credentials have no defaults.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Env:       EnvDevelopment,
			Name:      "streama-api",
			Version:   "0.1.0",
			APIPrefix: "/api/v1",
			LogLevel:  "debug",
		},
		Auth: Auth{
			TokenIssuer:    "streama-api",
			TokenDuration:  24 * time.Hour,
			CookieName:     "token",
			CookieMaxAge:   24 * time.Hour,
			CookieSameSite: "strict",
		},
		RateLimit: RateLimit{
			Window: time.Minute,
			Limit:  100,
		},
		Storage: Storage{
			DB: DB{MaxOpenConns: 10},
		},
		Server: Server{
			HTTPAddress:     ":3000",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			CORSOrigins:     []string{"http://localhost:5173"},
		},
		Providers: Providers{
			HTTPTimeout:      5 * time.Second,
			HTTPMaxRedirects: 5,
			TMDB: TMDB{
				APIURL:   "https://api.themoviedb.org/3",
				ImageURL: "https://image.tmdb.org/t/p",
			},
			Trakt: Trakt{
				APIURL: "https://api.trakt.tv",
			},
		},
		EnvFilePath: ".env",
	}
}
