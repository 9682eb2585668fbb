package main

import (
	"context"
	"os"
	"time"

	"github.com/MKhiriev/streama/internal/adapter"
	"github.com/MKhiriev/streama/internal/config"
	"github.com/MKhiriev/streama/internal/crypto"
	"github.com/MKhiriev/streama/internal/handler"
	"github.com/MKhiriev/streama/internal/logger"
	"github.com/MKhiriev/streama/internal/server"
	"github.com/MKhiriev/streama/internal/service"
	"github.com/MKhiriev/streama/internal/store"
	"github.com/MKhiriev/streama/internal/validators"
	"github.com/MKhiriev/streama/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// startupTimeout bounds connecting to and migrating the database.
const startupTimeout = 30 * time.Second

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	log := logger.NewLogger("streama-api")
	log.Info().Object("build", build).Msg("starting")

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err := logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		cancel()
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	err = db.Migrate(ctx)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	hasher := crypto.NewArgon2Hasher(crypto.DefaultHashParams())
	storages := store.NewStorages(db, hasher, log)

	providers, err := newProviders(cfg.Providers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating catalog providers")
	}

	services, err := service.NewServices(storages, providers, hasher, cfg, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, validators.NewRequestValidator(), cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func newProviders(cfg config.Providers, log *logger.Logger) ([]adapter.CatalogProvider, error) {
	tmdb, err := adapter.NewTMDBAdapter(cfg, time.Now, log)
	if err != nil {
		return nil, err
	}

	trakt, err := adapter.NewTraktAdapter(cfg, time.Now, log)
	if err != nil {
		return nil, err
	}

	return []adapter.CatalogProvider{tmdb, trakt}, nil
}
