package service

import (
	"github.com/MKhiriev/streama/internal/adapter"
	"github.com/MKhiriev/streama/internal/config"
	"github.com/MKhiriev/streama/internal/crypto"
	"github.com/MKhiriev/streama/internal/logger"
	"github.com/MKhiriev/streama/internal/store"
	"github.com/MKhiriev/streama/internal/utils"
	"github.com/MKhiriev/streama/models"
)

type Services struct {
	AuthService    AuthService
	UserService    UserService
	CatalogService CatalogService
	HealthService  HealthService
}

func NewServices(
	storages *store.Storages,
	providers []adapter.CatalogProvider,
	hasher crypto.PasswordHasher,
	cfg *config.StructuredConfig,
	build models.AppBuildInfo,
	logger *logger.Logger,
) (*Services, error) {
	health, err := NewHealthService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	ids := utils.NewUUIDGenerator()

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, hasher, ids, cfg.Auth, logger),
		UserService:    NewUserService(storages.UserRepository, hasher, ids, logger),
		CatalogService: NewCatalogService(storages.UserRepository, logger, providers...),
		HealthService:  health,
	}, nil
}
