package service

import (
	"github.com/MKhiriev/vip-motors/internal/adapter"
	"github.com/MKhiriev/vip-motors/internal/config"
	"github.com/MKhiriev/vip-motors/internal/crypto"
	"github.com/MKhiriev/vip-motors/internal/logger"
	"github.com/MKhiriev/vip-motors/internal/media"
	"github.com/MKhiriev/vip-motors/internal/store"
	"github.com/MKhiriev/vip-motors/models"
)

type Services struct {
	AuthService      AuthService
	UserService      UserService
	HypercarService  HypercarService
	DashboardService DashboardService
	MediaService     MediaService
	AppInfoService   AppInfoService
}

// Dependencies are the adapters the services are built on. Presigner may be
// nil when image uploads are not configured.
type Dependencies struct {
	Storages  *store.Storages
	Hasher    crypto.PasswordHasher
	Notifier  adapter.Notifier
	Presigner media.Presigner
	Build     models.AppBuildInfo
}

func NewServices(deps Dependencies, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	accounts := deps.Storages.AccountRepository
	hypercars := deps.Storages.HypercarRepository

	appInfo, err := NewAppInfoService(cfg.App, deps.Build, logger)
	if err != nil {
		return nil, err
	}

	authService := NewAuthService(accounts, deps.Hasher, deps.Notifier, NewTokenIssuer(cfg.Auth), cfg.Auth, cfg.App, logger)
	userService := NewUserService(accounts, hypercars, logger)

	return &Services{
		AuthService:      NewAuthValidationService().Wrap(authService),
		UserService:      NewUserValidationService().Wrap(userService),
		HypercarService:  NewHypercarService(hypercars, logger),
		DashboardService: NewDashboardService(accounts, hypercars, logger),
		MediaService:     NewMediaService(hypercars, deps.Presigner, cfg.Media, logger),
		AppInfoService:   appInfo,
	}, nil
}
