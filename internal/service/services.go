package service

import (
	"fmt"

	"github.com/MKhiriev/go-safe-keeper/internal/config"
	"github.com/MKhiriev/go-safe-keeper/internal/logger"
	"github.com/MKhiriev/go-safe-keeper/internal/store"
	"github.com/MKhiriev/go-safe-keeper/models"
)

type Services struct {
	SafeRegistry   SafeRegistry
	FieldCodec     FieldCodec
	TokenService   TokenService
	AppInfoService AppInfoService
}

// NewServices wires the services on top of storages. cfg doubles as the
// [SecretProvider] of the safe registry.
func NewServices(storages *store.Storages, cfg config.App, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg, build, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	registry := NewSafeRegistry(storages.SafeRepository, cfg, logger)

	return &Services{
		SafeRegistry:   registry,
		FieldCodec:     NewFieldCodec(registry, logger),
		TokenService:   NewTokenService(cfg, logger),
		AppInfoService: appInfo,
	}, nil
}
