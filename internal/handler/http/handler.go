package http

import (
	"time"

	"github.com/MKhiriev/go-safe-keeper/internal/config"
	"github.com/MKhiriev/go-safe-keeper/internal/logger"
	"github.com/MKhiriev/go-safe-keeper/internal/service"
	"github.com/MKhiriev/go-safe-keeper/internal/utils"
)

type Handler struct {
	services *service.Services

	// authEnabled turns on bearer token checks for the safe routes. It is
	// set when a token sign key is configured.
	authEnabled    bool
	requestTimeout time.Duration
	traceIDs       *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Bool("auth_enabled", cfg.App.TokenSignKey != "").Msg("http handler created")
	return &Handler{
		services:       services,
		authEnabled:    cfg.App.TokenSignKey != "",
		requestTimeout: cfg.Server.RequestTimeout,
		traceIDs:       utils.NewUUIDGenerator(),
		logger:         logger,
	}
}
