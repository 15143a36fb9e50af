package http

import (
	"github.com/avelasco/noteboard/internal/config"
	"github.com/avelasco/noteboard/internal/logger"
	"github.com/avelasco/noteboard/internal/service"
)

type Handler struct {
	services *service.Services

	// appCfg carries the dev-mode and error-logging toggles consumed by the
	// error responder.
	appCfg config.App

	logger *logger.Logger
}

func NewHandler(services *service.Services, appCfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		appCfg:   appCfg,
		logger:   logger,
	}
}
