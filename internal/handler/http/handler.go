// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, logging and tracing concerns are all
// handled at this layer before requests are forwarded to the service layer.
package http

import (
	"github.com/makarov-dev/movierec/internal/logger"
	"github.com/makarov-dev/movierec/internal/service"
	"github.com/makarov-dev/movierec/internal/workers"
)

type Handler struct {
	services *service.Services
	syncJob  workers.SyncJob

	logger *logger.Logger
}

func NewHandler(services *service.Services, syncJob workers.SyncJob, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		syncJob:  syncJob,
		logger:   logger,
	}
}
