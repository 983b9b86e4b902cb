package service

import (
	"github.com/makarov-dev/movierec/internal/adapter"
	"github.com/makarov-dev/movierec/internal/catalog"
	"github.com/makarov-dev/movierec/internal/config"
	"github.com/makarov-dev/movierec/internal/logger"
	"github.com/makarov-dev/movierec/internal/store"
)

type Services struct {
	AuthService           AuthService
	SyncService           SyncService
	FeedbackService       FeedbackService
	RecommendationService RecommendationService
}

func NewServices(storages *store.Storages, remote adapter.RemoteCatalog, movies catalog.MovieCatalog, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:           NewAuthService(storages.Profiles, remote, cfg.App, logger),
		SyncService:           NewSyncService(storages.Profiles, remote, logger),
		FeedbackService:       NewFeedbackService(storages.Profiles, remote, movies, logger),
		RecommendationService: NewRecommendationService(storages.Profiles, remote, movies, logger),
	}
}
