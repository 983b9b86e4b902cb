package service

import (
	"context"
	"fmt"

	"github.com/makarov-dev/movierec/internal/adapter"
	"github.com/makarov-dev/movierec/internal/catalog"
	"github.com/makarov-dev/movierec/internal/logger"
	"github.com/makarov-dev/movierec/internal/store"
	"github.com/makarov-dev/movierec/models"
)

// recommendationService is the concrete implementation of
// RecommendationService. It resolves the profile's external key, queries the
// remote recommendation service and decorates raw movie ids with titles from
// the static catalog.
type recommendationService struct {
	profiles store.ProfileRepository
	remote   adapter.RemoteCatalog
	movies   catalog.MovieCatalog
	logger   *logger.Logger
}

// NewRecommendationService constructs a RecommendationService.
func NewRecommendationService(profiles store.ProfileRepository, remote adapter.RemoteCatalog, movies catalog.MovieCatalog, logger *logger.Logger) RecommendationService {
	return &recommendationService{
		profiles: profiles,
		remote:   remote,
		movies:   movies,
		logger:   logger,
	}
}

// GetRecommendations implements RecommendationService.
// An empty recommendation set is a valid answer, not an error.
func (r *recommendationService) GetRecommendations(ctx context.Context, profileID int64) ([]models.RecommendedItem, error) {
	profile, err := r.profiles.GetProfileByID(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("load profile %d: %w", profileID, err)
	}

	movieIDs, err := r.remote.Recommend(ctx, profile.MLUserID)
	if err != nil {
		return nil, fmt.Errorf("fetch recommendations for user %d: %w", profile.MLUserID, err)
	}

	items := make([]models.RecommendedItem, 0, len(movieIDs))
	for _, movieID := range movieIDs {
		items = append(items, models.RecommendedItem{
			MovieID: movieID,
			Title:   r.movies.Title(movieID),
		})
	}

	return items, nil
}

// GetWatchlist implements RecommendationService.
func (r *recommendationService) GetWatchlist(ctx context.Context, profileID int64) ([]models.WatchlistItemView, error) {
	entries, err := r.profiles.GetWatchlist(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("load watchlist for profile %d: %w", profileID, err)
	}

	views := make([]models.WatchlistItemView, 0, len(entries))
	for _, entry := range entries {
		views = append(views, models.WatchlistItemView{
			MovieID: entry.MovieID,
			Title:   r.movies.Title(entry.MovieID),
			Rating:  entry.Rating,
			RatedAt: entry.RatedAt,
		})
	}

	return views, nil
}
