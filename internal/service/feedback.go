package service

import (
	"context"
	"fmt"
	"time"

	"github.com/makarov-dev/movierec/internal/adapter"
	"github.com/makarov-dev/movierec/internal/catalog"
	"github.com/makarov-dev/movierec/internal/logger"
	"github.com/makarov-dev/movierec/internal/store"
	"github.com/makarov-dev/movierec/models"
)

// feedbackService is the concrete implementation of FeedbackService.
// It writes the rating to the local watchlist first and forwards it to the
// remote recommendation service second. A remote failure after the local
// write leaves the two stores inconsistent until the next reconciliation
// pass; that gap is accepted and reported, never masked by a rollback.
type feedbackService struct {
	profiles store.ProfileRepository
	remote   adapter.RemoteCatalog
	movies   catalog.MovieCatalog
	logger   *logger.Logger
}

// NewFeedbackService constructs a FeedbackService wired to the profile
// repository, the remote catalog gateway and the static movie catalog.
func NewFeedbackService(profiles store.ProfileRepository, remote adapter.RemoteCatalog, movies catalog.MovieCatalog, logger *logger.Logger) FeedbackService {
	return &feedbackService{
		profiles: profiles,
		remote:   remote,
		movies:   movies,
		logger:   logger,
	}
}

// SubmitFeedback implements FeedbackService.
//
// Validation happens before any mutation: an out-of-scale rating or an
// unknown movie id rejects the call without touching the store or the
// remote service. The watchlist upsert targets a single (profile, movie)
// entry, so concurrent feedback for different movies on the same profile
// does not interfere.
func (f *feedbackService) SubmitFeedback(ctx context.Context, profileID, movieID int64, rating float64) (models.FeedbackAck, error) {
	log := logger.FromContext(ctx)

	if rating < MinRating || rating > MaxRating {
		return models.FeedbackAck{}, ErrInvalidRating
	}
	if !f.movies.Has(movieID) {
		return models.FeedbackAck{}, ErrUnknownMovie
	}

	profile, err := f.profiles.GetProfileByID(ctx, profileID)
	if err != nil {
		return models.FeedbackAck{}, fmt.Errorf("load profile %d: %w", profileID, err)
	}

	entry := models.WatchlistEntry{
		MovieID: movieID,
		Rating:  rating,
		RatedAt: time.Now(),
	}
	if err = f.profiles.UpsertWatchlistEntry(ctx, profileID, entry); err != nil {
		return models.FeedbackAck{}, fmt.Errorf("upsert watchlist entry: %w", err)
	}

	ack, err := f.remote.SubmitFeedback(ctx, models.FeedbackEvent{
		UserID:  profile.MLUserID,
		MovieID: movieID,
		Rating:  rating,
	})
	if err != nil {
		// Local write stays; the next full sync reconciles the gap.
		log.Err(err).
			Int64("profileID", profileID).
			Int64("movieID", movieID).
			Msg("remote feedback forward failed after local write")
		return models.FeedbackAck{}, fmt.Errorf("forward feedback to remote: %w", err)
	}

	return ack, nil
}
