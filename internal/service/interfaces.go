package service

import (
	"context"

	"github.com/makarov-dev/movierec/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

// SyncService reconciles the local profile store against the remote
// recommendation service. Users are reconciled before ratings so that
// watchlist merges find their target profiles.
type SyncService interface {
	// SyncUsers pulls the full remote user snapshot and upserts every record
	// into the profile store. Per-record failures are aggregated into one
	// warn log and do not abort sibling records; only a snapshot fetch
	// failure is returned, aborting the phase. Returns the number of upserts
	// attempted.
	SyncUsers(ctx context.Context) (int, error)

	// SyncRatings pulls the full remote rating snapshot, deduplicates it to
	// at most one rating per (user, movie) pair with the last occurrence
	// winning, and merges each user's set into their watchlist. Merges for
	// users with no local profile are counted as deferred, never created.
	// Returns the number of merges attempted and the number deferred.
	SyncRatings(ctx context.Context) (ratings, deferred int, err error)

	// FullSync runs SyncUsers then SyncRatings as one pass. Concurrent calls
	// collapse into a single in-flight run whose result all callers share.
	FullSync(ctx context.Context) models.SyncResult
}

// FeedbackService is the dual-write path for user ratings: local watchlist
// first, remote recommendation service second.
type FeedbackService interface {
	// SubmitFeedback validates the movie against the catalog, upserts the
	// profile's watchlist entry and forwards the event to the remote
	// service. The local write is never rolled back when the remote forward
	// fails; the next reconciliation pass heals the gap.
	SubmitFeedback(ctx context.Context, profileID, movieID int64, rating float64) (models.FeedbackAck, error)
}

// RecommendationService serves the client-facing recommendation and
// watchlist read surfaces.
type RecommendationService interface {
	// GetRecommendations fetches the recommendation set for the profile's
	// external key and decorates every movie id with its catalog title.
	GetRecommendations(ctx context.Context, profileID int64) ([]models.RecommendedItem, error)

	// GetWatchlist returns the profile's watchlist decorated with titles.
	GetWatchlist(ctx context.Context, profileID int64) ([]models.WatchlistItemView, error)
}

// AuthService handles signup, signin and the JWT token lifecycle.
type AuthService interface {
	// SignUp registers the user with the remote recommendation service,
	// persists a profile carrying the assigned external key and returns it.
	SignUp(ctx context.Context, request models.SignupRequest) (models.Profile, error)

	// SignIn verifies the email/password pair against the stored hash.
	SignIn(ctx context.Context, request models.SigninRequest) (models.Profile, error)

	// CreateToken issues a signed JWT for the given profile.
	CreateToken(ctx context.Context, profile models.Profile) (models.Token, error)

	// ParseToken validates a raw JWT string and extracts the profile id.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}
