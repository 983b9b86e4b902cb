package store

import (
	"context"

	"github.com/makarov-dev/movierec/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/profile_repository_mock.go -package=mock

// ProfileRepository is the persistence surface for user profiles and their
// watchlists. Reconcilers and the feedback coordinator share one
// implementation backed by the process-wide connection pool.
type ProfileRepository interface {
	// CreateProfile persists a new profile created through the signup flow
	// and returns it with server-assigned fields (ProfileID, CreatedAt).
	// Returns [ErrProfileAlreadyExists] on a unique-constraint violation.
	CreateProfile(ctx context.Context, profile models.Profile) (models.Profile, error)

	// FindProfileByEmail looks a profile up by its signin key.
	// Returns [ErrProfileNotFound] when no profile matches.
	FindProfileByEmail(ctx context.Context, email string) (models.Profile, error)

	// GetProfileByID fetches a profile row by internal key, without the
	// watchlist. Returns [ErrProfileNotFound] when no profile matches.
	GetProfileByID(ctx context.Context, profileID int64) (models.Profile, error)

	// UpsertRemoteProfile inserts or refreshes a profile keyed by the
	// external user key. Creation-only login identity fields take effect
	// only when the row is first inserted; demographic fields are refreshed
	// on every call.
	UpsertRemoteProfile(ctx context.Context, profile models.Profile) error

	// UpsertWatchlistEntry inserts or replaces the entry for
	// (profileID, entry.MovieID) in one atomic statement. An existing entry
	// has its rating and timestamp replaced in place; concurrent upserts for
	// different movies on the same profile do not interfere.
	UpsertWatchlistEntry(ctx context.Context, profileID int64, entry models.WatchlistEntry) error

	// MergeWatchlist reconciles the watchlist of the profile with the given
	// external user key against entries: present movies have rating and
	// timestamp replaced, absent movies are inserted. When no profile with
	// that key exists the merge is a no-op and merged is false; a profile is
	// never created as a side effect.
	MergeWatchlist(ctx context.Context, mlUserID int64, entries []models.WatchlistEntry) (merged bool, err error)

	// GetWatchlist returns all watchlist entries of a profile, ordered by
	// movie id for stable output.
	GetWatchlist(ctx context.Context, profileID int64) ([]models.WatchlistEntry, error)
}

// Storages aggregates all repositories behind the store package boundary.
type Storages struct {
	Profiles ProfileRepository
}

// NewStorages wires the repositories to a connected database.
func NewStorages(db *DB) *Storages {
	return &Storages{
		Profiles: NewProfileRepository(db, db.logger),
	}
}
