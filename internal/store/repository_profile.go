package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/makarov-dev/movierec/internal/logger"
	"github.com/makarov-dev/movierec/models"
)

// profileRepository is the PostgreSQL-backed implementation of
// [ProfileRepository]. Profiles live in the "profiles" table keyed by a
// unique external user id; watchlist entries live in "watchlist_entries"
// with a (profile_id, movie_id) primary key, which makes the
// replace-not-duplicate invariant structural.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured tracing of database interactions.
type profileRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewProfileRepository constructs a [ProfileRepository] backed by the
// provided database connection and logger.
func NewProfileRepository(db *DB, logger *logger.Logger) ProfileRepository {
	logger.Debug().Msg("creating profile repository")
	return &profileRepository{
		db:     db,
		logger: logger,
	}
}

// CreateProfile persists a new profile record and returns the fully
// populated [models.Profile] with server-assigned fields.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrProfileAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *profileRepository) CreateProfile(ctx context.Context, profile models.Profile) (models.Profile, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createProfile,
		profile.MLUserID, profile.Username, profile.Email, profile.PasswordHash,
		profile.Age, profile.Gender, profile.Occupation, profile.ZipCode)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*profileRepository.CreateProfile").Msg("error: insert failed")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Profile{}, ErrProfileAlreadyExists
		default:
			return models.Profile{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if err := scanProfile(row, &profile); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Profile{}, ErrProfileAlreadyExists
		}
		log.Err(err).Str("func", "*profileRepository.CreateProfile").Msg("error: scanning error")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return profile, nil
}

// FindProfileByEmail retrieves the profile whose email matches.
// Returns [ErrProfileNotFound] when no row matches.
func (r *profileRepository) FindProfileByEmail(ctx context.Context, email string) (models.Profile, error) {
	log := logger.FromContext(ctx)

	var found models.Profile
	row := r.db.QueryRowContext(ctx, findProfileByEmail, email)

	if err := scanProfile(row, &found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Profile{}, ErrProfileNotFound
		}
		log.Err(err).Str("func", "*profileRepository.FindProfileByEmail").Msg("error: scanning error")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

// GetProfileByID retrieves a profile row by its internal key.
// Returns [ErrProfileNotFound] when no row matches.
func (r *profileRepository) GetProfileByID(ctx context.Context, profileID int64) (models.Profile, error) {
	log := logger.FromContext(ctx)

	var found models.Profile
	row := r.db.QueryRowContext(ctx, getProfileByID, profileID)

	if err := scanProfile(row, &found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Profile{}, ErrProfileNotFound
		}
		log.Err(err).Str("func", "*profileRepository.GetProfileByID").Int64("profile_id", profileID).Msg("error: scanning error")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

// UpsertRemoteProfile inserts or refreshes a profile keyed by the external
// user key. The ON CONFLICT clause carries the creation-only vs
// always-refreshed column split: login identity placeholders apply only on
// insert, demographic columns on every call.
func (r *profileRepository) UpsertRemoteProfile(ctx context.Context, profile models.Profile) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, upsertRemoteProfile,
		profile.MLUserID, profile.Username, profile.Email, profile.PasswordHash,
		profile.Age, profile.Gender, profile.Occupation, profile.ZipCode)
	if err != nil {
		log.Err(err).
			Str("func", "*profileRepository.UpsertRemoteProfile").
			Int64("ml_user_id", profile.MLUserID).
			Msg("error: upsert failed")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// UpsertWatchlistEntry inserts or replaces a single watchlist entry in one
// atomic statement.
func (r *profileRepository) UpsertWatchlistEntry(ctx context.Context, profileID int64, entry models.WatchlistEntry) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, upsertWatchlistEntry, profileID, entry.MovieID, entry.Rating, entry.RatedAt)
	if err != nil {
		log.Err(err).
			Str("func", "*profileRepository.UpsertWatchlistEntry").
			Int64("profile_id", profileID).
			Int64("movie_id", entry.MovieID).
			Msg("error: upsert failed")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// MergeWatchlist reconciles a profile's watchlist with the deduplicated
// remote set in one multi-row statement. A merge targeting an external key
// with no matching profile returns (false, nil): merged nothing, created
// nothing — the caller counts it as deferred.
func (r *profileRepository) MergeWatchlist(ctx context.Context, mlUserID int64, entries []models.WatchlistEntry) (bool, error) {
	log := logger.FromContext(ctx)

	if len(entries) == 0 {
		return true, nil
	}

	var profileID int64
	err := r.db.QueryRowContext(ctx, findProfileIDByMLUserID, mlUserID).Scan(&profileID)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "*profileRepository.MergeWatchlist").
			Int64("ml_user_id", mlUserID).
			Msg("error: profile lookup failed")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	query, args, err := buildMergeWatchlistQuery(profileID, entries)
	if err != nil {
		log.Err(err).
			Str("func", "*profileRepository.MergeWatchlist").
			Int64("ml_user_id", mlUserID).
			Msg("error: failed to build merge query")
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "*profileRepository.MergeWatchlist").
			Int64("ml_user_id", mlUserID).
			Int("entries", len(entries)).
			Msg("error: merge failed")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return true, nil
}

// GetWatchlist returns all watchlist entries of a profile ordered by movie id.
func (r *profileRepository) GetWatchlist(ctx context.Context, profileID int64) ([]models.WatchlistEntry, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getWatchlist, profileID)
	if err != nil {
		log.Err(err).
			Str("func", "*profileRepository.GetWatchlist").
			Int64("profile_id", profileID).
			Msg("error: query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.WatchlistEntry, 0, 16)
	for rows.Next() {
		var entry models.WatchlistEntry
		if err = rows.Scan(&entry.MovieID, &entry.Rating, &entry.RatedAt); err != nil {
			log.Err(err).Str("func", "*profileRepository.GetWatchlist").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*profileRepository.GetWatchlist").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}

func scanProfile(row *sql.Row, profile *models.Profile) error {
	return row.Scan(
		&profile.ProfileID,
		&profile.MLUserID,
		&profile.Username,
		&profile.Email,
		&profile.PasswordHash,
		&profile.Age,
		&profile.Gender,
		&profile.Occupation,
		&profile.ZipCode,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
}
