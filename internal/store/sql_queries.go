package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/makarov-dev/movierec/models"
)

const (
	createProfile = `INSERT INTO profiles (ml_user_id, username, email, password_hash, age, gender, occupation, zip_code)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    RETURNING profile_id, ml_user_id, username, email, password_hash, age, gender, occupation, zip_code, created_at, updated_at;`

	findProfileByEmail = `SELECT profile_id, ml_user_id, username, email, password_hash, age, gender, occupation, zip_code, created_at, updated_at
    FROM profiles
    WHERE email = $1;`

	getProfileByID = `SELECT profile_id, ml_user_id, username, email, password_hash, age, gender, occupation, zip_code, created_at, updated_at
    FROM profiles
    WHERE profile_id = $1;`

	findProfileIDByMLUserID = `SELECT profile_id
    FROM profiles
    WHERE ml_user_id = $1;`

	// Login identity columns are set only when the row is first inserted;
	// demographic columns are refreshed on every run.
	upsertRemoteProfile = `INSERT INTO profiles (ml_user_id, username, email, password_hash, age, gender, occupation, zip_code)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    ON CONFLICT (ml_user_id) DO UPDATE
    SET age = EXCLUDED.age,
        gender = EXCLUDED.gender,
        occupation = EXCLUDED.occupation,
        zip_code = EXCLUDED.zip_code,
        updated_at = NOW();`

	// Replace-on-conflict keeps at most one entry per (profile, movie) and
	// makes the statement safe against concurrent feedback on the same
	// profile: each call touches exactly one row.
	upsertWatchlistEntry = `INSERT INTO watchlist_entries (profile_id, movie_id, rating, rated_at)
    VALUES ($1, $2, $3, $4)
    ON CONFLICT (profile_id, movie_id) DO UPDATE
    SET rating = EXCLUDED.rating,
        rated_at = EXCLUDED.rated_at;`

	getWatchlist = `SELECT movie_id, rating, rated_at
    FROM watchlist_entries
    WHERE profile_id = $1
    ORDER BY movie_id;`
)

// buildMergeWatchlistQuery builds one multi-row upsert covering a user's
// whole deduplicated rating set, so a per-user merge is a single statement.
func buildMergeWatchlistQuery(profileID int64, entries []models.WatchlistEntry) (string, []any, error) {
	qb := sq.Insert("watchlist_entries").
		Columns("profile_id", "movie_id", "rating", "rated_at").
		PlaceholderFormat(sq.Dollar).
		Suffix("ON CONFLICT (profile_id, movie_id) DO UPDATE SET rating = EXCLUDED.rating, rated_at = EXCLUDED.rated_at")

	for _, entry := range entries {
		qb = qb.Values(profileID, entry.MovieID, entry.Rating, entry.RatedAt)
	}

	return qb.ToSql()
}
