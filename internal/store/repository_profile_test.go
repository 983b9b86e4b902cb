package store

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/makarov-dev/movierec/internal/logger"
	"github.com/makarov-dev/movierec/models"
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func newTestRepo(t *testing.T, db *sql.DB) ProfileRepository {
	t.Helper()
	storeDB := &DB{DB: db, logger: logger.Nop()}
	return NewProfileRepository(storeDB, logger.Nop())
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

var profileColumns = []string{
	"profile_id", "ml_user_id", "username", "email", "password_hash",
	"age", "gender", "occupation", "zip_code", "created_at", "updated_at",
}

func profileRow(profileID, mlUserID int64) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(profileColumns).AddRow(
		profileID, mlUserID, "user7", "user7@gmail.com", "$2a$10$hash",
		25, "M", "other", "00000", now, now,
	)
}

// ── CreateProfile ────────────────────────────────────────────────────────────

func TestCreateProfile_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO profiles")).
		WithArgs(int64(7), "user7", "user7@gmail.com", "$2a$10$hash", 25, "M", "other", "00000").
		WillReturnRows(profileRow(1, 7))

	got, err := repo.CreateProfile(testContext(), models.Profile{
		MLUserID: 7, Username: "user7", Email: "user7@gmail.com", PasswordHash: "$2a$10$hash",
		Age: 25, Gender: "M", Occupation: "other", ZipCode: "00000",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ProfileID)
	assert.Equal(t, int64(7), got.MLUserID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateProfile_UniqueViolation(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO profiles")).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := repo.CreateProfile(testContext(), models.Profile{MLUserID: 7, Email: "dup@gmail.com"})

	assert.ErrorIs(t, err, ErrProfileAlreadyExists)
}

// ── FindProfileByEmail ───────────────────────────────────────────────────────

func TestFindProfileByEmail_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM profiles")).
		WithArgs("user7@gmail.com").
		WillReturnRows(profileRow(1, 7))

	got, err := repo.FindProfileByEmail(testContext(), "user7@gmail.com")

	require.NoError(t, err)
	assert.Equal(t, "user7@gmail.com", got.Email)
}

func TestFindProfileByEmail_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM profiles")).
		WithArgs("nobody@gmail.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindProfileByEmail(testContext(), "nobody@gmail.com")

	assert.ErrorIs(t, err, ErrProfileNotFound)
}

// ── GetProfileByID ───────────────────────────────────────────────────────────

func TestGetProfileByID_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE profile_id = $1")).
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetProfileByID(testContext(), 99)

	assert.ErrorIs(t, err, ErrProfileNotFound)
}

// ── UpsertRemoteProfile ──────────────────────────────────────────────────────

func TestUpsertRemoteProfile_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (ml_user_id) DO UPDATE")).
		WithArgs(int64(7), "user7", "user7@gmail.com", "pass7", 25, "M", "other", "00000").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpsertRemoteProfile(testContext(), models.Profile{
		MLUserID: 7, Username: "user7", Email: "user7@gmail.com", PasswordHash: "pass7",
		Age: 25, Gender: "M", Occupation: "other", ZipCode: "00000",
	})

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

// ── UpsertWatchlistEntry ─────────────────────────────────────────────────────

func TestUpsertWatchlistEntry_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)
	ratedAt := time.Unix(200, 0)

	mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (profile_id, movie_id) DO UPDATE")).
		WithArgs(int64(1), int64(42), 4.5, ratedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpsertWatchlistEntry(testContext(), 1, models.WatchlistEntry{MovieID: 42, Rating: 4.5, RatedAt: ratedAt})

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

// ── MergeWatchlist ───────────────────────────────────────────────────────────

func TestMergeWatchlist_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)
	ratedAt := time.Unix(200, 0)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT profile_id")).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"profile_id"}).AddRow(int64(1)))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO watchlist_entries")).
		WithArgs(int64(1), int64(5), 4.0, ratedAt, int64(1), int64(9), 2.5, ratedAt).
		WillReturnResult(sqlmock.NewResult(0, 2))

	merged, err := repo.MergeWatchlist(testContext(), 7, []models.WatchlistEntry{
		{MovieID: 5, Rating: 4, RatedAt: ratedAt},
		{MovieID: 9, Rating: 2.5, RatedAt: ratedAt},
	})

	require.NoError(t, err)
	assert.True(t, merged)
	require.NoError(t, mock.ExpectationsWereMet())
}

// A merge for an unknown external key performs no mutation and is reported
// as not merged so the caller can count it as deferred.
func TestMergeWatchlist_NoProfileIsDeferred(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT profile_id")).
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	merged, err := repo.MergeWatchlist(testContext(), 404, []models.WatchlistEntry{{MovieID: 5, Rating: 4}})

	require.NoError(t, err)
	assert.False(t, merged)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMergeWatchlist_EmptySetIsNoop(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	merged, err := repo.MergeWatchlist(testContext(), 7, nil)

	require.NoError(t, err)
	assert.True(t, merged)
	require.NoError(t, mock.ExpectationsWereMet())
}

// ── GetWatchlist ─────────────────────────────────────────────────────────────

func TestGetWatchlist_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)
	ratedAt := time.Unix(200, 0)

	mock.ExpectQuery(regexp.QuoteMeta("FROM watchlist_entries")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"movie_id", "rating", "rated_at"}).
			AddRow(int64(5), 4.0, ratedAt).
			AddRow(int64(42), 4.5, ratedAt))

	got, err := repo.GetWatchlist(testContext(), 1)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(5), got[0].MovieID)
	assert.Equal(t, 4.5, got[1].Rating)
}
