package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/makarov-dev/movierec/internal/logger"
	"github.com/makarov-dev/movierec/internal/mock"
	"github.com/makarov-dev/movierec/models"
)

// newTestSyncSvc is a helper creating a syncService backed by mocks.
func newTestSyncSvc(t *testing.T, ctrl *gomock.Controller) (*syncService, *mock.MockProfileRepository, *mock.MockRemoteCatalog) {
	t.Helper()
	mockRepo := mock.NewMockProfileRepository(ctrl)
	mockRemote := mock.NewMockRemoteCatalog(ctrl)

	svc := NewSyncService(mockRepo, mockRemote, logger.Nop()).(*syncService)

	return svc, mockRepo, mockRemote
}

// ── SyncUsers ────────────────────────────────────────────────────────────────

func TestSyncService_SyncUsers_UpsertsEveryRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockRemote := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	mockRemote.EXPECT().GetAllUsers(ctx).Return([]models.RemoteUserRecord{
		{UserID: 1, Age: "33", Gender: "M", Occupation: "engineer"},
		{UserID: 2, Age: "not-a-number", Gender: "X", Occupation: "astronaut"},
	}, nil)

	var upserted []models.Profile
	mockRepo.EXPECT().UpsertRemoteProfile(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, profile models.Profile) error {
			upserted = append(upserted, profile)
			return nil
		},
	).Times(2)

	count, err := svc.SyncUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	require.Len(t, upserted, 2)

	// Record 1 passes normalization untouched.
	assert.Equal(t, int64(1), upserted[0].MLUserID)
	assert.Equal(t, 33, upserted[0].Age)
	assert.Equal(t, "M", upserted[0].Gender)
	assert.Equal(t, "engineer", upserted[0].Occupation)
	assert.Equal(t, "user1", upserted[0].Username)
	assert.Equal(t, "user1@gmail.com", upserted[0].Email)
	assert.Equal(t, DefaultZipCode, upserted[0].ZipCode)

	// Record 2 is normalized: unparseable age, unknown gender and occupation.
	assert.Equal(t, DefaultAge, upserted[1].Age)
	assert.Equal(t, "F", upserted[1].Gender)
	assert.Equal(t, "other", upserted[1].Occupation)
}

func TestSyncService_SyncUsers_FetchFailureAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockRemote := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	mockRemote.EXPECT().GetAllUsers(ctx).Return(nil, errors.New("connection refused"))

	count, err := svc.SyncUsers(ctx)
	require.Error(t, err)
	assert.Zero(t, count)
}

func TestSyncService_SyncUsers_RecordFailureDoesNotAbortSiblings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockRemote := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	mockRemote.EXPECT().GetAllUsers(ctx).Return([]models.RemoteUserRecord{
		{UserID: 1, Age: "25", Gender: "F", Occupation: "student"},
		{UserID: 2, Age: "30", Gender: "M", Occupation: "doctor"},
		{UserID: 3, Age: "40", Gender: "F", Occupation: "writer"},
	}, nil)

	gomock.InOrder(
		mockRepo.EXPECT().UpsertRemoteProfile(ctx, gomock.Any()).Return(nil),
		mockRepo.EXPECT().UpsertRemoteProfile(ctx, gomock.Any()).Return(errors.New("write failed")),
		mockRepo.EXPECT().UpsertRemoteProfile(ctx, gomock.Any()).Return(nil),
	)

	count, err := svc.SyncUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

// Idempotence: an unchanged snapshot produces the same upserts on a second
// run; the keyed upsert makes the second pass a pure refresh.
func TestSyncService_SyncUsers_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockRemote := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	snapshot := []models.RemoteUserRecord{{UserID: 7, Age: "25", Gender: "M", Occupation: "artist"}}
	mockRemote.EXPECT().GetAllUsers(ctx).Return(snapshot, nil).Times(2)

	keys := map[int64]int{}
	mockRepo.EXPECT().UpsertRemoteProfile(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, profile models.Profile) error {
			keys[profile.MLUserID]++
			return nil
		},
	).Times(2)

	first, err := svc.SyncUsers(ctx)
	require.NoError(t, err)
	second, err := svc.SyncUsers(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, keys, 1) // one external key, never duplicated
}

// ── SyncRatings ──────────────────────────────────────────────────────────────

func TestSyncService_SyncRatings_DedupLastOccurrenceWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockRemote := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	mockRemote.EXPECT().GetAllRatings(ctx).Return([]models.RemoteRatingRecord{
		{UserID: 1, MovieID: 5, Rating: 3, Timestamp: 100},
		{UserID: 1, MovieID: 5, Rating: 4, Timestamp: 200},
	}, nil)

	mockRepo.EXPECT().MergeWatchlist(ctx, int64(1), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, entries []models.WatchlistEntry) (bool, error) {
			require.Len(t, entries, 1)
			assert.Equal(t, int64(5), entries[0].MovieID)
			assert.Equal(t, 4.0, entries[0].Rating)
			assert.Equal(t, time.Unix(200, 0), entries[0].RatedAt)
			return true, nil
		},
	)

	ratings, deferred, err := svc.SyncRatings(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, ratings)
	assert.Zero(t, deferred)
}

func TestSyncService_SyncRatings_DeferredWhenProfileMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockRemote := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	mockRemote.EXPECT().GetAllRatings(ctx).Return([]models.RemoteRatingRecord{
		{UserID: 404, MovieID: 1, Rating: 5, Timestamp: 100},
	}, nil)

	// No matching profile: the merge is a no-op, never a creation.
	mockRepo.EXPECT().MergeWatchlist(ctx, int64(404), gomock.Any()).Return(false, nil)

	ratings, deferred, err := svc.SyncRatings(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, ratings)
	assert.Equal(t, 1, deferred)
}

func TestSyncService_SyncRatings_DropsOutOfScaleRatings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockRemote := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	mockRemote.EXPECT().GetAllRatings(ctx).Return([]models.RemoteRatingRecord{
		{UserID: 1, MovieID: 1, Rating: 0, Timestamp: 100},
		{UserID: 1, MovieID: 2, Rating: 6, Timestamp: 100},
		{UserID: 1, MovieID: 3, Rating: 5, Timestamp: 100},
	}, nil)

	mockRepo.EXPECT().MergeWatchlist(ctx, int64(1), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, entries []models.WatchlistEntry) (bool, error) {
			require.Len(t, entries, 1)
			assert.Equal(t, int64(3), entries[0].MovieID)
			return true, nil
		},
	)

	ratings, deferred, err := svc.SyncRatings(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, ratings)
	assert.Zero(t, deferred)
}

func TestSyncService_SyncRatings_FetchFailureAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockRemote := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	mockRemote.EXPECT().GetAllRatings(ctx).Return(nil, errors.New("timeout"))

	ratings, deferred, err := svc.SyncRatings(ctx)
	require.Error(t, err)
	assert.Zero(t, ratings)
	assert.Zero(t, deferred)
}

func TestSyncService_SyncRatings_MergeFailureDoesNotAbortSiblings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockRemote := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	mockRemote.EXPECT().GetAllRatings(ctx).Return([]models.RemoteRatingRecord{
		{UserID: 1, MovieID: 1, Rating: 3, Timestamp: 100},
		{UserID: 2, MovieID: 1, Rating: 4, Timestamp: 100},
	}, nil)

	mockRepo.EXPECT().MergeWatchlist(ctx, int64(1), gomock.Any()).Return(false, errors.New("write failed"))
	mockRepo.EXPECT().MergeWatchlist(ctx, int64(2), gomock.Any()).Return(true, nil)

	ratings, deferred, err := svc.SyncRatings(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, ratings)
	assert.Zero(t, deferred)
}

// ── FullSync ─────────────────────────────────────────────────────────────────

func TestSyncService_FullSync_UsersBeforeRatings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockRemote := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockRemote.EXPECT().GetAllUsers(ctx).Return([]models.RemoteUserRecord{
			{UserID: 1, Age: "25", Gender: "F", Occupation: "student"},
		}, nil),
		mockRepo.EXPECT().UpsertRemoteProfile(ctx, gomock.Any()).Return(nil),
		mockRemote.EXPECT().GetAllRatings(ctx).Return([]models.RemoteRatingRecord{
			{UserID: 1, MovieID: 10, Rating: 5, Timestamp: 100},
		}, nil),
		mockRepo.EXPECT().MergeWatchlist(ctx, int64(1), gomock.Any()).Return(true, nil),
	)

	result := svc.FullSync(ctx)
	assert.True(t, result.Success)
	assert.Equal(t, 1, result.Users)
	assert.Equal(t, 1, result.Ratings)
	assert.Zero(t, result.Deferred)
	assert.Empty(t, result.Error)
}

func TestSyncService_FullSync_AbortsOnUserFetchFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockRemote := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	mockRemote.EXPECT().GetAllUsers(ctx).Return(nil, errors.New("connection refused"))
	// GetAllRatings must never be called: the pass aborted.

	result := svc.FullSync(ctx)
	assert.False(t, result.Success)
	assert.Zero(t, result.Users)
	assert.Zero(t, result.Ratings)
	assert.NotEmpty(t, result.Error)
}

func TestSyncService_FullSync_ReportsDeferred(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockRemote := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	mockRemote.EXPECT().GetAllUsers(ctx).Return(nil, nil)
	mockRemote.EXPECT().GetAllRatings(ctx).Return([]models.RemoteRatingRecord{
		{UserID: 9, MovieID: 1, Rating: 4, Timestamp: 100},
	}, nil)
	mockRepo.EXPECT().MergeWatchlist(ctx, int64(9), gomock.Any()).Return(false, nil)

	result := svc.FullSync(ctx)
	assert.True(t, result.Success)
	assert.Equal(t, 1, result.Deferred)
}

// Two concurrent triggers share exactly one in-flight pass: the snapshot
// endpoints are hit once and both callers observe the same result.
func TestSyncService_FullSync_SingleFlight(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockRemote := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	started := make(chan struct{})
	release := make(chan struct{})

	mockRemote.EXPECT().GetAllUsers(ctx).DoAndReturn(
		func(context.Context) ([]models.RemoteUserRecord, error) {
			close(started)
			<-release
			return []models.RemoteUserRecord{{UserID: 1, Age: "25", Gender: "M", Occupation: "none"}}, nil
		},
	).Times(1)
	mockRepo.EXPECT().UpsertRemoteProfile(ctx, gomock.Any()).Return(nil).Times(1)
	mockRemote.EXPECT().GetAllRatings(ctx).Return(nil, nil).Times(1)

	var wg sync.WaitGroup
	results := make([]models.SyncResult, 2)

	wg.Add(1)
	go func() {
		defer wg.Done()
		results[0] = svc.FullSync(ctx)
	}()

	// The second trigger fires only once the first pass is provably in
	// flight, then both are unblocked together.
	<-started
	wg.Add(1)
	go func() {
		defer wg.Done()
		results[1] = svc.FullSync(ctx)
	}()

	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, results[0], results[1])
	assert.True(t, results[0].Success)
	assert.Equal(t, 1, results[0].Users)
}

// ── normalization helpers ────────────────────────────────────────────────────

func TestNormalizeRemoteUser(t *testing.T) {
	tests := []struct {
		name           string
		record         models.RemoteUserRecord
		wantAge        int
		wantGender     string
		wantOccupation string
	}{
		{
			name:           "valid record kept as is",
			record:         models.RemoteUserRecord{UserID: 1, Age: "42", Gender: "M", Occupation: "lawyer"},
			wantAge:        42,
			wantGender:     "M",
			wantOccupation: "lawyer",
		},
		{
			name:           "occupation matched case-insensitively",
			record:         models.RemoteUserRecord{UserID: 1, Age: "42", Gender: "F", Occupation: "Programmer"},
			wantAge:        42,
			wantGender:     "F",
			wantOccupation: "Programmer",
		},
		{
			name:           "unparseable age falls back to default",
			record:         models.RemoteUserRecord{UserID: 1, Age: "??", Gender: "M", Occupation: "doctor"},
			wantAge:        DefaultAge,
			wantGender:     "M",
			wantOccupation: "doctor",
		},
		{
			name:           "out of range age falls back to default",
			record:         models.RemoteUserRecord{UserID: 1, Age: "200", Gender: "M", Occupation: "doctor"},
			wantAge:        DefaultAge,
			wantGender:     "M",
			wantOccupation: "doctor",
		},
		{
			name:           "non-M gender coerced to F",
			record:         models.RemoteUserRecord{UserID: 1, Age: "30", Gender: "m", Occupation: "doctor"},
			wantAge:        30,
			wantGender:     "F",
			wantOccupation: "doctor",
		},
		{
			name:           "unknown occupation becomes other",
			record:         models.RemoteUserRecord{UserID: 1, Age: "30", Gender: "F", Occupation: "astronaut"},
			wantAge:        30,
			wantGender:     "F",
			wantOccupation: "other",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := normalizeRemoteUser(tt.record)
			assert.Equal(t, tt.wantAge, profile.Age)
			assert.Equal(t, tt.wantGender, profile.Gender)
			assert.Equal(t, tt.wantOccupation, profile.Occupation)
			assert.Equal(t, tt.record.UserID, profile.MLUserID)
			assert.Equal(t, DefaultZipCode, profile.ZipCode)
		})
	}
}

func TestDedupRatings_ZeroTimestampGetsCurrentTime(t *testing.T) {
	perUser, dropped := dedupRatings([]models.RemoteRatingRecord{
		{UserID: 1, MovieID: 1, Rating: 3, Timestamp: 0},
	})

	require.Zero(t, dropped)
	require.Len(t, perUser[1], 1)
	assert.WithinDuration(t, time.Now(), perUser[1][0].RatedAt, time.Minute)
}

func TestDedupRatings_EntriesSortedByMovieID(t *testing.T) {
	perUser, _ := dedupRatings([]models.RemoteRatingRecord{
		{UserID: 1, MovieID: 30, Rating: 3, Timestamp: 100},
		{UserID: 1, MovieID: 10, Rating: 4, Timestamp: 100},
		{UserID: 1, MovieID: 20, Rating: 5, Timestamp: 100},
	})

	entries := perUser[1]
	require.Len(t, entries, 3)
	assert.Equal(t, int64(10), entries[0].MovieID)
	assert.Equal(t, int64(20), entries[1].MovieID)
	assert.Equal(t, int64(30), entries[2].MovieID)
}
