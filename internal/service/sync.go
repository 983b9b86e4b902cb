package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/singleflight"

	"github.com/makarov-dev/movierec/internal/adapter"
	"github.com/makarov-dev/movierec/internal/logger"
	"github.com/makarov-dev/movierec/internal/store"
	"github.com/makarov-dev/movierec/models"
)

const (
	// DefaultAge replaces remote age values that are unparseable or outside
	// [MinAge, MaxAge].
	DefaultAge = 25
	MinAge     = 1
	MaxAge     = 120

	// DefaultZipCode is the sentinel postal code: the remote snapshot does
	// not carry one.
	DefaultZipCode = "00000"

	// MinRating and MaxRating bound the closed rating scale enforced on
	// every entry point, reconciler and feedback path alike.
	MinRating = 1.0
	MaxRating = 5.0
)

// validOccupations is the closed occupation list. Remote values are matched
// case-insensitively; anything else becomes "other".
var validOccupations = map[string]struct{}{
	"administrator": {}, "artist": {}, "doctor": {}, "educator": {},
	"engineer": {}, "entertainment": {}, "executive": {}, "healthcare": {},
	"homemaker": {}, "lawyer": {}, "librarian": {}, "marketing": {},
	"none": {}, "other": {}, "programmer": {}, "retired": {},
	"salesman": {}, "scientist": {}, "student": {}, "technician": {},
	"writer": {},
}

// syncService is the concrete implementation of SyncService. It pulls full
// snapshots from the remote recommendation service and reconciles them into
// the profile store, users before ratings. A singleflight group guarantees
// that concurrent FullSync triggers never run two passes against the same
// store.
type syncService struct {
	profiles store.ProfileRepository
	remote   adapter.RemoteCatalog
	group    singleflight.Group
	logger   *logger.Logger
}

// NewSyncService constructs a SyncService wired to the given profile
// repository and remote catalog gateway.
func NewSyncService(profiles store.ProfileRepository, remote adapter.RemoteCatalog, logger *logger.Logger) SyncService {
	return &syncService{
		profiles: profiles,
		remote:   remote,
		logger:   logger,
	}
}

// SyncUsers implements SyncService.
//
// Upserts run with unordered bulk semantics: one record failing to persist
// does not stop the others. Failures are joined and logged once at warn
// level; only a snapshot fetch failure propagates to the caller.
func (s *syncService) SyncUsers(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	users, err := s.remote.GetAllUsers(ctx)
	if err != nil {
		return 0, fmt.Errorf("get remote user snapshot: %w", err)
	}

	var recordErrs []error
	for _, record := range users {
		if err := s.profiles.UpsertRemoteProfile(ctx, normalizeRemoteUser(record)); err != nil {
			recordErrs = append(recordErrs, fmt.Errorf("upsert profile %d: %w", record.UserID, err))
		}
	}

	if joined := errors.Join(recordErrs...); joined != nil {
		log.Warn().Err(joined).
			Int("total", len(users)).
			Int("failed", len(recordErrs)).
			Msg("some remote users failed to upsert")
	}

	return len(users), nil
}

// SyncRatings implements SyncService.
//
// The snapshot is first deduplicated to at most one rating per (user, movie)
// pair, last occurrence winning, then merged per user with one statement
// each. A merge targeting an external key with no local profile is a no-op
// counted as deferred: the user phase owns profile creation and the merge
// self-heals on a later pass.
func (s *syncService) SyncRatings(ctx context.Context) (int, int, error) {
	log := logger.FromContext(ctx)

	records, err := s.remote.GetAllRatings(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("get remote rating snapshot: %w", err)
	}

	perUser, dropped := dedupRatings(records)
	if dropped > 0 {
		log.Warn().Int("dropped", dropped).Msg("remote ratings outside the valid scale were skipped")
	}

	userIDs := make([]int64, 0, len(perUser))
	for userID := range perUser {
		userIDs = append(userIDs, userID)
	}
	sort.Slice(userIDs, func(i, j int) bool { return userIDs[i] < userIDs[j] })

	var (
		attempted, deferred int
		mergeErrs           []error
	)
	for _, userID := range userIDs {
		attempted++

		merged, err := s.profiles.MergeWatchlist(ctx, userID, perUser[userID])
		if err != nil {
			mergeErrs = append(mergeErrs, fmt.Errorf("merge watchlist for user %d: %w", userID, err))
			continue
		}
		if !merged {
			deferred++
		}
	}

	if joined := errors.Join(mergeErrs...); joined != nil {
		log.Warn().Err(joined).
			Int("total", attempted).
			Int("failed", len(mergeErrs)).
			Msg("some watchlist merges failed")
	}

	return attempted, deferred, nil
}

// FullSync implements SyncService.
//
// All concurrent callers share one in-flight pass via singleflight; the pass
// runs under the context of whichever caller started it.
func (s *syncService) FullSync(ctx context.Context) models.SyncResult {
	result, _, _ := s.group.Do("full-sync", func() (any, error) {
		return s.runFullSync(ctx), nil
	})

	return result.(models.SyncResult)
}

func (s *syncService) runFullSync(ctx context.Context) models.SyncResult {
	log := logger.FromContext(ctx)
	started := time.Now()

	users, err := s.SyncUsers(ctx)
	if err != nil {
		log.Err(err).Msg("full sync aborted during user reconciliation")
		return models.SyncResult{Error: err.Error()}
	}

	ratings, deferred, err := s.SyncRatings(ctx)
	if err != nil {
		log.Err(err).Int("users", users).Msg("full sync aborted during rating reconciliation")
		return models.SyncResult{Users: users, Error: err.Error()}
	}

	if deferred > 0 {
		log.Warn().Int("deferred", deferred).Msg("rating merges deferred: profiles not reconciled yet")
	}

	log.Info().
		Int("users", users).
		Int("ratings", ratings).
		Int("deferred", deferred).
		Dur("took", time.Since(started)).
		Msg("full sync finished")

	return models.SyncResult{
		Success:  true,
		Users:    users,
		Ratings:  ratings,
		Deferred: deferred,
	}
}

// normalizeRemoteUser converts a raw remote user record into an upsertable
// profile. Demographics are normalized here; login identity fields are
// placeholders that only take effect when the profile is first inserted.
func normalizeRemoteUser(record models.RemoteUserRecord) models.Profile {
	age, err := strconv.Atoi(strings.TrimSpace(record.Age))
	if err != nil || age < MinAge || age > MaxAge {
		age = DefaultAge
	}

	gender := "F"
	if record.Gender == "M" {
		gender = "M"
	}

	occupation := record.Occupation
	if _, ok := validOccupations[strings.ToLower(occupation)]; !ok {
		occupation = "other"
	}

	return models.Profile{
		MLUserID:     record.UserID,
		Username:     fmt.Sprintf("user%d", record.UserID),
		Email:        fmt.Sprintf("user%d@gmail.com", record.UserID),
		PasswordHash: placeholderPasswordHash(record.UserID),
		Age:          age,
		Gender:       gender,
		Occupation:   occupation,
		ZipCode:      DefaultZipCode,
	}
}

// placeholderPasswordHash hashes the well-known placeholder password for
// reconciler-created accounts. MinCost keeps the per-pass overhead small:
// the value is recomputed for every snapshot record but only persisted on
// first insert.
func placeholderPasswordHash(mlUserID int64) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(fmt.Sprintf("pass%d", mlUserID)), bcrypt.MinCost)
	if err != nil {
		return ""
	}
	return string(hash)
}

// dedupRatings reduces the raw rating snapshot to at most one entry per
// (user, movie) pair. Iteration order of the snapshot is preserved by map
// overwrite, so the last occurrence wins. Records with a rating outside
// [MinRating, MaxRating] are dropped and counted.
func dedupRatings(records []models.RemoteRatingRecord) (map[int64][]models.WatchlistEntry, int) {
	byUser := make(map[int64]map[int64]models.WatchlistEntry)
	dropped := 0

	for _, record := range records {
		if record.Rating < MinRating || record.Rating > MaxRating {
			dropped++
			continue
		}

		entries := byUser[record.UserID]
		if entries == nil {
			entries = make(map[int64]models.WatchlistEntry)
			byUser[record.UserID] = entries
		}

		ratedAt := time.Unix(record.Timestamp, 0)
		if record.Timestamp <= 0 {
			ratedAt = time.Now()
		}

		entries[record.MovieID] = models.WatchlistEntry{
			MovieID: record.MovieID,
			Rating:  record.Rating,
			RatedAt: ratedAt,
		}
	}

	perUser := make(map[int64][]models.WatchlistEntry, len(byUser))
	for userID, entries := range byUser {
		list := make([]models.WatchlistEntry, 0, len(entries))
		for _, entry := range entries {
			list = append(list, entry)
		}
		sort.Slice(list, func(i, j int) bool { return list[i].MovieID < list[j].MovieID })
		perUser[userID] = list
	}

	return perUser, dropped
}
