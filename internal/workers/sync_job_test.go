package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/makarov-dev/movierec/internal/logger"
	"github.com/makarov-dev/movierec/models"
)

// spySyncService counts FullSync calls and returns a canned result.
type spySyncService struct {
	calls  atomic.Int64
	result models.SyncResult
}

func (s *spySyncService) SyncUsers(_ context.Context) (int, error) { return 0, nil }

func (s *spySyncService) SyncRatings(_ context.Context) (int, int, error) { return 0, 0, nil }

func (s *spySyncService) FullSync(_ context.Context) models.SyncResult {
	s.calls.Add(1)
	return s.result
}

func TestNewSyncJob_ReturnsInterface(t *testing.T) {
	spy := &spySyncService{}
	job := NewSyncJob(spy, logger.Nop())
	require.NotNil(t, job)

	var _ SyncJob = job
}

func TestSyncJob_Start_RunsStartupPassAndTicks(t *testing.T) {
	spy := &spySyncService{result: models.SyncResult{Success: true}}
	job := NewSyncJob(spy, logger.Nop())
	ctx := context.Background()

	// 10ms interval: the startup pass plus several ticks within 55ms.
	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "expected startup pass plus ticks, got %d", got)
}

func TestSyncJob_Stop_StopsGoroutine(t *testing.T) {
	spy := &spySyncService{result: models.SyncResult{Success: true}}
	job := NewSyncJob(spy, logger.Nop())
	ctx := context.Background()

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	callsAfterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)
	callsLater := spy.calls.Load()

	assert.Equal(t, callsAfterStop, callsLater, "no new passes may run after Stop")
}

func TestSyncJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	job := NewSyncJob(&spySyncService{}, logger.Nop())

	assert.NotPanics(t, func() { job.Stop() })
}

func TestSyncJob_DoubleStop_NoPanic(t *testing.T) {
	job := NewSyncJob(&spySyncService{}, logger.Nop())
	ctx := context.Background()

	job.Start(ctx, 10*time.Millisecond)
	job.Stop()

	assert.NotPanics(t, func() { job.Stop() })
}

func TestSyncJob_Start_DefaultInterval(t *testing.T) {
	spy := &spySyncService{result: models.SyncResult{Success: true}}
	job := NewSyncJob(spy, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	// interval <= 0 falls back to 6h: only the startup pass fits into 30ms.
	job.Start(ctx, 0)
	time.Sleep(30 * time.Millisecond)
	cancel()
	job.Stop()

	assert.Equal(t, int64(1), spy.calls.Load())
}

func TestSyncJob_Restart_StopsPrevious(t *testing.T) {
	spy := &spySyncService{result: models.SyncResult{Success: true}}
	job := NewSyncJob(spy, logger.Nop())
	ctx := context.Background()

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)

	callsBefore := spy.calls.Load()
	assert.Greater(t, callsBefore, int64(0))

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	assert.Greater(t, spy.calls.Load(), callsBefore, "restart must keep generating passes")
}

func TestSyncJob_ContextCancel_StopsJob(t *testing.T) {
	spy := &spySyncService{result: models.SyncResult{Success: true}}
	job := NewSyncJob(spy, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	cancel()

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(1 * time.Second):
		t.Fatal("Stop hung after context cancellation")
	}
}

func TestSyncJob_FailedPass_DoesNotStopSchedule(t *testing.T) {
	spy := &spySyncService{result: models.SyncResult{Error: "remote unavailable"}}
	job := NewSyncJob(spy, logger.Nop())
	ctx := context.Background()

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "failed passes must not break the schedule, got %d", got)
}

func TestSyncJob_TriggerNow_ReturnsResult(t *testing.T) {
	spy := &spySyncService{result: models.SyncResult{Success: true, Users: 5, Ratings: 3, Deferred: 1}}
	job := NewSyncJob(spy, logger.Nop())

	result := job.TriggerNow(context.Background())

	assert.True(t, result.Success)
	assert.Equal(t, 5, result.Users)
	assert.Equal(t, 3, result.Ratings)
	assert.Equal(t, 1, result.Deferred)
	assert.Equal(t, int64(1), spy.calls.Load())
}
