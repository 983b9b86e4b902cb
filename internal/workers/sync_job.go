// Package workers hosts the background reconciliation job: the scheduler
// that drives full sync passes at startup, on a fixed interval and on
// demand. Mutual exclusion of the passes themselves lives in the sync
// service; the job only decides when to trigger.
package workers

import (
	"context"
	"sync"
	"time"

	"github.com/makarov-dev/movierec/internal/logger"
	"github.com/makarov-dev/movierec/internal/service"
	"github.com/makarov-dev/movierec/models"
)

// DefaultSyncInterval is the period between scheduled full sync passes when
// no interval is configured.
const DefaultSyncInterval = 6 * time.Hour

// SyncJob schedules full reconciliation passes. A failed pass is not
// retried; it simply waits for the next trigger.
type SyncJob interface {
	// Start stops any previously running schedule and launches a background
	// goroutine that runs one pass immediately and then one per interval.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the schedule and blocks until the goroutine has exited.
	// Safe to call when the job is not running.
	Stop()

	// TriggerNow runs a pass on demand and returns its result. If a pass is
	// already in flight the call shares its result instead of starting a
	// second one.
	TriggerNow(ctx context.Context) models.SyncResult
}

type syncJob struct {
	syncService service.SyncService
	logger      *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSyncJob creates a SyncJob driving the given sync service. The job is
// idle until Start is called.
func NewSyncJob(syncService service.SyncService, logger *logger.Logger) SyncJob {
	return &syncJob{syncService: syncService, logger: logger}
}

// Start implements SyncJob. If interval is zero or negative it defaults to
// DefaultSyncInterval. The goroutine exits when ctx is cancelled or Stop is
// called.
func (j *syncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultSyncInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()

		// Startup pass runs before the first tick.
		j.run(jobCtx)

		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.run(jobCtx)
			}
		}
	}()
}

// Stop implements SyncJob.
func (j *syncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// TriggerNow implements SyncJob. The sync service's single-flight guard
// ensures a manual trigger never races a scheduled pass.
func (j *syncJob) TriggerNow(ctx context.Context) models.SyncResult {
	return j.syncService.FullSync(ctx)
}

func (j *syncJob) run(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	result := j.syncService.FullSync(ctx)
	if !result.Success {
		j.logger.Error().Str("error", result.Error).Msg("scheduled sync pass failed, waiting for next trigger")
	}
}
