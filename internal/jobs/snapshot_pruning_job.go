package jobs

import (
	"context"
	"log/slog"

	"github.com/geoffrey-prelium/sale-ouvrage/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// SnapshotPruningJob manages the scheduled cleanup of orphaned BOM snapshots.
// Snapshots lose their last reference when lines are removed or reconfigured
// after a confirmation froze them; this job reclaims them on a cron schedule.
type SnapshotPruningJob struct {
	handler  commands.PruneSnapshotsCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewSnapshotPruningJob creates a new job for pruning orphaned snapshots.
// The schedule is a standard five-field cron expression.
func NewSnapshotPruningJob(handler commands.PruneSnapshotsCommandHandler, schedule string, logger *slog.Logger) *SnapshotPruningJob {
	return &SnapshotPruningJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "snapshot_pruning_job"),
	}
}

// Start begins the snapshot pruning job on its configured schedule.
func (j *SnapshotPruningJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cmd := commands.NewPruneSnapshotsCommand()

		removed, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Snapshot pruning job failed", "error", err)
			return
		}

		if removed > 0 {
			j.logger.InfoContext(ctx, "Pruned orphaned snapshots", "removed", removed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Snapshot pruning job started", "schedule", j.schedule)
	return nil
}

// Stop stops the snapshot pruning job.
func (j *SnapshotPruningJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Snapshot pruning job stopped")
}
