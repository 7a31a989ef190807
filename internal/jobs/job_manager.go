package jobs

import (
	"fmt"
	"log/slog"

	"github.com/geoffrey-prelium/sale-ouvrage/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	snapshotPruningJob *SnapshotPruningJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	pruneSnapshotsHandler commands.PruneSnapshotsCommandHandler,
	pruningSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		snapshotPruningJob: NewSnapshotPruningJob(pruneSnapshotsHandler, pruningSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.snapshotPruningJob.Start(); err != nil {
		return fmt.Errorf("failed to start snapshot pruning job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.snapshotPruningJob.Stop()
}
