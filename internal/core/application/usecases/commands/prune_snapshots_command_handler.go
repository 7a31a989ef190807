package commands

import (
	"context"
)

// PruneSnapshotsCommandHandler handles orphaned snapshot cleanup.
// Catalog templates are never deleted; only order-specific snapshots with no
// remaining order line reference are removed.
type PruneSnapshotsCommandHandler struct {
	uowFactory SnapshotPruningUoWFactory
}

// NewPruneSnapshotsCommandHandler creates a handler for snapshot pruning.
func NewPruneSnapshotsCommandHandler(uowFactory SnapshotPruningUoWFactory) PruneSnapshotsCommandHandler {
	return PruneSnapshotsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the pruning command and returns the number of removed snapshots.
func (h *PruneSnapshotsCommandHandler) Handle(ctx context.Context, cmd PruneSnapshotsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	removed, err := uow.BomTemplateRepository().RemoveUnreferencedSnapshots(ctx)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return removed, nil
}
