package commands

import (
	"errors"

	"github.com/geoffrey-prelium/sale-ouvrage/internal/pkg/guard"
)

var ErrPruneSnapshotsCommandIsNotConstructed = errors.New(
	"PruneSnapshotsCommand must be created via NewPruneSnapshotsCommand constructor",
)

// PruneSnapshotsCommand represents a request to delete order-specific BOM
// snapshots that no order line references anymore. Snapshots become orphaned
// when lines are removed or reconfigured after confirmation attempts.
type PruneSnapshotsCommand struct {
	guard guard.ConstructorGuard
}

// NewPruneSnapshotsCommand creates a command to prune orphaned snapshots.
func NewPruneSnapshotsCommand() PruneSnapshotsCommand {
	return PruneSnapshotsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c PruneSnapshotsCommand) Validate() error {
	return c.guard.Validate(ErrPruneSnapshotsCommandIsNotConstructed)
}
