package ports

import (
	"context"

	"github.com/geoffrey-prelium/sale-ouvrage/internal/core/domain/model/kernel"
	"github.com/geoffrey-prelium/sale-ouvrage/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// The aggregate is stored with its full line collection; loading an order
// always yields the complete composition trees.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, including
	// lines created or removed since it was loaded.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with all lines in document order.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllUnconfirmed retrieves all orders still in Draft status.
	GetAllUnconfirmed(ctx context.Context) ([]*order.Order, error)
}
