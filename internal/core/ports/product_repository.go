package ports

import (
	"context"

	"github.com/geoffrey-prelium/sale-ouvrage/internal/core/domain/model/kernel"
	"github.com/geoffrey-prelium/sale-ouvrage/internal/core/domain/model/product"
)

// ProductRepository defines the read contract for the product catalog.
// The composition engine never writes products; it reads names, flags and
// catalog prices when creating lines and exploding templates.
type ProductRepository interface {
	// Get retrieves a product by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetBatch retrieves several products at once, keyed by identifier.
	// Unknown identifiers are simply absent from the result.
	GetBatch(ctx context.Context, ids []kernel.UUID) (map[kernel.UUID]*product.Product, error)
}
