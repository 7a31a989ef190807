package ports

import (
	"context"

	"github.com/geoffrey-prelium/sale-ouvrage/internal/core/domain/model/bom"
	"github.com/geoffrey-prelium/sale-ouvrage/internal/core/domain/model/kernel"
)

// BomTemplateRepository defines the persistence contract for BOM templates,
// both catalog templates and the order-specific snapshots created at
// confirmation.
type BomTemplateRepository interface {
	// Add persists a new template with its component lines.
	Add(ctx context.Context, template *bom.Template) error

	// Get retrieves a template by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*bom.Template, error)

	// FindDefaultForProduct retrieves the preferred template for a product:
	// the one with the lowest sort order. The second return value is false
	// when the product has no template at all, which is a valid state and
	// not an error.
	FindDefaultForProduct(ctx context.Context, productID kernel.UUID) (*bom.Template, bool, error)

	// RemoveUnreferencedSnapshots deletes order-specific snapshot templates
	// that no order line references anymore and returns how many were
	// removed. Catalog templates are never touched.
	RemoveUnreferencedSnapshots(ctx context.Context) (int, error)
}
