// Package product contains the catalog Product entity consumed by the
// composition engine. Products are long-lived catalog data owned by an
// external catalog system; this model carries only what order-line
// composition needs: identity, the composite flag and list pricing.
package product

import (
	"errors"

	"github.com/geoffrey-prelium/sale-ouvrage/internal/core/domain/model/kernel"
	"github.com/geoffrey-prelium/sale-ouvrage/internal/pkg/errs"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through NewProduct or RestoreProduct.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product represents a catalog item. A product flagged as composite is an
// assembly ("ouvrage"): adding it to an order produces a composite line whose
// children are exploded from the product's BOM template.
//
// Invariants:
//   - Must have a valid unique identifier
//   - Must have a non-empty name
//   - List price and standard cost are monetary amounts (zero is valid)
//
// Identity is immutable; mutation is catalog maintenance outside this system.
type Product struct {
	// id is the unique catalog identifier
	id kernel.UUID

	// name is the catalog display name
	name string

	// isComposite marks the product as an assembly built from components
	isComposite bool

	// listPrice is the catalog sales price per unit
	listPrice kernel.Money

	// standardCost is the catalog cost per unit
	standardCost kernel.Money

	// guard ensures construction through NewProduct/RestoreProduct
	guard kernel.ConstructorGuard
}

// NewProduct creates a Product with validation.
//
// Parameters:
//   - id: catalog identifier (must be a valid UUID)
//   - name: display name (must not be empty)
//   - isComposite: whether the product is an assembly
//   - listPrice: catalog sales price per unit
//   - standardCost: catalog cost per unit
//
// Returns the product, or a validation error describing every failed check.
func NewProduct(id kernel.UUID, name string, isComposite bool, listPrice, standardCost kernel.Money) (*Product, error) {
	p := &Product{
		isComposite:  isComposite,
		listPrice:    listPrice,
		standardCost: standardCost,
		guard:        kernel.NewConstructorGuard(),
	}

	if err := errors.Join(p.setID(id), p.setName(name)); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct reconstructs a Product from persistence.
// Validation is identical to NewProduct; restored products behave exactly
// like newly constructed ones.
func RestoreProduct(id kernel.UUID, name string, isComposite bool, listPrice, standardCost kernel.Money) (*Product, error) {
	return NewProduct(id, name, isComposite, listPrice, standardCost)
}

// Validate ensures the Product was constructed through a constructor.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// IsEqual compares two products by identity.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the catalog identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the catalog display name.
func (p *Product) Name() string {
	return p.name
}

// IsComposite reports whether the product is an assembly.
func (p *Product) IsComposite() bool {
	return p.isComposite
}

// ListPrice returns the catalog sales price per unit.
func (p *Product) ListPrice() kernel.Money {
	return p.listPrice
}

// StandardCost returns the catalog cost per unit.
func (p *Product) StandardCost() kernel.Money {
	return p.standardCost
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	p.name = name
	return nil
}
