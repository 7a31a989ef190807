package order

import (
	"errors"
	"fmt"

	"github.com/geoffrey-prelium/sale-ouvrage/internal/core/domain/model/kernel"
	"github.com/geoffrey-prelium/sale-ouvrage/internal/pkg/errs"
)

// ErrLineIsNotConstructed is returned when a Line instance was not created
// through the NewLine or RestoreLine constructor.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// DisplayType tells whether a line carries a product or is purely
// presentational (a section header or a note). Presentational lines never
// enter totals.
type DisplayType int

const (
	// DisplayProduct is a regular product-carrying line.
	DisplayProduct DisplayType = iota

	// DisplaySection is a section header inside the order.
	DisplaySection

	// DisplayNote is a free-text note inside the order.
	DisplayNote
)

// IsDisplay reports whether the line is purely presentational.
func (d DisplayType) IsDisplay() bool {
	return d != DisplayProduct
}

// Line is an order line entity owned by the Order aggregate.
//
// A line is either a root line (no parent) or a component line (parent set to
// a composite line of the same order). Component-ness is purely the
// relationship: a component line carries the same fields as any other line.
//
// A composite line (product flagged as an assembly) owns its component lines
// and carries a nullable BOM reference: the template currently governing its
// shape. Margin and margin percentage are derived fields maintained by the
// aggregate, never written from outside.
type Line struct {
	// id is the unique line identifier
	id kernel.UUID

	// productID references the catalog product
	productID kernel.UUID

	// productIsComposite is the product's assembly flag, captured when the
	// line is built so tree invariants never need a catalog round trip
	productIsComposite bool

	// description is the document label; component lines carry an
	// indentation marker prefix for presentation only
	description string

	// displayType distinguishes product lines from sections and notes
	displayType DisplayType

	// quantity of product on the line
	quantity float64

	// unitPrice is the sales price per unit
	unitPrice kernel.Money

	// unitCost is the cost per unit
	unitCost kernel.Money

	// discountPct is the discount percentage in [0, 100]
	discountPct float64

	// parentLineID points to the owning composite line, nil for root lines
	parentLineID *kernel.UUID

	// bomTemplateID is the template governing a composite line's shape,
	// nil when no template resolved
	bomTemplateID *kernel.UUID

	// hidePrices hides component prices on documents
	hidePrices bool

	// hideStructure hides the component breakdown on documents
	hideStructure bool

	// margin is derived: maintained by the aggregate
	margin kernel.Money

	// marginPct is derived: maintained by the aggregate
	marginPct float64

	// guard ensures construction through NewLine/RestoreLine
	guard kernel.ConstructorGuard
}

// NewLine creates a root-candidate line with validation.
//
// Parameters:
//   - id: line identifier (must be a valid UUID)
//   - productID: catalog product (must be a valid UUID)
//   - productIsComposite: the product's assembly flag from the catalog
//   - description: document label (must not be empty)
//   - quantity: product quantity (must not be negative)
//   - unitPrice, unitCost: per-unit amounts
//   - discountPct: discount percentage (must be within [0, 100])
//
// The line is created unparented; attaching it under a composite line is an
// Order aggregate operation so tree invariants stay in one place.
func NewLine(
	id, productID kernel.UUID,
	productIsComposite bool,
	description string,
	quantity float64,
	unitPrice, unitCost kernel.Money,
	discountPct float64,
) (*Line, error) {
	line := &Line{
		productIsComposite: productIsComposite,
		displayType:        DisplayProduct,
		unitPrice:          unitPrice,
		unitCost:           unitCost,
		guard:              kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		line.setID(id),
		line.setProductID(productID),
		line.setDescription(description),
		line.setQuantity(quantity),
		line.setDiscountPct(discountPct),
	); err != nil {
		return nil, err
	}

	return line, nil
}

// NewDisplayLine creates a presentational section or note line.
// Display lines carry no product, no amounts and never enter totals.
func NewDisplayLine(id kernel.UUID, displayType DisplayType, description string) (*Line, error) {
	if !displayType.IsDisplay() {
		return nil, errs.NewValueIsInvalidError("display type")
	}

	line := &Line{
		displayType: displayType,
		guard:       kernel.NewConstructorGuard(),
	}

	if err := errors.Join(line.setID(id), line.setDescription(description)); err != nil {
		return nil, err
	}

	return line, nil
}

// RestoreLine reconstructs a line from persistence, including its parent
// back-reference, BOM reference and display flags. Derived fields are
// recomputed by the aggregate after restoration, not trusted from storage.
func RestoreLine(
	id, productID kernel.UUID,
	productIsComposite bool,
	description string,
	displayType DisplayType,
	quantity float64,
	unitPrice, unitCost kernel.Money,
	discountPct float64,
	parentLineID, bomTemplateID *kernel.UUID,
	hidePrices, hideStructure bool,
) (*Line, error) {
	if displayType.IsDisplay() {
		return NewDisplayLine(id, displayType, description)
	}

	line, err := NewLine(id, productID, productIsComposite, description, quantity, unitPrice, unitCost, discountPct)
	if err != nil {
		return nil, err
	}

	if parentLineID != nil {
		if err = parentLineID.Validate(); err != nil {
			return nil, err
		}
		parent := *parentLineID
		line.parentLineID = &parent
	}

	if bomTemplateID != nil {
		if err = bomTemplateID.Validate(); err != nil {
			return nil, err
		}
		ref := *bomTemplateID
		line.bomTemplateID = &ref
	}

	line.hidePrices = hidePrices
	line.hideStructure = hideStructure

	return line, nil
}

// Validate ensures the Line was constructed through a constructor.
func (l *Line) Validate() error {
	if l == nil {
		return ErrLineIsNotConstructed
	}
	return l.guard.Validate(ErrLineIsNotConstructed)
}

// IsEqual compares two lines by identity.
func (l *Line) IsEqual(other *Line) bool {
	return other != nil && l.id.IsEqual(other.id)
}

// ID returns the line identifier.
func (l *Line) ID() kernel.UUID {
	return l.id
}

// ProductID returns the catalog product reference.
func (l *Line) ProductID() kernel.UUID {
	return l.productID
}

// IsComposite reports whether the line's product is an assembly.
// Display lines are never composite.
func (l *Line) IsComposite() bool {
	return l.displayType == DisplayProduct && l.productIsComposite
}

// IsComponent reports whether the line belongs to a composite line.
func (l *Line) IsComponent() bool {
	return l.parentLineID != nil
}

// Description returns the document label.
func (l *Line) Description() string {
	return l.description
}

// DisplayType returns the line's display kind.
func (l *Line) DisplayType() DisplayType {
	return l.displayType
}

// Quantity returns the product quantity.
func (l *Line) Quantity() float64 {
	return l.quantity
}

// UnitPrice returns the sales price per unit.
func (l *Line) UnitPrice() kernel.Money {
	return l.unitPrice
}

// UnitCost returns the cost per unit.
func (l *Line) UnitCost() kernel.Money {
	return l.unitCost
}

// DiscountPct returns the discount percentage.
func (l *Line) DiscountPct() float64 {
	return l.discountPct
}

// ParentLineID returns the owning composite line's identifier, nil for roots.
func (l *Line) ParentLineID() *kernel.UUID {
	if l.parentLineID == nil {
		return nil
	}
	id := *l.parentLineID
	return &id
}

// BomTemplateID returns the governing template's identifier, nil when no
// template resolved. A composite line without a template is a valid, inert
// state.
func (l *Line) BomTemplateID() *kernel.UUID {
	if l.bomTemplateID == nil {
		return nil
	}
	id := *l.bomTemplateID
	return &id
}

// HidePrices returns the price-visibility flag.
func (l *Line) HidePrices() bool {
	return l.hidePrices
}

// HideStructure returns the structure-visibility flag.
func (l *Line) HideStructure() bool {
	return l.hideStructure
}

// Subtotal returns the untaxed line amount: unit price × quantity, reduced
// by the discount percentage.
func (l *Line) Subtotal() kernel.Money {
	if l.displayType.IsDisplay() {
		return kernel.ZeroMoney()
	}
	return l.unitPrice.MulFloat(l.quantity).ApplyDiscount(l.discountPct)
}

// CostTotal returns unit cost × quantity.
func (l *Line) CostTotal() kernel.Money {
	if l.displayType.IsDisplay() {
		return kernel.ZeroMoney()
	}
	return l.unitCost.MulFloat(l.quantity)
}

// Margin returns the derived line margin.
// For a composite line this is subtotal minus the summed cost of its
// components; for any other line, subtotal minus its own cost total.
func (l *Line) Margin() kernel.Money {
	return l.margin
}

// MarginPct returns the derived margin percentage (0 when the subtotal is zero).
func (l *Line) MarginPct() float64 {
	return l.marginPct
}

func (l *Line) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Line) setProductID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("line product", err)
	}
	l.productID = id
	return nil
}

func (l *Line) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("line description")
	}
	l.description = description
	return nil
}

func (l *Line) setQuantity(quantity float64) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"line quantity",
			fmt.Errorf("%v is negative", quantity),
		)
	}
	l.quantity = quantity
	return nil
}

func (l *Line) setDiscountPct(discountPct float64) error {
	if discountPct < 0 || discountPct > 100 {
		return errs.NewValueIsOutOfRangeError("line discount", discountPct, 0, 100)
	}
	l.discountPct = discountPct
	return nil
}
