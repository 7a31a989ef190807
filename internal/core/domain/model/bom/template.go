package bom

import (
	"errors"
	"fmt"
	"time"

	"github.com/geoffrey-prelium/sale-ouvrage/internal/core/domain/model/kernel"
	"github.com/geoffrey-prelium/sale-ouvrage/internal/pkg/errs"
)

// ErrTemplateIsNotConstructed is returned when a Template instance was not
// created through NewTemplate, RestoreTemplate or CloneWithOverrides.
var ErrTemplateIsNotConstructed = errors.New("Template must be created via NewTemplate constructor")

// SnapshotSortOrder is the sort order assigned to order-specific snapshot
// templates. It pushes them past every catalog template so pickers that sort
// by this field list the catalog first.
const SnapshotSortOrder = 9999

// Template is the aggregate root for a bill-of-materials recipe.
//
// A template yields baseQuantity units of its product per recipe instance and
// lists the component lines required to build it. hidePrices and hideStructure
// are display defaults inherited by composite order lines at explosion time.
//
// Invariants:
//   - Must have a valid identifier and product reference
//   - baseQuantity is never negative; a zero baseQuantity is treated as 1
//     wherever per-unit ratios are derived
//   - No component line may reference a composite product (no nested
//     assemblies) — enforced by TemplateLine construction and re-checked on
//     AddLine
//
// Shared catalog templates are immutable from the order side; divergence is
// always materialized through CloneWithOverrides.
type Template struct {
	// id is the unique template identifier
	id kernel.UUID

	// productID is the assembly product this recipe builds
	productID kernel.UUID

	// code is the human-readable template reference
	code string

	// baseQuantity is the product amount yielded per recipe instance
	baseQuantity float64

	// hidePrices hides component prices on documents by default
	hidePrices bool

	// hideStructure hides the component breakdown on documents by default
	hideStructure bool

	// sortOrder orders templates in pickers; snapshots sort last
	sortOrder int

	// lines are the component entries, in recipe order
	lines []TemplateLine

	// guard ensures construction through a constructor
	guard kernel.ConstructorGuard
}

// NewTemplate creates an empty template with validation.
//
// Parameters:
//   - id: template identifier (must be a valid UUID)
//   - productID: the assembly product (must be a valid UUID)
//   - code: human-readable reference (must not be empty)
//   - baseQuantity: units yielded per recipe instance (must be >= 0; a zero
//     value falls back to 1 for ratio purposes)
//
// Components are attached afterwards through AddLine, which is where the
// no-nested-composite invariant rejects invalid recipes.
func NewTemplate(id, productID kernel.UUID, code string, baseQuantity float64) (*Template, error) {
	t := &Template{
		sortOrder: 0,
		guard:     kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setID(id),
		t.setProductID(productID),
		t.setCode(code),
		t.setBaseQuantity(baseQuantity),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// RestoreTemplate reconstructs a template from persistence, including its
// display flags, sort order and component lines.
func RestoreTemplate(
	id, productID kernel.UUID,
	code string,
	baseQuantity float64,
	hidePrices, hideStructure bool,
	sortOrder int,
	lines []TemplateLine,
) (*Template, error) {
	t, err := NewTemplate(id, productID, code, baseQuantity)
	if err != nil {
		return nil, err
	}

	t.hidePrices = hidePrices
	t.hideStructure = hideStructure
	t.sortOrder = sortOrder

	for _, line := range lines {
		if err = t.AddLine(line); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// CloneOverrides carries the fields rewritten when a template is cloned into
// an order-specific snapshot. Cloning is the only sanctioned way to diverge
// from a shared catalog template.
type CloneOverrides struct {
	// Code is the snapshot reference, typically built by SnapshotCode
	Code string

	// ProductID is the assembly product the snapshot belongs to
	ProductID kernel.UUID

	// BaseQuantity of the snapshot; regeneration normalizes lines per one
	// unit of the composite, so it passes 1 here
	BaseQuantity float64

	// SortOrder of the snapshot; regeneration passes SnapshotSortOrder
	SortOrder int
}

// CloneWithOverrides produces a new independent template from this one:
// display flags are copied, identity and the overridden fields are replaced,
// and the component lines are discarded so the caller can repopulate them
// from the actual composition. The source template is never mutated.
func (t *Template) CloneWithOverrides(id kernel.UUID, overrides CloneOverrides) (*Template, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	clone, err := NewTemplate(id, overrides.ProductID, overrides.Code, overrides.BaseQuantity)
	if err != nil {
		return nil, err
	}

	clone.hidePrices = t.hidePrices
	clone.hideStructure = t.hideStructure
	clone.sortOrder = overrides.SortOrder

	return clone, nil
}

// Validate ensures the Template was constructed through a constructor.
func (t *Template) Validate() error {
	if t == nil {
		return ErrTemplateIsNotConstructed
	}
	return t.guard.Validate(ErrTemplateIsNotConstructed)
}

// IsEqual compares two templates by identity.
func (t *Template) IsEqual(other *Template) bool {
	return other != nil && t.id.IsEqual(other.id)
}

// ID returns the template identifier.
func (t *Template) ID() kernel.UUID {
	return t.id
}

// ProductID returns the assembly product identifier.
func (t *Template) ProductID() kernel.UUID {
	return t.productID
}

// Code returns the human-readable template reference.
func (t *Template) Code() string {
	return t.code
}

// BaseQuantity returns the units yielded per recipe instance.
func (t *Template) BaseQuantity() float64 {
	return t.baseQuantity
}

// HidePrices returns the default price-visibility flag.
func (t *Template) HidePrices() bool {
	return t.hidePrices
}

// HideStructure returns the default structure-visibility flag.
func (t *Template) HideStructure() bool {
	return t.hideStructure
}

// SortOrder returns the picker sort order.
func (t *Template) SortOrder() int {
	return t.sortOrder
}

// SetDisplayDefaults sets the visibility flags inherited by order lines.
func (t *Template) SetDisplayDefaults(hidePrices, hideStructure bool) {
	t.hidePrices = hidePrices
	t.hideStructure = hideStructure
}

// Lines returns the component entries in recipe order.
// The returned slice is a copy; mutating it does not affect the template.
func (t *Template) Lines() []TemplateLine {
	lines := make([]TemplateLine, len(t.lines))
	copy(lines, t.lines)
	return lines
}

// AddLine appends a component entry to the recipe.
// The line must have been built through NewTemplateLine, which is where a
// composite component is rejected with ErrCompositeComponent.
func (t *Template) AddLine(line TemplateLine) error {
	if err := line.Validate(); err != nil {
		return err
	}

	t.lines = append(t.lines, line)
	return nil
}

// EffectiveBaseQuantity returns baseQuantity with the zero guard applied:
// a template declaring a zero yield is treated as yielding one unit so
// per-unit ratios stay definable.
func (t *Template) EffectiveBaseQuantity() float64 {
	if t.baseQuantity == 0 {
		return 1
	}
	return t.baseQuantity
}

// Ratios returns the per-unit component ratios of the recipe: for each
// component product, its quantity per one unit of the assembly. This is the
// template side of the drift comparison at order confirmation.
func (t *Template) Ratios() map[kernel.UUID]float64 {
	base := t.EffectiveBaseQuantity()
	ratios := make(map[kernel.UUID]float64, len(t.lines))
	for _, line := range t.lines {
		ratios[line.componentID] = line.quantity / base
	}
	return ratios
}

// SnapshotCode builds the traceability reference of an order-specific
// snapshot template: order reference, confirmation date and customer name.
// A zero date yields an empty date segment.
func SnapshotCode(orderRef string, confirmedAt time.Time, customerName string) string {
	dateStr := ""
	if !confirmedAt.IsZero() {
		dateStr = confirmedAt.Format("2006-01-02")
	}
	return fmt.Sprintf("%s - %s - %s", orderRef, dateStr, customerName)
}

func (t *Template) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Template) setProductID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("template product", err)
	}
	t.productID = id
	return nil
}

func (t *Template) setCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("template code")
	}
	t.code = code
	return nil
}

func (t *Template) setBaseQuantity(baseQuantity float64) error {
	if baseQuantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"template base quantity",
			fmt.Errorf("%v is negative", baseQuantity),
		)
	}
	t.baseQuantity = baseQuantity
	return nil
}
