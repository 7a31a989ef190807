package order

import (
	"errors"
	"fmt"
	"time"

	"github.com/geoffrey-prelium/sale-ouvrage/internal/core/domain/model/bom"
	"github.com/geoffrey-prelium/sale-ouvrage/internal/core/domain/model/kernel"
	"github.com/geoffrey-prelium/sale-ouvrage/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder or RestoreOrder constructor.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrNestedComposite is returned when a composite product is attached as
	// a component line. Composition trees are flat: an assembly never
	// contains another assembly.
	ErrNestedComposite = errors.New("component lines cannot carry a composite product")

	// ErrParentNotComposite is returned when components are attached under a
	// line that is not a composite line.
	ErrParentNotComposite = errors.New("components can only be attached to a composite line")

	// ErrLineAlreadyExists is returned when a line with the same identifier
	// is added twice.
	ErrLineAlreadyExists = errors.New("a line with this ID already exists in the order")
)

// ComponentSeed carries the catalog data used to price a component created
// during BOM explosion: the display name and the list price/cost per unit.
type ComponentSeed struct {
	Name         string
	ListPrice    kernel.Money
	StandardCost kernel.Money
}

// ComponentSpec describes one component row submitted through the manual
// reconfiguration wizard. Unlike explosion seeds, specs carry explicit
// pricing because the user may have overridden it row by row.
type ComponentSpec struct {
	ProductID          kernel.UUID
	ProductIsComposite bool
	Name               string
	Quantity           float64
	UnitPrice          kernel.Money
	UnitCost           kernel.Money
	DiscountPct        float64
}

// CompositeConfiguration is the full payload of a wizard save: the composite
// line's new quantity, display flags, governing template and the complete
// replacement child set.
type CompositeConfiguration struct {
	Quantity      float64
	HidePrices    bool
	HideStructure bool
	BomTemplateID *kernel.UUID
	Components    []ComponentSpec
}

// componentIndent is the description prefix marking component lines on
// documents. Presentation only; it carries no semantic weight.
const componentIndent = "> "

// Order is the aggregate root for a sale order with composite lines.
//
// The aggregate owns its ordered line collection and is the only place where
// the composition trees formed by composite lines and their components are
// mutated. Every tree operation (explosion, rescaling, cascade removal,
// child replacement) runs through it, so the flat-tree and ownership
// invariants are enforced by construction rather than by runtime checks
// scattered over callers.
//
// Order follows these invariants:
//   - Must have a valid identifier, reference, customer name and currency
//   - A component line's parent is a composite line of this order
//   - A component line never carries a composite product (flat tree)
//   - Removing a composite line removes its components (exclusive ownership)
//   - Derived margins are recomputed after every mutation
type Order struct {
	// id is the unique order identifier
	id kernel.UUID

	// reference is the human-readable order number, e.g. "SO0042"
	reference string

	// customerName identifies the customer for snapshot traceability
	customerName string

	// currency is the ISO currency code of all monetary amounts
	currency string

	// placedAt is the order date used in snapshot template codes
	placedAt time.Time

	// status is the current lifecycle state
	status Status

	// lines is the ordered line collection; components follow their parent
	lines []*Line

	// guard ensures construction through NewOrder/RestoreOrder
	guard kernel.ConstructorGuard
}

// NewOrder creates a new draft Order with validation.
//
// Parameters:
//   - id: order identifier (must be a valid UUID)
//   - reference: human-readable order number (must not be empty)
//   - customerName: customer display name (must not be empty)
//   - currency: ISO currency code (must not be empty)
//   - placedAt: order date (must not be zero)
func NewOrder(id kernel.UUID, reference, customerName, currency string, placedAt time.Time) (*Order, error) {
	o := &Order{
		status: Draft,
		guard:  kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setReference(reference),
		o.setCustomerName(customerName),
		o.setCurrency(currency),
		o.setPlacedAt(placedAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence.
//
// The line collection must already be in document order (components after
// their parent). Tree integrity is re-validated and derived margins are
// recomputed; persisted margin values are never trusted.
func RestoreOrder(
	id kernel.UUID,
	reference, customerName, currency string,
	placedAt time.Time,
	status Status,
	lines []*Line,
) (*Order, error) {
	o, err := NewOrder(id, reference, customerName, currency, placedAt)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	o.status = status

	for _, line := range lines {
		if err = line.Validate(); err != nil {
			return nil, err
		}
		if o.lineByID(line.id) != nil {
			return nil, ErrLineAlreadyExists
		}
		o.lines = append(o.lines, line)
	}

	if err = o.validateTree(); err != nil {
		return nil, err
	}

	for _, line := range o.lines {
		o.recomputeLine(line)
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Reference returns the human-readable order number.
func (o *Order) Reference() string {
	return o.reference
}

// CustomerName returns the customer display name.
func (o *Order) CustomerName() string {
	return o.customerName
}

// Currency returns the ISO currency code.
func (o *Order) Currency() string {
	return o.currency
}

// PlacedAt returns the order date.
func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// Lines returns the full line collection in document order.
// The returned slice is a copy; the pointed-to lines are the aggregate's.
func (o *Order) Lines() []*Line {
	lines := make([]*Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// Line returns the line with the given identifier.
func (o *Order) Line(lineID kernel.UUID) (*Line, error) {
	line := o.lineByID(lineID)
	if line == nil {
		return nil, errs.NewObjectNotFoundError("line", lineID.String())
	}
	return line, nil
}

// Children returns the component lines owned by the given composite line,
// in insertion order (explosion or recreation order). A line that is not
// composite, or a composite with no resolved template, yields an empty set.
func (o *Order) Children(lineID kernel.UUID) []*Line {
	var children []*Line
	for _, line := range o.lines {
		if line.parentLineID != nil && line.parentLineID.IsEqual(lineID) {
			children = append(children, line)
		}
	}
	return children
}

// Parent returns the composite line owning the given component line.
// The second return value is false for root lines.
func (o *Order) Parent(lineID kernel.UUID) (*Line, bool) {
	line := o.lineByID(lineID)
	if line == nil || line.parentLineID == nil {
		return nil, false
	}
	parent := o.lineByID(*line.parentLineID)
	if parent == nil {
		return nil, false
	}
	return parent, true
}

// AddLine appends a root line to the order.
// Component lines are never added directly; they are created by explosion
// or by composite reconfiguration so ownership stays with the aggregate.
func (o *Order) AddLine(line *Line) error {
	if err := line.Validate(); err != nil {
		return err
	}

	if line.IsComponent() {
		return errs.NewValueIsInvalidErrorWithCause(
			"line",
			errors.New("component lines are created through their composite line"),
		)
	}

	if o.lineByID(line.id) != nil {
		return ErrLineAlreadyExists
	}

	o.lines = append(o.lines, line)
	o.recomputeLine(line)
	return nil
}

// RemoveLine removes a line from the order.
// Removing a composite line cascades to its component lines: ownership is
// exclusive, so no component ever survives its parent. Removing a component
// line recomputes the parent's derived margin.
func (o *Order) RemoveLine(lineID kernel.UUID) error {
	line := o.lineByID(lineID)
	if line == nil {
		return errs.NewObjectNotFoundError("line", lineID.String())
	}

	parentID := line.parentLineID

	remove := map[kernel.UUID]bool{line.id: true}
	for _, child := range o.Children(line.id) {
		remove[child.id] = true
	}

	kept := o.lines[:0]
	for _, l := range o.lines {
		if !remove[l.id] {
			kept = append(kept, l)
		}
	}
	o.lines = kept

	if parentID != nil {
		if parent := o.lineByID(*parentID); parent != nil {
			o.recomputeLine(parent)
		}
	}

	return nil
}

// ExplodeLine materializes a BOM template into component lines under a
// composite line: one child per template line with quantity = template
// quantity × parent quantity. It runs once, when a composite line first
// obtains its template; pre-existing children are never touched.
//
// The composite line inherits the template's display flags and its unit
// price and cost are seeded as the per-unit sum of the catalog list prices
// and costs of the components (the documented seeding policy). Component
// pricing comes from the seeds; a missing seed leaves the child at zero
// price, deferring to later pricing resolution.
//
// A nil template is a silent no-op: the line stays a valid, inert composite
// with zero children.
func (o *Order) ExplodeLine(lineID kernel.UUID, template *bom.Template, seeds map[kernel.UUID]ComponentSeed) error {
	line := o.lineByID(lineID)
	if line == nil {
		return errs.NewObjectNotFoundError("line", lineID.String())
	}

	if template == nil {
		return nil
	}

	if !line.IsComposite() {
		return errs.NewValueIsInvalidErrorWithCause(
			"line",
			fmt.Errorf("line %s is not a composite line", line.id),
		)
	}

	if err := template.Validate(); err != nil {
		return err
	}

	templateID := template.ID()
	line.bomTemplateID = &templateID
	line.hidePrices = template.HidePrices()
	line.hideStructure = template.HideStructure()

	base := template.EffectiveBaseQuantity()
	unitPrice := kernel.ZeroMoney()
	unitCost := kernel.ZeroMoney()

	for _, tl := range template.Lines() {
		seed := seeds[tl.ComponentID()]
		name := seed.Name
		if name == "" {
			name = tl.ComponentID().String()
		}

		child, err := NewLine(
			kernel.NewUUID(),
			tl.ComponentID(),
			false,
			componentIndent+name,
			tl.Quantity()*line.quantity,
			seed.ListPrice,
			seed.StandardCost,
			0,
		)
		if err != nil {
			return err
		}

		if err = o.attachComponent(line, child); err != nil {
			return err
		}

		perUnit := tl.Quantity() / base
		unitPrice = unitPrice.Add(seed.ListPrice.MulFloat(perUnit))
		unitCost = unitCost.Add(seed.StandardCost.MulFloat(perUnit))
	}

	line.unitPrice = unitPrice
	line.unitCost = unitCost

	o.recomputeAround(line)
	return nil
}

// UpdateLineQuantity changes a line's quantity.
//
// For a composite line the children are rescaled proportionally: every child
// quantity is multiplied by newQuantity/oldQuantity. Only quantities change;
// unit prices, costs and discounts on children are left untouched so manual
// overrides survive a resize. When the old quantity is zero no ratio is
// definable and the children are left as they are.
func (o *Order) UpdateLineQuantity(lineID kernel.UUID, newQuantity float64) error {
	line := o.lineByID(lineID)
	if line == nil {
		return errs.NewObjectNotFoundError("line", lineID.String())
	}

	oldQuantity := line.quantity
	if err := line.setQuantity(newQuantity); err != nil {
		return err
	}

	if line.IsComposite() && oldQuantity != 0 && newQuantity != oldQuantity {
		ratio := newQuantity / oldQuantity
		for _, child := range o.Children(line.id) {
			child.quantity *= ratio
		}
	}

	o.recomputeAround(line)
	return nil
}

// UpdateLinePricing changes a line's unit price, unit cost and discount.
// This is the external write entry for manual price overrides; derived
// margins on the line and its parent are recomputed.
func (o *Order) UpdateLinePricing(lineID kernel.UUID, unitPrice, unitCost kernel.Money, discountPct float64) error {
	line := o.lineByID(lineID)
	if line == nil {
		return errs.NewObjectNotFoundError("line", lineID.String())
	}

	if err := line.setDiscountPct(discountPct); err != nil {
		return err
	}
	line.unitPrice = unitPrice
	line.unitCost = unitCost

	o.recomputeAround(line)
	return nil
}

// ConfigureComposite applies a wizard save to a composite line: the entire
// child set is destructively replaced by the submitted component rows, and
// the line's quantity, display flags and template reference are rewritten.
//
// The replacement rows pass through the same invariants as explosion:
// a composite product among them is rejected with ErrNestedComposite and
// nothing is modified.
func (o *Order) ConfigureComposite(lineID kernel.UUID, cfg CompositeConfiguration) error {
	line := o.lineByID(lineID)
	if line == nil {
		return errs.NewObjectNotFoundError("line", lineID.String())
	}

	if !line.IsComposite() {
		return ErrParentNotComposite
	}

	for _, spec := range cfg.Components {
		if spec.ProductIsComposite {
			return ErrNestedComposite
		}
	}

	replacements := make([]*Line, 0, len(cfg.Components))
	for _, spec := range cfg.Components {
		child, err := NewLine(
			kernel.NewUUID(),
			spec.ProductID,
			false,
			componentIndent+spec.Name,
			spec.Quantity,
			spec.UnitPrice,
			spec.UnitCost,
			spec.DiscountPct,
		)
		if err != nil {
			return err
		}
		replacements = append(replacements, child)
	}

	if err := line.setQuantity(cfg.Quantity); err != nil {
		return err
	}

	for _, child := range o.Children(line.id) {
		if err := o.RemoveLine(child.id); err != nil {
			return err
		}
	}

	line.hidePrices = cfg.HidePrices
	line.hideStructure = cfg.HideStructure
	if cfg.BomTemplateID != nil {
		ref := *cfg.BomTemplateID
		line.bomTemplateID = &ref
	}

	for _, child := range replacements {
		if err := o.attachComponent(line, child); err != nil {
			return err
		}
	}

	o.recomputeAround(line)
	return nil
}

// RebindTemplate points a composite line at a different BOM template.
// Used by confirmation when a drifted composition has been frozen into an
// order-specific snapshot.
func (o *Order) RebindTemplate(lineID, templateID kernel.UUID) error {
	line := o.lineByID(lineID)
	if line == nil {
		return errs.NewObjectNotFoundError("line", lineID.String())
	}

	if err := templateID.Validate(); err != nil {
		return err
	}

	line.bomTemplateID = &templateID
	return nil
}

// Confirm transitions the order from Draft to Confirmed.
// Drift detection and BOM regeneration run before this transition and
// must have succeeded; Confirm itself only moves the status.
func (o *Order) Confirm() error {
	newStatus, err := o.status.Confirm()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// TaxableLines returns the lines that enter order-level totals: product
// lines that are not composite. Composite lines are excluded because their
// own subtotal would double-count the children already present in the set;
// display lines carry no amounts.
func (o *Order) TaxableLines() []*Line {
	var taxable []*Line
	for _, line := range o.lines {
		if line.displayType.IsDisplay() || line.IsComposite() {
			continue
		}
		taxable = append(taxable, line)
	}
	return taxable
}

// CompositeLines returns every composite line of the order in document order.
func (o *Order) CompositeLines() []*Line {
	var composites []*Line
	for _, line := range o.lines {
		if line.IsComposite() {
			composites = append(composites, line)
		}
	}
	return composites
}

// attachComponent inserts a child under a composite parent, directly after
// the parent's existing component block so the document order stays grouped.
func (o *Order) attachComponent(parent, child *Line) error {
	if !parent.IsComposite() {
		return ErrParentNotComposite
	}
	if child.productIsComposite {
		return ErrNestedComposite
	}
	if o.lineByID(child.id) != nil {
		return ErrLineAlreadyExists
	}

	parentID := parent.id
	child.parentLineID = &parentID

	insertAt := -1
	for i, l := range o.lines {
		if l.id.IsEqual(parent.id) {
			insertAt = i + 1
			continue
		}
		if insertAt >= 0 && l.parentLineID != nil && l.parentLineID.IsEqual(parent.id) {
			insertAt = i + 1
		}
	}
	if insertAt < 0 {
		return errs.NewObjectNotFoundError("line", parent.id.String())
	}

	o.lines = append(o.lines, nil)
	copy(o.lines[insertAt+1:], o.lines[insertAt:])
	o.lines[insertAt] = child
	return nil
}

// recomputeLine recomputes the derived margin fields of a single line.
// For a composite line the cost side is the summed cost of its components;
// any other line uses its own cost total.
func (o *Order) recomputeLine(line *Line) {
	if line.displayType.IsDisplay() {
		line.margin = kernel.ZeroMoney()
		line.marginPct = 0
		return
	}

	subtotal := line.Subtotal()
	cost := kernel.ZeroMoney()
	if line.IsComposite() {
		for _, child := range o.Children(line.id) {
			cost = cost.Add(child.CostTotal())
		}
	} else {
		cost = line.CostTotal()
	}

	line.margin = subtotal.Sub(cost)
	line.marginPct = line.margin.PctOf(subtotal)
}

// recomputeAround recomputes the line, its children and, when the line is a
// component, its parent. This is the single internal recomputation entry:
// external writes call it explicitly instead of re-triggering themselves.
func (o *Order) recomputeAround(line *Line) {
	for _, child := range o.Children(line.id) {
		o.recomputeLine(child)
	}
	o.recomputeLine(line)
	if parent, ok := o.Parent(line.id); ok {
		o.recomputeLine(parent)
	}
}

// validateTree checks referential integrity of restored line collections:
// every component's parent exists, is composite and is itself a root line,
// and no component carries a composite product.
func (o *Order) validateTree() error {
	for _, line := range o.lines {
		if line.parentLineID == nil {
			continue
		}

		if line.productIsComposite {
			return ErrNestedComposite
		}

		parent := o.lineByID(*line.parentLineID)
		if parent == nil {
			return errs.NewObjectNotFoundError("parent line", line.parentLineID.String())
		}
		if !parent.IsComposite() {
			return ErrParentNotComposite
		}
		if parent.IsComponent() {
			return ErrNestedComposite
		}
	}
	return nil
}

func (o *Order) lineByID(id kernel.UUID) *Line {
	for _, line := range o.lines {
		if line.id.IsEqual(id) {
			return line
		}
	}
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setReference(reference string) error {
	if reference == "" {
		return errs.NewValueIsRequiredError("order reference")
	}
	o.reference = reference
	return nil
}

func (o *Order) setCustomerName(customerName string) error {
	if customerName == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	o.customerName = customerName
	return nil
}

func (o *Order) setCurrency(currency string) error {
	if currency == "" {
		return errs.NewValueIsRequiredError("currency")
	}
	o.currency = currency
	return nil
}

func (o *Order) setPlacedAt(placedAt time.Time) error {
	if placedAt.IsZero() {
		return errs.NewValueIsRequiredError("order date")
	}
	o.placedAt = placedAt
	return nil
}
