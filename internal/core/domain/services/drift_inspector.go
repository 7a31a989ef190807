package services

import (
	"math"

	"github.com/geoffrey-prelium/sale-ouvrage/internal/core/domain/model/bom"
	"github.com/geoffrey-prelium/sale-ouvrage/internal/core/domain/model/kernel"
	"github.com/geoffrey-prelium/sale-ouvrage/internal/core/domain/model/order"
)

// ratioTolerance bounds the accepted difference between an actual per-unit
// component ratio and the template ratio before the composition counts as
// drifted. Quantities are floats; exact comparison would flag every rescale.
const ratioTolerance = 0.001

// DriftInspector is a domain service that decides whether the actual
// composition of a composite line still matches the BOM template it was
// exploded from.
//
// A composition has drifted when any of the following holds:
//   - the number of child lines differs from the number of template lines
//   - a child's product has no matching template line
//   - a child's per-unit ratio deviates from the template ratio by more
//     than the tolerance
//
// Drift is evaluated on per-unit ratios, not absolute quantities, so a
// proportional rescale of the composite line never counts as drift. A
// zero composite quantity divides by one instead, so a composition whose
// children still carry the exact per-unit quantities stays undrifted.
// The inspector is pure: it reads the order and template and mutates
// neither.
type DriftInspector struct{}

// NewDriftInspector creates a new DriftInspector instance.
func NewDriftInspector() DriftInspector {
	return DriftInspector{}
}

// Inspect reports whether the composite line's children diverge from the
// given template.
//
// A nil template means the line has no governing composition to diverge
// from; it is never drifted. The child count is checked before any ratio,
// so splitting one component over two lines counts as drift even when the
// summed quantity matches the template.
func (d DriftInspector) Inspect(o *order.Order, lineID kernel.UUID, template *bom.Template) (bool, error) {
	if err := o.Validate(); err != nil {
		return false, err
	}

	line, err := o.Line(lineID)
	if err != nil {
		return false, err
	}

	if template == nil {
		return false, nil
	}

	if err = template.Validate(); err != nil {
		return false, err
	}

	children := o.Children(line.ID())
	if len(children) != len(template.Lines()) {
		return true, nil
	}

	targets := template.Ratios()

	quantity := line.Quantity()
	if quantity == 0 {
		quantity = 1
	}

	for _, child := range children {
		target, ok := targets[child.ProductID()]
		if !ok {
			return true, nil
		}
		if math.Abs(child.Quantity()/quantity-target) > ratioTolerance {
			return true, nil
		}
	}

	return false, nil
}
