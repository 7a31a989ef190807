package bom

import (
	"errors"
	"fmt"

	"github.com/geoffrey-prelium/sale-ouvrage/internal/core/domain/model/kernel"
	"github.com/geoffrey-prelium/sale-ouvrage/internal/pkg/errs"
)

var (
	// ErrTemplateLineIsNotConstructed is returned when a TemplateLine was not
	// created through NewTemplateLine.
	ErrTemplateLineIsNotConstructed = errors.New("TemplateLine must be created via NewTemplateLine constructor")

	// ErrCompositeComponent is returned when a composite product is registered
	// as a component of a template. Assemblies cannot nest.
	ErrCompositeComponent = errors.New("composite products cannot be used as template components")
)

// TemplateLine is one component entry of a BOM template: which product goes
// into the assembly and how much of it per baseQuantity units of the assembly.
//
// The component's composite flag is captured at construction time so the
// no-nested-composite invariant is checked where the line is created, not
// deferred to a runtime walk of the tree.
type TemplateLine struct {
	// componentID identifies the component product
	componentID kernel.UUID

	// quantity is the amount of component per baseQuantity of the assembly
	quantity float64

	// guard ensures construction through NewTemplateLine
	guard kernel.ConstructorGuard
}

// NewTemplateLine creates a template line with validation.
//
// Parameters:
//   - componentID: the component product identifier (must be a valid UUID)
//   - componentIsComposite: the component product's composite flag from the catalog
//   - quantity: component quantity per recipe instance (must be > 0)
//
// Returns ErrCompositeComponent when the component is itself an assembly.
// This is the fatal validation failure of the composition engine: it rejects
// the write rather than being silently tolerated.
func NewTemplateLine(componentID kernel.UUID, componentIsComposite bool, quantity float64) (TemplateLine, error) {
	if err := componentID.Validate(); err != nil {
		return TemplateLine{}, err
	}

	if componentIsComposite {
		return TemplateLine{}, ErrCompositeComponent
	}

	if quantity <= 0 {
		return TemplateLine{}, errs.NewValueIsInvalidErrorWithCause(
			"template line quantity",
			fmt.Errorf("%v is not greater than 0", quantity),
		)
	}

	return TemplateLine{
		componentID: componentID,
		quantity:    quantity,
		guard:       kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the line was constructed through NewTemplateLine.
func (l TemplateLine) Validate() error {
	return l.guard.Validate(ErrTemplateLineIsNotConstructed)
}

// ComponentID returns the component product identifier.
func (l TemplateLine) ComponentID() kernel.UUID {
	return l.componentID
}

// Quantity returns the component quantity per recipe instance.
func (l TemplateLine) Quantity() float64 {
	return l.quantity
}
