package commands

import (
	"errors"

	"github.com/geoffrey-prelium/sale-ouvrage/internal/core/domain/model/kernel"
	"github.com/geoffrey-prelium/sale-ouvrage/internal/pkg/guard"
)

var (
	ErrConfigureCompositeCommandIsNotConstructed = errors.New(
		"ConfigureCompositeCommand must be created via NewConfigureCompositeCommand constructor",
	)
	ErrComponentNameIsRequired = errors.New("component name is required")
)

// ComponentRow is one component submitted through the composite
// reconfiguration wizard, with explicit per-row pricing.
type ComponentRow struct {
	ProductID   kernel.UUID
	Name        string
	Quantity    float64
	UnitPrice   kernel.Money
	UnitCost    kernel.Money
	DiscountPct float64
}

// ConfigureCompositeCommand represents a wizard save on a composite line:
// the component set is destructively replaced by the submitted rows and the
// line's quantity, display flags and template binding are rewritten.
//
// Example:
//
//	rows := []ComponentRow{{ProductID: hingeID, Name: "Hinge", Quantity: 8}}
//	cmd, err := NewConfigureCompositeCommand(orderID, lineID, 2, false, true, nil, rows)
//	if err != nil {
//	    return fmt.Errorf("invalid configuration: %w", err)
//	}
//
//	handler := NewConfigureCompositeCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to reconfigure: %w", err)
//	}
type ConfigureCompositeCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	lineID        kernel.UUID
	quantity      float64
	hidePrices    bool
	hideStructure bool
	bomTemplateID *kernel.UUID
	components    []ComponentRow

	guard guard.ConstructorGuard
}

// NewConfigureCompositeCommand creates a command to reconfigure a composite
// line. Validates the identifiers, the quantity, and every component row:
// valid product reference, non-empty name, non-negative quantity and a
// discount within [0, 100].
func NewConfigureCompositeCommand(
	orderID, lineID kernel.UUID,
	quantity float64,
	hidePrices, hideStructure bool,
	bomTemplateID *kernel.UUID,
	components []ComponentRow,
) (ConfigureCompositeCommand, error) {
	configureCommand := ConfigureCompositeCommand{
		hidePrices:    hidePrices,
		hideStructure: hideStructure,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		configureCommand.setOrderID(orderID),
		configureCommand.setLineID(lineID),
		configureCommand.setQuantity(quantity),
		configureCommand.setBomTemplateID(bomTemplateID),
		configureCommand.setComponents(components),
	); err != nil {
		return ConfigureCompositeCommand{}, err
	}

	return configureCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfigureCompositeCommand) Validate() error {
	return c.guard.Validate(ErrConfigureCompositeCommandIsNotConstructed)
}

// OrderID returns the identifier of the target order.
func (c ConfigureCompositeCommand) OrderID() kernel.UUID {
	return c.orderID
}

// LineID returns the identifier of the composite line to reconfigure.
func (c ConfigureCompositeCommand) LineID() kernel.UUID {
	return c.lineID
}

// Quantity returns the new composite quantity.
func (c ConfigureCompositeCommand) Quantity() float64 {
	return c.quantity
}

// HidePrices returns whether component prices are hidden on documents.
func (c ConfigureCompositeCommand) HidePrices() bool {
	return c.hidePrices
}

// HideStructure returns whether component lines are hidden on documents.
func (c ConfigureCompositeCommand) HideStructure() bool {
	return c.hideStructure
}

// BomTemplateID returns the template to bind the line to, nil to keep the
// current binding.
func (c ConfigureCompositeCommand) BomTemplateID() *kernel.UUID {
	if c.bomTemplateID == nil {
		return nil
	}
	id := *c.bomTemplateID
	return &id
}

// Components returns the replacement component rows.
func (c ConfigureCompositeCommand) Components() []ComponentRow {
	rows := make([]ComponentRow, len(c.components))
	copy(rows, c.components)
	return rows
}

func (c *ConfigureCompositeCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ConfigureCompositeCommand) setLineID(lineID kernel.UUID) error {
	if err := lineID.Validate(); err != nil {
		return err
	}

	c.lineID = lineID
	return nil
}

func (c *ConfigureCompositeCommand) setQuantity(quantity float64) error {
	if quantity < 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}

func (c *ConfigureCompositeCommand) setBomTemplateID(bomTemplateID *kernel.UUID) error {
	if bomTemplateID == nil {
		return nil
	}

	if err := bomTemplateID.Validate(); err != nil {
		return err
	}

	id := *bomTemplateID
	c.bomTemplateID = &id
	return nil
}

func (c *ConfigureCompositeCommand) setComponents(components []ComponentRow) error {
	for _, row := range components {
		if err := row.ProductID.Validate(); err != nil {
			return err
		}
		if row.Name == "" {
			return ErrComponentNameIsRequired
		}
		if row.Quantity < 0 {
			return ErrQuantityIsInvalid
		}
		if row.DiscountPct < 0 || row.DiscountPct > 100 {
			return ErrDiscountIsInvalid
		}
	}

	c.components = make([]ComponentRow, len(components))
	copy(c.components, components)
	return nil
}
