package commands

import (
	"errors"

	"github.com/geoffrey-prelium/sale-ouvrage/internal/core/domain/model/kernel"
	"github.com/geoffrey-prelium/sale-ouvrage/internal/pkg/guard"
)

var ErrUpdateLinePricingCommandIsNotConstructed = errors.New(
	"UpdateLinePricingCommand must be created via NewUpdateLinePricingCommand constructor",
)

// UpdateLinePricingCommand represents a manual price override on an order
// line: unit price, unit cost and discount are rewritten together.
type UpdateLinePricingCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	lineID      kernel.UUID
	unitPrice   kernel.Money
	unitCost    kernel.Money
	discountPct float64

	guard guard.ConstructorGuard
}

// NewUpdateLinePricingCommand creates a command to override line pricing.
// Validates the identifiers and that the discount lies within [0, 100].
func NewUpdateLinePricingCommand(
	orderID, lineID kernel.UUID,
	unitPrice, unitCost kernel.Money,
	discountPct float64,
) (UpdateLinePricingCommand, error) {
	pricingCommand := UpdateLinePricingCommand{
		unitPrice: unitPrice,
		unitCost:  unitCost,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		pricingCommand.setOrderID(orderID),
		pricingCommand.setLineID(lineID),
		pricingCommand.setDiscountPct(discountPct),
	); err != nil {
		return UpdateLinePricingCommand{}, err
	}

	return pricingCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateLinePricingCommand) Validate() error {
	return c.guard.Validate(ErrUpdateLinePricingCommandIsNotConstructed)
}

// OrderID returns the identifier of the target order.
func (c UpdateLinePricingCommand) OrderID() kernel.UUID {
	return c.orderID
}

// LineID returns the identifier of the line to update.
func (c UpdateLinePricingCommand) LineID() kernel.UUID {
	return c.lineID
}

// UnitPrice returns the new per-unit sale price.
func (c UpdateLinePricingCommand) UnitPrice() kernel.Money {
	return c.unitPrice
}

// UnitCost returns the new per-unit cost.
func (c UpdateLinePricingCommand) UnitCost() kernel.Money {
	return c.unitCost
}

// DiscountPct returns the new discount percentage.
func (c UpdateLinePricingCommand) DiscountPct() float64 {
	return c.discountPct
}

func (c *UpdateLinePricingCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateLinePricingCommand) setLineID(lineID kernel.UUID) error {
	if err := lineID.Validate(); err != nil {
		return err
	}

	c.lineID = lineID
	return nil
}

func (c *UpdateLinePricingCommand) setDiscountPct(discountPct float64) error {
	if discountPct < 0 || discountPct > 100 {
		return ErrDiscountIsInvalid
	}

	c.discountPct = discountPct
	return nil
}
