package commands

import (
	"errors"

	"github.com/geoffrey-prelium/sale-ouvrage/internal/core/domain/model/kernel"
	"github.com/geoffrey-prelium/sale-ouvrage/internal/pkg/guard"
)

var ErrUpdateLineQuantityCommandIsNotConstructed = errors.New(
	"UpdateLineQuantityCommand must be created via NewUpdateLineQuantityCommand constructor",
)

// UpdateLineQuantityCommand represents a request to change a line's ordered
// quantity. For a composite line the component quantities follow
// proportionally; see Order.UpdateLineQuantity for the rescaling rules.
type UpdateLineQuantityCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	lineID   kernel.UUID
	quantity float64

	guard guard.ConstructorGuard
}

// NewUpdateLineQuantityCommand creates a command to change a line quantity.
// Validates that the identifiers are valid and the quantity is not negative.
func NewUpdateLineQuantityCommand(orderID, lineID kernel.UUID, quantity float64) (UpdateLineQuantityCommand, error) {
	quantityCommand := UpdateLineQuantityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		quantityCommand.setOrderID(orderID),
		quantityCommand.setLineID(lineID),
		quantityCommand.setQuantity(quantity),
	); err != nil {
		return UpdateLineQuantityCommand{}, err
	}

	return quantityCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateLineQuantityCommand) Validate() error {
	return c.guard.Validate(ErrUpdateLineQuantityCommandIsNotConstructed)
}

// OrderID returns the identifier of the target order.
func (c UpdateLineQuantityCommand) OrderID() kernel.UUID {
	return c.orderID
}

// LineID returns the identifier of the line to update.
func (c UpdateLineQuantityCommand) LineID() kernel.UUID {
	return c.lineID
}

// Quantity returns the new ordered quantity.
func (c UpdateLineQuantityCommand) Quantity() float64 {
	return c.quantity
}

func (c *UpdateLineQuantityCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateLineQuantityCommand) setLineID(lineID kernel.UUID) error {
	if err := lineID.Validate(); err != nil {
		return err
	}

	c.lineID = lineID
	return nil
}

func (c *UpdateLineQuantityCommand) setQuantity(quantity float64) error {
	if quantity < 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}
