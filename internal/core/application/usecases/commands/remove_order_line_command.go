package commands

import (
	"errors"

	"github.com/geoffrey-prelium/sale-ouvrage/internal/core/domain/model/kernel"
	"github.com/geoffrey-prelium/sale-ouvrage/internal/pkg/guard"
)

var ErrRemoveOrderLineCommandIsNotConstructed = errors.New(
	"RemoveOrderLineCommand must be created via NewRemoveOrderLineCommand constructor",
)

// RemoveOrderLineCommand represents a request to delete a line from a draft
// order. Deleting a composite line cascades to its component lines.
type RemoveOrderLineCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	lineID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveOrderLineCommand creates a command to delete an order line.
func NewRemoveOrderLineCommand(orderID, lineID kernel.UUID) (RemoveOrderLineCommand, error) {
	removeCommand := RemoveOrderLineCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		removeCommand.setOrderID(orderID),
		removeCommand.setLineID(lineID),
	); err != nil {
		return RemoveOrderLineCommand{}, err
	}

	return removeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveOrderLineCommand) Validate() error {
	return c.guard.Validate(ErrRemoveOrderLineCommandIsNotConstructed)
}

// OrderID returns the identifier of the target order.
func (c RemoveOrderLineCommand) OrderID() kernel.UUID {
	return c.orderID
}

// LineID returns the identifier of the line to remove.
func (c RemoveOrderLineCommand) LineID() kernel.UUID {
	return c.lineID
}

func (c *RemoveOrderLineCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RemoveOrderLineCommand) setLineID(lineID kernel.UUID) error {
	if err := lineID.Validate(); err != nil {
		return err
	}

	c.lineID = lineID
	return nil
}
