package commands

import (
	"errors"

	"github.com/geoffrey-prelium/sale-ouvrage/internal/core/domain/model/kernel"
	"github.com/geoffrey-prelium/sale-ouvrage/internal/pkg/guard"
)

var (
	ErrAddOrderLineCommandIsNotConstructed = errors.New(
		"AddOrderLineCommand must be created via NewAddOrderLineCommand constructor",
	)
	ErrQuantityIsInvalid = errors.New("quantity must not be negative")
	ErrDiscountIsInvalid = errors.New("discount must be between 0 and 100")
)

// AddOrderLineCommand represents a request to add a product line to a draft
// order. When the product is a composite assembly, handling the command also
// resolves its default BOM template and explodes it into component lines.
//
// Example:
//
//	cmd, err := NewAddOrderLineCommand(orderID, kernel.NewUUID(), productID, 2, 0)
//	if err != nil {
//	    return fmt.Errorf("invalid line data: %w", err)
//	}
//
//	handler := NewAddOrderLineCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to add line: %w", err)
//	}
type AddOrderLineCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	lineID      kernel.UUID
	productID   kernel.UUID
	quantity    float64
	discountPct float64

	guard guard.ConstructorGuard
}

// NewAddOrderLineCommand creates a command to add a product line.
// Validates that all identifiers are valid, the quantity is not negative and
// the discount lies within [0, 100].
func NewAddOrderLineCommand(
	orderID, lineID, productID kernel.UUID,
	quantity, discountPct float64,
) (AddOrderLineCommand, error) {
	lineCommand := AddOrderLineCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		lineCommand.setOrderID(orderID),
		lineCommand.setLineID(lineID),
		lineCommand.setProductID(productID),
		lineCommand.setQuantity(quantity),
		lineCommand.setDiscountPct(discountPct),
	); err != nil {
		return AddOrderLineCommand{}, err
	}

	return lineCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddOrderLineCommandIsNotConstructed if validation fails.
func (c AddOrderLineCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderLineCommandIsNotConstructed)
}

// OrderID returns the identifier of the target order.
func (c AddOrderLineCommand) OrderID() kernel.UUID {
	return c.orderID
}

// LineID returns the identifier assigned to the new line.
func (c AddOrderLineCommand) LineID() kernel.UUID {
	return c.lineID
}

// ProductID returns the catalog product to put on the line.
func (c AddOrderLineCommand) ProductID() kernel.UUID {
	return c.productID
}

// Quantity returns the ordered product quantity.
func (c AddOrderLineCommand) Quantity() float64 {
	return c.quantity
}

// DiscountPct returns the discount percentage for the line.
func (c AddOrderLineCommand) DiscountPct() float64 {
	return c.discountPct
}

func (c *AddOrderLineCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddOrderLineCommand) setLineID(lineID kernel.UUID) error {
	if err := lineID.Validate(); err != nil {
		return err
	}

	c.lineID = lineID
	return nil
}

func (c *AddOrderLineCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *AddOrderLineCommand) setQuantity(quantity float64) error {
	if quantity < 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}

func (c *AddOrderLineCommand) setDiscountPct(discountPct float64) error {
	if discountPct < 0 || discountPct > 100 {
		return ErrDiscountIsInvalid
	}

	c.discountPct = discountPct
	return nil
}
