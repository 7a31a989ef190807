package commands

import (
	"errors"

	"github.com/geoffrey-prelium/sale-ouvrage/internal/core/domain/model/kernel"
	"github.com/geoffrey-prelium/sale-ouvrage/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrReferenceIsRequired    = errors.New("order reference is required")
	ErrCustomerNameIsRequired = errors.New("customer name is required")
	ErrCurrencyIsRequired     = errors.New("currency is required")
)

// CreateOrderCommand represents a request to create a new draft sale order.
// The order starts empty; lines are added through AddOrderLineCommand.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, "SO0042", "Dupont SARL", "EUR")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	reference    string
	customerName string
	currency     string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new draft order.
// Validates that the order ID is valid and the reference, customer name and
// currency are not empty.
func NewCreateOrderCommand(orderID kernel.UUID, reference, customerName, currency string) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setReference(reference),
		orderCommand.setCustomerName(customerName),
		orderCommand.setCurrency(currency),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Reference returns the human-readable order number.
func (c CreateOrderCommand) Reference() string {
	return c.reference
}

// CustomerName returns the customer display name.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// Currency returns the ISO currency code.
func (c CreateOrderCommand) Currency() string {
	return c.currency
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setReference(reference string) error {
	if reference == "" {
		return ErrReferenceIsRequired
	}

	c.reference = reference
	return nil
}

func (c *CreateOrderCommand) setCustomerName(customerName string) error {
	if customerName == "" {
		return ErrCustomerNameIsRequired
	}

	c.customerName = customerName
	return nil
}

func (c *CreateOrderCommand) setCurrency(currency string) error {
	if currency == "" {
		return ErrCurrencyIsRequired
	}

	c.currency = currency
	return nil
}
