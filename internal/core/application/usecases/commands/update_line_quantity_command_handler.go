package commands

import (
	"context"
)

// UpdateLineQuantityCommandHandler handles quantity changes on order lines,
// including the proportional rescaling of composite line components.
type UpdateLineQuantityCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateLineQuantityCommandHandler creates a handler for quantity updates.
func NewUpdateLineQuantityCommandHandler(uowFactory OrderUoWFactory) UpdateLineQuantityCommandHandler {
	return UpdateLineQuantityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the quantity update command.
func (h *UpdateLineQuantityCommandHandler) Handle(ctx context.Context, cmd UpdateLineQuantityCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.UpdateLineQuantity(cmd.LineID(), cmd.Quantity()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
