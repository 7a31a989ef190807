package commands

import (
	"context"
)

// UpdateLinePricingCommandHandler handles manual price overrides on order
// lines. Overridden prices survive later composite rescales; only a wizard
// reload or template re-explosion replaces them.
type UpdateLinePricingCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateLinePricingCommandHandler creates a handler for pricing overrides.
func NewUpdateLinePricingCommandHandler(uowFactory OrderUoWFactory) UpdateLinePricingCommandHandler {
	return UpdateLinePricingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the pricing override command.
func (h *UpdateLinePricingCommandHandler) Handle(ctx context.Context, cmd UpdateLinePricingCommand) error {
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

	if err = aggregate.UpdateLinePricing(cmd.LineID(), cmd.UnitPrice(), cmd.UnitCost(), cmd.DiscountPct()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
