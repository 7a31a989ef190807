package commands

import (
	"context"

	"github.com/geoffrey-prelium/sale-ouvrage/internal/core/domain/model/kernel"
	"github.com/geoffrey-prelium/sale-ouvrage/internal/core/domain/model/order"
	"github.com/geoffrey-prelium/sale-ouvrage/internal/pkg/errs"
)

// ConfigureCompositeCommandHandler handles wizard saves on composite lines.
//
// The submitted rows fully replace the current component set; the previous
// children are deleted, not merged. The catalog is consulted to resolve the
// assembly flag of every submitted product, so a composite product smuggled
// into the rows is rejected before anything is written.
type ConfigureCompositeCommandHandler struct {
	uowFactory ExplosionUoWFactory
}

// NewConfigureCompositeCommandHandler creates a handler for wizard saves.
func NewConfigureCompositeCommandHandler(uowFactory ExplosionUoWFactory) ConfigureCompositeCommandHandler {
	return ConfigureCompositeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reconfiguration command.
func (h *ConfigureCompositeCommandHandler) Handle(ctx context.Context, cmd ConfigureCompositeCommand) error {
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

	specs, err := h.resolveSpecs(ctx, uow, cmd.Components())
	if err != nil {
		return err
	}

	cfg := order.CompositeConfiguration{
		Quantity:      cmd.Quantity(),
		HidePrices:    cmd.HidePrices(),
		HideStructure: cmd.HideStructure(),
		BomTemplateID: cmd.BomTemplateID(),
		Components:    specs,
	}

	if err = aggregate.ConfigureComposite(cmd.LineID(), cfg); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// resolveSpecs turns the submitted rows into component specs, resolving the
// assembly flag of each product from the catalog.
func (h *ConfigureCompositeCommandHandler) resolveSpecs(
	ctx context.Context,
	uow ExplosionUoW,
	rows []ComponentRow,
) ([]order.ComponentSpec, error) {
	ids := make([]kernel.UUID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ProductID)
	}

	catalogProducts, err := uow.ProductRepository().GetBatch(ctx, ids)
	if err != nil {
		return nil, err
	}

	specs := make([]order.ComponentSpec, 0, len(rows))
	for _, row := range rows {
		catalogProduct, ok := catalogProducts[row.ProductID]
		if !ok {
			return nil, errs.NewObjectNotFoundError("product", row.ProductID.String())
		}

		specs = append(specs, order.ComponentSpec{
			ProductID:          row.ProductID,
			ProductIsComposite: catalogProduct.IsComposite(),
			Name:               row.Name,
			Quantity:           row.Quantity,
			UnitPrice:          row.UnitPrice,
			UnitCost:           row.UnitCost,
			DiscountPct:        row.DiscountPct,
		})
	}

	return specs, nil
}
