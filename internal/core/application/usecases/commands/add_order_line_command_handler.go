package commands

import (
	"context"

	"github.com/geoffrey-prelium/sale-ouvrage/internal/core/domain/model/bom"
	"github.com/geoffrey-prelium/sale-ouvrage/internal/core/domain/model/kernel"
	"github.com/geoffrey-prelium/sale-ouvrage/internal/core/domain/model/order"
	"github.com/geoffrey-prelium/sale-ouvrage/internal/core/ports"
)

// AddOrderLineCommandHandler handles adding a product line to a draft order.
//
// For a plain product the line is priced from the catalog and appended. For a
// composite assembly the handler additionally resolves the product's default
// BOM template and explodes it: one component line per template line, scaled
// by the ordered quantity, created in the same transaction. A composite
// without any template stays an inert line with zero components.
type AddOrderLineCommandHandler struct {
	uowFactory ExplosionUoWFactory
}

// NewAddOrderLineCommandHandler creates a handler for line creation operations.
// Requires an ExplosionUoWFactory so template and catalog reads share the
// order's transaction.
func NewAddOrderLineCommandHandler(uowFactory ExplosionUoWFactory) AddOrderLineCommandHandler {
	return AddOrderLineCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add line command.
func (h *AddOrderLineCommandHandler) Handle(ctx context.Context, cmd AddOrderLineCommand) error {
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

	catalogProduct, err := uow.ProductRepository().Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	line, err := order.NewLine(
		cmd.LineID(),
		catalogProduct.ID(),
		catalogProduct.IsComposite(),
		catalogProduct.Name(),
		cmd.Quantity(),
		catalogProduct.ListPrice(),
		catalogProduct.StandardCost(),
		cmd.DiscountPct(),
	)
	if err != nil {
		return err
	}

	if err = aggregate.AddLine(line); err != nil {
		return err
	}

	if catalogProduct.IsComposite() {
		if err = h.explode(ctx, uow, aggregate, line); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// explode resolves the default template for the composite line's product and
// materializes it. No template is a valid outcome, not an error.
func (h *AddOrderLineCommandHandler) explode(
	ctx context.Context,
	uow ExplosionUoW,
	aggregate *order.Order,
	line *order.Line,
) error {
	template, found, err := uow.BomTemplateRepository().FindDefaultForProduct(ctx, line.ProductID())
	if err != nil {
		return err
	}
	if !found {
		return nil
	}

	seeds, err := h.loadSeeds(ctx, uow.ProductRepository(), template)
	if err != nil {
		return err
	}

	return aggregate.ExplodeLine(line.ID(), template, seeds)
}

// loadSeeds fetches the catalog data of every component referenced by the
// template in one batch.
func (h *AddOrderLineCommandHandler) loadSeeds(
	ctx context.Context,
	productRepo ports.ProductRepository,
	template *bom.Template,
) (map[kernel.UUID]order.ComponentSeed, error) {
	templateLines := template.Lines()
	ids := make([]kernel.UUID, 0, len(templateLines))
	for _, tl := range templateLines {
		ids = append(ids, tl.ComponentID())
	}

	catalogProducts, err := productRepo.GetBatch(ctx, ids)
	if err != nil {
		return nil, err
	}

	seeds := make(map[kernel.UUID]order.ComponentSeed, len(catalogProducts))
	for id, p := range catalogProducts {
		seeds[id] = order.ComponentSeed{
			Name:         p.Name(),
			ListPrice:    p.ListPrice(),
			StandardCost: p.StandardCost(),
		}
	}

	return seeds, nil
}
