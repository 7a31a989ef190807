package commands

import (
	"context"
	"time"

	"github.com/geoffrey-prelium/sale-ouvrage/internal/core/domain/model/bom"
	"github.com/geoffrey-prelium/sale-ouvrage/internal/core/domain/model/kernel"
	"github.com/geoffrey-prelium/sale-ouvrage/internal/core/domain/model/order"
	"github.com/geoffrey-prelium/sale-ouvrage/internal/core/domain/services"
	"github.com/geoffrey-prelium/sale-ouvrage/internal/core/ports"
)

// ConfirmOrderCommandHandler handles order confirmation.
//
// Before the status transition, every composite line is checked against its
// bound BOM template. Lines whose actual composition drifted get a frozen
// snapshot: a new order-specific template cloned from the original, with one
// line per actual component at its per-unit ratio, and the order line is
// rebound to it. Undrifted lines keep their catalog template. Drift
// inspection, snapshot writes and the transition share one transaction, so a
// confirmed order always references templates that match what was sold.
type ConfirmOrderCommandHandler struct {
	uowFactory ConfirmationUoWFactory
	inspector  services.DriftInspector
}

// NewConfirmOrderCommandHandler creates a handler for order confirmation.
func NewConfirmOrderCommandHandler(uowFactory ConfirmationUoWFactory) ConfirmOrderCommandHandler {
	return ConfirmOrderCommandHandler{
		uowFactory: uowFactory,
		inspector:  services.NewDriftInspector(),
	}
}

// Handle processes the confirmation command.
func (h *ConfirmOrderCommandHandler) Handle(ctx context.Context, cmd ConfirmOrderCommand) error {
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

	for _, line := range aggregate.CompositeLines() {
		if err = h.freezeIfDrifted(ctx, uow.BomTemplateRepository(), aggregate, line); err != nil {
			return err
		}
	}

	if err = aggregate.Confirm(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// freezeIfDrifted inspects one composite line and, when it no longer matches
// its template, writes a snapshot and rebinds the line. Lines without a
// template are left untouched.
func (h *ConfirmOrderCommandHandler) freezeIfDrifted(
	ctx context.Context,
	bomRepo ports.BomTemplateRepository,
	aggregate *order.Order,
	line *order.Line,
) error {
	templateID := line.BomTemplateID()
	if templateID == nil {
		return nil
	}

	template, err := bomRepo.Get(ctx, *templateID)
	if err != nil {
		return err
	}

	drifted, err := h.inspector.Inspect(aggregate, line.ID(), template)
	if err != nil {
		return err
	}
	if !drifted {
		return nil
	}

	snapshot, err := h.buildSnapshot(aggregate, line, template)
	if err != nil {
		return err
	}

	if err = bomRepo.Add(ctx, snapshot); err != nil {
		return err
	}

	return aggregate.RebindTemplate(line.ID(), snapshot.ID())
}

// buildSnapshot clones the template into an order-specific one describing
// the actual composition, normalized per one unit of the composite line.
func (h *ConfirmOrderCommandHandler) buildSnapshot(
	aggregate *order.Order,
	line *order.Line,
	template *bom.Template,
) (*bom.Template, error) {
	snapshot, err := template.CloneWithOverrides(kernel.NewUUID(), bom.CloneOverrides{
		Code:         bom.SnapshotCode(aggregate.Reference(), time.Now(), aggregate.CustomerName()),
		ProductID:    line.ProductID(),
		BaseQuantity: 1,
		SortOrder:    bom.SnapshotSortOrder,
	})
	if err != nil {
		return nil, err
	}

	quantity := line.Quantity()
	for _, child := range aggregate.Children(line.ID()) {
		perUnit := child.Quantity()
		if quantity != 0 {
			perUnit = child.Quantity() / quantity
		}
		if perUnit == 0 {
			continue
		}

		templateLine, lineErr := bom.NewTemplateLine(child.ProductID(), false, perUnit)
		if lineErr != nil {
			return nil, lineErr
		}
		if lineErr = snapshot.AddLine(templateLine); lineErr != nil {
			return nil, lineErr
		}
	}

	return snapshot, nil
}
