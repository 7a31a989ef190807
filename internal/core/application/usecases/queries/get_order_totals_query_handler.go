package queries

import (
	"context"

	"github.com/geoffrey-prelium/sale-ouvrage/internal/core/domain/services"
	"github.com/geoffrey-prelium/sale-ouvrage/internal/core/ports"
)

// GetOrderTotalsQueryHandler computes order-level totals. It loads the full
// aggregate and delegates filtering and summing to the totals calculator, so
// the taxable-line rules live in one place.
type GetOrderTotalsQueryHandler struct {
	orders ports.OrderRepository
	totals services.TotalsCalculator
}

// NewGetOrderTotalsQueryHandler creates a handler for totals queries.
func NewGetOrderTotalsQueryHandler(orders ports.OrderRepository, totals services.TotalsCalculator) GetOrderTotalsQueryHandler {
	return GetOrderTotalsQueryHandler{orders: orders, totals: totals}
}

// Handle executes the totals query for one order.
func (h GetOrderTotalsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderTotalsQuery,
) (GetOrderTotalsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderTotalsQueryResponse{}, err
	}

	o, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return GetOrderTotalsQueryResponse{}, err
	}

	totals, err := h.totals.Calculate(o)
	if err != nil {
		return GetOrderTotalsQueryResponse{}, err
	}

	return GetOrderTotalsQueryResponse{
		OrderID:    o.ID(),
		Reference:  o.Reference(),
		Currency:   o.Currency(),
		Untaxed:    totals.Untaxed,
		Tax:        totals.Tax,
		Total:      totals.Total,
		TaxSummary: totals.TaxSummary,
		Margin:     totals.Margin,
		MarginPct:  totals.MarginPct,
	}, nil
}
