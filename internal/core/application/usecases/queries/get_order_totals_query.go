// Package queries contains read-only operations of the CQRS architecture.
// Query handlers read the database directly, bypassing the domain model,
// and return plain response structures for adapters to render.
package queries

import (
	"errors"

	"github.com/geoffrey-prelium/sale-ouvrage/internal/core/domain/model/kernel"
	"github.com/geoffrey-prelium/sale-ouvrage/internal/pkg/guard"
)

var ErrGetOrderTotalsQueryIsNotConstructed = errors.New(
	"GetOrderTotalsQuery must be created via NewGetOrderTotalsQuery constructor",
)

// GetOrderTotalsQuery retrieves the monetary totals of one order: untaxed
// amount, tax, grand total and margin figures. Composite and display lines
// do not contribute; the component lines they cover do.
//
// Example:
//
//	query, _ := NewGetOrderTotalsQuery(orderID)
//	handler := NewGetOrderTotalsQueryHandler(db, taxCalculator)
//
//	totals, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get totals: %w", err)
//	}
//	fmt.Printf("%s: %s %s\n", totals.Reference, totals.Total, totals.Currency)
type GetOrderTotalsQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderTotalsQuery creates a query for one order's totals.
func NewGetOrderTotalsQuery(orderID kernel.UUID) (GetOrderTotalsQuery, error) {
	totalsQuery := GetOrderTotalsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := totalsQuery.setOrderID(orderID); err != nil {
		return GetOrderTotalsQuery{}, err
	}

	return totalsQuery, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderTotalsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderTotalsQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to total.
func (q GetOrderTotalsQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *GetOrderTotalsQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

// GetOrderTotalsQueryResponse carries the aggregated amounts of one order.
type GetOrderTotalsQueryResponse struct {
	OrderID    kernel.UUID
	Reference  string
	Currency   string
	Untaxed    kernel.Money
	Tax        kernel.Money
	Total      kernel.Money
	TaxSummary string
	Margin     kernel.Money
	MarginPct  float64
}
