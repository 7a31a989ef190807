package services

import (
	"github.com/geoffrey-prelium/sale-ouvrage/internal/core/domain/model/kernel"
	"github.com/geoffrey-prelium/sale-ouvrage/internal/core/domain/model/order"
	"github.com/geoffrey-prelium/sale-ouvrage/internal/core/ports"
)

// OrderTotals carries the aggregated monetary figures of an order: the
// untaxed/tax/total triple from the tax collaborator with its displayable
// summary, plus the absolute margin and the margin percentage relative to
// the untaxed amount.
type OrderTotals struct {
	Untaxed    kernel.Money
	Tax        kernel.Money
	Total      kernel.Money
	TaxSummary string
	Margin     kernel.Money
	MarginPct  float64
}

// TotalsCalculator is a domain service that aggregates order-level totals
// over the line collection.
//
// Only taxable lines enter the computation: composite lines are excluded
// because their subtotal restates the components already present in the
// collection, and display lines carry no amounts. The filtered set is
// handed to the tax collaborator exactly as it would be for a plain order;
// filtering happens here so no caller can accidentally double-count an
// assembly.
type TotalsCalculator struct {
	taxCalculator ports.TaxCalculator
}

// NewTotalsCalculator creates a calculator delegating tax computation to
// the given collaborator.
func NewTotalsCalculator(taxCalculator ports.TaxCalculator) TotalsCalculator {
	return TotalsCalculator{taxCalculator: taxCalculator}
}

// Calculate computes the totals triple and margin figures for the order.
// An order with no taxable lines yields zero totals and a zero margin
// percentage.
func (c TotalsCalculator) Calculate(o *order.Order) (OrderTotals, error) {
	if err := o.Validate(); err != nil {
		return OrderTotals{}, err
	}

	lines := o.TaxableLines()
	taxable := make([]ports.TaxableLine, 0, len(lines))
	margin := kernel.ZeroMoney()

	for _, line := range lines {
		taxable = append(taxable, ports.TaxableLine{
			Description: line.Description(),
			Quantity:    line.Quantity(),
			Subtotal:    line.Subtotal(),
		})
		margin = margin.Add(line.Margin())
	}

	totals, err := c.taxCalculator.Calculate(taxable, o.Currency())
	if err != nil {
		return OrderTotals{}, err
	}

	return OrderTotals{
		Untaxed:    totals.Untaxed,
		Tax:        totals.Tax,
		Total:      totals.Total,
		TaxSummary: totals.Summary,
		Margin:     margin,
		MarginPct:  margin.PctOf(totals.Untaxed),
	}, nil
}
