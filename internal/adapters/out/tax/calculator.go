// Package tax provides a flat-rate implementation of the tax calculator port.
// The applicable rate comes from configuration, not from the order itself; a
// per-line tax engine would plug in behind the same port.
package tax

import (
	"fmt"

	"github.com/geoffrey-prelium/sale-ouvrage/internal/core/domain/model/kernel"
	"github.com/geoffrey-prelium/sale-ouvrage/internal/core/ports"
	"github.com/geoffrey-prelium/sale-ouvrage/internal/pkg/errs"
)

// FlatRateCalculator applies a single percentage rate to every taxable line.
type FlatRateCalculator struct {
	ratePct float64
}

// NewFlatRateCalculator creates a calculator for the given percentage rate,
// e.g. 20 for a 20% rate. Negative rates are rejected.
func NewFlatRateCalculator(ratePct float64) (*FlatRateCalculator, error) {
	if ratePct < 0 {
		return nil, errs.NewValueIsOutOfRangeError("ratePct", ratePct, 0, 100)
	}

	return &FlatRateCalculator{ratePct: ratePct}, nil
}

// RatePct returns the configured percentage rate.
func (c *FlatRateCalculator) RatePct() float64 {
	return c.ratePct
}

// Calculate sums the line subtotals, applies the flat rate and returns the
// totals triple with a one-line summary.
func (c *FlatRateCalculator) Calculate(lines []ports.TaxableLine, currency string) (ports.TaxTotals, error) {
	untaxed := kernel.ZeroMoney()
	for _, line := range lines {
		untaxed = untaxed.Add(line.Subtotal)
	}

	tax := untaxed.MulFloat(c.ratePct / 100).Round(2)

	return ports.TaxTotals{
		Untaxed: untaxed,
		Tax:     tax,
		Total:   untaxed.Add(tax),
		Summary: fmt.Sprintf("VAT %g%%: %s %s", c.ratePct, tax.String(), currency),
	}, nil
}
