package ports

import (
	"github.com/geoffrey-prelium/sale-ouvrage/internal/core/domain/model/kernel"
)

// TaxableLine is one line of the filtered set handed to the tax collaborator:
// non-composite, non-display lines only. Composite lines never reach the
// collaborator; their value is carried by the component lines in the set.
type TaxableLine struct {
	Description string
	Quantity    float64
	Subtotal    kernel.Money
}

// TaxTotals carries the collaborator's answer: the order-level monetary
// triple and a displayable summary of the applied taxes.
type TaxTotals struct {
	Untaxed kernel.Money
	Tax     kernel.Money
	Total   kernel.Money
	Summary string
}

// TaxCalculator computes order-level totals from the filtered line set and
// the order's currency. Tax rules live outside the composition engine; its
// only contract with the collaborator is the filtered input set.
type TaxCalculator interface {
	// Calculate returns the untaxed, tax and total amounts for the lines.
	Calculate(lines []TaxableLine, currency string) (TaxTotals, error)
}
