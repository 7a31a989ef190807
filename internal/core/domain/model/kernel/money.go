package kernel

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/geoffrey-prelium/sale-ouvrage/internal/pkg/errs"
)

// Money is a value object representing a monetary amount with exact decimal
// arithmetic. It wraps github.com/shopspring/decimal to keep price, cost and
// margin computations free of binary floating-point drift.
//
// Unlike UUID, the zero value of Money is valid and represents zero currency
// units: a freshly added order line legitimately carries a zero cost until
// the catalog seeds it.
//
// Money is immutable; every operation returns a new value.
//
// Example usage:
//
//	price := kernel.NewMoneyFromFloat(125.50)
//	subtotal := price.MulFloat(3)           // 376.50
//	margin := subtotal.Sub(costs)
type Money struct {
	amount decimal.Decimal
}

// NewMoney creates a Money value from a decimal amount.
func NewMoney(amount decimal.Decimal) Money {
	return Money{amount: amount}
}

// NewMoneyFromFloat creates a Money value from a float64 amount.
// The float is converted through decimal's exact conversion, so values
// such as 0.1 are captured as written, not as their binary approximation.
func NewMoneyFromFloat(amount float64) Money {
	return Money{amount: decimal.NewFromFloat(amount)}
}

// MoneyFromString parses a Money value from its decimal string representation.
// Used when reconstructing amounts from persistence or external input.
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money amount", fmt.Errorf("cannot parse %q: %w", s, err))
	}
	return Money{amount: d}, nil
}

// ZeroMoney returns a zero monetary amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// Amount returns the underlying decimal amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Float64 returns the closest float64 representation of the amount.
// Intended for presentation only; arithmetic stays in decimal.
func (m Money) Float64() float64 {
	f, _ := m.amount.Float64()
	return f
}

// String returns the decimal string representation of the amount.
func (m Money) String() string {
	return m.amount.String()
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub returns the difference of two amounts.
func (m Money) Sub(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount)}
}

// MulFloat returns the amount multiplied by a dimensionless factor,
// typically a quantity or a ratio.
func (m Money) MulFloat(factor float64) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromFloat(factor))}
}

// ApplyDiscount returns the amount reduced by a percentage in [0, 100].
// Values outside the range are not clamped; callers validate the percentage.
func (m Money) ApplyDiscount(pct float64) Money {
	factor := decimal.NewFromInt(1).Sub(decimal.NewFromFloat(pct).Div(decimal.NewFromInt(100)))
	return Money{amount: m.amount.Mul(factor)}
}

// PctOf returns m as a percentage of base (m / base × 100) as a float64.
// Returns 0 when base is zero, mirroring the margin-percentage guard.
func (m Money) PctOf(base Money) float64 {
	if base.IsZero() {
		return 0
	}
	f, _ := m.amount.Div(base.amount).Mul(decimal.NewFromInt(100)).Float64()
	return f
}

// IsZero reports whether the amount equals zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// IsEqual compares two amounts for numeric equality, ignoring exponent
// representation (1.50 equals 1.5).
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Round returns the amount rounded to the given number of decimal places.
// Used at the presentation and tax boundary; internal arithmetic is exact.
func (m Money) Round(places int32) Money {
	return Money{amount: m.amount.Round(places)}
}
