package kernel

import (
	"errors"
	"fmt"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of fractional digits kept for prices and totals.
const MoneyScale = 2

// MaxMoney is the largest amount a numeric(12,2) column holds.
var MaxMoney = decimal.RequireFromString("9999999999.99")

var ErrMoneyIsNotConstructed = errors.New("Money must be created via NewMoney, MoneyFromString or ZeroMoney")

// Money is a non-negative decimal amount. Arithmetic is exact; values are
// rounded to MoneyScale digits only when created.
type Money struct { //nolint:recvcheck //using for validation
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewMoney wraps amount, rejecting negative values and values above MaxMoney.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount is invalid",
			fmt.Errorf("%s is negative", amount.String()),
		)
	}

	return bounded(amount.Round(MoneyScale))
}

// MoneyFromString parses a decimal literal such as "10.00".
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount is invalid", err)
	}
	return NewMoney(amount)
}

// ZeroMoney returns a constructed zero amount.
func ZeroMoney() Money {
	return Money{
		amount: decimal.Zero,
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate ensures the value was built through a constructor.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Decimal returns the underlying amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Add returns m + other, or an out of range error past MaxMoney.
func (m Money) Add(other Money) (Money, error) {
	return bounded(m.amount.Add(other.amount))
}

// Mul returns m * quantity. quantity must be positive and the product
// must not exceed MaxMoney.
func (m Money) Mul(quantity int) (Money, error) {
	if quantity <= 0 {
		return Money{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded")
	}

	return bounded(m.amount.Mul(decimal.NewFromInt(int64(quantity))))
}

// IsEqual compares amounts numerically, so 10 and 10.00 are equal.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String renders the amount with exactly MoneyScale fractional digits.
func (m Money) String() string {
	return m.amount.StringFixed(MoneyScale)
}

func bounded(amount decimal.Decimal) (Money, error) {
	if amount.GreaterThan(MaxMoney) {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", amount.StringFixed(MoneyScale), "0.00", MaxMoney.StringFixed(MoneyScale))
	}
	return Money{
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}, nil
}
