package domain

import (
	"fmt"

	"github.com/SscSPs/meow_bank/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Money is an amount in minor units (cents). Two decimal digits of precision.
type Money int64

const moneyScale = 2

// maxMoney bounds parsed input well below int64 overflow.
var maxMoney = decimal.New(1, 15)

// MoneyFromDecimal converts a decimal amount into minor units. Amounts with more
// than two significant fractional digits are rejected with ErrInvalidAmount.
func MoneyFromDecimal(d decimal.Decimal) (Money, error) {
	if !d.Equal(d.Truncate(moneyScale)) {
		return 0, apperrors.ErrInvalidAmount
	}
	if d.Abs().GreaterThanOrEqual(maxMoney) {
		return 0, fmt.Errorf("%w: amount out of range", apperrors.ErrValidation)
	}
	return Money(d.Shift(moneyScale).IntPart()), nil
}

// NewMoneyFromString parses a decimal string such as "10.25".
func NewMoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid amount %q", apperrors.ErrValidation, s)
	}
	return MoneyFromDecimal(d)
}

// Decimal returns the amount in major units.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(int64(m), -moneyScale)
}

func (m Money) String() string {
	return m.Decimal().StringFixed(moneyScale)
}

// MarshalJSON renders the amount as a JSON number with exactly two decimals.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalJSON accepts a JSON number or a quoted decimal string.
func (m *Money) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("%w: invalid amount", apperrors.ErrValidation)
	}
	v, err := MoneyFromDecimal(d)
	if err != nil {
		return err
	}
	*m = v
	return nil
}
