// Package money implements the monetary computation engine shared by every
// sales, quotation and inventory surface: fixed-point amounts, per-line and
// per-document arithmetic, cross-currency conversion and display formatting.
// All functions are pure and safe for concurrent use; callers own persistence
// and presentation.
package money

import (
	"database/sql/driver"
	"fmt"

	"github.com/jefremassingue/sales-plat-backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// divisionPrecision is the number of fractional digits kept by Div before any
// final display rounding. Intermediate results are never rounded below this.
const divisionPrecision = 12

// Amount is an immutable fixed-point monetary value. It wraps a decimal so
// binary floating-point drift can never enter a computation. The zero value
// is a valid zero amount.
type Amount struct {
	d decimal.Decimal
}

// Zero is the zero amount.
var Zero = Amount{}

// ParseAmount parses a decimal string into an Amount. It fails with
// apperrors.ErrInvalidAmount when the input is not a finite decimal.
func ParseAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidAmount, s)
	}
	return Amount{d: d}, nil
}

// MustAmount parses a decimal string, panicking on failure. Intended for
// constants and tests only.
func MustAmount(s string) Amount {
	a, err := ParseAmount(s)
	if err != nil {
		panic(err)
	}
	return a
}

// NewAmount wraps an existing decimal value.
func NewAmount(d decimal.Decimal) Amount {
	return Amount{d: d}
}

// AmountFromInt creates an Amount from an integer number of currency units.
func AmountFromInt(v int64) Amount {
	return Amount{d: decimal.NewFromInt(v)}
}

// Add returns a + b.
func (a Amount) Add(b Amount) Amount {
	return Amount{d: a.d.Add(b.d)}
}

// Sub returns a - b.
func (a Amount) Sub(b Amount) Amount {
	return Amount{d: a.d.Sub(b.d)}
}

// Mul returns a * b at full precision.
func (a Amount) Mul(b Amount) Amount {
	return Amount{d: a.d.Mul(b.d)}
}

// Div returns a / b carrying divisionPrecision fractional digits.
// Division by zero panics, as with the underlying decimal library; callers
// validate divisors beforehand.
func (a Amount) Div(b Amount) Amount {
	return Amount{d: a.d.DivRound(b.d, divisionPrecision)}
}

// Neg returns -a.
func (a Amount) Neg() Amount {
	return Amount{d: a.d.Neg()}
}

// Round rounds half up (away from zero) to the given number of decimal
// places. Rounding belongs at formatting or persistence boundaries only;
// intermediate computation stays at full precision.
func (a Amount) Round(places int) Amount {
	return Amount{d: a.d.Round(int32(places))}
}

// Cmp compares a and b, returning -1, 0 or 1.
func (a Amount) Cmp(b Amount) int {
	return a.d.Cmp(b.d)
}

// Equal reports whether a and b represent the same numeric value.
func (a Amount) Equal(b Amount) bool {
	return a.d.Equal(b.d)
}

// IsZero reports whether the amount is exactly zero.
func (a Amount) IsZero() bool {
	return a.d.IsZero()
}

// IsNegative reports whether the amount is below zero.
func (a Amount) IsNegative() bool {
	return a.d.IsNegative()
}

// Decimal exposes the underlying decimal value.
func (a Amount) Decimal() decimal.Decimal {
	return a.d
}

// String renders the amount without any currency formatting.
func (a Amount) String() string {
	return a.d.String()
}

// StringFixed renders the amount rounded half up to the given places.
func (a Amount) StringFixed(places int) string {
	return a.d.StringFixed(int32(places))
}

// MarshalJSON implements json.Marshaler.
func (a Amount) MarshalJSON() ([]byte, error) {
	return a.d.MarshalJSON()
}

// UnmarshalJSON implements json.Unmarshaler, accepting both JSON numbers and
// numeric strings.
func (a *Amount) UnmarshalJSON(data []byte) error {
	if err := a.d.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("%w: %s", apperrors.ErrInvalidAmount, data)
	}
	return nil
}

// Value implements driver.Valuer so Amount columns persist as numerics.
func (a Amount) Value() (driver.Value, error) {
	return a.d.Value()
}

// Scan implements sql.Scanner.
func (a *Amount) Scan(value interface{}) error {
	return a.d.Scan(value)
}
