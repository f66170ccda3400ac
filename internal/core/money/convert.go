package money

import (
	"fmt"

	"github.com/jefremassingue/sales-plat-backend/internal/apperrors"
)

// Convert moves an amount between two currencies via the shared base
// currency. Each rate expresses the value of its currency in terms of one
// unit of the base currency; the base currency itself conventionally carries
// rate 1, but no assumption is made beyond strict positivity.
//
// Fails with apperrors.ErrInvalidExchangeRate when either rate is zero or
// negative. Converting a currency to itself returns the input within the
// division precision.
func Convert(amount Amount, fromRate, toRate Amount) (Amount, error) {
	if fromRate.Cmp(Zero) <= 0 {
		return Amount{}, fmt.Errorf("%w: source rate %s must be positive", apperrors.ErrInvalidExchangeRate, fromRate)
	}
	if toRate.Cmp(Zero) <= 0 {
		return Amount{}, fmt.Errorf("%w: target rate %s must be positive", apperrors.ErrInvalidExchangeRate, toRate)
	}

	inBase := amount.Div(fromRate)
	return inBase.Mul(toRate), nil
}
