package money

import (
	"fmt"
	"strings"

	"github.com/jefremassingue/sales-plat-backend/internal/apperrors"
)

// FormatSpec carries a currency's display rules. It is derived from a
// currency record; the separators must differ and DecimalPlaces must sit in
// [0,4], both enforced by currency administration and re-checked here.
type FormatSpec struct {
	Symbol            string
	DecimalPlaces     int
	DecimalSeparator  string
	ThousandSeparator string
}

// Format renders an amount per the currency's display rules: rounded half up
// to DecimalPlaces, integer digits grouped in threes with ThousandSeparator,
// DecimalSeparator before the fraction (omitted entirely when DecimalPlaces
// is zero). Negative amounts take a leading minus before the symbol. With
// includeSymbol the symbol and a space are prepended.
//
// Fails with apperrors.ErrInvalidDecimalPlaces when DecimalPlaces is outside
// [0,4].
func Format(amount Amount, spec FormatSpec, includeSymbol bool) (string, error) {
	if spec.DecimalPlaces < 0 || spec.DecimalPlaces > 4 {
		return "", fmt.Errorf("%w: %d is outside [0,4]", apperrors.ErrInvalidDecimalPlaces, spec.DecimalPlaces)
	}

	rounded := amount.Round(spec.DecimalPlaces)
	negative := rounded.IsNegative()
	if negative {
		rounded = rounded.Neg()
	}

	fixed := rounded.StringFixed(spec.DecimalPlaces)
	intPart := fixed
	fracPart := ""
	if dot := strings.IndexByte(fixed, '.'); dot >= 0 {
		intPart, fracPart = fixed[:dot], fixed[dot+1:]
	}

	var b strings.Builder
	b.WriteString(groupThousands(intPart, spec.ThousandSeparator))
	if spec.DecimalPlaces > 0 {
		b.WriteString(spec.DecimalSeparator)
		b.WriteString(fracPart)
	}

	out := b.String()
	if includeSymbol {
		out = spec.Symbol + " " + out
	}
	if negative {
		out = "-" + out
	}
	return out, nil
}

// groupThousands inserts the separator every three digits, counting from the
// decimal point leftwards.
func groupThousands(digits, separator string) string {
	if separator == "" || len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(separator)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
