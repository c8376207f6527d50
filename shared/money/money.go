package money

import (
	"github.com/shopspring/decimal"
)

const (
	DefaultCurrency = "CHF"

	displayPlaces = 2
)

var hundred = decimal.NewFromInt(100)

// Format renders an amount with the currency prefix and exactly two decimals.
func Format(amount decimal.Decimal) string {
	return FormatWith(DefaultCurrency, amount)
}

func FormatWith(currency string, amount decimal.Decimal) string {
	if currency == "" {
		currency = DefaultCurrency
	}

	return currency + " " + amount.StringFixed(displayPlaces)
}

func Round2(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(displayPlaces)
}

// Sum adds the amount selected from each item that passes keep. A nil keep accepts everything.
func Sum[T any](items []T, amount func(T) decimal.Decimal, keep func(T) bool) decimal.Decimal {
	total := decimal.Zero

	for _, item := range items {
		if keep != nil && !keep(item) {
			continue
		}

		total = total.Add(amount(item))
	}

	return total
}

// WithVAT returns subtotal grossed up by a percentage VAT rate, rounded to cents.
func WithVAT(subtotal, vatRate decimal.Decimal) decimal.Decimal {
	return Round2(subtotal.Mul(decimal.NewFromInt(1).Add(vatRate.Div(hundred))))
}

// Percent returns part/whole as a percentage clamped to [0,100] with one decimal.
func Percent(part, whole decimal.Decimal) decimal.Decimal {
	if !whole.IsPositive() {
		return decimal.Zero
	}

	pct := part.Div(whole).Mul(hundred)

	switch {
	case pct.IsNegative():
		pct = decimal.Zero
	case pct.GreaterThan(hundred):
		pct = hundred
	}

	return pct.Round(1)
}
