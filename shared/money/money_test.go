package money_test

import (
	"rentdesk/shared/money"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "CHF 1500.00", money.Format(decimal.NewFromInt(1500)))
	assert.Equal(t, "CHF 0.00", money.Format(decimal.Zero))
	assert.Equal(t, "CHF 12.35", money.Format(decimal.RequireFromString("12.345")))
	assert.Equal(t, "EUR 7.10", money.FormatWith("EUR", decimal.RequireFromString("7.1")))
	assert.Equal(t, "CHF 7.10", money.FormatWith("", decimal.RequireFromString("7.1")))
}

func TestSum(t *testing.T) {
	amounts := []decimal.Decimal{decimal.NewFromInt(10), decimal.RequireFromString("2.5"), decimal.NewFromInt(-1)}
	identity := func(d decimal.Decimal) decimal.Decimal { return d }

	assert.True(t, decimal.RequireFromString("11.5").Equal(money.Sum(amounts, identity, nil)))
	assert.True(t, decimal.RequireFromString("12.5").Equal(money.Sum(amounts, identity, func(d decimal.Decimal) bool {
		return d.IsPositive()
	})))
	assert.True(t, decimal.Zero.Equal(money.Sum(nil, identity, nil)))
}

func TestWithVAT(t *testing.T) {
	assert.Equal(t, "1621.50", money.WithVAT(decimal.NewFromInt(1500), decimal.RequireFromString("8.1")).StringFixed(2))
	assert.Equal(t, "100.00", money.WithVAT(decimal.NewFromInt(100), decimal.Zero).StringFixed(2))
	assert.Equal(t, "10.81", money.WithVAT(decimal.RequireFromString("10"), decimal.RequireFromString("8.1")).StringFixed(2))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "33.3", money.Percent(decimal.NewFromInt(500), decimal.NewFromInt(1500)).String())
	assert.Equal(t, "100", money.Percent(decimal.NewFromInt(2000), decimal.NewFromInt(1500)).String())
	assert.Equal(t, "0", money.Percent(decimal.NewFromInt(-5), decimal.NewFromInt(1500)).String())
	assert.Equal(t, "0", money.Percent(decimal.NewFromInt(5), decimal.Zero).String())
}
