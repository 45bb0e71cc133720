package utils_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/advisorkit/fna_app/internal/utils"
)

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		name   string
		amount decimal.Decimal
		want   string
	}{
		{"zero", decimal.Zero, "$0.00"},
		{"cents", decimal.NewFromFloat(0.5), "$0.50"},
		{"thousands grouping", decimal.NewFromFloat(1234.5), "$1,234.50"},
		{"millions grouping", decimal.NewFromInt(1234567), "$1,234,567.00"},
		{"negative", decimal.NewFromInt(-500), "-$500.00"},
		{"rounds to cents", decimal.NewFromFloat(10.005), "$10.01"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, utils.FormatCurrency(tc.amount))
		})
	}
}

func TestFormatCurrencyOrBlank(t *testing.T) {
	assert.Equal(t, "", utils.FormatCurrencyOrBlank(decimal.Zero))
	assert.Equal(t, "$42.00", utils.FormatCurrencyOrBlank(decimal.NewFromInt(42)))
}

func TestParseAmount(t *testing.T) {
	t.Run("strips display formatting", func(t *testing.T) {
		got := utils.ParseAmount("$1,234.50")
		assert.True(t, got.Equal(decimal.NewFromFloat(1234.5)), "got %s", got)
	})

	t.Run("handles negatives", func(t *testing.T) {
		got := utils.ParseAmount("-$500.00")
		assert.True(t, got.Equal(decimal.NewFromInt(-500)), "got %s", got)
	})

	t.Run("blank coerces to zero", func(t *testing.T) {
		assert.True(t, utils.ParseAmount("").IsZero())
		assert.True(t, utils.ParseAmount("   ").IsZero())
	})

	t.Run("malformed coerces to zero", func(t *testing.T) {
		assert.True(t, utils.ParseAmount("abc").IsZero())
		assert.True(t, utils.ParseAmount("1.2.3").IsZero())
		assert.True(t, utils.ParseAmount("--5").IsZero())
	})

	t.Run("round trips through the formatter", func(t *testing.T) {
		original := decimal.NewFromFloat(9876543.21)
		parsed := utils.ParseAmount(utils.FormatCurrency(original))
		assert.True(t, parsed.Equal(original), "got %s", parsed)
	})
}

func TestParseOptionalAmount(t *testing.T) {
	t.Run("blank is nil", func(t *testing.T) {
		assert.Nil(t, utils.ParseOptionalAmount(""))
		assert.Nil(t, utils.ParseOptionalAmount("n/a"))
	})

	t.Run("malformed is nil", func(t *testing.T) {
		assert.Nil(t, utils.ParseOptionalAmount("1.2.3"))
	})

	t.Run("valid input yields a value", func(t *testing.T) {
		got := utils.ParseOptionalAmount("$250.00")
		if assert.NotNil(t, got) {
			assert.True(t, got.Equal(decimal.NewFromInt(250)), "got %s", got)
		}
	})

	t.Run("zero is a value, not nil", func(t *testing.T) {
		got := utils.ParseOptionalAmount("0")
		if assert.NotNil(t, got) {
			assert.True(t, got.IsZero())
		}
	})
}
