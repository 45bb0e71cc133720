package planning_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/advisorkit/fna_app/internal/core/planning"
)

func TestComputeTotals(t *testing.T) {
	t.Run("shortfall is positive", func(t *testing.T) {
		totals := planning.ComputeTotals(
			decimal.NewFromInt(1000000), // requirement
			decimal.NewFromInt(300000),  // present
			decimal.NewFromInt(500000),  // projected
			decimal.NewFromInt(100000),  // liabilities
		)
		assert.True(t, totals.NetWorth.Equal(decimal.NewFromInt(200000)), "got %s", totals.NetWorth)
		assert.True(t, totals.FundingGap.Equal(decimal.NewFromInt(400000)), "got %s", totals.FundingGap)
	})

	t.Run("surplus is negative", func(t *testing.T) {
		totals := planning.ComputeTotals(
			decimal.NewFromInt(400000),
			decimal.NewFromInt(300000),
			decimal.NewFromInt(600000),
			decimal.Zero,
		)
		assert.True(t, totals.FundingGap.Equal(decimal.NewFromInt(-200000)), "got %s", totals.FundingGap)
	})

	t.Run("exact coverage is zero", func(t *testing.T) {
		totals := planning.ComputeTotals(
			decimal.NewFromInt(500000),
			decimal.NewFromInt(200000),
			decimal.NewFromInt(500000),
			decimal.Zero,
		)
		assert.True(t, totals.FundingGap.IsZero())
	})

	t.Run("liabilities push net worth negative", func(t *testing.T) {
		totals := planning.ComputeTotals(
			decimal.Zero,
			decimal.NewFromInt(50000),
			decimal.NewFromInt(60000),
			decimal.NewFromInt(80000),
		)
		assert.True(t, totals.NetWorth.Equal(decimal.NewFromInt(-30000)), "got %s", totals.NetWorth)
	})
}
