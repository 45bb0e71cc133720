package planning_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/advisorkit/fna_app/internal/core/domain"
	"github.com/advisorkit/fna_app/internal/core/planning"
)

func TestResolveProjected(t *testing.T) {
	rate := decimal.NewFromInt(6)

	t.Run("auto items are computed and rounded", func(t *testing.T) {
		item := domain.AssetLineItem{
			Key:            domain.AssetChecking,
			PresentValue:   decimal.NewFromInt(10000),
			ProjectedValue: decimal.NewFromInt(999999), // ignored for AUTO
		}
		got := planning.ResolveProjected(item, rate, 10)
		assert.Equal(t, "17908.48", got.StringFixed(2))
	})

	t.Run("editable items keep the stored figure", func(t *testing.T) {
		item := domain.AssetLineItem{
			Key:            domain.AssetBrokerage,
			PresentValue:   decimal.NewFromInt(10000),
			ProjectedValue: decimal.NewFromInt(25000),
		}
		got := planning.ResolveProjected(item, rate, 10)
		assert.True(t, got.Equal(decimal.NewFromInt(25000)), "got %s", got)
	})

	t.Run("non-applicable items resolve to zero", func(t *testing.T) {
		item := domain.AssetLineItem{
			Key:            domain.AssetTermLife,
			PresentValue:   decimal.NewFromInt(500000),
			ProjectedValue: decimal.NewFromInt(500000),
		}
		got := planning.ResolveProjected(item, rate, 10)
		assert.True(t, got.IsZero())
	})

	t.Run("unknown keys resolve to zero", func(t *testing.T) {
		item := domain.AssetLineItem{Key: "mystery", PresentValue: decimal.NewFromInt(100)}
		got := planning.ResolveProjected(item, rate, 10)
		assert.True(t, got.IsZero())
	})
}

func TestAggregateAssets(t *testing.T) {
	rate := decimal.NewFromInt(6)

	t.Run("informational items contribute nothing", func(t *testing.T) {
		items := []domain.AssetLineItem{
			{Key: domain.AssetChecking, PresentValue: decimal.NewFromInt(5000)},
			{Key: domain.AssetEmployerBenefits, PresentValue: decimal.NewFromInt(100000)},
			{Key: domain.AssetWillInPlace, OwnedByPrimary: true},
		}
		present, projected := planning.AggregateAssets(items, rate, 0)
		assert.True(t, present.Equal(decimal.NewFromInt(5000)), "got %s", present)
		assert.True(t, projected.IsZero())
	})

	t.Run("term life counts toward present value but projects nothing", func(t *testing.T) {
		items := []domain.AssetLineItem{
			{Key: domain.AssetTermLife, PresentValue: decimal.NewFromInt(250000)},
		}
		present, projected := planning.AggregateAssets(items, rate, 10)
		assert.True(t, present.Equal(decimal.NewFromInt(250000)))
		assert.True(t, projected.IsZero())
	})

	t.Run("editable projections use the stored figures", func(t *testing.T) {
		items := []domain.AssetLineItem{
			{Key: domain.AssetBrokerage, PresentValue: decimal.NewFromInt(10000), ProjectedValue: decimal.NewFromInt(18000)},
			{Key: domain.Asset401k, PresentValue: decimal.NewFromInt(40000), ProjectedValue: decimal.NewFromInt(70000)},
		}
		present, projected := planning.AggregateAssets(items, rate, 10)
		assert.True(t, present.Equal(decimal.NewFromInt(50000)), "got %s", present)
		assert.True(t, projected.Equal(decimal.NewFromInt(88000)), "got %s", projected)
	})
}

func TestLiquidCash(t *testing.T) {
	items := []domain.AssetLineItem{
		{Key: domain.AssetChecking, PresentValue: decimal.NewFromInt(2000)},
		{Key: domain.AssetSavings, PresentValue: decimal.NewFromInt(8000)},
		{Key: domain.AssetMoneyMarket, PresentValue: decimal.NewFromInt(5000)},
		{Key: domain.AssetCDs, PresentValue: decimal.NewFromInt(50000)},       // not liquid
		{Key: domain.AssetBrokerage, PresentValue: decimal.NewFromInt(90000)}, // not liquid
	}
	got := planning.LiquidCash(items)
	assert.True(t, got.Equal(decimal.NewFromInt(15000)), "got %s", got)
}
