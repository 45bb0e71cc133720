package planning

import (
	"github.com/advisorkit/fna_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ResolveProjected produces the projected value for one asset line item
// according to its category's fixed projection mode. Exactly one resolution
// applies per item; auto and stored figures are never combined.
func ResolveProjected(item domain.AssetLineItem, ratePercent decimal.Decimal, horizonYears int) decimal.Decimal {
	cat, ok := domain.CategoryFor(item.Key)
	if !ok {
		return decimal.Zero
	}
	switch cat.Mode {
	case domain.ProjectionAuto:
		return FutureValue(item.PresentValue, ratePercent, horizonYears).Round(2)
	case domain.ProjectionEditable:
		return item.ProjectedValue
	default: // NOT_APPLICABLE
		return decimal.Zero
	}
}

// DefaultProjected is the value an editable item's projected field resets to
// whenever its present value is edited, rounded to the nearest cent.
func DefaultProjected(presentValue, ratePercent decimal.Decimal, horizonYears int) decimal.Decimal {
	return FutureValue(presentValue, ratePercent, horizonYears).Round(2)
}

// AggregateAssets sums present and projected values across the line items.
// Items whose category does not count toward net worth contribute nothing to
// either total.
func AggregateAssets(items []domain.AssetLineItem, ratePercent decimal.Decimal, horizonYears int) (totalPresent, totalProjected decimal.Decimal) {
	totalPresent = decimal.Zero
	totalProjected = decimal.Zero
	for _, item := range items {
		cat, ok := domain.CategoryFor(item.Key)
		if !ok || !cat.CountsInNetWorth {
			continue
		}
		totalPresent = totalPresent.Add(item.PresentValue)
		totalProjected = totalProjected.Add(ResolveProjected(item, ratePercent, horizonYears))
	}
	return totalPresent, totalProjected
}

// LiquidCash sums the present value of the liquid asset categories, the
// figure the emergency reserve rule compares against.
func LiquidCash(items []domain.AssetLineItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		if cat, ok := domain.CategoryFor(item.Key); ok && cat.Liquid {
			total = total.Add(item.PresentValue)
		}
	}
	return total
}
