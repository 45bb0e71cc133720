package planning

import (
	"time"

	"github.com/advisorkit/fna_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Recompute runs the full derivation pass over a plan in declared dependency
// order: base inputs, horizons, inflated figures, asset totals, gap,
// recommendations. It is a pure function of its arguments; calling it twice
// on unchanged inputs yields identical results.
func Recompute(plan domain.Plan, liabilities []domain.LiabilityRecord, dob *time.Time, now time.Time) domain.Analysis {
	derived := DeriveGoals(plan.Inputs, dob, now)

	totalPresent, totalProjected := AggregateAssets(plan.Assets, plan.Inputs.GrowthRatePercent, derived.YearsToRetirement)
	totalLiabilities := domain.SumLiabilityBalances(liabilities)
	totals := ComputeTotals(derived.TotalRequirement, totalPresent, totalProjected, totalLiabilities)

	recs := Evaluate(buildRecommendationInput(plan, derived, totals))

	return domain.Analysis{
		Derived:         derived,
		Totals:          totals,
		Recommendations: recs,
	}
}

func buildRecommendationInput(plan domain.Plan, derived domain.DerivedGoalFigures, totals domain.TotalsSnapshot) RecommendationInput {
	in := RecommendationInput{
		TotalAssets:         totals.TotalPresentValue,
		TotalLiabilities:    totals.TotalLiabilities,
		TotalRequirement:    derived.TotalRequirement,
		TotalProjected:      totals.TotalProjectedValue,
		Gap:                 totals.FundingGap,
		YearsToRetirement:   derived.YearsToRetirement,
		GrowthRatePercent:   plan.Inputs.GrowthRatePercent,
		MonthlyIncomeNeeded: plan.Inputs.MonthlyIncomeNeeded,
		InflatedMonthly:     derived.InflatedMonthlyIncome,
		LiquidCash:          LiquidCash(plan.Assets),
		CollegeGoal:         plan.Inputs.Goals.College1.Add(plan.Inputs.Goals.College2),
	}

	for _, item := range plan.Assets {
		cat, ok := domain.CategoryFor(item.Key)
		if !ok {
			continue
		}
		hasBalance := item.PresentValue.GreaterThan(decimal.Zero)
		if cat.CoreRetirement && hasBalance {
			in.HasRetirementAcct = true
		}
		if item.Key == domain.AssetRothIRA && hasBalance {
			in.HasRothIRA = true
		}
		if cat.LifeInsurance && hasBalance {
			in.HasLifeInsurance = true
		}
		switch item.Key {
		case domain.AssetWillInPlace:
			in.HasWill = item.Checked()
		case domain.AssetTrustInPlace:
			in.HasTrust = item.Checked()
		}
	}
	return in
}
