package planning

import (
	"fmt"

	"github.com/advisorkit/fna_app/internal/core/domain"
	"github.com/advisorkit/fna_app/internal/utils"
	"github.com/shopspring/decimal"
)

// RecommendationInput is the aggregated financial picture the rule engine
// evaluates. It is assembled once per recomputation pass.
type RecommendationInput struct {
	TotalAssets         decimal.Decimal
	TotalLiabilities    decimal.Decimal
	TotalRequirement    decimal.Decimal
	TotalProjected      decimal.Decimal
	Gap                 decimal.Decimal
	YearsToRetirement   int
	GrowthRatePercent   decimal.Decimal
	MonthlyIncomeNeeded decimal.Decimal
	InflatedMonthly     decimal.Decimal
	HasRetirementAcct   bool // any balance in the three core retirement categories
	HasRothIRA          bool
	HasLifeInsurance    bool // any balance in the three insurance categories
	LiquidCash          decimal.Decimal
	CollegeGoal         decimal.Decimal // college1 + college2
	HasWill             bool
	HasTrust            bool
}

var sixMonths = decimal.NewFromInt(6)

// Evaluate runs the fixed battery of heuristic rules in order. Each rule
// contributes zero or one message; the output order is stable and the whole
// evaluation is deterministic for a given input.
func Evaluate(in RecommendationInput) []domain.Recommendation {
	recs := make([]domain.Recommendation, 0, 10)
	add := func(sev domain.Severity, format string, args ...any) {
		recs = append(recs, domain.Recommendation{Severity: sev, Message: fmt.Sprintf(format, args...)})
	}

	// 1. Shortfall-or-surplus headline. The zero boundary is on track.
	if in.Gap.GreaterThan(decimal.Zero) {
		add(domain.SeverityWarn,
			"Projected assets fall short of the total planning requirement by %s. Additional savings or adjusted goals are needed to close the gap.",
			utils.FormatCurrency(in.Gap))
	} else {
		add(domain.SeverityGood,
			"Projected assets meet or exceed the total planning requirement by %s. The plan is on track.",
			utils.FormatCurrency(in.Gap.Neg()))
	}

	// 2. Debt-to-asset commentary.
	if in.TotalLiabilities.GreaterThan(decimal.Zero) {
		half := in.TotalAssets.Div(decimal.NewFromInt(2))
		if in.TotalLiabilities.GreaterThan(half) {
			add(domain.SeverityWarn,
				"Total liabilities of %s exceed half of total assets (%s). Prioritize debt reduction before expanding investment positions.",
				utils.FormatCurrency(in.TotalLiabilities), utils.FormatCurrency(in.TotalAssets))
		} else {
			add(domain.SeverityInfo,
				"Total liabilities of %s are within a manageable ratio of total assets (%s). Continue scheduled payments.",
				utils.FormatCurrency(in.TotalLiabilities), utils.FormatCurrency(in.TotalAssets))
		}
	}

	// 3. Retirement-income note.
	if in.MonthlyIncomeNeeded.GreaterThan(decimal.Zero) {
		add(domain.SeverityInfo,
			"A monthly income need of %s today grows to approximately %s per month at retirement after inflation.",
			utils.FormatCurrency(in.MonthlyIncomeNeeded), utils.FormatCurrency(in.InflatedMonthly.Round(2)))
	}

	// 4. Retirement account coverage.
	if !in.HasRetirementAcct {
		add(domain.SeverityWarn,
			"No balance is recorded in any core retirement account (401(k), Traditional IRA, Roth IRA). Establishing tax-advantaged retirement savings should be the first priority.")
	} else if !in.HasRothIRA {
		add(domain.SeverityInfo,
			"No Roth IRA balance is recorded. A Roth position adds tax diversification to retirement withdrawals.")
	}

	// 5. Life insurance coverage.
	if !in.HasLifeInsurance {
		add(domain.SeverityWarn,
			"No life insurance value is recorded in any insurance category. Survivor income protection appears to be missing from the plan.")
	}

	// 6. Emergency fund: six months of income need in liquid cash.
	reserveTarget := in.MonthlyIncomeNeeded.Mul(sixMonths)
	if reserveTarget.GreaterThan(in.LiquidCash) {
		add(domain.SeverityWarn,
			"Liquid cash reserves of %s are below the six-month target of %s. Build the emergency fund before committing further long-term capital.",
			utils.FormatCurrency(in.LiquidCash), utils.FormatCurrency(reserveTarget))
	}

	// 7. Rule of 72. Skipped only when the growth rate is zero, where the
	// years-to-double figure is undefined.
	if in.GrowthRatePercent.GreaterThan(decimal.Zero) {
		yearsToDouble := decimal.NewFromInt(72).Div(in.GrowthRatePercent).Round(0)
		add(domain.SeverityInfo,
			"At a %s%% growth rate, invested assets double roughly every %s years (Rule of 72).",
			in.GrowthRatePercent.String(), yearsToDouble.String())
	}

	// 8. College savings note.
	if in.CollegeGoal.GreaterThan(decimal.Zero) {
		add(domain.SeverityInfo,
			"College goals totaling %s are recorded. Tax-advantaged 529 contributions can fund these with market growth.",
			utils.FormatCurrency(in.CollegeGoal))
	}

	// 9. Estate planning.
	if !in.HasWill && !in.HasTrust {
		add(domain.SeverityWarn,
			"Neither a will nor a trust is in place. Basic estate documents should be completed regardless of asset level.")
	}

	// 10. Surplus strategy, only in the surplus branch (additive to rule 1).
	if in.TotalProjected.GreaterThan(in.TotalRequirement) && in.Gap.LessThanOrEqual(decimal.Zero) {
		add(domain.SeverityInfo,
			"With projected assets above the requirement, consider legacy, charitable giving, or earlier retirement scenarios for the surplus of %s.",
			utils.FormatCurrency(in.Gap.Neg()))
	}

	return recs
}
