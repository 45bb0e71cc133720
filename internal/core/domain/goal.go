package domain

import "github.com/shopspring/decimal"

// OverrideMode tags a derived figure as auto-derived or manually entered.
type OverrideMode string

const (
	OverrideAuto   OverrideMode = "AUTO"
	OverrideManual OverrideMode = "MANUAL"
)

// OverridableYears is a year-count figure that is normally derived but may be
// manually overridden. A manual value is preserved across recomputations until
// its upstream base field changes, at which point the plan service resets the
// mode to AUTO.
type OverridableYears struct {
	Mode  OverrideMode `json:"mode"`
	Years int          `json:"years"`
}

// Resolve returns the manual value when overridden, otherwise the auto value.
func (o OverridableYears) Resolve(auto int) int {
	if o.Mode == OverrideManual {
		return o.Years
	}
	return auto
}

// OverridableAmount is a monetary figure with the same auto/manual semantics.
type OverridableAmount struct {
	Mode  OverrideMode    `json:"mode"`
	Value decimal.Decimal `json:"value"`
}

// Resolve returns the manual value when overridden, otherwise the auto value.
func (o OverridableAmount) Resolve(auto decimal.Decimal) decimal.Decimal {
	if o.Mode == OverrideManual {
		return o.Value
	}
	return auto
}

// AutoYears returns an auto-mode year figure.
func AutoYears() OverridableYears { return OverridableYears{Mode: OverrideAuto} }

// ManualYears returns a manually overridden year figure.
func ManualYears(years int) OverridableYears {
	return OverridableYears{Mode: OverrideManual, Years: years}
}

// AutoAmount returns an auto-mode monetary figure.
func AutoAmount() OverridableAmount { return OverridableAmount{Mode: OverrideAuto} }

// ManualAmount returns a manually overridden monetary figure.
func ManualAmount(v decimal.Decimal) OverridableAmount {
	return OverridableAmount{Mode: OverrideManual, Value: v}
}

// GoalAmounts holds the per-category goal figures entered by the advisor,
// all in today's dollars.
type GoalAmounts struct {
	College1      decimal.Decimal `json:"college1"`
	College2      decimal.Decimal `json:"college2"`
	Wedding1      decimal.Decimal `json:"wedding1"`
	Wedding2      decimal.Decimal `json:"wedding2"`
	Travel        decimal.Decimal `json:"travel"`
	VacationHome  decimal.Decimal `json:"vacationHome"`
	Charity       decimal.Decimal `json:"charity"`
	Other         decimal.Decimal `json:"other"`
	HeadstartFund decimal.Decimal `json:"headstartFund"`
	Legacy        decimal.Decimal `json:"legacy"`
	FamilySupport decimal.Decimal `json:"familySupport"`
}

// Sum totals every goal category.
func (g GoalAmounts) Sum() decimal.Decimal {
	total := decimal.Zero
	for _, v := range []decimal.Decimal{
		g.College1, g.College2, g.Wedding1, g.Wedding2, g.Travel,
		g.VacationHome, g.Charity, g.Other, g.HeadstartFund, g.Legacy, g.FamilySupport,
	} {
		total = total.Add(v)
	}
	return total
}

// GoalInputs is the set of base figures driving the requirement computation.
// Every numeric field defaults to zero unless noted; malformed input is
// coerced to zero before it reaches this struct.
type GoalInputs struct {
	CurrentAge           int               `json:"currentAge"`           // fallback when the client has no DOB on file
	PlannedRetirementAge int               `json:"plannedRetirementAge"` // default 65
	GrowthRatePercent    decimal.Decimal   `json:"growthRatePercent"`    // nominal annual, default 6
	MonthlyIncomeNeeded  decimal.Decimal   `json:"monthlyIncomeNeeded"`  // today's dollars
	HealthcareExpenses   decimal.Decimal   `json:"healthcareExpenses"`   // default 315000
	Goals                GoalAmounts       `json:"goals"`
	YearsToRetirement    OverridableYears  `json:"yearsToRetirement"`
	RetirementDuration   OverridableYears  `json:"retirementDuration"`
	LongTermCare         OverridableAmount `json:"longTermCare"`
}

// Defaults applied when a client has no saved plan yet.
const (
	DefaultRetirementAge = 65
	PlanningHorizonAge   = 85 // retirement assumed to run through age 85
)

// DefaultGoalInputs returns the inputs a fresh, never-saved plan starts from.
func DefaultGoalInputs() GoalInputs {
	return GoalInputs{
		PlannedRetirementAge: DefaultRetirementAge,
		GrowthRatePercent:    decimal.NewFromInt(6),
		HealthcareExpenses:   decimal.NewFromInt(315000),
		YearsToRetirement:    AutoYears(),
		RetirementDuration:   AutoYears(),
		LongTermCare:         AutoAmount(),
	}
}

// DerivedGoalFigures is the output of one goal aggregation pass. It is never
// persisted; it is recomputed from GoalInputs on every read and write.
type DerivedGoalFigures struct {
	CurrentAge               int             `json:"currentAge"`
	YearsToRetirement        int             `json:"yearsToRetirement"`
	RetirementDuration       int             `json:"retirementDuration"`
	InflatedMonthlyIncome    decimal.Decimal `json:"inflatedMonthlyIncome"`
	AnnualIncome             decimal.Decimal `json:"annualIncome"`
	LifetimeRetirementIncome decimal.Decimal `json:"lifetimeRetirementIncome"`
	LongTermCare             decimal.Decimal `json:"longTermCare"`
	TotalRequirement         decimal.Decimal `json:"totalRequirement"`
}
