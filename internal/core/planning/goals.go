package planning

import (
	"time"

	"github.com/advisorkit/fna_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CurrentAge resolves the client's age in whole years. A date of birth on
// file always wins over a directly entered age (exact year/month/day
// comparison against today); the entered age is only a fallback when no DOB
// is available. With neither, the age is zero for horizon purposes.
func CurrentAge(dob *time.Time, enteredAge int, now time.Time) int {
	if dob == nil {
		if enteredAge > 0 {
			return enteredAge
		}
		return 0
	}
	age := now.Year() - dob.Year()
	// Birthday not reached yet this year.
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}

// DeriveGoals runs one goal aggregation pass. There is no error state: every
// input is numeric-or-zero and missing figures degrade to zero contributions.
// Manual overrides on the two horizon figures and the long-term-care estimate
// are honored; resetting them back to auto on upstream edits is the plan
// service's job, not this function's.
func DeriveGoals(inputs domain.GoalInputs, dob *time.Time, now time.Time) domain.DerivedGoalFigures {
	currentAge := CurrentAge(dob, inputs.CurrentAge, now)

	autoYears := inputs.PlannedRetirementAge - currentAge
	if autoYears < 0 {
		autoYears = 0
	}
	autoDuration := 0
	if inputs.PlannedRetirementAge < domain.PlanningHorizonAge {
		autoDuration = domain.PlanningHorizonAge - inputs.PlannedRetirementAge
	}

	years := inputs.YearsToRetirement.Resolve(autoYears)
	if years < 0 {
		years = 0
	}
	duration := inputs.RetirementDuration.Resolve(autoDuration)
	if duration < 0 {
		duration = 0
	}

	inflatedMonthly := decimal.Zero
	if inputs.MonthlyIncomeNeeded.GreaterThan(decimal.Zero) && years > 0 {
		inflatedMonthly = inputs.MonthlyIncomeNeeded.Mul(inflationGrowth.Pow(decimal.NewFromInt(int64(years))))
	}
	annual := inflatedMonthly.Mul(decimalTwelve)

	// A zero duration still buys one year of income; otherwise the lifetime
	// figure would vanish for clients retiring at the horizon age.
	effectiveDuration := duration
	if effectiveDuration < 1 {
		effectiveDuration = 1
	}
	lifetime := annual.Mul(decimal.NewFromInt(int64(effectiveDuration)))

	ltc := inputs.LongTermCare.Resolve(autoLongTermCare(inputs.HealthcareExpenses, inputs.PlannedRetirementAge))

	total := inputs.Goals.Sum().
		Add(lifetime).
		Add(inputs.HealthcareExpenses).
		Add(ltc)

	return domain.DerivedGoalFigures{
		CurrentAge:               currentAge,
		YearsToRetirement:        years,
		RetirementDuration:       duration,
		InflatedMonthlyIncome:    inflatedMonthly,
		AnnualIncome:             annual,
		LifetimeRetirementIncome: lifetime,
		LongTermCare:             ltc,
		TotalRequirement:         total,
	}
}

// autoLongTermCare estimates long-term-care cost as 3% of the healthcare
// expense figure for each of two care episodes per remaining horizon year.
// A retirement age at or past the horizon yields zero rather than a negative
// estimate.
func autoLongTermCare(healthcareExpenses decimal.Decimal, plannedRetirementAge int) decimal.Decimal {
	careYears := domain.PlanningHorizonAge - plannedRetirementAge
	if careYears <= 0 {
		return decimal.Zero
	}
	return healthcareExpenses.
		Mul(decimal.NewFromFloat(0.03)).
		Mul(decimal.NewFromInt(int64(careYears * 2)))
}
