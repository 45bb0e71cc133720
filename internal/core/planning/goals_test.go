package planning_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/advisorkit/fna_app/internal/core/domain"
	"github.com/advisorkit/fna_app/internal/core/planning"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCurrentAge(t *testing.T) {
	now := date(2026, time.August, 30)

	t.Run("entered age used when no DOB", func(t *testing.T) {
		assert.Equal(t, 45, planning.CurrentAge(nil, 45, now))
	})

	t.Run("zero without DOB or entered age", func(t *testing.T) {
		assert.Equal(t, 0, planning.CurrentAge(nil, 0, now))
	})

	t.Run("DOB wins over entered age", func(t *testing.T) {
		dob := date(1980, time.June, 15)
		assert.Equal(t, 46, planning.CurrentAge(&dob, 99, now))
	})

	t.Run("birthday not yet reached this year", func(t *testing.T) {
		dob := date(1980, time.November, 2)
		assert.Equal(t, 45, planning.CurrentAge(&dob, 0, now))
	})

	t.Run("birthday today counts the full year", func(t *testing.T) {
		dob := date(1980, time.August, 30)
		assert.Equal(t, 46, planning.CurrentAge(&dob, 0, now))
	})
}

func TestDeriveGoals(t *testing.T) {
	now := date(2026, time.August, 30)

	baseInputs := func() domain.GoalInputs {
		inputs := domain.DefaultGoalInputs()
		inputs.CurrentAge = 45
		inputs.MonthlyIncomeNeeded = decimal.NewFromInt(1000)
		return inputs
	}

	t.Run("auto horizons from ages", func(t *testing.T) {
		derived := planning.DeriveGoals(baseInputs(), nil, now)
		assert.Equal(t, 45, derived.CurrentAge)
		assert.Equal(t, 20, derived.YearsToRetirement)
		assert.Equal(t, 20, derived.RetirementDuration)
	})

	t.Run("income inflates to retirement", func(t *testing.T) {
		derived := planning.DeriveGoals(baseInputs(), nil, now)
		// 1000 * 1.03^20
		assert.Equal(t, "1806.11", derived.InflatedMonthlyIncome.Round(2).StringFixed(2))
		assert.Equal(t, "21673.33", derived.AnnualIncome.Round(2).StringFixed(2))
		assert.True(t, derived.LifetimeRetirementIncome.Equal(derived.AnnualIncome.Mul(decimal.NewFromInt(20))))
	})

	t.Run("long term care from healthcare figure", func(t *testing.T) {
		derived := planning.DeriveGoals(baseInputs(), nil, now)
		// 315000 * 0.03 * (20 care years * 2)
		assert.True(t, derived.LongTermCare.Equal(decimal.NewFromInt(378000)), "got %s", derived.LongTermCare)
	})

	t.Run("total adds goals, lifetime income, healthcare and care", func(t *testing.T) {
		inputs := baseInputs()
		inputs.Goals.Travel = decimal.NewFromInt(50000)
		derived := planning.DeriveGoals(inputs, nil, now)

		want := decimal.NewFromInt(50000).
			Add(derived.LifetimeRetirementIncome).
			Add(inputs.HealthcareExpenses).
			Add(derived.LongTermCare)
		assert.True(t, derived.TotalRequirement.Equal(want), "got %s want %s", derived.TotalRequirement, want)
	})

	t.Run("manual overrides are honored", func(t *testing.T) {
		inputs := baseInputs()
		inputs.YearsToRetirement = domain.ManualYears(10)
		inputs.RetirementDuration = domain.ManualYears(30)
		inputs.LongTermCare = domain.ManualAmount(decimal.NewFromInt(100000))

		derived := planning.DeriveGoals(inputs, nil, now)
		assert.Equal(t, 10, derived.YearsToRetirement)
		assert.Equal(t, 30, derived.RetirementDuration)
		assert.True(t, derived.LongTermCare.Equal(decimal.NewFromInt(100000)))
	})

	t.Run("retirement past the horizon zeroes duration and care", func(t *testing.T) {
		inputs := baseInputs()
		inputs.PlannedRetirementAge = 90
		derived := planning.DeriveGoals(inputs, nil, now)

		assert.Equal(t, 0, derived.RetirementDuration)
		assert.True(t, derived.LongTermCare.IsZero())
		// Zero duration still buys one year of income.
		assert.True(t, derived.LifetimeRetirementIncome.Equal(derived.AnnualIncome))
	})

	t.Run("retirement age already passed clamps years to zero", func(t *testing.T) {
		inputs := baseInputs()
		inputs.CurrentAge = 70
		derived := planning.DeriveGoals(inputs, nil, now)

		assert.Equal(t, 0, derived.YearsToRetirement)
		assert.True(t, derived.InflatedMonthlyIncome.IsZero())
	})

	t.Run("derivation is deterministic", func(t *testing.T) {
		inputs := baseInputs()
		first := planning.DeriveGoals(inputs, nil, now)
		second := planning.DeriveGoals(inputs, nil, now)
		assert.Equal(t, first, second)
	})
}
