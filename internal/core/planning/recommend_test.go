package planning_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/advisorkit/fna_app/internal/core/domain"
	"github.com/advisorkit/fna_app/internal/core/planning"
)

// healthyInput builds a picture that trips none of the warning rules, so
// individual tests can break exactly one thing at a time.
func healthyInput() planning.RecommendationInput {
	return planning.RecommendationInput{
		TotalAssets:         decimal.NewFromInt(800000),
		TotalLiabilities:    decimal.Zero,
		TotalRequirement:    decimal.NewFromInt(500000),
		TotalProjected:      decimal.NewFromInt(600000),
		Gap:                 decimal.NewFromInt(-100000),
		YearsToRetirement:   20,
		GrowthRatePercent:   decimal.NewFromInt(6),
		MonthlyIncomeNeeded: decimal.NewFromInt(1000),
		InflatedMonthly:     decimal.NewFromFloat(1806.11),
		HasRetirementAcct:   true,
		HasRothIRA:          true,
		HasLifeInsurance:    true,
		LiquidCash:          decimal.NewFromInt(50000),
		HasWill:             true,
	}
}

func messagesOf(recs []domain.Recommendation) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Message
	}
	return out
}

func containsSubstring(messages []string, substr string) bool {
	for _, m := range messages {
		if strings.Contains(m, substr) {
			return true
		}
	}
	return false
}

func TestEvaluateHeadline(t *testing.T) {
	t.Run("positive gap warns", func(t *testing.T) {
		in := healthyInput()
		in.Gap = decimal.NewFromInt(50000)
		recs := planning.Evaluate(in)
		assert.Equal(t, domain.SeverityWarn, recs[0].Severity)
		assert.Contains(t, recs[0].Message, "$50,000.00")
	})

	t.Run("zero gap is on track", func(t *testing.T) {
		in := healthyInput()
		in.Gap = decimal.Zero
		recs := planning.Evaluate(in)
		assert.Equal(t, domain.SeverityGood, recs[0].Severity)
	})

	t.Run("surplus is on track", func(t *testing.T) {
		recs := planning.Evaluate(healthyInput())
		assert.Equal(t, domain.SeverityGood, recs[0].Severity)
		assert.Contains(t, recs[0].Message, "$100,000.00")
	})
}

func TestEvaluateDebtRule(t *testing.T) {
	t.Run("silent with no liabilities", func(t *testing.T) {
		msgs := messagesOf(planning.Evaluate(healthyInput()))
		assert.False(t, containsSubstring(msgs, "liabilities"))
	})

	t.Run("warns above half of assets", func(t *testing.T) {
		in := healthyInput()
		in.TotalLiabilities = decimal.NewFromInt(500000)
		recs := planning.Evaluate(in)
		assert.Equal(t, domain.SeverityWarn, recs[1].Severity)
		assert.Contains(t, recs[1].Message, "exceed half")
	})

	t.Run("informational below half", func(t *testing.T) {
		in := healthyInput()
		in.TotalLiabilities = decimal.NewFromInt(100000)
		recs := planning.Evaluate(in)
		assert.Equal(t, domain.SeverityInfo, recs[1].Severity)
		assert.Contains(t, recs[1].Message, "manageable ratio")
	})
}

func TestEvaluateCoverageRules(t *testing.T) {
	t.Run("missing retirement accounts outranks missing Roth", func(t *testing.T) {
		in := healthyInput()
		in.HasRetirementAcct = false
		in.HasRothIRA = false
		msgs := messagesOf(planning.Evaluate(in))
		assert.True(t, containsSubstring(msgs, "core retirement account"))
		assert.False(t, containsSubstring(msgs, "Roth position"))
	})

	t.Run("missing Roth alone gets the narrower note", func(t *testing.T) {
		in := healthyInput()
		in.HasRothIRA = false
		msgs := messagesOf(planning.Evaluate(in))
		assert.False(t, containsSubstring(msgs, "core retirement account"))
		assert.True(t, containsSubstring(msgs, "Roth position"))
	})

	t.Run("missing life insurance warns", func(t *testing.T) {
		in := healthyInput()
		in.HasLifeInsurance = false
		msgs := messagesOf(planning.Evaluate(in))
		assert.True(t, containsSubstring(msgs, "Survivor income protection"))
	})
}

func TestEvaluateEmergencyFund(t *testing.T) {
	t.Run("warns below six months of need", func(t *testing.T) {
		in := healthyInput()
		in.LiquidCash = decimal.NewFromInt(3000)
		recs := planning.Evaluate(in)
		var found *domain.Recommendation
		for i := range recs {
			if strings.Contains(recs[i].Message, "emergency fund") {
				found = &recs[i]
				break
			}
		}
		if assert.NotNil(t, found) {
			assert.Equal(t, domain.SeverityWarn, found.Severity)
			assert.Contains(t, found.Message, "$3,000.00")
			assert.Contains(t, found.Message, "$6,000.00")
		}
	})

	t.Run("silent at exactly six months", func(t *testing.T) {
		in := healthyInput()
		in.LiquidCash = decimal.NewFromInt(6000)
		msgs := messagesOf(planning.Evaluate(in))
		assert.False(t, containsSubstring(msgs, "emergency fund"))
	})
}

func TestEvaluateRuleOf72(t *testing.T) {
	t.Run("present at a positive rate", func(t *testing.T) {
		msgs := messagesOf(planning.Evaluate(healthyInput()))
		assert.True(t, containsSubstring(msgs, "double roughly every 12 years"))
	})

	t.Run("skipped at a zero rate", func(t *testing.T) {
		in := healthyInput()
		in.GrowthRatePercent = decimal.Zero
		msgs := messagesOf(planning.Evaluate(in))
		assert.False(t, containsSubstring(msgs, "Rule of 72"))
	})
}

func TestEvaluateEstateAndSurplus(t *testing.T) {
	t.Run("no will and no trust warns", func(t *testing.T) {
		in := healthyInput()
		in.HasWill = false
		in.HasTrust = false
		msgs := messagesOf(planning.Evaluate(in))
		assert.True(t, containsSubstring(msgs, "estate documents"))
	})

	t.Run("either document is enough", func(t *testing.T) {
		in := healthyInput()
		in.HasWill = false
		in.HasTrust = true
		msgs := messagesOf(planning.Evaluate(in))
		assert.False(t, containsSubstring(msgs, "estate documents"))
	})

	t.Run("surplus suggestion only in the surplus branch", func(t *testing.T) {
		surplus := messagesOf(planning.Evaluate(healthyInput()))
		assert.True(t, containsSubstring(surplus, "surplus of $100,000.00"))

		in := healthyInput()
		in.TotalProjected = decimal.NewFromInt(400000)
		in.Gap = decimal.NewFromInt(100000)
		shortfall := messagesOf(planning.Evaluate(in))
		assert.False(t, containsSubstring(shortfall, "surplus of"))
	})
}

func TestEvaluateDeterminism(t *testing.T) {
	in := healthyInput()
	in.TotalLiabilities = decimal.NewFromInt(100000)
	in.CollegeGoal = decimal.NewFromInt(80000)

	first := planning.Evaluate(in)
	second := planning.Evaluate(in)
	assert.Equal(t, first, second)
	assert.NotEmpty(t, first)
}
