// Package planning is the pure computation core of the needs analysis: the
// time-value-of-money projector, the goal and asset aggregation passes, the
// gap calculator and the recommendation rule engine. Everything here is
// side-effect-free and deterministic; re-running any function on unchanged
// inputs yields identical outputs.
package planning

import "github.com/shopspring/decimal"

var (
	decimalOne     = decimal.NewFromInt(1)
	decimalTwelve  = decimal.NewFromInt(12)
	decimalHundred = decimal.NewFromInt(100)

	// Fixed 3% assumed inflation applied to the income need. Not user
	// configurable.
	inflationGrowth = decimal.NewFromFloat(1.03)
)

// FutureValue projects a single lump sum forward with standard annual
// compounding: pv * (1 + rate/100)^years. There is no intra-year compounding
// and no contribution stream. A non-positive present value or horizon yields
// zero. This is the single projection formula used for every auto and
// editable-default figure in the system.
func FutureValue(presentValue, annualRatePercent decimal.Decimal, horizonYears int) decimal.Decimal {
	if presentValue.LessThanOrEqual(decimal.Zero) || horizonYears <= 0 {
		return decimal.Zero
	}
	growth := decimalOne.Add(annualRatePercent.Div(decimalHundred))
	return presentValue.Mul(growth.Pow(decimal.NewFromInt(int64(horizonYears))))
}
