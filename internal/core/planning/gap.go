package planning

import (
	"github.com/advisorkit/fna_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ComputeTotals combines the aggregated figures into the totals snapshot.
// Sign convention: a positive funding gap is a shortfall; zero or negative
// means the plan is on track or in surplus. The zero boundary is on-track.
func ComputeTotals(totalRequirement, totalPresent, totalProjected, totalLiabilities decimal.Decimal) domain.TotalsSnapshot {
	return domain.TotalsSnapshot{
		TotalPresentValue:   totalPresent,
		TotalProjectedValue: totalProjected,
		TotalLiabilities:    totalLiabilities,
		NetWorth:            totalPresent.Sub(totalLiabilities),
		FundingGap:          totalRequirement.Sub(totalProjected).Sub(totalLiabilities),
	}
}
