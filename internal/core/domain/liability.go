package domain

import "github.com/shopspring/decimal"

// LiabilityType enumerates the allowed liability categories. A liability row
// may never be persisted with an empty type.
type LiabilityType string

const (
	LiabilityMortgage     LiabilityType = "MORTGAGE"
	LiabilityHomeEquity   LiabilityType = "HOME_EQUITY"
	LiabilityAutoLoan     LiabilityType = "AUTO_LOAN"
	LiabilityCreditCard   LiabilityType = "CREDIT_CARD"
	LiabilityStudentLoan  LiabilityType = "STUDENT_LOAN"
	LiabilityPersonalLoan LiabilityType = "PERSONAL_LOAN"
	LiabilityBusinessLoan LiabilityType = "BUSINESS_LOAN"
	LiabilityMedical      LiabilityType = "MEDICAL"
	LiabilityOther        LiabilityType = "OTHER"
)

// LiabilityTypes lists every valid liability type, in display order.
var LiabilityTypes = []LiabilityType{
	LiabilityMortgage,
	LiabilityHomeEquity,
	LiabilityAutoLoan,
	LiabilityCreditCard,
	LiabilityStudentLoan,
	LiabilityPersonalLoan,
	LiabilityBusinessLoan,
	LiabilityMedical,
	LiabilityOther,
}

// ValidLiabilityType reports whether t is one of the fixed enumeration values.
func ValidLiabilityType(t LiabilityType) bool {
	for _, v := range LiabilityTypes {
		if v == t {
			return true
		}
	}
	return false
}

// LiabilityRecord is one editable liability row, keyed by a foreign reference
// to its parent plan. The optional numeric fields are nil when the advisor
// left them blank; balance coerces to zero instead.
type LiabilityRecord struct {
	LiabilityID         string           `json:"liabilityID"` // Primary Key (UUID once persisted)
	PlanID              string           `json:"planID"`      // FK -> plans.plan_id (NON-NULL)
	Type                LiabilityType    `json:"type"`
	Description         string           `json:"description"`
	Lender              string           `json:"lender"`
	Notes               string           `json:"notes"`
	Balance             decimal.Decimal  `json:"balance"`
	InterestRatePercent *decimal.Decimal `json:"interestRatePercent,omitempty"`
	MinimumPayment      *decimal.Decimal `json:"minimumPayment,omitempty"`
	CurrentPayment      *decimal.Decimal `json:"currentPayment,omitempty"`
	AuditFields
}

// SumLiabilityBalances totals the balances of the given rows.
func SumLiabilityBalances(rows []LiabilityRecord) decimal.Decimal {
	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(r.Balance)
	}
	return total
}
