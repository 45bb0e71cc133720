package dto

import (
	"github.com/advisorkit/fna_app/internal/core/domain"
	"github.com/advisorkit/fna_app/internal/utils"
)

// GoalAmountsRequest carries the per-category goal figures as display text.
// Malformed entries coerce to zero at parse time, never to an error.
type GoalAmountsRequest struct {
	College1      string `json:"college1"`
	College2      string `json:"college2"`
	Wedding1      string `json:"wedding1"`
	Wedding2      string `json:"wedding2"`
	Travel        string `json:"travel"`
	VacationHome  string `json:"vacationHome"`
	Charity       string `json:"charity"`
	Other         string `json:"other"`
	HeadstartFund string `json:"headstartFund"`
	Legacy        string `json:"legacy"`
	FamilySupport string `json:"familySupport"`
}

// YearsOverrideRequest carries the override state of a derived year figure.
type YearsOverrideRequest struct {
	Mode  domain.OverrideMode `json:"mode" binding:"omitempty,oneof=AUTO MANUAL"`
	Years int                 `json:"years"`
}

// AmountOverrideRequest carries the override state of a derived monetary figure.
type AmountOverrideRequest struct {
	Mode  domain.OverrideMode `json:"mode" binding:"omitempty,oneof=AUTO MANUAL"`
	Value string              `json:"value"`
}

// GoalInputsRequest mirrors domain.GoalInputs with monetary fields as raw
// display text.
type GoalInputsRequest struct {
	CurrentAge           int                    `json:"currentAge" binding:"min=0"`
	PlannedRetirementAge int                    `json:"plannedRetirementAge" binding:"min=0"`
	GrowthRatePercent    string                 `json:"growthRatePercent"`
	MonthlyIncomeNeeded  string                 `json:"monthlyIncomeNeeded"`
	HealthcareExpenses   string                 `json:"healthcareExpenses"`
	Goals                GoalAmountsRequest     `json:"goals"`
	YearsToRetirement    *YearsOverrideRequest  `json:"yearsToRetirement"`
	RetirementDuration   *YearsOverrideRequest  `json:"retirementDuration"`
	LongTermCare         *AmountOverrideRequest `json:"longTermCare"`
}

// AssetItemRequest is one asset table row as submitted by the form.
type AssetItemRequest struct {
	Key              domain.AssetKey `json:"key" binding:"required"`
	OwnedByPrimary   bool            `json:"ownedByPrimary"`
	OwnedBySecondary bool            `json:"ownedBySecondary"`
	Notes            string          `json:"notes"`
	PresentValue     string          `json:"presentValue"`
	ProjectedValue   string          `json:"projectedValue"`
}

// SavePlanRequest is the full form submission for one client's plan.
type SavePlanRequest struct {
	Inputs GoalInputsRequest  `json:"inputs" binding:"required"`
	Assets []AssetItemRequest `json:"assets" binding:"dive"`
}

// ToDomainInputs converts the request inputs to the domain shape, applying
// the tolerant monetary parse.
func (r GoalInputsRequest) ToDomainInputs() domain.GoalInputs {
	inputs := domain.GoalInputs{
		CurrentAge:           r.CurrentAge,
		PlannedRetirementAge: r.PlannedRetirementAge,
		GrowthRatePercent:    utils.ParseAmount(r.GrowthRatePercent),
		MonthlyIncomeNeeded:  utils.ParseAmount(r.MonthlyIncomeNeeded),
		HealthcareExpenses:   utils.ParseAmount(r.HealthcareExpenses),
		Goals: domain.GoalAmounts{
			College1:      utils.ParseAmount(r.Goals.College1),
			College2:      utils.ParseAmount(r.Goals.College2),
			Wedding1:      utils.ParseAmount(r.Goals.Wedding1),
			Wedding2:      utils.ParseAmount(r.Goals.Wedding2),
			Travel:        utils.ParseAmount(r.Goals.Travel),
			VacationHome:  utils.ParseAmount(r.Goals.VacationHome),
			Charity:       utils.ParseAmount(r.Goals.Charity),
			Other:         utils.ParseAmount(r.Goals.Other),
			HeadstartFund: utils.ParseAmount(r.Goals.HeadstartFund),
			Legacy:        utils.ParseAmount(r.Goals.Legacy),
			FamilySupport: utils.ParseAmount(r.Goals.FamilySupport),
		},
		YearsToRetirement:  domain.AutoYears(),
		RetirementDuration: domain.AutoYears(),
		LongTermCare:       domain.AutoAmount(),
	}
	if r.YearsToRetirement != nil && r.YearsToRetirement.Mode == domain.OverrideManual {
		inputs.YearsToRetirement = domain.ManualYears(r.YearsToRetirement.Years)
	}
	if r.RetirementDuration != nil && r.RetirementDuration.Mode == domain.OverrideManual {
		inputs.RetirementDuration = domain.ManualYears(r.RetirementDuration.Years)
	}
	if r.LongTermCare != nil && r.LongTermCare.Mode == domain.OverrideManual {
		inputs.LongTermCare = domain.ManualAmount(utils.ParseAmount(r.LongTermCare.Value))
	}
	return inputs
}

// ToDomainAssets converts submitted asset rows to domain line items.
func ToDomainAssets(rows []AssetItemRequest) []domain.AssetLineItem {
	items := make([]domain.AssetLineItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, domain.AssetLineItem{
			Key:              row.Key,
			OwnedByPrimary:   row.OwnedByPrimary,
			OwnedBySecondary: row.OwnedBySecondary,
			Notes:            row.Notes,
			PresentValue:     utils.ParseAmount(row.PresentValue),
			ProjectedValue:   utils.ParseAmount(row.ProjectedValue),
		})
	}
	return items
}

// PlanResponse is the combined plan, liability and analysis payload returned
// to the form after every load or save.
type PlanResponse struct {
	Plan               domain.Plan         `json:"plan"`
	Liabilities        []LiabilityResponse `json:"liabilities"`
	Analysis           domain.Analysis     `json:"analysis"`
	RecoveredFromCache bool                `json:"recoveredFromCache,omitempty"`
}

// ToPlanResponse converts a plan snapshot to the response DTO.
func ToPlanResponse(snap *domain.PlanSnapshot) PlanResponse {
	return PlanResponse{
		Plan:               snap.Plan,
		Liabilities:        ToLiabilityResponses(snap.Liabilities),
		Analysis:           snap.Analysis,
		RecoveredFromCache: snap.RecoveredFromCache,
	}
}
