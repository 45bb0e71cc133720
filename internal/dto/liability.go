package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/advisorkit/fna_app/internal/core/domain"
	"github.com/advisorkit/fna_app/internal/utils"
)

// CreateLiabilityRequest is the payload for adding a liability row to a plan.
// Monetary fields arrive as display text; blank or malformed optional fields
// are stored as absent rather than zero.
type CreateLiabilityRequest struct {
	Type                domain.LiabilityType `json:"type" binding:"required,liabilitytype"`
	Description         string               `json:"description"`
	Lender              string               `json:"lender"`
	Notes               string               `json:"notes"`
	Balance             string               `json:"balance"`
	InterestRatePercent string               `json:"interestRatePercent"`
	MinimumPayment      string               `json:"minimumPayment"`
	CurrentPayment      string               `json:"currentPayment"`
}

// UpdateLiabilityRequest rewrites a liability row. Fields left nil keep
// their current value.
type UpdateLiabilityRequest struct {
	Type                *domain.LiabilityType `json:"type" binding:"omitempty,liabilitytype"`
	Description         *string               `json:"description"`
	Lender              *string               `json:"lender"`
	Notes               *string               `json:"notes"`
	Balance             *string               `json:"balance"`
	InterestRatePercent *string               `json:"interestRatePercent"`
	MinimumPayment      *string               `json:"minimumPayment"`
	CurrentPayment      *string               `json:"currentPayment"`
}

// ToDomainLiability converts a create request to a domain record. IDs and
// audit fields are assigned by the service layer.
func (r CreateLiabilityRequest) ToDomainLiability(planID string) domain.LiabilityRecord {
	return domain.LiabilityRecord{
		PlanID:              planID,
		Type:                r.Type,
		Description:         r.Description,
		Lender:              r.Lender,
		Notes:               r.Notes,
		Balance:             utils.ParseAmount(r.Balance),
		InterestRatePercent: utils.ParseOptionalAmount(r.InterestRatePercent),
		MinimumPayment:      utils.ParseOptionalAmount(r.MinimumPayment),
		CurrentPayment:      utils.ParseOptionalAmount(r.CurrentPayment),
	}
}

// ApplyTo overlays the update request onto an existing record.
func (r UpdateLiabilityRequest) ApplyTo(row *domain.LiabilityRecord) {
	if r.Type != nil {
		row.Type = *r.Type
	}
	if r.Description != nil {
		row.Description = *r.Description
	}
	if r.Lender != nil {
		row.Lender = *r.Lender
	}
	if r.Notes != nil {
		row.Notes = *r.Notes
	}
	if r.Balance != nil {
		row.Balance = utils.ParseAmount(*r.Balance)
	}
	if r.InterestRatePercent != nil {
		row.InterestRatePercent = utils.ParseOptionalAmount(*r.InterestRatePercent)
	}
	if r.MinimumPayment != nil {
		row.MinimumPayment = utils.ParseOptionalAmount(*r.MinimumPayment)
	}
	if r.CurrentPayment != nil {
		row.CurrentPayment = utils.ParseOptionalAmount(*r.CurrentPayment)
	}
}

// LiabilityResponse is one liability row as returned to the form.
type LiabilityResponse struct {
	LiabilityID         string               `json:"liabilityID"`
	PlanID              string               `json:"planID"`
	Type                domain.LiabilityType `json:"type"`
	Description         string               `json:"description,omitempty"`
	Lender              string               `json:"lender,omitempty"`
	Notes               string               `json:"notes,omitempty"`
	Balance             decimal.Decimal      `json:"balance"`
	InterestRatePercent *decimal.Decimal     `json:"interestRatePercent,omitempty"`
	MinimumPayment      *decimal.Decimal     `json:"minimumPayment,omitempty"`
	CurrentPayment      *decimal.Decimal     `json:"currentPayment,omitempty"`
	CreatedAt           time.Time            `json:"createdAt"`
	LastUpdatedAt       time.Time            `json:"lastUpdatedAt"`
}

// ToLiabilityResponse converts a domain record to the response DTO.
func ToLiabilityResponse(row domain.LiabilityRecord) LiabilityResponse {
	return LiabilityResponse{
		LiabilityID:         row.LiabilityID,
		PlanID:              row.PlanID,
		Type:                row.Type,
		Description:         row.Description,
		Lender:              row.Lender,
		Notes:               row.Notes,
		Balance:             row.Balance,
		InterestRatePercent: row.InterestRatePercent,
		MinimumPayment:      row.MinimumPayment,
		CurrentPayment:      row.CurrentPayment,
		CreatedAt:           row.CreatedAt,
		LastUpdatedAt:       row.LastUpdatedAt,
	}
}

// ToLiabilityResponses converts a slice of records, always returning a
// non-nil slice so empty lists serialize as [].
func ToLiabilityResponses(rows []domain.LiabilityRecord) []LiabilityResponse {
	out := make([]LiabilityResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, ToLiabilityResponse(row))
	}
	return out
}
