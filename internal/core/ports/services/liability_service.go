package services

import (
	"context"

	"github.com/advisorkit/fna_app/internal/core/domain"
	"github.com/advisorkit/fna_app/internal/dto"
)

// LiabilitySvcFacade exposes liability row operations. Every operation
// verifies the parent plan exists before touching the row store.
type LiabilitySvcFacade interface {
	// AddLiability appends a row to a plan's liability table.
	AddLiability(ctx context.Context, planID string, req dto.CreateLiabilityRequest, createdBy string) (*domain.LiabilityRecord, error)

	// UpdateLiability rewrites an existing row.
	UpdateLiability(ctx context.Context, planID string, liabilityID string, req dto.UpdateLiabilityRequest, updatedBy string) (*domain.LiabilityRecord, error)

	// RemoveLiability deletes a row from a plan's liability table.
	RemoveLiability(ctx context.Context, planID string, liabilityID string) error
}
