package services

import (
	"context"

	"github.com/advisorkit/fna_app/internal/core/domain"
	"github.com/advisorkit/fna_app/internal/dto"
)

// PlanSvcFacade exposes plan load and save operations. Both return a full
// snapshot with derived analysis so the form never computes on its own.
type PlanSvcFacade interface {
	// GetPlan loads the saved plan for a client, falling back to a fresh
	// default plan when none exists, or to the local backup when the
	// primary store is unreachable.
	GetPlan(ctx context.Context, clientID string) (*domain.PlanSnapshot, error)

	// SavePlan persists the submitted form, applying override reset rules,
	// and returns the recomputed snapshot.
	SavePlan(ctx context.Context, clientID string, req dto.SavePlanRequest, updatedBy string) (*domain.PlanSnapshot, error)
}
