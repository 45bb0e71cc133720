package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/advisorkit/fna_app/internal/apperrors"
	"github.com/advisorkit/fna_app/internal/core/domain"
	portsrepo "github.com/advisorkit/fna_app/internal/core/ports/repositories"
	portssvc "github.com/advisorkit/fna_app/internal/core/ports/services"
	"github.com/advisorkit/fna_app/internal/dto"
)

// liabilityService implements portssvc.LiabilitySvcFacade.
type liabilityService struct {
	BaseService
	liabilityRepo portsrepo.LiabilityRepository
	planRepo      portsrepo.PlanReader
}

// NewLiabilityService creates a new liability service.
func NewLiabilityService(liabilityRepo portsrepo.LiabilityRepository, planRepo portsrepo.PlanReader) portssvc.LiabilitySvcFacade {
	return &liabilityService{liabilityRepo: liabilityRepo, planRepo: planRepo}
}

// requirePlan verifies the parent plan exists before any row write. A missing
// parent is a validation failure on the request, not a bare not-found.
func (s *liabilityService) requirePlan(ctx context.Context, planID string) error {
	_, err := s.planRepo.FindPlanByID(ctx, planID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: plan %s does not exist", apperrors.ErrValidation, planID)
		}
		return fmt.Errorf("failed to verify plan %s: %w", planID, err)
	}
	return nil
}

func (s *liabilityService) AddLiability(ctx context.Context, planID string, req dto.CreateLiabilityRequest, createdBy string) (*domain.LiabilityRecord, error) {
	if !domain.ValidLiabilityType(req.Type) {
		return nil, fmt.Errorf("%w: liability type %q is not recognized", apperrors.ErrValidation, req.Type)
	}
	if err := s.requirePlan(ctx, planID); err != nil {
		return nil, err
	}

	now := time.Now()
	row := req.ToDomainLiability(planID)
	row.LiabilityID = uuid.NewString()
	row.AuditFields = domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     createdBy,
		LastUpdatedAt: now,
		LastUpdatedBy: createdBy,
	}

	if err := s.liabilityRepo.SaveLiability(ctx, row); err != nil {
		s.LogError(ctx, err, "failed to save liability", "plan_id", planID)
		return nil, fmt.Errorf("failed to save liability: %w", err)
	}

	s.LogInfo(ctx, "liability added", "plan_id", planID, "liability_id", row.LiabilityID, "type", string(row.Type))
	return &row, nil
}

func (s *liabilityService) UpdateLiability(ctx context.Context, planID string, liabilityID string, req dto.UpdateLiabilityRequest, updatedBy string) (*domain.LiabilityRecord, error) {
	if req.Type != nil && !domain.ValidLiabilityType(*req.Type) {
		return nil, fmt.Errorf("%w: liability type %q is not recognized", apperrors.ErrValidation, *req.Type)
	}

	row, err := s.liabilityRepo.FindLiabilityByID(ctx, liabilityID)
	if err != nil {
		return nil, fmt.Errorf("failed to find liability %s: %w", liabilityID, err)
	}
	if row.PlanID != planID {
		return nil, fmt.Errorf("%w: liability %s does not belong to plan %s", apperrors.ErrNotFound, liabilityID, planID)
	}

	req.ApplyTo(row)
	row.LastUpdatedAt = time.Now()
	row.LastUpdatedBy = updatedBy

	if err := s.liabilityRepo.UpdateLiability(ctx, *row); err != nil {
		s.LogError(ctx, err, "failed to update liability", "liability_id", liabilityID)
		return nil, fmt.Errorf("failed to update liability %s: %w", liabilityID, err)
	}

	return row, nil
}

func (s *liabilityService) RemoveLiability(ctx context.Context, planID string, liabilityID string) error {
	row, err := s.liabilityRepo.FindLiabilityByID(ctx, liabilityID)
	if err != nil {
		return fmt.Errorf("failed to find liability %s: %w", liabilityID, err)
	}
	if row.PlanID != planID {
		return fmt.Errorf("%w: liability %s does not belong to plan %s", apperrors.ErrNotFound, liabilityID, planID)
	}

	if err := s.liabilityRepo.DeleteLiability(ctx, liabilityID); err != nil {
		s.LogError(ctx, err, "failed to delete liability", "liability_id", liabilityID)
		return fmt.Errorf("failed to delete liability %s: %w", liabilityID, err)
	}

	s.LogInfo(ctx, "liability removed", "plan_id", planID, "liability_id", liabilityID)
	return nil
}
