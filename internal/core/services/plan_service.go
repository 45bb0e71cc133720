package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/advisorkit/fna_app/internal/apperrors"
	"github.com/advisorkit/fna_app/internal/core/domain"
	"github.com/advisorkit/fna_app/internal/core/planning"
	portsrepo "github.com/advisorkit/fna_app/internal/core/ports/repositories"
	portssvc "github.com/advisorkit/fna_app/internal/core/ports/services"
	"github.com/advisorkit/fna_app/internal/dto"
)

// planService implements portssvc.PlanSvcFacade.
type planService struct {
	BaseService
	planRepo      portsrepo.PlanRepository
	clientRepo    portsrepo.ClientRepository
	liabilityRepo portsrepo.LiabilityRepository
	cache         portsrepo.PlanCache
	now           func() time.Time
}

// PlanServiceOption configures the plan service.
type PlanServiceOption func(*planService)

// WithClock overrides the time source, primarily for tests.
func WithClock(now func() time.Time) PlanServiceOption {
	return func(s *planService) {
		s.now = now
	}
}

// NewPlanService creates a new plan service.
func NewPlanService(
	planRepo portsrepo.PlanRepository,
	clientRepo portsrepo.ClientRepository,
	liabilityRepo portsrepo.LiabilityRepository,
	cache portsrepo.PlanCache,
	opts ...PlanServiceOption,
) portssvc.PlanSvcFacade {
	s := &planService{
		planRepo:      planRepo,
		clientRepo:    clientRepo,
		liabilityRepo: liabilityRepo,
		cache:         cache,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *planService) GetPlan(ctx context.Context, clientID string) (*domain.PlanSnapshot, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to load client %s: %w", clientID, err)
	}

	var liabilities []domain.LiabilityRecord
	recovered := false

	plan, err := s.planRepo.FindPlanByClientID(ctx, clientID)
	switch {
	case err == nil:
		liabilities, err = s.liabilityRepo.ListLiabilitiesByPlanID(ctx, plan.PlanID)
		if err != nil {
			s.LogError(ctx, err, "failed to list liabilities", "plan_id", plan.PlanID)
			return nil, fmt.Errorf("failed to list liabilities for plan %s: %w", plan.PlanID, err)
		}
	case errors.Is(err, apperrors.ErrNotFound):
		// First visit: hand the form a fresh default plan without persisting it.
		fresh := domain.NewDefaultPlan(clientID)
		plan = &fresh
	default:
		// Primary store unreachable: fall back to the local backup if one exists.
		s.LogWarn(ctx, "plan load failed, trying local backup", "client_id", clientID, "error", err.Error())
		backup, cacheErr := s.cache.ReadBackup(ctx, clientID)
		if cacheErr != nil || backup == nil {
			return nil, fmt.Errorf("failed to load plan for client %s: %w", clientID, err)
		}
		fresh := domain.NewDefaultPlan(clientID)
		fresh.Assets = backup.Assets
		plan = &fresh
		recovered = true
		s.LogInfo(ctx, "plan recovered from local backup", "client_id", clientID, "saved_at", backup.SavedAt)
	}

	analysis := planning.Recompute(*plan, liabilities, client.DateOfBirth, s.now())

	return &domain.PlanSnapshot{
		Plan:               *plan,
		Liabilities:        liabilities,
		Analysis:           analysis,
		RecoveredFromCache: recovered,
	}, nil
}

func (s *planService) SavePlan(ctx context.Context, clientID string, req dto.SavePlanRequest, updatedBy string) (*domain.PlanSnapshot, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to load client %s: %w", clientID, err)
	}

	prev, err := s.planRepo.FindPlanByClientID(ctx, clientID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to load existing plan for client %s: %w", clientID, err)
		}
		prev = nil
	}

	now := s.now()
	inputs := req.Inputs.ToDomainInputs()
	if prev != nil {
		resetStaleOverrides(prev.Inputs, &inputs)
	}

	derived := planning.DeriveGoals(inputs, client.DateOfBirth, now)
	assets := s.resolveAssets(req.Assets, prev, inputs.GrowthRatePercent, derived.YearsToRetirement)

	plan := domain.Plan{
		PlanID:   uuid.NewString(),
		ClientID: clientID,
		Inputs:   inputs,
		Assets:   assets,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     updatedBy,
			LastUpdatedAt: now,
			LastUpdatedBy: updatedBy,
		},
	}
	if prev != nil {
		plan.PlanID = prev.PlanID
		plan.CreatedAt = prev.CreatedAt
		plan.CreatedBy = prev.CreatedBy
	}

	if err := s.planRepo.UpsertPlan(ctx, plan); err != nil {
		s.LogError(ctx, err, "failed to save plan", "client_id", clientID)
		return nil, fmt.Errorf("failed to save plan for client %s: %w", clientID, err)
	}

	liabilities, err := s.liabilityRepo.ListLiabilitiesByPlanID(ctx, plan.PlanID)
	if err != nil {
		s.LogError(ctx, err, "failed to list liabilities after save", "plan_id", plan.PlanID)
		return nil, fmt.Errorf("failed to list liabilities for plan %s: %w", plan.PlanID, err)
	}

	analysis := planning.Recompute(plan, liabilities, client.DateOfBirth, now)

	// Backup writes are best effort; a failure never fails the save.
	backup := domain.CachedPlanBackup{
		ClientID: clientID,
		Assets:   plan.Assets,
		Totals:   analysis.Totals,
		SavedAt:  now,
	}
	if cacheErr := s.cache.WriteBackup(ctx, backup); cacheErr != nil {
		s.LogWarn(ctx, "failed to write local backup", "client_id", clientID, "error", cacheErr.Error())
	}

	s.LogInfo(ctx, "plan saved", "client_id", clientID, "plan_id", plan.PlanID)

	return &domain.PlanSnapshot{
		Plan:        plan,
		Liabilities: liabilities,
		Analysis:    analysis,
	}, nil
}

// resetStaleOverrides drops a manual override back to auto mode when the base
// figure it was derived from has changed since the last save. Overrides whose
// base figures are untouched stay manual across any number of recomputations.
func resetStaleOverrides(prev domain.GoalInputs, next *domain.GoalInputs) {
	ageChanged := next.CurrentAge != prev.CurrentAge
	retirementAgeChanged := next.PlannedRetirementAge != prev.PlannedRetirementAge
	healthcareChanged := !next.HealthcareExpenses.Equal(prev.HealthcareExpenses)

	if next.YearsToRetirement.Mode == domain.OverrideManual && (ageChanged || retirementAgeChanged) {
		next.YearsToRetirement = domain.AutoYears()
	}
	if next.RetirementDuration.Mode == domain.OverrideManual && retirementAgeChanged {
		next.RetirementDuration = domain.AutoYears()
	}
	if next.LongTermCare.Mode == domain.OverrideManual && (healthcareChanged || retirementAgeChanged) {
		next.LongTermCare = domain.AutoAmount()
	}
}

// resolveAssets overlays the submitted rows onto the full category table and
// settles each projected value per the category's projection mode. Unknown
// keys are dropped; missing categories come back as zeroed rows so the stored
// table always covers the whole catalog.
func (s *planService) resolveAssets(rows []dto.AssetItemRequest, prev *domain.Plan, ratePercent decimal.Decimal, horizonYears int) []domain.AssetLineItem {
	submitted := make(map[domain.AssetKey]domain.AssetLineItem, len(rows))
	for _, item := range dto.ToDomainAssets(rows) {
		if _, ok := domain.CategoryFor(item.Key); !ok {
			continue
		}
		submitted[item.Key] = item
	}

	assets := domain.DefaultAssetLineItems()
	for i := range assets {
		item, ok := submitted[assets[i].Key]
		if !ok {
			continue
		}
		cat, _ := domain.CategoryFor(item.Key)
		switch cat.Mode {
		case domain.ProjectionAuto:
			item.ProjectedValue = planning.DefaultProjected(item.PresentValue, ratePercent, horizonYears)
		case domain.ProjectionEditable:
			// An edited present value re-derives the projection; an untouched
			// one keeps whatever the advisor last entered.
			var prevItem *domain.AssetLineItem
			if prev != nil {
				prevItem = prev.AssetByKey(item.Key)
			}
			if prevItem == nil || !prevItem.PresentValue.Equal(item.PresentValue) {
				item.ProjectedValue = planning.DefaultProjected(item.PresentValue, ratePercent, horizonYears)
			}
		default:
			item.ProjectedValue = decimal.Zero
		}
		assets[i] = item
	}
	return assets
}
