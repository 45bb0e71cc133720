package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/advisorkit/fna_app/internal/apperrors"
	"github.com/advisorkit/fna_app/internal/core/domain"
	"github.com/advisorkit/fna_app/internal/core/services"
	"github.com/advisorkit/fna_app/internal/dto"
)

// --- Mock PlanSvcFacade ---
type MockPlanService struct {
	mock.Mock
	GetPlanFn  func(ctx context.Context, clientID string) (*domain.PlanSnapshot, error)
	SavePlanFn func(ctx context.Context, clientID string, req dto.SavePlanRequest, updatedBy string) (*domain.PlanSnapshot, error)
}

func (m *MockPlanService) GetPlan(ctx context.Context, clientID string) (*domain.PlanSnapshot, error) {
	if m.GetPlanFn != nil {
		return m.GetPlanFn(ctx, clientID)
	}
	args := m.Called(ctx, clientID)
	var snap *domain.PlanSnapshot
	if args.Get(0) != nil {
		snap = args.Get(0).(*domain.PlanSnapshot)
	}
	return snap, args.Error(1)
}

func (m *MockPlanService) SavePlan(ctx context.Context, clientID string, req dto.SavePlanRequest, updatedBy string) (*domain.PlanSnapshot, error) {
	if m.SavePlanFn != nil {
		return m.SavePlanFn(ctx, clientID, req, updatedBy)
	}
	args := m.Called(ctx, clientID, req, updatedBy)
	var snap *domain.PlanSnapshot
	if args.Get(0) != nil {
		snap = args.Get(0).(*domain.PlanSnapshot)
	}
	return snap, args.Error(1)
}

func reportSnapshot(clientID string) *domain.PlanSnapshot {
	plan := domain.NewDefaultPlan(clientID)
	plan.PlanID = "plan-1"
	plan.Inputs.MonthlyIncomeNeeded = decimal.NewFromInt(1000)
	plan.Inputs.Goals.Travel = decimal.NewFromInt(50000)
	item := plan.AssetByKey(domain.AssetSavings)
	item.PresentValue = decimal.NewFromInt(20000)
	item.Notes = "joint account"

	return &domain.PlanSnapshot{
		Plan: plan,
		Liabilities: []domain.LiabilityRecord{
			{LiabilityID: "l1", PlanID: "plan-1", Type: domain.LiabilityMortgage, Lender: "First Bank", Balance: decimal.NewFromInt(200000)},
		},
		Analysis: domain.Analysis{
			Derived: domain.DerivedGoalFigures{
				CurrentAge:               45,
				YearsToRetirement:        20,
				RetirementDuration:       20,
				AnnualIncome:             decimal.NewFromInt(21673),
				LifetimeRetirementIncome: decimal.NewFromInt(433460),
				LongTermCare:             decimal.NewFromInt(378000),
				TotalRequirement:         decimal.NewFromInt(1176460),
			},
			Totals: domain.TotalsSnapshot{
				TotalPresentValue:   decimal.NewFromInt(20000),
				TotalProjectedValue: decimal.NewFromInt(35816),
				TotalLiabilities:    decimal.NewFromInt(200000),
				NetWorth:            decimal.NewFromInt(-180000),
				FundingGap:          decimal.NewFromInt(940644),
			},
			Recommendations: []domain.Recommendation{
				{Severity: domain.SeverityWarn, Message: "shortfall"},
			},
		},
	}
}

func TestComposeReport(t *testing.T) {
	ctx := context.Background()

	t.Run("fails when the client is missing", func(t *testing.T) {
		clientRepo := new(MockClientRepository)
		planSvc := new(MockPlanService)
		clientRepo.FindClientByIDFn = func(ctx context.Context, clientID string) (*domain.ClientProfile, error) {
			return nil, apperrors.ErrNotFound
		}

		svc := services.NewReportService(planSvc, clientRepo)
		doc, err := svc.ComposeReport(ctx, "nope")
		assert.Nil(t, doc)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("composes every page from the snapshot", func(t *testing.T) {
		clientRepo := new(MockClientRepository)
		planSvc := new(MockPlanService)
		clientRepo.FindClientByIDFn = func(ctx context.Context, clientID string) (*domain.ClientProfile, error) {
			return &domain.ClientProfile{
				ClientID:   clientID,
				FirstName:  "Pat",
				LastName:   "Morgan",
				SpouseName: "Sam Morgan",
				City:       "Austin",
				State:      "TX",
			}, nil
		}
		planSvc.GetPlanFn = func(ctx context.Context, clientID string) (*domain.PlanSnapshot, error) {
			return reportSnapshot(clientID), nil
		}

		svc := services.NewReportService(planSvc, clientRepo)
		doc, err := svc.ComposeReport(ctx, "client-1")

		assert.NoError(t, err)
		assert.Equal(t, "Financial Needs Analysis", doc.Cover.Title)
		assert.Equal(t, "Pat Morgan", doc.Cover.ClientName)
		assert.Len(t, doc.Disclaimer.Paragraphs, 2)

		// Facts include the optional spouse and location rows.
		labels := make([]string, 0, len(doc.Facts.Rows))
		for _, row := range doc.Facts.Rows {
			labels = append(labels, row.Label)
		}
		assert.Contains(t, labels, "Spouse")
		assert.Contains(t, labels, "Location")

		assert.Len(t, doc.Summary.Cells, 6)
		assert.Equal(t, "Funding Gap", doc.Summary.Cells[5].Label)
		assert.True(t, doc.Summary.Cells[5].Value.Equal(decimal.NewFromInt(940644)))

		// Assets page covers the full catalog in order, N/A rows flagged.
		assert.Len(t, doc.Assets.Rows, len(domain.AssetCatalog))
		assert.Equal(t, "Checking", doc.Assets.Rows[0].Label)
		var termLife *domain.AssetReportRow
		for i := range doc.Assets.Rows {
			if doc.Assets.Rows[i].Label == "Term Life Insurance" {
				termLife = &doc.Assets.Rows[i]
			}
		}
		if assert.NotNil(t, termLife) {
			assert.True(t, termLife.NotApplicable)
		}

		assert.Len(t, doc.Liabilities.Rows, 1)
		assert.True(t, doc.Liabilities.GapShortfall)
		assert.Contains(t, doc.Liabilities.GapCallout, "$940,644.00")

		// Goals page: 11 categories plus the three derived rows.
		assert.Len(t, doc.Goals.Rows, 14)
		assert.True(t, doc.Goals.TotalRequirement.Equal(decimal.NewFromInt(1176460)))

		assert.Len(t, doc.Recommendations.Items, 1)
	})

	t.Run("surplus flips the gap callout", func(t *testing.T) {
		clientRepo := new(MockClientRepository)
		planSvc := new(MockPlanService)
		clientRepo.FindClientByIDFn = func(ctx context.Context, clientID string) (*domain.ClientProfile, error) {
			return testClient(clientID), nil
		}
		planSvc.GetPlanFn = func(ctx context.Context, clientID string) (*domain.PlanSnapshot, error) {
			snap := reportSnapshot(clientID)
			snap.Analysis.Totals.FundingGap = decimal.NewFromInt(-25000)
			return snap, nil
		}

		svc := services.NewReportService(planSvc, clientRepo)
		doc, err := svc.ComposeReport(ctx, "client-1")

		assert.NoError(t, err)
		assert.False(t, doc.Liabilities.GapShortfall)
		assert.Contains(t, doc.Liabilities.GapCallout, "$25,000.00 to spare")
	})
}
