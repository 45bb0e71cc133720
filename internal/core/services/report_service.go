package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/advisorkit/fna_app/internal/core/domain"
	portsrepo "github.com/advisorkit/fna_app/internal/core/ports/repositories"
	portssvc "github.com/advisorkit/fna_app/internal/core/ports/services"
	"github.com/advisorkit/fna_app/internal/utils"
)

const reportTitle = "Financial Needs Analysis"

var disclaimerParagraphs = []string{
	"This analysis is a planning illustration prepared from information you provided. It is not investment, tax, or legal advice, and it does not constitute an offer or recommendation to buy or sell any security or insurance product.",
	"Projected values assume a constant annual growth rate and a constant 3% inflation rate. Actual results will vary with market conditions and are not guaranteed. Review this analysis with your advisor before acting on it.",
}

// reportService implements portssvc.ReportSvcFacade by composing the report
// document from a fresh plan snapshot.
type reportService struct {
	BaseService
	planSvc    portssvc.PlanSvcFacade
	clientRepo portsrepo.ClientRepository
	now        func() time.Time
}

// NewReportService creates a new report service.
func NewReportService(planSvc portssvc.PlanSvcFacade, clientRepo portsrepo.ClientRepository) portssvc.ReportSvcFacade {
	return &reportService{planSvc: planSvc, clientRepo: clientRepo, now: time.Now}
}

func (s *reportService) ComposeReport(ctx context.Context, clientID string) (*domain.ReportDocument, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to load client %s: %w", clientID, err)
	}

	snap, err := s.planSvc.GetPlan(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to load plan for report: %w", err)
	}

	now := s.now()
	doc := &domain.ReportDocument{
		GeneratedAt: now,
		Client:      *client,
		Cover: domain.CoverPage{
			Title:        reportTitle,
			ClientName:   client.FullName(),
			PreparedDate: now,
		},
		Disclaimer:      domain.DisclaimerPage{Paragraphs: disclaimerParagraphs},
		Facts:           composeFacts(*client, snap),
		Summary:         composeSummary(snap),
		Assets:          composeAssets(snap),
		Liabilities:     composeLiabilities(snap),
		Goals:           composeGoals(snap),
		Recommendations: domain.RecommendationsPage{Items: snap.Analysis.Recommendations},
	}

	s.LogInfo(ctx, "report composed", "client_id", clientID)
	return doc, nil
}

func composeFacts(client domain.ClientProfile, snap *domain.PlanSnapshot) domain.FactsPage {
	inputs := snap.Plan.Inputs
	derived := snap.Analysis.Derived

	rows := []domain.FactRow{
		{Label: "Client", Value: client.FullName()},
		{Label: "Current Age", Value: fmt.Sprintf("%d", derived.CurrentAge)},
		{Label: "Planned Retirement Age", Value: fmt.Sprintf("%d", inputs.PlannedRetirementAge)},
		{Label: "Years to Retirement", Value: fmt.Sprintf("%d", derived.YearsToRetirement)},
		{Label: "Retirement Duration", Value: fmt.Sprintf("%d years", derived.RetirementDuration)},
		{Label: "Assumed Growth Rate", Value: inputs.GrowthRatePercent.StringFixed(2) + "%"},
		{Label: "Monthly Income Needed", Value: utils.FormatCurrency(inputs.MonthlyIncomeNeeded)},
	}
	if client.SpouseName != "" {
		rows = append(rows, domain.FactRow{Label: "Spouse", Value: client.SpouseName})
	}
	if client.City != "" || client.State != "" {
		location := client.City
		if client.City != "" && client.State != "" {
			location += ", "
		}
		location += client.State
		rows = append(rows, domain.FactRow{Label: "Location", Value: location})
	}
	return domain.FactsPage{Rows: rows}
}

func composeSummary(snap *domain.PlanSnapshot) domain.SummaryPage {
	totals := snap.Analysis.Totals
	derived := snap.Analysis.Derived
	return domain.SummaryPage{Cells: []domain.KPICell{
		{Label: "Total Assets", Value: totals.TotalPresentValue},
		{Label: "Annual Income Needed", Value: derived.AnnualIncome},
		{Label: "Planning Requirement", Value: derived.TotalRequirement},
		{Label: "Total Liabilities", Value: totals.TotalLiabilities},
		{Label: "Net Worth", Value: totals.NetWorth},
		{Label: "Funding Gap", Value: totals.FundingGap},
	}}
}

func composeAssets(snap *domain.PlanSnapshot) domain.AssetsPage {
	rows := make([]domain.AssetReportRow, 0, len(domain.AssetCatalog))
	for _, cat := range domain.AssetCatalog {
		row := domain.AssetReportRow{
			Label:         cat.Label,
			NotApplicable: cat.Mode == domain.ProjectionNotApplicable,
		}
		if item := snap.Plan.AssetByKey(cat.Key); item != nil {
			row.Notes = item.Notes
			if !row.NotApplicable {
				row.PresentValue = item.PresentValue
				row.ProjectedValue = item.ProjectedValue
			}
		}
		rows = append(rows, row)
	}
	return domain.AssetsPage{
		Rows:           rows,
		TotalPresent:   snap.Analysis.Totals.TotalPresentValue,
		TotalProjected: snap.Analysis.Totals.TotalProjectedValue,
	}
}

func composeLiabilities(snap *domain.PlanSnapshot) domain.LiabilitiesPage {
	rows := make([]domain.LiabilityReportRow, 0, len(snap.Liabilities))
	for _, l := range snap.Liabilities {
		rows = append(rows, domain.LiabilityReportRow{
			Type:        l.Type,
			Description: l.Description,
			Lender:      l.Lender,
			Balance:     l.Balance,
			RatePercent: l.InterestRatePercent,
		})
	}

	gap := snap.Analysis.Totals.FundingGap
	shortfall := gap.GreaterThan(decimal.Zero)
	var callout string
	if shortfall {
		callout = fmt.Sprintf("Projected assets fall %s short of the planning requirement.", utils.FormatCurrency(gap))
	} else {
		callout = fmt.Sprintf("Projected assets cover the planning requirement with %s to spare.", utils.FormatCurrency(gap.Neg()))
	}

	return domain.LiabilitiesPage{
		Rows:         rows,
		Total:        snap.Analysis.Totals.TotalLiabilities,
		GapCallout:   callout,
		GapShortfall: shortfall,
	}
}

func composeGoals(snap *domain.PlanSnapshot) domain.GoalsPage {
	goals := snap.Plan.Inputs.Goals
	derived := snap.Analysis.Derived

	rows := []domain.GoalReportRow{
		{Label: "College (Child 1)", Amount: goals.College1},
		{Label: "College (Child 2)", Amount: goals.College2},
		{Label: "Wedding (Child 1)", Amount: goals.Wedding1},
		{Label: "Wedding (Child 2)", Amount: goals.Wedding2},
		{Label: "Travel", Amount: goals.Travel},
		{Label: "Vacation Home", Amount: goals.VacationHome},
		{Label: "Charitable Giving", Amount: goals.Charity},
		{Label: "Other Goals", Amount: goals.Other},
		{Label: "Headstart Fund", Amount: goals.HeadstartFund},
		{Label: "Legacy", Amount: goals.Legacy},
		{Label: "Family Support", Amount: goals.FamilySupport},
		{Label: "Lifetime Retirement Income", Amount: derived.LifetimeRetirementIncome},
		{Label: "Healthcare Expenses", Amount: snap.Plan.Inputs.HealthcareExpenses},
		{Label: "Long-Term Care", Amount: derived.LongTermCare},
	}

	return domain.GoalsPage{Rows: rows, TotalRequirement: derived.TotalRequirement}
}
