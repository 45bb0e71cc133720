package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportDocument is the composed, paginated analysis document handed to the
// export renderers. It carries every figure the document data contract
// requires; visual layout belongs to the renderers.
type ReportDocument struct {
	GeneratedAt     time.Time           `json:"generatedAt"`
	Client          ClientProfile       `json:"client"`
	Cover           CoverPage           `json:"cover"`
	Disclaimer      DisclaimerPage      `json:"disclaimer"`
	Facts           FactsPage           `json:"facts"`
	Summary         SummaryPage         `json:"summary"`
	Assets          AssetsPage          `json:"assets"`
	Liabilities     LiabilitiesPage     `json:"liabilities"`
	Goals           GoalsPage           `json:"goals"`
	Recommendations RecommendationsPage `json:"recommendations"`
}

// CoverPage opens the document.
type CoverPage struct {
	Title        string    `json:"title"`
	ClientName   string    `json:"clientName"`
	PreparedDate time.Time `json:"preparedDate"`
}

// DisclaimerPage carries the advisory disclaimer text.
type DisclaimerPage struct {
	Paragraphs []string `json:"paragraphs"`
}

// FactsPage confirms the demographic and base-input facts the analysis used.
type FactsPage struct {
	Rows []FactRow `json:"rows"`
}

// FactRow is one label/value pair on the facts confirmation page.
type FactRow struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// SummaryPage is the 6-cell KPI strip: total assets, annual income,
// planning requirement, total liabilities, net worth, gap.
type SummaryPage struct {
	Cells []KPICell `json:"cells"`
}

// KPICell is one cell of the financial summary strip.
type KPICell struct {
	Label string          `json:"label"`
	Value decimal.Decimal `json:"value"`
}

// AssetsPage itemizes every asset line item and closes with a totals row.
type AssetsPage struct {
	Rows           []AssetReportRow `json:"rows"`
	TotalPresent   decimal.Decimal  `json:"totalPresent"`
	TotalProjected decimal.Decimal  `json:"totalProjected"`
}

// AssetReportRow is one printed asset line.
type AssetReportRow struct {
	Label          string          `json:"label"`
	Notes          string          `json:"notes"`
	PresentValue   decimal.Decimal `json:"presentValue"`
	ProjectedValue decimal.Decimal `json:"projectedValue"`
	NotApplicable  bool            `json:"notApplicable"` // renders N/A instead of $0.00
}

// LiabilitiesPage itemizes liability rows with a totals row and the
// gap-analysis callout.
type LiabilitiesPage struct {
	Rows         []LiabilityReportRow `json:"rows"`
	Total        decimal.Decimal      `json:"total"`
	GapCallout   string               `json:"gapCallout"`
	GapShortfall bool                 `json:"gapShortfall"`
}

// LiabilityReportRow is one printed liability line.
type LiabilityReportRow struct {
	Type        LiabilityType    `json:"type"`
	Description string           `json:"description"`
	Lender      string           `json:"lender"`
	Balance     decimal.Decimal  `json:"balance"`
	RatePercent *decimal.Decimal `json:"ratePercent,omitempty"`
}

// GoalsPage breaks the total requirement down per category, with the total
// requirement row highlighted by renderers.
type GoalsPage struct {
	Rows             []GoalReportRow `json:"rows"`
	TotalRequirement decimal.Decimal `json:"totalRequirement"`
}

// GoalReportRow is one printed goal category line.
type GoalReportRow struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// RecommendationsPage renders the ordered rule engine output.
type RecommendationsPage struct {
	Items []Recommendation `json:"items"`
}
