package domain

import "github.com/shopspring/decimal"

// ProjectionMode fixes, per asset category, how a line item's projected value
// is produced. The mode is a property of the schema, not user-selectable.
type ProjectionMode string

const (
	// ProjectionNotApplicable marks items with no future-value meaning
	// (informational checkboxes, employer benefit flags).
	ProjectionNotApplicable ProjectionMode = "NOT_APPLICABLE"
	// ProjectionAuto marks items whose projected value is always computed
	// from present value and is read-only.
	ProjectionAuto ProjectionMode = "AUTO"
	// ProjectionEditable marks items whose projected value defaults to the
	// computed figure whenever present value changes, but may be typed over
	// by the advisor until the next present-value edit.
	ProjectionEditable ProjectionMode = "EDITABLE"
)

// AssetKey identifies one of the fixed asset categories.
type AssetKey string

const (
	AssetChecking          AssetKey = "checking"
	AssetSavings           AssetKey = "savings"
	AssetMoneyMarket       AssetKey = "money_market"
	AssetCDs               AssetKey = "cds"
	AssetBrokerage         AssetKey = "brokerage"
	AssetMutualFunds       AssetKey = "mutual_funds"
	AssetStocks            AssetKey = "stocks"
	AssetBonds             AssetKey = "bonds"
	Asset401k              AssetKey = "retirement_401k"
	Asset403b              AssetKey = "retirement_403b"
	AssetTraditionalIRA    AssetKey = "traditional_ira"
	AssetRothIRA           AssetKey = "roth_ira"
	AssetSEPIRA            AssetKey = "sep_ira"
	AssetPension           AssetKey = "pension"
	AssetAnnuities         AssetKey = "annuities"
	AssetHSA               AssetKey = "hsa"
	AssetCollege529        AssetKey = "college_529"
	AssetTermLife          AssetKey = "term_life"
	AssetWholeLife         AssetKey = "whole_life"
	AssetUniversalLife     AssetKey = "universal_life"
	AssetPrimaryResidence  AssetKey = "primary_residence"
	AssetInvestmentRealty  AssetKey = "investment_real_estate"
	AssetBusinessInterest  AssetKey = "business_interest"
	AssetOtherAssets       AssetKey = "other_assets"
	AssetEmployerBenefits  AssetKey = "employer_benefits"
	AssetWillInPlace       AssetKey = "will_in_place"
	AssetTrustInPlace      AssetKey = "trust_in_place"
)

// AssetCategory is one entry of the fixed asset catalog. The classification
// flags drive the recommendation rules and the liquid-cash reserve check.
type AssetCategory struct {
	Key              AssetKey
	Label            string
	Mode             ProjectionMode
	CountsInNetWorth bool // informational items contribute nothing to totals
	Liquid           bool // counts toward the emergency cash reserve
	CoreRetirement   bool // one of the three core retirement account categories
	LifeInsurance    bool // one of the three insurance present-value categories
}

// AssetCatalog is the ordered, fixed set of asset line item categories. Order
// matters: it is the row order of the assets table and the report.
var AssetCatalog = []AssetCategory{
	{Key: AssetChecking, Label: "Checking", Mode: ProjectionAuto, CountsInNetWorth: true, Liquid: true},
	{Key: AssetSavings, Label: "Savings", Mode: ProjectionAuto, CountsInNetWorth: true, Liquid: true},
	{Key: AssetMoneyMarket, Label: "Money Market", Mode: ProjectionAuto, CountsInNetWorth: true, Liquid: true},
	{Key: AssetCDs, Label: "Certificates of Deposit", Mode: ProjectionAuto, CountsInNetWorth: true},
	{Key: AssetBrokerage, Label: "Brokerage Account", Mode: ProjectionEditable, CountsInNetWorth: true},
	{Key: AssetMutualFunds, Label: "Mutual Funds", Mode: ProjectionEditable, CountsInNetWorth: true},
	{Key: AssetStocks, Label: "Individual Stocks", Mode: ProjectionEditable, CountsInNetWorth: true},
	{Key: AssetBonds, Label: "Bonds", Mode: ProjectionEditable, CountsInNetWorth: true},
	{Key: Asset401k, Label: "401(k)", Mode: ProjectionEditable, CountsInNetWorth: true, CoreRetirement: true},
	{Key: Asset403b, Label: "403(b)", Mode: ProjectionEditable, CountsInNetWorth: true},
	{Key: AssetTraditionalIRA, Label: "Traditional IRA", Mode: ProjectionEditable, CountsInNetWorth: true, CoreRetirement: true},
	{Key: AssetRothIRA, Label: "Roth IRA", Mode: ProjectionEditable, CountsInNetWorth: true, CoreRetirement: true},
	{Key: AssetSEPIRA, Label: "SEP IRA", Mode: ProjectionEditable, CountsInNetWorth: true},
	{Key: AssetPension, Label: "Pension", Mode: ProjectionEditable, CountsInNetWorth: true},
	{Key: AssetAnnuities, Label: "Annuities", Mode: ProjectionEditable, CountsInNetWorth: true},
	{Key: AssetHSA, Label: "Health Savings Account", Mode: ProjectionAuto, CountsInNetWorth: true},
	{Key: AssetCollege529, Label: "529 College Plan", Mode: ProjectionAuto, CountsInNetWorth: true},
	{Key: AssetTermLife, Label: "Term Life Insurance", Mode: ProjectionNotApplicable, CountsInNetWorth: true, LifeInsurance: true},
	{Key: AssetWholeLife, Label: "Whole Life Cash Value", Mode: ProjectionEditable, CountsInNetWorth: true, LifeInsurance: true},
	{Key: AssetUniversalLife, Label: "Universal Life Cash Value", Mode: ProjectionEditable, CountsInNetWorth: true, LifeInsurance: true},
	{Key: AssetPrimaryResidence, Label: "Primary Residence", Mode: ProjectionEditable, CountsInNetWorth: true},
	{Key: AssetInvestmentRealty, Label: "Investment Real Estate", Mode: ProjectionEditable, CountsInNetWorth: true},
	{Key: AssetBusinessInterest, Label: "Business Interest", Mode: ProjectionEditable, CountsInNetWorth: true},
	{Key: AssetOtherAssets, Label: "Other Assets", Mode: ProjectionEditable, CountsInNetWorth: true},
	{Key: AssetEmployerBenefits, Label: "Employer Benefits", Mode: ProjectionNotApplicable},
	{Key: AssetWillInPlace, Label: "Will in Place", Mode: ProjectionNotApplicable},
	{Key: AssetTrustInPlace, Label: "Trust in Place", Mode: ProjectionNotApplicable},
}

var assetCategoryByKey = func() map[AssetKey]AssetCategory {
	m := make(map[AssetKey]AssetCategory, len(AssetCatalog))
	for _, c := range AssetCatalog {
		m[c.Key] = c
	}
	return m
}()

// CategoryFor looks up the catalog entry for a key.
func CategoryFor(key AssetKey) (AssetCategory, bool) {
	c, ok := assetCategoryByKey[key]
	return c, ok
}

// AssetLineItem is one row of the asset table. The ownership flags mark which
// of the two household members the item applies to; for informational
// categories they double as the checkbox value.
type AssetLineItem struct {
	Key              AssetKey        `json:"key"`
	OwnedByPrimary   bool            `json:"ownedByPrimary"`
	OwnedBySecondary bool            `json:"ownedBySecondary"`
	Notes            string          `json:"notes"`
	PresentValue     decimal.Decimal `json:"presentValue"`
	// ProjectedValue is meaningful only for EDITABLE items, where it holds
	// either the last auto-derived default or the advisor's typed figure.
	// AUTO items ignore it (recomputed every pass); N/A items never have one.
	ProjectedValue decimal.Decimal `json:"projectedValue"`
}

// Checked reports whether an informational checkbox item is set for either
// household member.
func (a AssetLineItem) Checked() bool {
	return a.OwnedByPrimary || a.OwnedBySecondary
}

// DefaultAssetLineItems returns one zeroed line item per catalog entry, in
// catalog order.
func DefaultAssetLineItems() []AssetLineItem {
	items := make([]AssetLineItem, len(AssetCatalog))
	for i, c := range AssetCatalog {
		items[i] = AssetLineItem{Key: c.Key}
	}
	return items
}
