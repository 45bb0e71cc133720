package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Plan is one client's financial needs analysis record: the goal inputs plus
// the full asset line item table. Liability rows are separate records keyed
// by PlanID. Derived figures are not part of the plan; they are recomputed
// from it on every read and write.
type Plan struct {
	PlanID   string          `json:"planID"`   // Primary Key (UUID)
	ClientID string          `json:"clientID"` // FK -> clients.client_id (NON-NULL, one plan per client)
	Inputs   GoalInputs      `json:"inputs"`
	Assets   []AssetLineItem `json:"assets"`
	AuditFields
}

// NewDefaultPlan returns the unsaved plan a client starts from: default goal
// inputs and one zeroed line item per asset category.
func NewDefaultPlan(clientID string) Plan {
	return Plan{
		ClientID: clientID,
		Inputs:   DefaultGoalInputs(),
		Assets:   DefaultAssetLineItems(),
	}
}

// AssetByKey returns a pointer to the plan's line item for the given category,
// or nil when the plan carries no row for it.
func (p *Plan) AssetByKey(key AssetKey) *AssetLineItem {
	for i := range p.Assets {
		if p.Assets[i].Key == key {
			return &p.Assets[i]
		}
	}
	return nil
}

// TotalsSnapshot is the reactive roll-up of one recomputation pass. It is
// derivable from the plan and liabilities at all times and is never stored as
// an independent source of truth, though the last computed figures travel
// with the local cache backup for recovery display.
type TotalsSnapshot struct {
	TotalPresentValue   decimal.Decimal `json:"totalPresentValue"`
	TotalProjectedValue decimal.Decimal `json:"totalProjectedValue"`
	TotalLiabilities    decimal.Decimal `json:"totalLiabilities"`
	NetWorth            decimal.Decimal `json:"netWorth"`
	FundingGap          decimal.Decimal `json:"fundingGap"` // positive = shortfall
}

// Analysis bundles everything one recomputation pass derives from a plan.
type Analysis struct {
	Derived         DerivedGoalFigures `json:"derived"`
	Totals          TotalsSnapshot     `json:"totals"`
	Recommendations []Recommendation   `json:"recommendations"`
}

// PlanSnapshot is a fully loaded plan together with its liability rows and a
// fresh analysis pass, the unit the plan service hands to handlers and the
// report composer.
type PlanSnapshot struct {
	Plan               Plan              `json:"plan"`
	Liabilities        []LiabilityRecord `json:"liabilities"`
	Analysis           Analysis          `json:"analysis"`
	RecoveredFromCache bool              `json:"recoveredFromCache,omitempty"`
}

// CachedPlanBackup is the same-device recovery copy of the asset blob written
// alongside every successful save, with the last computed totals for display
// while the primary store is unreachable.
type CachedPlanBackup struct {
	ClientID string          `json:"clientID"`
	Assets   []AssetLineItem `json:"assets"`
	Totals   TotalsSnapshot  `json:"totals"`
	SavedAt  time.Time       `json:"savedAt"`
}
