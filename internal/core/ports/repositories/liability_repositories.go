package repositories

import (
	"context"

	"github.com/advisorkit/fna_app/internal/core/domain"
)

// LiabilityRepository defines persistence operations for liability rows.
// Every row is keyed by a foreign reference to its parent plan, which must
// exist before any row can be written.
type LiabilityRepository interface {
	// SaveLiability inserts a new liability row.
	SaveLiability(ctx context.Context, row domain.LiabilityRecord) error

	// UpdateLiability rewrites an existing liability row.
	UpdateLiability(ctx context.Context, row domain.LiabilityRecord) error

	// DeleteLiability removes a liability row.
	DeleteLiability(ctx context.Context, liabilityID string) error

	// FindLiabilityByID retrieves a single liability row.
	FindLiabilityByID(ctx context.Context, liabilityID string) (*domain.LiabilityRecord, error)

	// ListLiabilitiesByPlanID retrieves all rows for a plan in creation order.
	ListLiabilitiesByPlanID(ctx context.Context, planID string) ([]domain.LiabilityRecord, error)
}
