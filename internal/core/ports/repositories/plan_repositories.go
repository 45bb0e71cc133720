package repositories

import (
	"context"
	"time"

	"github.com/advisorkit/fna_app/internal/core/domain"
)

// PlanReader defines read operations for plan records.
type PlanReader interface {
	// FindPlanByClientID retrieves the most recent saved plan for a client.
	FindPlanByClientID(ctx context.Context, clientID string) (*domain.Plan, error)

	// FindPlanByID retrieves a plan by its own identifier.
	FindPlanByID(ctx context.Context, planID string) (*domain.Plan, error)
}

// PlanWriter defines write operations for plan records.
type PlanWriter interface {
	// UpsertPlan persists the goal record and the asset blob as one write.
	// A client has at most one plan row; last write wins.
	UpsertPlan(ctx context.Context, plan domain.Plan) error
}

// PlanRepository combines plan read and write operations.
type PlanRepository interface {
	PlanReader
	PlanWriter
}

// PlanCache is the same-device recovery store for the asset blob. Writes are
// best effort; reads serve as a fallback when the primary store is
// unreachable on load.
type PlanCache interface {
	WriteBackup(ctx context.Context, backup domain.CachedPlanBackup) error
	ReadBackup(ctx context.Context, clientID string) (*domain.CachedPlanBackup, error)

	// Prune removes backups older than maxAge, returning how many were removed.
	Prune(ctx context.Context, maxAge time.Duration) (int, error)
}
