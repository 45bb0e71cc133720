package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/advisorkit/fna_app/internal/apperrors"
	"github.com/advisorkit/fna_app/internal/core/domain"
	portsrepo "github.com/advisorkit/fna_app/internal/core/ports/repositories"
)

type planRepository struct {
	pool *pgxpool.Pool
}

// NewPlanRepository creates a new repository for plan records. Goal inputs are
// stored as typed columns; the asset table travels as one JSONB blob so the
// whole plan persists in a single row write.
func NewPlanRepository(pool *pgxpool.Pool) portsrepo.PlanRepository {
	return &planRepository{pool: pool}
}

var _ portsrepo.PlanRepository = (*planRepository)(nil)

const planColumns = `plan_id, client_id, current_age, planned_retirement_age, growth_rate_percent, monthly_income_needed, healthcare_expenses, goals, years_to_retirement_mode, years_to_retirement, retirement_duration_mode, retirement_duration, long_term_care_mode, long_term_care_value, assets, created_at, created_by, last_updated_at, last_updated_by`

func scanPlan(row pgx.Row) (*domain.Plan, error) {
	var (
		p          domain.Plan
		goalsJSON  []byte
		assetsJSON []byte
	)
	err := row.Scan(
		&p.PlanID,
		&p.ClientID,
		&p.Inputs.CurrentAge,
		&p.Inputs.PlannedRetirementAge,
		&p.Inputs.GrowthRatePercent,
		&p.Inputs.MonthlyIncomeNeeded,
		&p.Inputs.HealthcareExpenses,
		&goalsJSON,
		&p.Inputs.YearsToRetirement.Mode,
		&p.Inputs.YearsToRetirement.Years,
		&p.Inputs.RetirementDuration.Mode,
		&p.Inputs.RetirementDuration.Years,
		&p.Inputs.LongTermCare.Mode,
		&p.Inputs.LongTermCare.Value,
		&assetsJSON,
		&p.CreatedAt,
		&p.CreatedBy,
		&p.LastUpdatedAt,
		&p.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(goalsJSON, &p.Inputs.Goals); err != nil {
		return nil, fmt.Errorf("failed to decode goals blob: %w", err)
	}
	if err := json.Unmarshal(assetsJSON, &p.Assets); err != nil {
		return nil, fmt.Errorf("failed to decode assets blob: %w", err)
	}
	return &p, nil
}

func (r *planRepository) FindPlanByClientID(ctx context.Context, clientID string) (*domain.Plan, error) {
	query := `
		SELECT ` + planColumns + `
		FROM plans
		WHERE client_id = $1;
	`
	p, err := scanPlan(r.pool.QueryRow(ctx, query, clientID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("plan for client %s: %w", clientID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find plan for client %s: %w", clientID, err)
	}
	return p, nil
}

func (r *planRepository) FindPlanByID(ctx context.Context, planID string) (*domain.Plan, error) {
	query := `
		SELECT ` + planColumns + `
		FROM plans
		WHERE plan_id = $1;
	`
	p, err := scanPlan(r.pool.QueryRow(ctx, query, planID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("plan %s: %w", planID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find plan by ID %s: %w", planID, err)
	}
	return p, nil
}

func (r *planRepository) UpsertPlan(ctx context.Context, plan domain.Plan) error {
	goalsJSON, err := json.Marshal(plan.Inputs.Goals)
	if err != nil {
		return fmt.Errorf("failed to encode goals blob: %w", err)
	}
	assetsJSON, err := json.Marshal(plan.Assets)
	if err != nil {
		return fmt.Errorf("failed to encode assets blob: %w", err)
	}

	query := `
		INSERT INTO plans (` + planColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		ON CONFLICT (client_id) DO UPDATE SET
			current_age = EXCLUDED.current_age,
			planned_retirement_age = EXCLUDED.planned_retirement_age,
			growth_rate_percent = EXCLUDED.growth_rate_percent,
			monthly_income_needed = EXCLUDED.monthly_income_needed,
			healthcare_expenses = EXCLUDED.healthcare_expenses,
			goals = EXCLUDED.goals,
			years_to_retirement_mode = EXCLUDED.years_to_retirement_mode,
			years_to_retirement = EXCLUDED.years_to_retirement,
			retirement_duration_mode = EXCLUDED.retirement_duration_mode,
			retirement_duration = EXCLUDED.retirement_duration,
			long_term_care_mode = EXCLUDED.long_term_care_mode,
			long_term_care_value = EXCLUDED.long_term_care_value,
			assets = EXCLUDED.assets,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err = r.pool.Exec(ctx, query,
		plan.PlanID,
		plan.ClientID,
		plan.Inputs.CurrentAge,
		plan.Inputs.PlannedRetirementAge,
		plan.Inputs.GrowthRatePercent,
		plan.Inputs.MonthlyIncomeNeeded,
		plan.Inputs.HealthcareExpenses,
		goalsJSON,
		plan.Inputs.YearsToRetirement.Mode,
		plan.Inputs.YearsToRetirement.Years,
		plan.Inputs.RetirementDuration.Mode,
		plan.Inputs.RetirementDuration.Years,
		plan.Inputs.LongTermCare.Mode,
		plan.Inputs.LongTermCare.Value,
		assetsJSON,
		plan.CreatedAt,
		plan.CreatedBy,
		plan.LastUpdatedAt,
		plan.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert plan %s: %w", plan.PlanID, err)
	}
	return nil
}
