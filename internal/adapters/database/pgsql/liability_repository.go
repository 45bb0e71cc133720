package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/advisorkit/fna_app/internal/apperrors"
	"github.com/advisorkit/fna_app/internal/core/domain"
	portsrepo "github.com/advisorkit/fna_app/internal/core/ports/repositories"
)

type liabilityRepository struct {
	pool *pgxpool.Pool
}

// NewLiabilityRepository creates a new repository for liability rows.
func NewLiabilityRepository(pool *pgxpool.Pool) portsrepo.LiabilityRepository {
	return &liabilityRepository{pool: pool}
}

var _ portsrepo.LiabilityRepository = (*liabilityRepository)(nil)

const liabilityColumns = `liability_id, plan_id, liability_type, description, lender, notes, balance, interest_rate_percent, minimum_payment, current_payment, created_at, created_by, last_updated_at, last_updated_by`

func scanLiability(row pgx.Row) (*domain.LiabilityRecord, error) {
	var l domain.LiabilityRecord
	err := row.Scan(
		&l.LiabilityID,
		&l.PlanID,
		&l.Type,
		&l.Description,
		&l.Lender,
		&l.Notes,
		&l.Balance,
		&l.InterestRatePercent,
		&l.MinimumPayment,
		&l.CurrentPayment,
		&l.CreatedAt,
		&l.CreatedBy,
		&l.LastUpdatedAt,
		&l.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *liabilityRepository) SaveLiability(ctx context.Context, row domain.LiabilityRecord) error {
	query := `
		INSERT INTO liabilities (` + liabilityColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.pool.Exec(ctx, query,
		row.LiabilityID,
		row.PlanID,
		row.Type,
		row.Description,
		row.Lender,
		row.Notes,
		row.Balance,
		row.InterestRatePercent,
		row.MinimumPayment,
		row.CurrentPayment,
		row.CreatedAt,
		row.CreatedBy,
		row.LastUpdatedAt,
		row.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save liability %s: %w", row.LiabilityID, err)
	}
	return nil
}

func (r *liabilityRepository) UpdateLiability(ctx context.Context, row domain.LiabilityRecord) error {
	query := `
		UPDATE liabilities
		SET liability_type = $1, description = $2, lender = $3, notes = $4,
			balance = $5, interest_rate_percent = $6, minimum_payment = $7, current_payment = $8,
			last_updated_at = $9, last_updated_by = $10
		WHERE liability_id = $11;
	`
	cmdTag, err := r.pool.Exec(ctx, query,
		row.Type,
		row.Description,
		row.Lender,
		row.Notes,
		row.Balance,
		row.InterestRatePercent,
		row.MinimumPayment,
		row.CurrentPayment,
		row.LastUpdatedAt,
		row.LastUpdatedBy,
		row.LiabilityID,
	)
	if err != nil {
		return fmt.Errorf("failed to update liability %s: %w", row.LiabilityID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("liability %s: %w", row.LiabilityID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *liabilityRepository) DeleteLiability(ctx context.Context, liabilityID string) error {
	query := `DELETE FROM liabilities WHERE liability_id = $1;`
	cmdTag, err := r.pool.Exec(ctx, query, liabilityID)
	if err != nil {
		return fmt.Errorf("failed to delete liability %s: %w", liabilityID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("liability %s: %w", liabilityID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *liabilityRepository) FindLiabilityByID(ctx context.Context, liabilityID string) (*domain.LiabilityRecord, error) {
	query := `
		SELECT ` + liabilityColumns + `
		FROM liabilities
		WHERE liability_id = $1;
	`
	l, err := scanLiability(r.pool.QueryRow(ctx, query, liabilityID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("liability %s: %w", liabilityID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find liability by ID %s: %w", liabilityID, err)
	}
	return l, nil
}

func (r *liabilityRepository) ListLiabilitiesByPlanID(ctx context.Context, planID string) ([]domain.LiabilityRecord, error) {
	query := `
		SELECT ` + liabilityColumns + `
		FROM liabilities
		WHERE plan_id = $1
		ORDER BY created_at;
	`
	rows, err := r.pool.Query(ctx, query, planID)
	if err != nil {
		return nil, fmt.Errorf("failed to query liabilities for plan %s: %w", planID, err)
	}
	defer rows.Close()

	liabilities := []domain.LiabilityRecord{}
	for rows.Next() {
		l, err := scanLiability(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan liability row: %w", err)
		}
		liabilities = append(liabilities, *l)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating liability rows: %w", rows.Err())
	}

	return liabilities, nil
}
