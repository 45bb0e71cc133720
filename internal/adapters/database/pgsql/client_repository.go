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

type clientRepository struct {
	pool *pgxpool.Pool
}

// NewClientRepository creates a new repository for client profile data.
func NewClientRepository(pool *pgxpool.Pool) portsrepo.ClientRepository {
	return &clientRepository{pool: pool}
}

var _ portsrepo.ClientRepository = (*clientRepository)(nil)

const clientColumns = `client_id, first_name, last_name, phone, email, spouse_name, city, state, date_of_birth, spouse_date_of_birth, created_at, created_by, last_updated_at, last_updated_by`

func scanClient(row pgx.Row) (*domain.ClientProfile, error) {
	var c domain.ClientProfile
	err := row.Scan(
		&c.ClientID,
		&c.FirstName,
		&c.LastName,
		&c.Phone,
		&c.Email,
		&c.SpouseName,
		&c.City,
		&c.State,
		&c.DateOfBirth,
		&c.SpouseDateOfBirth,
		&c.CreatedAt,
		&c.CreatedBy,
		&c.LastUpdatedAt,
		&c.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *clientRepository) ListClients(ctx context.Context, limit int, offset int) ([]domain.ClientProfile, error) {
	query := `
		SELECT ` + clientColumns + `
		FROM clients
		ORDER BY last_name, first_name
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query clients: %w", err)
	}
	defer rows.Close()

	clients := []domain.ClientProfile{}
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan client row: %w", err)
		}
		clients = append(clients, *c)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating client rows: %w", rows.Err())
	}

	return clients, nil
}

func (r *clientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.ClientProfile, error) {
	query := `
		SELECT ` + clientColumns + `
		FROM clients
		WHERE client_id = $1;
	`
	c, err := scanClient(r.pool.QueryRow(ctx, query, clientID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("client %s: %w", clientID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find client by ID %s: %w", clientID, err)
	}
	return c, nil
}

func (r *clientRepository) SaveClient(ctx context.Context, client domain.ClientProfile) error {
	query := `
		INSERT INTO clients (` + clientColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (client_id) DO UPDATE SET
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			phone = EXCLUDED.phone,
			email = EXCLUDED.email,
			spouse_name = EXCLUDED.spouse_name,
			city = EXCLUDED.city,
			state = EXCLUDED.state,
			date_of_birth = EXCLUDED.date_of_birth,
			spouse_date_of_birth = EXCLUDED.spouse_date_of_birth,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.pool.Exec(ctx, query,
		client.ClientID,
		client.FirstName,
		client.LastName,
		client.Phone,
		client.Email,
		client.SpouseName,
		client.City,
		client.State,
		client.DateOfBirth,
		client.SpouseDateOfBirth,
		client.CreatedAt,
		client.CreatedBy,
		client.LastUpdatedAt,
		client.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save client %s: %w", client.ClientID, err)
	}
	return nil
}
