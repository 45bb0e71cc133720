package repositories

import (
	"context"

	"github.com/advisorkit/fna_app/internal/core/domain"
)

// ClientRepository defines persistence operations for client profiles.
type ClientRepository interface {
	// ListClients retrieves client profiles ordered by last name.
	ListClients(ctx context.Context, limit, offset int) ([]domain.ClientProfile, error)

	// FindClientByID retrieves a single client profile.
	FindClientByID(ctx context.Context, clientID string) (*domain.ClientProfile, error)

	// SaveClient inserts a new client profile.
	SaveClient(ctx context.Context, client domain.ClientProfile) error
}
