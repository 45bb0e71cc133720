package services

import (
	"context"

	"github.com/advisorkit/fna_app/internal/core/domain"
	"github.com/advisorkit/fna_app/internal/dto"
)

// ClientSvcFacade exposes client roster operations.
type ClientSvcFacade interface {
	// ListClients returns a page of client profiles ordered by last name.
	ListClients(ctx context.Context, limit int, offset int) ([]domain.ClientProfile, error)

	// GetClientByID retrieves a single client profile.
	GetClientByID(ctx context.Context, clientID string) (*domain.ClientProfile, error)

	// CreateClient registers a new client profile.
	CreateClient(ctx context.Context, req dto.CreateClientRequest, createdBy string) (*domain.ClientProfile, error)
}
