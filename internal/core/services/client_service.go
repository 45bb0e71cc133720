package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/advisorkit/fna_app/internal/core/domain"
	portsrepo "github.com/advisorkit/fna_app/internal/core/ports/repositories"
	portssvc "github.com/advisorkit/fna_app/internal/core/ports/services"
	"github.com/advisorkit/fna_app/internal/dto"
)

// clientService implements portssvc.ClientSvcFacade.
type clientService struct {
	BaseService
	clientRepo portsrepo.ClientRepository
}

// NewClientService creates a new client service.
func NewClientService(clientRepo portsrepo.ClientRepository) portssvc.ClientSvcFacade {
	return &clientService{clientRepo: clientRepo}
}

func (s *clientService) ListClients(ctx context.Context, limit int, offset int) ([]domain.ClientProfile, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	clients, err := s.clientRepo.ListClients(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "failed to list clients")
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return clients, nil
}

func (s *clientService) GetClientByID(ctx context.Context, clientID string) (*domain.ClientProfile, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		s.LogError(ctx, err, "failed to get client", "client_id", clientID)
		return nil, fmt.Errorf("failed to get client %s: %w", clientID, err)
	}
	return client, nil
}

func (s *clientService) CreateClient(ctx context.Context, req dto.CreateClientRequest, createdBy string) (*domain.ClientProfile, error) {
	now := time.Now()
	client := domain.ClientProfile{
		ClientID:          uuid.NewString(),
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Phone:             req.Phone,
		Email:             req.Email,
		SpouseName:        req.SpouseName,
		City:              req.City,
		State:             req.State,
		DateOfBirth:       req.DateOfBirth,
		SpouseDateOfBirth: req.SpouseDateOfBirth,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     createdBy,
			LastUpdatedAt: now,
			LastUpdatedBy: createdBy,
		},
	}

	if err := s.clientRepo.SaveClient(ctx, client); err != nil {
		s.LogError(ctx, err, "failed to create client")
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	s.LogInfo(ctx, "client created", "client_id", client.ClientID)
	return &client, nil
}
