package services

import (
	"context"

	"github.com/advisorkit/fna_app/internal/core/domain"
	"github.com/advisorkit/fna_app/internal/dto"
)

// UserSvcFacade exposes advisor account operations.
type UserSvcFacade interface {
	// RegisterUser creates a new advisor account with a hashed password.
	RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error)

	// GetUserByID retrieves an advisor account.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}

// AuthSvcFacade exposes credential verification and token issuance.
type AuthSvcFacade interface {
	// Login verifies credentials and returns a signed token.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}
