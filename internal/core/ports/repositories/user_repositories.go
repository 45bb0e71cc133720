package repositories

import (
	"context"

	"github.com/advisorkit/fna_app/internal/core/domain"
)

// UserRepository defines persistence operations for advisor accounts.
type UserRepository interface {
	// SaveUser inserts a new advisor account.
	SaveUser(ctx context.Context, user domain.User) error

	// FindUserByID retrieves an advisor by ID, excluding soft-deleted rows.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByUsername retrieves an advisor by login name.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
}
