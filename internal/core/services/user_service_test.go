package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/advisorkit/fna_app/internal/apperrors"
	"github.com/advisorkit/fna_app/internal/core/domain"
	"github.com/advisorkit/fna_app/internal/core/services"
	"github.com/advisorkit/fna_app/internal/dto"
	"github.com/advisorkit/fna_app/internal/platform/config"
	"github.com/advisorkit/fna_app/internal/utils"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
	SaveUserFn           func(ctx context.Context, user domain.User) error
	FindUserByIDFn       func(ctx context.Context, userID string) (*domain.User, error)
	FindUserByUsernameFn func(ctx context.Context, username string) (*domain.User, error)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	if m.SaveUserFn != nil {
		return m.SaveUserFn(ctx, user)
	}
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	if m.FindUserByIDFn != nil {
		return m.FindUserByIDFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.FindUserByUsernameFn != nil {
		return m.FindUserByUsernameFn(ctx, username)
	}
	args := m.Called(ctx, username)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func TestRegisterUser(t *testing.T) {
	ctx := context.Background()

	t.Run("registers a new advisor with a hashed password", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.FindUserByUsernameFn = func(ctx context.Context, username string) (*domain.User, error) {
			return nil, apperrors.ErrNotFound
		}
		var saved domain.User
		userRepo.SaveUserFn = func(ctx context.Context, user domain.User) error {
			saved = user
			return nil
		}

		svc := services.NewUserService(userRepo)
		user, err := svc.RegisterUser(ctx, dto.RegisterUserRequest{
			Username: "advisor1",
			Name:     "Alex Chen",
			Password: "super-secret-1",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, user.UserID)
		assert.Equal(t, "advisor1", saved.Username)
		assert.NotEqual(t, "super-secret-1", saved.PasswordHash)
		assert.True(t, utils.CheckPasswordHash("super-secret-1", saved.PasswordHash))
	})

	t.Run("rejects a taken username", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.FindUserByUsernameFn = func(ctx context.Context, username string) (*domain.User, error) {
			return &domain.User{UserID: "u1", Username: username}, nil
		}

		svc := services.NewUserService(userRepo)
		user, err := svc.RegisterUser(ctx, dto.RegisterUserRequest{
			Username: "advisor1",
			Password: "super-secret-1",
		})

		assert.Nil(t, user)
		assert.ErrorIs(t, err, apperrors.ErrDuplicate)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{
		JWTSecret:         "test-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "fna-app",
	}

	hashed, _ := utils.HashPassword("correct-horse")
	storedUser := &domain.User{
		UserID:       "u1",
		Username:     "advisor1",
		Name:         "Alex Chen",
		PasswordHash: hashed,
	}

	t.Run("returns a signed token on valid credentials", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.FindUserByUsernameFn = func(ctx context.Context, username string) (*domain.User, error) {
			return storedUser, nil
		}

		svc := services.NewAuthService(cfg, userRepo)
		resp, err := svc.Login(ctx, dto.LoginRequest{Username: "advisor1", Password: "correct-horse"})

		assert.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, "u1", resp.UserID)
		assert.Equal(t, "Alex Chen", resp.Name)
	})

	t.Run("unknown user and bad password fail identically", func(t *testing.T) {
		unknownRepo := new(MockUserRepository)
		unknownRepo.FindUserByUsernameFn = func(ctx context.Context, username string) (*domain.User, error) {
			return nil, apperrors.ErrNotFound
		}
		badPassRepo := new(MockUserRepository)
		badPassRepo.FindUserByUsernameFn = func(ctx context.Context, username string) (*domain.User, error) {
			return storedUser, nil
		}

		_, errUnknown := services.NewAuthService(cfg, unknownRepo).Login(ctx, dto.LoginRequest{Username: "ghost", Password: "whatever"})
		_, errBadPass := services.NewAuthService(cfg, badPassRepo).Login(ctx, dto.LoginRequest{Username: "advisor1", Password: "wrong"})

		assert.ErrorIs(t, errUnknown, apperrors.ErrUnauthorized)
		assert.ErrorIs(t, errBadPass, apperrors.ErrUnauthorized)
		assert.Equal(t, errUnknown.Error(), errBadPass.Error())
	})
}
