package services

import (
	"context"
	"time"

	"github.com/crestprop/lease_ledger_app/internal/core/domain"
	"github.com/crestprop/lease_ledger_app/internal/dto"
)

// UserSvcFacade manages application users.
type UserSvcFacade interface {
	CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	ListUsers(ctx context.Context, limit int, offset int) ([]domain.User, error)
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, updaterUserID string) (*domain.User, error)
	DeleteUser(ctx context.Context, userID string, deleterUserID string) error

	// AuthenticateUser verifies username/password and returns the user.
	AuthenticateUser(ctx context.Context, username string, password string) (*domain.User, error)

	// FindOrCreateSSOUser resolves a Google-verified email to a local user,
	// creating a clerk account on first sign-in.
	FindOrCreateSSOUser(ctx context.Context, email string, name string) (*domain.User, error)

	// StoreRefreshToken persists the hash of an issued refresh token.
	StoreRefreshToken(ctx context.Context, userID string, refreshTokenHash string, expiryTime time.Time) error

	// ClearRefreshToken invalidates any stored refresh token.
	ClearRefreshToken(ctx context.Context, userID string) error
}
