package repositories

import (
	"context"
	"time"

	"github.com/tillworks/tilldesk/internal/core/domain"
)

// UserRepositoryFacade defines operations for user account data.
type UserRepositoryFacade interface {
	// FindUserByID retrieves a user by its identifier.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByUsername retrieves a user by its unique username.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// ListUsers retrieves all users ordered by username.
	ListUsers(ctx context.Context) ([]domain.User, error)

	// SaveUser persists a new user. Returns apperrors.ErrDuplicate on a
	// username collision.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUser overwrites an existing user's fields.
	UpdateUser(ctx context.Context, user domain.User) error

	// DeleteUser removes a user.
	DeleteUser(ctx context.Context, userID string) error

	// UpdateRefreshToken stores the hash and expiry of a user's current
	// refresh token; empty hash and nil expiry clear it.
	UpdateRefreshToken(ctx context.Context, userID string, tokenHash string, expiry *time.Time, now time.Time) error
}
