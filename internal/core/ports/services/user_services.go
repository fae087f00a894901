package services

import (
	"context"

	"github.com/tillworks/tilldesk/internal/core/domain"
	"github.com/tillworks/tilldesk/internal/dto"
)

// UserSvcFacade manages staff and admin accounts.
type UserSvcFacade interface {
	CreateUser(ctx context.Context, req dto.CreateUserRequest, actorID string) (*domain.User, error)
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, actorID string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)

	// DeleteUser removes a user. Actors cannot delete their own account.
	DeleteUser(ctx context.Context, userID string, actorID string) error
}

// AuthSvcFacade issues and renews credentials.
type AuthSvcFacade interface {
	// Login verifies a username and password and returns a token pair.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)

	// LoginWithGoogle validates a Google ID token and signs in the matching
	// user by verified email.
	LoginWithGoogle(ctx context.Context, req dto.GoogleLoginRequest) (*dto.LoginResponse, error)

	// GenerateOAuthState creates the CSRF state for the redirect flow.
	GenerateOAuthState() (string, error)

	// GoogleLoginURL builds the Google consent URL for the browser flow.
	GoogleLoginURL(state string) string

	// RefreshToken rotates the refresh token and returns a fresh pair.
	RefreshToken(ctx context.Context, req dto.RefreshRequest) (*dto.LoginResponse, error)

	// Logout invalidates the user's current refresh token.
	Logout(ctx context.Context, userID string) error
}

// DayLogSvcFacade tracks business day open and close times.
type DayLogSvcFacade interface {
	// StartDay opens today's log. Starting an already started day is a
	// no-op that returns the existing log.
	StartDay(ctx context.Context, userID string) (*domain.DayLog, error)

	// EndDay closes today's log, stamping the end time.
	EndDay(ctx context.Context, userID string) (*domain.DayLog, error)

	// Today returns the current day's log if one exists.
	Today(ctx context.Context) (*domain.DayLog, error)

	ListDayLogs(ctx context.Context) ([]domain.DayLog, error)
}
