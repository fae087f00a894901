package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tillworks/tilldesk/internal/apperrors"
	"github.com/tillworks/tilldesk/internal/core/domain"
	portsrepo "github.com/tillworks/tilldesk/internal/core/ports/repositories"
	portssvc "github.com/tillworks/tilldesk/internal/core/ports/services"
	"github.com/tillworks/tilldesk/internal/dto"
	"github.com/tillworks/tilldesk/internal/middleware"
	"github.com/tillworks/tilldesk/internal/utils"
)

// userService manages staff and admin accounts.
type userService struct {
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new UserService.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// CreateUser persists a new login user with a bcrypt password hash.
func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest, actorID string) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     req.Username,
		PasswordHash: hash,
		Role:         req.Role,
		StoreID:      req.StoreID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		logger.Error("failed to create user", "username", req.Username, "error", err)
		return nil, err
	}
	logger.Info("user created", "userID", user.UserID, "role", user.Role)
	return &user, nil
}

// UpdateUser overwrites a user's fields. An empty password keeps the
// existing hash.
func (s *userService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, actorID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Username = req.Username
	user.Role = req.Role
	user.StoreID = req.StoreID
	if req.Password != "" {
		hash, err := utils.HashPassword(req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = hash
	}
	user.LastUpdatedAt = time.Now()
	user.LastUpdatedBy = actorID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes a user. Self-deletion is refused so an admin cannot
// lock themselves out mid-session.
func (s *userService) DeleteUser(ctx context.Context, userID string, actorID string) error {
	if userID == actorID {
		return fmt.Errorf("%w: cannot delete your own account", apperrors.ErrConflict)
	}
	if _, err := s.userRepo.FindUserByID(ctx, userID); err != nil {
		return err
	}
	if err := s.userRepo.DeleteUser(ctx, userID); err != nil {
		return err
	}
	middleware.GetLoggerFromCtx(ctx).Info("user deleted", "userID", userID, "deletedBy", actorID)
	return nil
}

// GetUserByID retrieves a single user.
func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

// ListUsers retrieves all users.
func (s *userService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.ListUsers(ctx)
}
