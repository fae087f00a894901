package dto

import (
	"github.com/tillworks/tilldesk/internal/core/domain"
)

// CreateUserRequest defines the data needed to create a login user.
type CreateUserRequest struct {
	Username string          `json:"username" binding:"required,min=3"`
	Password string          `json:"password" binding:"required,min=8"`
	Role     domain.UserRole `json:"role" binding:"required,oneof=ADMIN STAFF"`
	StoreID  string          `json:"storeID"`
}

// UpdateUserRequest overwrites a user's mutable fields. Password is
// optional; when empty the existing hash is kept.
type UpdateUserRequest struct {
	Username string          `json:"username" binding:"required,min=3"`
	Password string          `json:"password" binding:"omitempty,min=8"`
	Role     domain.UserRole `json:"role" binding:"required,oneof=ADMIN STAFF"`
	StoreID  string          `json:"storeID"`
}

// UserResponse defines the data returned for a user. The password hash is
// never exposed.
type UserResponse struct {
	UserID   string          `json:"userID"`
	Username string          `json:"username"`
	Role     domain.UserRole `json:"role"`
	StoreID  string          `json:"storeID,omitempty"`
}

// ToUserResponse converts a domain.User to its response DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:   u.UserID,
		Username: u.Username,
		Role:     u.Role,
		StoreID:  u.StoreID,
	}
}

// ToUserResponses converts a slice of users to response DTOs.
func ToUserResponses(users []domain.User) []UserResponse {
	res := make([]UserResponse, len(users))
	for i := range users {
		res[i] = ToUserResponse(&users[i])
	}
	return res
}
