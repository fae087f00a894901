package domain

import "time"

// UserRole controls access to administrative operations.
type UserRole string

const (
	RoleAdmin UserRole = "ADMIN"
	RoleStaff UserRole = "STAFF"
)

// User is an application login account.
type User struct {
	UserID                 string     `json:"userID"` // Primary key (UUID)
	Username               string     `json:"username"`
	PasswordHash           string     `json:"-"`
	Role                   UserRole   `json:"role"`
	StoreID                string     `json:"storeID,omitempty"` // Optional FK
	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`
	AuditFields
}
