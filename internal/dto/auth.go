package dto

import "time"

// LoginRequest carries username/password credentials.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// GoogleLoginRequest carries a Google ID token obtained by the client.
type GoogleLoginRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

// RefreshRequest carries a refresh token to rotate.
type RefreshRequest struct {
	UserID       string `json:"userID" binding:"required"`
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// LoginResponse carries the issued tokens and the authenticated user.
type LoginResponse struct {
	AccessToken        string       `json:"accessToken"`
	AccessTokenExpiry  time.Time    `json:"accessTokenExpiry"`
	RefreshToken       string       `json:"refreshToken"`
	RefreshTokenExpiry time.Time    `json:"refreshTokenExpiry"`
	User               UserResponse `json:"user"`
}
