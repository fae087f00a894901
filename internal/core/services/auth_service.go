package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"

	"github.com/tillworks/tilldesk/internal/apperrors"
	"github.com/tillworks/tilldesk/internal/core/domain"
	portsrepo "github.com/tillworks/tilldesk/internal/core/ports/repositories"
	portssvc "github.com/tillworks/tilldesk/internal/core/ports/services"
	"github.com/tillworks/tilldesk/internal/dto"
	"github.com/tillworks/tilldesk/internal/middleware"
	"github.com/tillworks/tilldesk/internal/platform/config"
	"github.com/tillworks/tilldesk/internal/utils"
)

// authService issues access tokens and rotates refresh tokens.
type authService struct {
	userRepo     portsrepo.UserRepositoryFacade
	cfg          *config.Config
	oauth2Config *oauth2.Config
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo portsrepo.UserRepositoryFacade, cfg *config.Config) portssvc.AuthSvcFacade {
	return &authService{
		userRepo: userRepo,
		cfg:      cfg,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// issueTokens creates an access token and rotates the refresh token for a
// verified user.
func (s *authService) issueTokens(ctx context.Context, user *domain.User) (*dto.LoginResponse, error) {
	now := time.Now()

	accessToken, err := utils.GenerateJWT(user.UserID, user.Role, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := utils.GenerateSecureRandomString(32)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}
	refreshExpiry := now.Add(s.cfg.RefreshTokenExpiryDuration)
	if err := s.userRepo.UpdateRefreshToken(ctx, user.UserID, utils.HashRefreshToken(refreshToken), &refreshExpiry, now); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &dto.LoginResponse{
		AccessToken:        accessToken,
		AccessTokenExpiry:  now.Add(s.cfg.JWTExpiryDuration),
		RefreshToken:       refreshToken,
		RefreshTokenExpiry: refreshExpiry,
		User:               dto.ToUserResponse(user),
	}, nil
}

// Login verifies the username and password. Lookup failures and password
// mismatches produce the same ErrUnauthorized so usernames cannot be probed.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		logger.Warn("login rejected", "username", req.Username)
		return nil, apperrors.ErrUnauthorized
	}

	logger.Info("user logged in", "userID", user.UserID)
	return s.issueTokens(ctx, user)
}

// LoginWithGoogle validates a Google ID token and signs in the user whose
// username matches the verified email claim. Unknown emails are rejected;
// no account is auto-created.
func (s *authService) LoginWithGoogle(ctx context.Context, req dto.GoogleLoginRequest) (*dto.LoginResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if s.cfg.GoogleClientID == "" {
		return nil, errors.New("google client ID is not configured")
	}
	payload, err := idtoken.Validate(ctx, req.IDToken, s.cfg.GoogleClientID)
	if err != nil {
		logger.Warn("google ID token rejected", "error", err)
		return nil, fmt.Errorf("%w: google ID token validation failed", apperrors.ErrUnauthorized)
	}

	email, _ := payload.Claims["email"].(string)
	verified, _ := payload.Claims["email_verified"].(bool)
	if email == "" || !verified {
		return nil, fmt.Errorf("%w: google account email is not verified", apperrors.ErrUnauthorized)
	}

	user, err := s.userRepo.FindUserByUsername(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: no account for %s", apperrors.ErrUnauthorized, email)
		}
		return nil, err
	}

	logger.Info("user logged in via google", "userID", user.UserID)
	return s.issueTokens(ctx, user)
}

// GenerateOAuthState creates the CSRF state for the redirect flow.
func (s *authService) GenerateOAuthState() (string, error) {
	state, err := utils.GenerateSecureRandomString(16)
	if err != nil {
		return "", fmt.Errorf("failed to generate oauth state: %w", err)
	}
	return state, nil
}

// GoogleLoginURL builds the Google consent URL for the browser flow.
func (s *authService) GoogleLoginURL(state string) string {
	return s.oauth2Config.AuthCodeURL(state)
}

// RefreshToken verifies and rotates a refresh token, returning a fresh pair.
func (s *authService) RefreshToken(ctx context.Context, req dto.RefreshRequest) (*dto.LoginResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}
	if user.RefreshTokenHash == "" || user.RefreshTokenExpiryTime == nil || time.Now().After(*user.RefreshTokenExpiryTime) {
		return nil, apperrors.ErrUnauthorized
	}
	if !utils.CompareRefreshTokenHash(req.RefreshToken, user.RefreshTokenHash) {
		logger.Warn("refresh token mismatch", "userID", req.UserID)
		return nil, apperrors.ErrUnauthorized
	}

	return s.issueTokens(ctx, user)
}

// Logout clears the user's stored refresh token.
func (s *authService) Logout(ctx context.Context, userID string) error {
	return s.userRepo.UpdateRefreshToken(ctx, userID, "", nil, time.Now())
}
