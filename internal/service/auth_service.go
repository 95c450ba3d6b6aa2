package service

import (
	"context"

	"garage/internal/auth"
	apperrors "garage/internal/errors"
	"garage/internal/model"
	"garage/internal/repository"
)

// TokenPair carries a freshly minted access and refresh token.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

// AuthService handles authentication operations.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*model.User, *TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authService struct {
	users repository.UserRepository
	jwt   *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, jwt *auth.JWTService) AuthService {
	return &authService{users: users, jwt: jwt}
}

// Login authenticates a user and mints a token pair. An unknown username and
// a wrong password produce the same error so callers cannot tell which failed.
func (s *authService) Login(ctx context.Context, username, password string) (*model.User, *TokenPair, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, nil, apperrors.ErrInvalidCredentials
	}

	pair, err := s.mintTokenPair(user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// Refresh validates a refresh token and rotates it into a full new pair.
// Tokens are stateless, so the old refresh token stays decodable until it
// expires; there is no server-side revocation.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := s.jwt.ValidateToken(refreshToken)
	if err != nil {
		return nil, apperrors.ErrInvalidRefreshToken
	}
	if !claims.IsRefresh() || claims.Subject == "" {
		return nil, apperrors.ErrInvalidRefreshToken
	}

	user, err := s.users.FindByUsername(ctx, claims.Subject)
	if err != nil {
		return nil, apperrors.ErrInvalidRefreshToken
	}

	return s.mintTokenPair(user)
}

func (s *authService) mintTokenPair(user *model.User) (*TokenPair, error) {
	accessToken, err := s.jwt.GenerateAccessToken(user.Username, user.Role)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.jwt.GenerateRefreshToken(user.Username)
	if err != nil {
		return nil, err
	}
	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
	}, nil
}
