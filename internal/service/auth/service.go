package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/dycrane/crane-safety-backend-go/internal/domain/auth"
	"github.com/dycrane/crane-safety-backend-go/internal/domain/user"
	"github.com/dycrane/crane-safety-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	user.UserRepository
	jwtService jwt.Service
}

func NewService(userRepository user.UserRepository, jwtService jwt.Service) *Service {
	return &Service{
		UserRepository: userRepository,
		jwtService:     jwtService,
	}
}

// Login verifies credentials and issues an access/refresh token pair.
// A missing user and a wrong password produce the same error.
func (s *Service) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	u, err := s.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if !u.IsActive {
		return auth.LoginResponse{}, user.ErrUserInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	return s.issueTokens(u)
}

// Refresh exchanges a valid refresh token for a new token pair and revokes
// the old one.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (auth.LoginResponse, error) {
	if s.jwtService.IsTokenRevoked(refreshToken) {
		return auth.LoginResponse{}, auth.ErrTokenExpired
	}

	userID, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return auth.LoginResponse{}, auth.ErrTokenExpired
	}

	u, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return auth.LoginResponse{}, err
	}
	if !u.IsActive {
		return auth.LoginResponse{}, user.ErrUserInactive
	}

	s.jwtService.RevokeToken(refreshToken)

	return s.issueTokens(u)
}

// Logout revokes the refresh token so it cannot be exchanged again.
func (s *Service) Logout(ctx context.Context, refreshToken string) {
	s.jwtService.RevokeToken(refreshToken)
}

func (s *Service) issueTokens(u user.User) (auth.LoginResponse, error) {
	accessToken, accessExpiresAt, err := s.jwtService.GenerateAccessToken(u.ID, u.Email, u.Role)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExpiresAt, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return auth.LoginResponse{
		AccessToken:           accessToken,
		RefreshToken:          refreshToken,
		AccessTokenExpiresIn:  accessExpiresAt,
		RefreshTokenExpiresIn: refreshExpiresAt,
	}, nil
}

// HashPassword creates a bcrypt hash for storage.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}
