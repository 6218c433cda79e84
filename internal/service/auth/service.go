package auth

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/hrmslite/hrms-backend-go/internal/config"
	"github.com/hrmslite/hrms-backend-go/internal/domain/auth"
	"github.com/hrmslite/hrms-backend-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	jwtService   jwt.Service
	username     string
	email        string
	passwordHash []byte
}

// NewAuthService hashes the configured admin password once at startup so the
// plaintext never sticks around past construction.
func NewAuthService(cfg config.AdminConfig, jwtService jwt.Service) (*AuthServiceImpl, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}
	return &AuthServiceImpl{
		jwtService:   jwtService,
		username:     cfg.Username,
		email:        cfg.Email,
		passwordHash: hash,
	}, nil
}

func (s *AuthServiceImpl) Login(ctx context.Context, req *auth.LoginRequest) (*auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if req.Username != s.username {
		return nil, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(req.Password)); err != nil {
		return nil, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwtService.GenerateAccessToken(s.username, s.email, "admin")
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &auth.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User: auth.UserInfo{
			Username: s.username,
			Email:    s.email,
			Role:     "admin",
		},
	}, nil
}

func (s *AuthServiceImpl) Logout(ctx context.Context, token string) error {
	s.jwtService.RevokeToken(token)
	return nil
}

func (s *AuthServiceImpl) Verify(ctx context.Context, token string) (*auth.UserInfo, error) {
	if s.jwtService.IsTokenRevoked(token) {
		return nil, auth.ErrInvalidToken
	}
	return &auth.UserInfo{
		Username: s.username,
		Email:    s.email,
		Role:     "admin",
	}, nil
}
