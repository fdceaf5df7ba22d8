package auth

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"stocktake/internal/core/apperror"
	"stocktake/pkg/logger"
)

// Service authenticates the single configured operator and issues tokens.
type Service struct {
	username     string
	passwordHash []byte
	jwt          *JWTService
}

// NewService creates the auth service. The plaintext password from
// configuration is hashed once at startup and discarded.
func NewService(username, password string, jwtService *JWTService) (*Service, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}
	return &Service{
		username:     username,
		passwordHash: hash,
		jwt:          jwtService,
	}, nil
}

// Login verifies the credentials and returns a signed access token.
func (s *Service) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	if username != s.username ||
		bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)) != nil {
		logger.Warn(ctx, "login rejected", "username", username)
		return "", time.Time{}, apperror.NewUnauthorized("Invalid username or password. Please try again.")
	}

	token, expiresAt, err := s.jwt.GenerateAccessToken(username)
	if err != nil {
		return "", time.Time{}, apperror.NewInternal(err)
	}

	logger.Info(ctx, "login succeeded", "username", username)
	return token, expiresAt, nil
}

// Validator exposes token validation for the HTTP middleware.
func (s *Service) Validator() *JWTService {
	return s.jwt
}
