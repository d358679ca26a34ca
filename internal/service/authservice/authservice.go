package authservice

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/ordertracker/internal/domain"
	"github.com/GlebRadaev/ordertracker/pkg/auth"
)

type Service struct {
	passwordHash string
	ttl          time.Duration
	hashService  auth.HashServiceInterface
	jwtService   auth.JWTServiceInterface
	now          func() time.Time
}

// New builds the login service. An empty passwordHash disables the password
// check.
func New(passwordHash string, ttl time.Duration, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		passwordHash: passwordHash,
		ttl:          ttl,
		hashService:  hashService,
		jwtService:   jwtService,
		now:          time.Now,
	}
}

func (s *Service) Enabled() bool {
	return s.passwordHash != ""
}

// Login checks the shared password and issues a session token for userID.
func (s *Service) Login(_ context.Context, userID int, password string) (*domain.Session, error) {
	if userID != domain.UserAlex && userID != domain.UserIsa {
		return nil, fmt.Errorf("%w: unknown user %d", domain.ErrValidation, userID)
	}
	if s.Enabled() && !s.hashService.ComparePassword(s.passwordHash, password) {
		zap.L().Info("invalid credentials", zap.Int("user_id", userID))
		return nil, domain.ErrUnauthorized
	}

	expiresAt := s.now().Add(s.ttl)
	token, err := s.jwtService.GenerateJWT(userID, expiresAt)
	if err != nil {
		zap.L().Error("can't generate token", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user logged in", zap.String("user", domain.UserName(userID)))
	return &domain.Session{
		UserID:    userID,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}
