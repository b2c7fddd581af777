package authservice

import (
	"context"
	"time"

	"github.com/Gautam-Jha-13/ewallet-simulator/internal/domain"
	"github.com/Gautam-Jha-13/ewallet-simulator/pkg/auth"
	"go.uber.org/zap"
)

// Every new account starts with at least this balance.
const minInitialBalance = 1000.00

const sessionTTL = 24 * time.Hour

type Repo interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	CreateWithWallet(ctx context.Context, user *domain.User, initialBalance float64) (*domain.User, error)
}

type AuditService interface {
	Log(ctx context.Context, user *domain.User, action, status string, oldBalance, newBalance *float64)
}

type SessionCache interface {
	StoreToken(ctx context.Context, userID int, token string, ttl time.Duration) error
}

type Service struct {
	userRepo Repo
	hash     auth.HashServiceInterface
	jwt      auth.JWTServiceInterface
	audit    AuditService
	sessions SessionCache
}

func New(userRepo Repo, hash auth.HashServiceInterface, jwt auth.JWTServiceInterface, audit AuditService, sessions SessionCache) *Service {
	return &Service{
		userRepo: userRepo,
		hash:     hash,
		jwt:      jwt,
		audit:    audit,
		sessions: sessions,
	}
}

// CreateUser registers a new account with a wallet funded at initialBalance.
func (s *Service) CreateUser(ctx context.Context, name, email, password string, initialBalance float64) (*domain.User, error) {
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUserExists
	}
	if initialBalance < minInitialBalance {
		return nil, domain.ErrBalanceBelowMinimum
	}

	passwordHash, err := s.hash.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
	}
	if _, err := s.userRepo.CreateWithWallet(ctx, user, initialBalance); err != nil {
		return nil, err
	}

	s.audit.Log(ctx, user, domain.AuditActionRegister, domain.AuditStatusSuccess, nil, &initialBalance)
	return user, nil
}

// Authenticate checks the credentials and records the attempt in the audit
// trail. An unknown email is indistinguishable from a wrong password for the
// caller, but the audit entry keeps the difference.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		s.audit.Log(ctx, nil, domain.AuditActionLogin, domain.AuditStatusFailure, nil, nil)
		return nil, domain.ErrInvalidCredentials
	}
	if !s.hash.ComparePassword(user.PasswordHash, password) {
		s.audit.Log(ctx, user, domain.AuditActionLogin, domain.AuditStatusFailure, nil, nil)
		return nil, domain.ErrInvalidCredentials
	}

	s.audit.Log(ctx, user, domain.AuditActionLogin, domain.AuditStatusSuccess, nil, nil)
	return user, nil
}

// GenerateToken issues a JWT for the user and caches the session. A cache
// failure does not invalidate the token.
func (s *Service) GenerateToken(ctx context.Context, userID int) (string, error) {
	token, err := s.jwt.GenerateJWT(userID, time.Now().Add(sessionTTL))
	if err != nil {
		return "", err
	}
	if err := s.sessions.StoreToken(ctx, userID, token, sessionTTL); err != nil {
		zap.L().Error("Failed to cache session token", zap.Int("userID", userID), zap.Error(err))
	}
	return token, nil
}
