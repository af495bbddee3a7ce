// Package auth implements the demo login flows. Credentials are not checked:
// every login creates a fresh user and returns a signed session token.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	apperrors "checkout/internal/errors"
	"checkout/internal/logger"
	"checkout/internal/models"
	"checkout/internal/repositories"
	"checkout/internal/utils"
	"checkout/internal/utils/format"
)

type Service interface {
	Login(ctx context.Context, email, password string) (*Session, error)
	LoginWithProvider(ctx context.Context, provider models.AuthProvider) (*Session, error)
	Register(ctx context.Context, email, password, name string) (*Session, error)
	Logout(userID string) error
	ValidateToken(token string) (*models.UserClaims, error)
	GetUser(userID string) (*models.User, error)
}

type Session struct {
	User      *models.User `json:"user"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
}

type Config struct {
	JWTSecret  string
	TokenTTL   time.Duration
	LoginDelay time.Duration
	OAuthDelay time.Duration
}

type service struct {
	userRepo repositories.UserRepository
	cfg      Config
	log      *slog.Logger
}

func NewService(userRepo repositories.UserRepository, cfg Config, log *slog.Logger) Service {
	if log == nil {
		log = logger.WithComponent("auth")
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 24 * time.Hour
	}
	return &service{
		userRepo: userRepo,
		cfg:      cfg,
		log:      log,
	}
}

func (s *service) Login(ctx context.Context, email, _ string) (*Session, error) {
	if err := utils.Sleep(ctx, s.cfg.LoginDelay); err != nil {
		return nil, err
	}

	name, _, _ := strings.Cut(email, "@")
	return s.startSession(&models.User{
		ID:        format.GenerateUserID(),
		Email:     email,
		Name:      name,
		Provider:  models.AuthProviderEmail,
		CreatedAt: time.Now(),
	})
}

func (s *service) LoginWithProvider(ctx context.Context, provider models.AuthProvider) (*Session, error) {
	if provider != models.AuthProviderGoogle && provider != models.AuthProviderApple {
		return nil, apperrors.ErrUnsupportedProvider
	}
	if err := utils.Sleep(ctx, s.cfg.OAuthDelay); err != nil {
		return nil, err
	}

	return s.startSession(&models.User{
		ID:        format.GenerateUserID(),
		Email:     fmt.Sprintf("user@%s.com", provider),
		Name:      fmt.Sprintf("%s User", provider),
		Avatar:    fmt.Sprintf("https://ui-avatars.com/api/?name=%s+User&background=random", provider),
		Provider:  provider,
		CreatedAt: time.Now(),
	})
}

func (s *service) Register(ctx context.Context, email, _, name string) (*Session, error) {
	if err := utils.Sleep(ctx, s.cfg.LoginDelay); err != nil {
		return nil, err
	}

	return s.startSession(&models.User{
		ID:        format.GenerateUserID(),
		Email:     email,
		Name:      name,
		Provider:  models.AuthProviderEmail,
		CreatedAt: time.Now(),
	})
}

func (s *service) Logout(userID string) error {
	if err := s.userRepo.IncrementTokenVersion(userID); err != nil {
		return fmt.Errorf("logout %s: %w", userID, err)
	}
	s.log.Info("user logged out", "user_id", userID)
	return nil
}

// ValidateToken checks the signature and expiry of token and that it was
// issued after the user's last logout.
func (s *service) ValidateToken(token string) (*models.UserClaims, error) {
	claims, err := utils.ParseToken(s.cfg.JWTSecret, token)
	if err != nil {
		s.log.Debug("token rejected", "error", err)
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.GetByID(claims.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}
	if user.TokenVersion != claims.TokenVersion {
		return nil, apperrors.ErrSessionExpired
	}
	return claims, nil
}

func (s *service) GetUser(userID string) (*models.User, error) {
	return s.userRepo.GetByID(userID)
}

func (s *service) startSession(user *models.User) (*Session, error) {
	if err := s.userRepo.Save(user); err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}

	token, expiresAt, err := utils.GenerateToken(s.cfg.JWTSecret, s.cfg.TokenTTL, user)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	s.log.Info("user signed in", "user_id", user.ID, "provider", string(user.Provider))
	return &Session{User: user, Token: token, ExpiresAt: expiresAt}, nil
}
