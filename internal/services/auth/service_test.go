package auth

import (
	"context"
	"testing"
	"time"

	apperrors "checkout/internal/errors"
	"checkout/internal/logger"
	"checkout/internal/models"
	"checkout/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() Service {
	return NewService(repositories.NewUserRepository(), Config{JWTSecret: "test-secret", TokenTTL: time.Hour}, logger.Discard())
}

func TestLogin(t *testing.T) {
	svc := newService()

	session, err := svc.Login(context.Background(), "ada@example.com", "anything")
	require.NoError(t, err)

	assert.Equal(t, "ada", session.User.Name)
	assert.Equal(t, models.AuthProviderEmail, session.User.Provider)
	assert.Regexp(t, `^USR-`, session.User.ID)
	assert.NotEmpty(t, session.Token)

	claims, err := svc.ValidateToken(session.Token)
	require.NoError(t, err)
	assert.Equal(t, session.User.ID, claims.UserID)
	assert.Equal(t, "ada@example.com", claims.Email)
}

func TestLoginCreatesFreshUserEachTime(t *testing.T) {
	svc := newService()

	first, err := svc.Login(context.Background(), "ada@example.com", "x")
	require.NoError(t, err)
	second, err := svc.Login(context.Background(), "ada@example.com", "y")
	require.NoError(t, err)

	assert.NotEqual(t, first.User.ID, second.User.ID)
}

func TestLoginWithProvider(t *testing.T) {
	tests := []struct {
		name      string
		provider  models.AuthProvider
		wantEmail string
		wantErr   error
	}{
		{name: "google", provider: models.AuthProviderGoogle, wantEmail: "user@google.com"},
		{name: "apple", provider: models.AuthProviderApple, wantEmail: "user@apple.com"},
		{name: "email is not an oauth provider", provider: models.AuthProviderEmail, wantErr: apperrors.ErrUnsupportedProvider},
		{name: "unknown", provider: "github", wantErr: apperrors.ErrUnsupportedProvider},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session, err := newService().LoginWithProvider(context.Background(), tt.provider)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantEmail, session.User.Email)
			assert.Equal(t, string(tt.provider)+" User", session.User.Name)
			assert.Contains(t, session.User.Avatar, "ui-avatars.com")
		})
	}
}

func TestRegister(t *testing.T) {
	svc := newService()

	session, err := svc.Register(context.Background(), "grace@example.com", "pw", "Grace Hopper")
	require.NoError(t, err)
	assert.Equal(t, "Grace Hopper", session.User.Name)

	user, err := svc.GetUser(session.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "grace@example.com", user.Email)
}

func TestLogoutInvalidatesToken(t *testing.T) {
	svc := newService()

	session, err := svc.Login(context.Background(), "ada@example.com", "pw")
	require.NoError(t, err)
	require.NoError(t, svc.Logout(session.User.ID))

	_, err = svc.ValidateToken(session.Token)
	assert.ErrorIs(t, err, apperrors.ErrSessionExpired)

	assert.ErrorIs(t, svc.Logout("USR-missing"), apperrors.ErrUserNotFound)
}

func TestValidateTokenRejectsForeignTokens(t *testing.T) {
	other := NewService(repositories.NewUserRepository(), Config{JWTSecret: "other"}, logger.Discard())
	session, err := other.Login(context.Background(), "ada@example.com", "pw")
	require.NoError(t, err)

	_, err = newService().ValidateToken(session.Token)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestLoginHonoursCancellation(t *testing.T) {
	svc := NewService(repositories.NewUserRepository(), Config{JWTSecret: "s", LoginDelay: time.Hour}, logger.Discard())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Login(ctx, "ada@example.com", "pw")
	assert.ErrorIs(t, err, context.Canceled)
}
