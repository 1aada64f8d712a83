package service_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/citypulse/waterlog-api/internal/apperror"
	"github.com/citypulse/waterlog-api/internal/config"
	"github.com/citypulse/waterlog-api/internal/models"
	"github.com/citypulse/waterlog-api/internal/service"
	"github.com/citypulse/waterlog-api/internal/service/mocks"
)

func newTestAuthService(t *testing.T) (service.AuthService, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		JWTSecret:       "test-secret",
		AccessTokenTTL:  30 * time.Minute,
		RefreshTokenTTL: 7 * 24 * time.Hour,
	}

	return service.NewAuthService(users, logger, cfg), users
}

func activeUser(id int64, email, password string) *models.User {
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return &models.User{
		ID:             id,
		Email:          email,
		HashedPassword: string(hashed),
		FullName:       "Test User",
		Role:           models.RoleCitizen,
		IsActive:       true,
	}
}

func TestRegister_Success(t *testing.T) {
	svc, users := newTestAuthService(t)
	ctx := context.Background()

	users.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.User) error {
			assert.Equal(t, "ravi@example.com", u.Email)
			assert.Equal(t, models.RoleCitizen, u.Role)
			assert.NotEqual(t, "hunter2secret", u.HashedPassword)
			u.ID = 1
			return nil
		})

	user, err := svc.Register(ctx, service.RegisterInput{
		Email:    " Ravi@Example.com ",
		Password: "hunter2secret",
		FullName: "Ravi Kumar",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "ravi@example.com", user.Email)
}

func TestRegister_ShortPassword(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.Register(context.Background(), service.RegisterInput{
		Email:    "ravi@example.com",
		Password: "short",
		FullName: "Ravi Kumar",
	})

	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, users := newTestAuthService(t)
	ctx := context.Background()

	users.EXPECT().
		Create(ctx, gomock.Any()).
		Return(fmt.Errorf("email taken: %w", apperror.ErrConflict))

	_, err := svc.Register(ctx, service.RegisterInput{
		Email:    "ravi@example.com",
		Password: "hunter2secret",
		FullName: "Ravi Kumar",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrConflict)
}

func TestLogin_Success(t *testing.T) {
	svc, users := newTestAuthService(t)
	ctx := context.Background()
	user := activeUser(1, "ravi@example.com", "hunter2secret")

	users.EXPECT().GetByEmail(ctx, "ravi@example.com").Return(user, nil)

	pair, err := svc.Login(ctx, "ravi@example.com", "hunter2secret")

	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.True(t, pair.ExpiresAt.After(time.Now()))

	claims, err := svc.VerifyAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, int64(1), claims.UserID)
	assert.Equal(t, models.RoleCitizen, claims.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, users := newTestAuthService(t)
	ctx := context.Background()
	user := activeUser(1, "ravi@example.com", "hunter2secret")

	users.EXPECT().GetByEmail(ctx, "ravi@example.com").Return(user, nil)

	_, err := svc.Login(ctx, "ravi@example.com", "wrong-password")

	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
}

func TestLogin_UnknownEmailLooksLikeBadPassword(t *testing.T) {
	svc, users := newTestAuthService(t)
	ctx := context.Background()

	users.EXPECT().
		GetByEmail(ctx, "nobody@example.com").
		Return(nil, apperror.NotFound("user", "nobody@example.com"))

	_, err := svc.Login(ctx, "nobody@example.com", "whatever-pass")

	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
	assert.NotErrorIs(t, err, apperror.ErrNotFound)
}

func TestLogin_DeactivatedAccount(t *testing.T) {
	svc, users := newTestAuthService(t)
	ctx := context.Background()
	user := activeUser(1, "ravi@example.com", "hunter2secret")
	user.IsActive = false

	users.EXPECT().GetByEmail(ctx, "ravi@example.com").Return(user, nil)

	_, err := svc.Login(ctx, "ravi@example.com", "hunter2secret")

	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
}

func TestRefresh_Success(t *testing.T) {
	svc, users := newTestAuthService(t)
	ctx := context.Background()
	user := activeUser(1, "ravi@example.com", "hunter2secret")

	users.EXPECT().GetByEmail(ctx, "ravi@example.com").Return(user, nil)
	pair, err := svc.Login(ctx, "ravi@example.com", "hunter2secret")
	require.NoError(t, err)

	users.EXPECT().GetByID(ctx, int64(1)).Return(user, nil)

	fresh, err := svc.Refresh(ctx, pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, fresh.AccessToken)
}

func TestRefresh_AccessTokenRejected(t *testing.T) {
	svc, users := newTestAuthService(t)
	ctx := context.Background()
	user := activeUser(1, "ravi@example.com", "hunter2secret")

	users.EXPECT().GetByEmail(ctx, "ravi@example.com").Return(user, nil)
	pair, err := svc.Login(ctx, "ravi@example.com", "hunter2secret")
	require.NoError(t, err)

	// An access token must not work as a refresh token.
	_, err = svc.Refresh(ctx, pair.AccessToken)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
}

func TestVerifyAccessToken_Garbage(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.VerifyAccessToken("not-a-token")

	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
}

func TestVerifyAccessToken_RefreshTokenRejected(t *testing.T) {
	svc, users := newTestAuthService(t)
	ctx := context.Background()
	user := activeUser(1, "ravi@example.com", "hunter2secret")

	users.EXPECT().GetByEmail(ctx, "ravi@example.com").Return(user, nil)
	pair, err := svc.Login(ctx, "ravi@example.com", "hunter2secret")
	require.NoError(t, err)

	_, err = svc.VerifyAccessToken(pair.RefreshToken)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
}
