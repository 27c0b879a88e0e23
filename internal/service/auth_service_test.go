package service

import (
	"Inkstone/internal/api/dto"
	"Inkstone/internal/model"
	"Inkstone/internal/pkg/security"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthServiceFixture(t *testing.T) (*AuthService, *fakeStore) {
	setTestConfig(t)
	store := newFakeStore()
	return NewAuthService(store), store
}

func TestLogin(t *testing.T) {
	svc, store := newAuthServiceFixture(t)
	ctx := context.Background()

	hashed, err := security.HashPassword("secretpass")
	require.NoError(t, err)
	alice := store.addUser(&model.User{Email: "alice@example.com", Nickname: "alice", HashedPassword: hashed, IsActive: true})

	token, err := svc.Login(ctx, &dto.LoginDTO{Email: "alice@example.com", Password: "secretpass"})
	require.NoError(t, err)
	assert.Equal(t, "bearer", token.TokenType)
	assert.NotEmpty(t, token.AccessToken)
	assert.NotEmpty(t, token.RefreshToken)

	claims, err := security.ValidateToken(token.AccessToken, security.TokenTypeAccess)
	require.NoError(t, err)
	userID, err := security.SubjectUserID(claims)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, userID)
}

func TestLoginRejections(t *testing.T) {
	svc, store := newAuthServiceFixture(t)
	ctx := context.Background()

	hashed, _ := security.HashPassword("secretpass")
	store.addUser(&model.User{Email: "alice@example.com", Nickname: "alice", HashedPassword: hashed, IsActive: true})
	store.addUser(&model.User{Email: "banned@example.com", Nickname: "banned", HashedPassword: hashed, IsActive: false})

	// unknown email and wrong password look the same to the caller
	_, err := svc.Login(ctx, &dto.LoginDTO{Email: "nobody@example.com", Password: "secretpass"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, &dto.LoginDTO{Email: "alice@example.com", Password: "wrongpass1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, &dto.LoginDTO{Email: "banned@example.com", Password: "secretpass"})
	assert.ErrorIs(t, err, ErrInactiveUser)
}

func TestRefresh(t *testing.T) {
	svc, store := newAuthServiceFixture(t)
	ctx := context.Background()

	hashed, _ := security.HashPassword("secretpass")
	alice := store.addUser(&model.User{Email: "alice@example.com", Nickname: "alice", HashedPassword: hashed, IsActive: true})

	refreshToken, err := security.GenerateRefreshToken(alice.ID)
	require.NoError(t, err)

	token, err := svc.Refresh(ctx, refreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, token.AccessToken)
	assert.Empty(t, token.RefreshToken)

	// an access token must not pass as a refresh token
	accessToken, err := security.GenerateAccessToken(alice.ID)
	require.NoError(t, err)
	_, err = svc.Refresh(ctx, accessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestResetPassword(t *testing.T) {
	svc, store := newAuthServiceFixture(t)
	ctx := context.Background()

	hashed, _ := security.HashPassword("secretpass")
	alice := store.addUser(&model.User{Email: "alice@example.com", Nickname: "alice", HashedPassword: hashed, IsActive: true})

	err := svc.RecoverPassword(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)

	require.NoError(t, svc.RecoverPassword(ctx, "alice@example.com"))

	resetToken, err := security.GeneratePasswordResetToken("alice@example.com")
	require.NoError(t, err)

	err = svc.ResetPassword(ctx, &dto.ResetPasswordDTO{Token: "not-a-token", NewPassword: "newsecret1"})
	assert.ErrorIs(t, err, ErrInvalidToken)

	err = svc.ResetPassword(ctx, &dto.ResetPasswordDTO{Token: resetToken, NewPassword: "newsecret1"})
	require.NoError(t, err)
	assert.True(t, security.CheckPasswordHash("newsecret1", store.users[alice.ID].HashedPassword))
}
