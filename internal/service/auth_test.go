package service

import (
	"context"
	"testing"
	"time"

	"toko-backend/internal/apperr"
	"toko-backend/internal/auth"
	"toko-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T, verifier auth.FederatedVerifier) AuthService {
	t.Helper()
	db := newTestDB(t)
	return NewAuthService(
		repository.NewUserRepository(db),
		auth.NewPasswordHasher(4),
		auth.NewTokenIssuer("test-secret", time.Hour),
		verifier,
	)
}

func TestAuthService_RegisterThenLogin(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t, nil)

	userID, err := svc.Register(ctx, "alice", "alice@example.com", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, userID)

	token, err := svc.Login(ctx, "alice@example.com", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestAuthService_RegisterDuplicate(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t, nil)

	_, err := svc.Register(ctx, "alice", "alice@example.com", "secret123")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "alice2", "alice@example.com", "secret123")
	assert.ErrorIs(t, err, apperr.ErrDuplicateIdentity)

	_, err = svc.Register(ctx, "alice", "other@example.com", "secret123")
	assert.ErrorIs(t, err, apperr.ErrDuplicateIdentity)
}

func TestAuthService_LoginFailures(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t, nil)

	_, err := svc.Register(ctx, "alice", "alice@example.com", "secret123")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "nobody@example.com", "secret123")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = svc.Login(ctx, "alice@example.com", "wrong-password")
	assert.ErrorIs(t, err, apperr.ErrInvalidCredentials)
}

func TestAuthService_GoogleLogin(t *testing.T) {
	ctx := context.Background()
	verifier := &fakeVerifier{identities: map[string]*auth.Identity{
		"good-token": {
			SubjectID: "google-sub-1",
			Email:     "bob@example.com",
			Name:      "Bob",
			Picture:   "https://example.com/bob.png",
		},
	}}
	svc := newAuthService(t, verifier)

	// First federated login creates the user.
	result, err := svc.GoogleLogin(ctx, "good-token")
	require.NoError(t, err)
	assert.True(t, result.Created)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "bob@example.com", result.User.Email)
	assert.Equal(t, "google", result.User.Provider)

	// Second login finds the same user.
	again, err := svc.GoogleLogin(ctx, "good-token")
	require.NoError(t, err)
	assert.False(t, again.Created)
	assert.Equal(t, result.User.ID, again.User.ID)

	_, err = svc.GoogleLogin(ctx, "bad-token")
	assert.ErrorIs(t, err, apperr.ErrInvalidToken)
}

func TestAuthService_UpdatePassword(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t, nil)

	userID, err := svc.Register(ctx, "alice", "alice@example.com", "secret123")
	require.NoError(t, err)

	err = svc.UpdatePassword(ctx, userID, "wrong-password", "newsecret")
	assert.ErrorIs(t, err, apperr.ErrInvalidCredentials)

	err = svc.UpdatePassword(ctx, "no-such-user", "secret123", "newsecret")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	require.NoError(t, svc.UpdatePassword(ctx, userID, "secret123", "newsecret"))

	_, err = svc.Login(ctx, "alice@example.com", "secret123")
	assert.ErrorIs(t, err, apperr.ErrInvalidCredentials)

	_, err = svc.Login(ctx, "alice@example.com", "newsecret")
	assert.NoError(t, err)
}
