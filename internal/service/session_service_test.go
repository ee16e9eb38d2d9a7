package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mm-voicenote-be/internal/dto"
	"mm-voicenote-be/internal/repository/implementation"
	"mm-voicenote-be/internal/repository/memory"
)

func newSessionService(t *testing.T) ISessionService {
	t.Helper()
	env := newTestEnv(t)
	sessionRepo := implementation.NewSessionRepository(env.store, env.log)
	return NewSessionService(sessionRepo, memory.NewTokenCache(time.Hour), "test-secret", time.Hour)
}

func TestLoginFabricatesDemoUser(t *testing.T) {
	svc := newSessionService(t)

	res, err := svc.Login(context.Background(), &dto.LoginRequest{})
	require.NoError(t, err)

	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "user_123", res.User.Id)
	assert.Equal(t, "Zaw Zaw", res.User.Name)
	assert.Equal(t, "zawzaw@example.com", res.User.Email)
}

func TestLoginThenRestoreYieldsDeepEqualUser(t *testing.T) {
	svc := newSessionService(t)
	ctx := context.Background()

	res, err := svc.Login(ctx, &dto.LoginRequest{Name: "Mya Mya", Email: "mya@example.com"})
	require.NoError(t, err)

	// Simulated restart: restore reads only persisted state.
	restored, err := svc.Restore(ctx)
	require.NoError(t, err)
	require.NotNil(t, restored)
	assert.Equal(t, res.User, restored)
}

func TestLogoutThenRestoreIsAnonymous(t *testing.T) {
	svc := newSessionService(t)
	ctx := context.Background()

	res, err := svc.Login(ctx, &dto.LoginRequest{})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, res.Token))

	restored, err := svc.Restore(ctx)
	require.NoError(t, err)
	assert.Nil(t, restored)
}

func TestResolveFallsBackToStorageAfterCacheLoss(t *testing.T) {
	env := newTestEnv(t)
	sessionRepo := implementation.NewSessionRepository(env.store, env.log)
	svc := NewSessionService(sessionRepo, memory.NewTokenCache(time.Hour), "test-secret", time.Hour)
	ctx := context.Background()

	res, err := svc.Login(ctx, &dto.LoginRequest{})
	require.NoError(t, err)

	// Fresh service instance over the same store: cache is empty, the
	// persisted record must still resolve the token.
	restarted := NewSessionService(sessionRepo, memory.NewTokenCache(time.Hour), "test-secret", time.Hour)
	user, err := restarted.Resolve(ctx, res.Token, res.User.Id)
	require.NoError(t, err)
	assert.Equal(t, res.User, user)

	// A token for someone else does not resolve.
	_, err = restarted.Resolve(ctx, res.Token, "someone-else")
	assert.Error(t, err)
}
