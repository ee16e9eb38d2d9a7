package implementation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mm-voicenote-be/internal/entity"
)

func TestSessionRepositoryLifecycle(t *testing.T) {
	store, log := newTestStore(t)
	repo := NewSessionRepository(store, log)
	ctx := context.Background()

	// Anonymous before any login
	user, err := repo.GetCurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, user)

	saved := &entity.User{
		Id:     "user_123",
		Name:   "Zaw Zaw",
		Email:  "zawzaw@example.com",
		Avatar: "https://picsum.photos/seed/zaw/200",
	}
	require.NoError(t, repo.SetCurrentUser(ctx, saved))

	restored, err := repo.GetCurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, restored)

	require.NoError(t, repo.ClearCurrentUser(ctx))
	require.NoError(t, repo.ClearCurrentUser(ctx)) // idempotent

	user, err = repo.GetCurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestSessionRepositoryCorruptRecordMeansAnonymous(t *testing.T) {
	store, log := newTestStore(t)
	repo := NewSessionRepository(store, log)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, currentUserKey, "not a user"))

	user, err := repo.GetCurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, user)
}
