package implementation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mm-voicenote-be/internal/entity"
	"mm-voicenote-be/internal/pkg/apperrors"
)

// failingStore rejects every write, simulating quota exhaustion.
type failingStore struct {
	data map[string]string
}

var errQuota = errors.New("quota exceeded")

func (s *failingStore) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *failingStore) Set(_ context.Context, _, _ string) error {
	return errQuota
}

func (s *failingStore) Remove(_ context.Context, _ string) error {
	return errQuota
}

func TestWriteFailuresPropagate(t *testing.T) {
	store := &failingStore{data: map[string]string{}}
	_, log := newTestStore(t)

	noteRepo := NewNoteRepository(store, log)
	reportRepo := NewReportRepository(store, log)
	sessionRepo := NewSessionRepository(store, log)
	ctx := context.Background()

	err := noteRepo.Save(ctx, note("id-a", "u1", "A", 1))
	assert.True(t, errors.Is(err, apperrors.ErrStorageWrite))

	err = reportRepo.Save(ctx, report("r1", "u1", entity.PeriodDaily, 1))
	assert.True(t, errors.Is(err, apperrors.ErrStorageWrite))

	err = sessionRepo.SetCurrentUser(ctx, &entity.User{Id: "u1"})
	assert.True(t, errors.Is(err, apperrors.ErrStorageWrite))

	// Reads still work; nothing was persisted.
	notes, err := noteRepo.List(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestDeleteSkipsWriteWhenNothingMatches(t *testing.T) {
	// With no matching entry the repository must not touch the store, so a
	// delete of a missing id succeeds even when writes are rejected.
	store := &failingStore{data: map[string]string{}}
	_, log := newTestStore(t)
	noteRepo := NewNoteRepository(store, log)

	err := noteRepo.Delete(context.Background(), "u1", "missing")
	assert.NoError(t, err)
}
