package implementation

import (
	"context"
	"encoding/json"

	"mm-voicenote-be/internal/entity"
	"mm-voicenote-be/internal/pkg/apperrors"
	"mm-voicenote-be/internal/pkg/logger"
	"mm-voicenote-be/internal/repository/contract"
	"mm-voicenote-be/pkg/kv"
)

type SessionRepositoryImpl struct {
	store kv.Store
	log   logger.ILogger
}

func NewSessionRepository(store kv.Store, log logger.ILogger) contract.SessionRepository {
	return &SessionRepositoryImpl{
		store: store,
		log:   log,
	}
}

func (r *SessionRepositoryImpl) GetCurrentUser(ctx context.Context) (*entity.User, error) {
	raw, found, err := r.store.Get(ctx, currentUserKey)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	var user entity.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		// Same recovery policy as the list repositories: an unreadable
		// current-user record means nobody is logged in.
		r.log.Warn("session_repository", "corrupt current-user record, treating as logged out", map[string]interface{}{
			"key":   currentUserKey,
			"error": apperrors.CorruptData(currentUserKey, err).Error(),
		})
		return nil, nil
	}
	return &user, nil
}

func (r *SessionRepositoryImpl) SetCurrentUser(ctx context.Context, user *entity.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return apperrors.StorageWrite(currentUserKey, err)
	}
	if err := r.store.Set(ctx, currentUserKey, string(raw)); err != nil {
		return apperrors.StorageWrite(currentUserKey, err)
	}
	return nil
}

func (r *SessionRepositoryImpl) ClearCurrentUser(ctx context.Context) error {
	if err := r.store.Remove(ctx, currentUserKey); err != nil {
		return apperrors.StorageWrite(currentUserKey, err)
	}
	return nil
}
