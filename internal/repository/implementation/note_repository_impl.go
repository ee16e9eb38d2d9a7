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

type NoteRepositoryImpl struct {
	store kv.Store
	log   logger.ILogger
}

func NewNoteRepository(store kv.Store, log logger.ILogger) contract.NoteRepository {
	return &NoteRepositoryImpl{
		store: store,
		log:   log,
	}
}

func (r *NoteRepositoryImpl) List(ctx context.Context, userId string) ([]*entity.VoiceNote, error) {
	key := notesKey(userId)
	raw, found, err := r.store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if !found {
		return []*entity.VoiceNote{}, nil
	}

	var notes []*entity.VoiceNote
	if err := json.Unmarshal([]byte(raw), &notes); err != nil {
		// Data-loss event. Recover deterministically: warn and behave as if
		// the list were empty rather than crashing every caller. The raw
		// value stays in the store untouched until the next Save.
		r.log.Warn("note_repository", "corrupt note list, returning empty", map[string]interface{}{
			"key":   key,
			"error": apperrors.CorruptData(key, err).Error(),
		})
		return []*entity.VoiceNote{}, nil
	}
	if notes == nil {
		notes = []*entity.VoiceNote{}
	}
	return notes, nil
}

func (r *NoteRepositoryImpl) Save(ctx context.Context, note *entity.VoiceNote) error {
	notes, err := r.List(ctx, note.UserId)
	if err != nil {
		return err
	}

	// Upsert: a duplicate id replaces the stored entry in place so list
	// ordering under the UI never shifts on re-save. New ids are prepended,
	// keeping most-recent-first.
	replaced := false
	for i, existing := range notes {
		if existing.Id == note.Id {
			notes[i] = note
			replaced = true
			break
		}
	}
	if !replaced {
		notes = append([]*entity.VoiceNote{note}, notes...)
	}

	return r.writeList(ctx, note.UserId, notes)
}

func (r *NoteRepositoryImpl) Delete(ctx context.Context, userId, noteId string) error {
	notes, err := r.List(ctx, userId)
	if err != nil {
		return err
	}

	kept := notes[:0]
	for _, n := range notes {
		if n.Id != noteId {
			kept = append(kept, n)
		}
	}
	if len(kept) == len(notes) {
		// Nothing removed; skip the write so double-deletes stay no-ops.
		return nil
	}

	return r.writeList(ctx, userId, kept)
}

func (r *NoteRepositoryImpl) writeList(ctx context.Context, userId string, notes []*entity.VoiceNote) error {
	raw, err := json.Marshal(notes)
	if err != nil {
		return apperrors.StorageWrite(notesKey(userId), err)
	}
	if err := r.store.Set(ctx, notesKey(userId), string(raw)); err != nil {
		return apperrors.StorageWrite(notesKey(userId), err)
	}
	return nil
}
