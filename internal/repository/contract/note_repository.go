package contract

import (
	"context"

	"mm-voicenote-be/internal/entity"
)

type NoteRepository interface {
	// List returns the user's notes, most recent first. An absent key yields
	// an empty slice; an undecodable value is treated as a data-loss event
	// and also yields an empty slice (logged, never propagated).
	List(ctx context.Context, userId string) ([]*entity.VoiceNote, error)
	// Save upserts by note id: an existing entry is replaced in place, a new
	// one is prepended.
	Save(ctx context.Context, note *entity.VoiceNote) error
	// Delete removes every entry with the given id. Idempotent.
	Delete(ctx context.Context, userId, noteId string) error
}
