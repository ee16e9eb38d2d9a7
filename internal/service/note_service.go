package service

import (
	"context"
	"encoding/base64"
	"strings"
	"time"

	"github.com/google/uuid"

	"mm-voicenote-be/internal/dto"
	"mm-voicenote-be/internal/entity"
	"mm-voicenote-be/internal/pkg/apperrors"
	"mm-voicenote-be/internal/pkg/logger"
	"mm-voicenote-be/internal/repository/contract"
	"mm-voicenote-be/pkg/events"
	"mm-voicenote-be/pkg/gemini"
)

type INoteService interface {
	Create(ctx context.Context, userId string, req *dto.CreateNoteRequest) (*entity.VoiceNote, error)
	// List returns the user's notes newest first. A non-empty query filters
	// by title, refined text or keyword, case-insensitive.
	List(ctx context.Context, userId, query string) ([]*entity.VoiceNote, error)
	Delete(ctx context.Context, userId, noteId string) error
	// Export renders one note as the downloadable text block.
	Export(ctx context.Context, userId, noteId string) (*NoteExport, error)
}

type noteService struct {
	noteRepo         contract.NoteRepository
	gateway          gemini.Gateway
	publisherService IPublisherService
	log              logger.ILogger
}

func NewNoteService(
	noteRepo contract.NoteRepository,
	gateway gemini.Gateway,
	publisherService IPublisherService,
	log logger.ILogger,
) INoteService {
	return &noteService{
		noteRepo:         noteRepo,
		gateway:          gateway,
		publisherService: publisherService,
		log:              log,
	}
}

func (s *noteService) Create(ctx context.Context, userId string, req *dto.CreateNoteRequest) (*entity.VoiceNote, error) {
	audio, err := base64.StdEncoding.DecodeString(req.Audio)
	if err != nil {
		return nil, apperrors.Validation("audio is not valid base64")
	}
	if len(audio) == 0 {
		return nil, apperrors.Validation("audio is empty")
	}

	// Gateway failure is fatal for this recording: no partial note is saved.
	analysis, err := s.gateway.ProcessAudio(ctx, audio, req.MimeType)
	if err != nil {
		return nil, err
	}

	note := &entity.VoiceNote{
		Id:            uuid.NewString(),
		UserId:        userId,
		Title:         analysis.Title,
		OriginalText:  analysis.OriginalText,
		RefinedText:   analysis.RefinedText,
		Summary:       analysis.Summary,
		Category:      analysis.Category,
		Keywords:      analysis.Keywords,
		Timestamp:     time.Now().UnixMilli(),
		AudioDuration: req.AudioDuration,
	}

	if err := s.noteRepo.Save(ctx, note); err != nil {
		return nil, err
	}

	s.publish(ctx, events.TypeNoteCreated, map[string]interface{}{
		"note_id": note.Id,
		"user_id": userId,
		"title":   note.Title,
	})

	return note, nil
}

func (s *noteService) List(ctx context.Context, userId, query string) ([]*entity.VoiceNote, error) {
	notes, err := s.noteRepo.List(ctx, userId)
	if err != nil {
		return nil, err
	}
	if query == "" {
		return notes, nil
	}

	q := strings.ToLower(query)
	filtered := make([]*entity.VoiceNote, 0, len(notes))
	for _, n := range notes {
		if noteMatches(n, q) {
			filtered = append(filtered, n)
		}
	}
	return filtered, nil
}

func noteMatches(n *entity.VoiceNote, q string) bool {
	if strings.Contains(strings.ToLower(n.Title), q) ||
		strings.Contains(strings.ToLower(n.RefinedText), q) {
		return true
	}
	for _, k := range n.Keywords {
		if strings.Contains(strings.ToLower(k), q) {
			return true
		}
	}
	return false
}

func (s *noteService) Delete(ctx context.Context, userId, noteId string) error {
	if err := s.noteRepo.Delete(ctx, userId, noteId); err != nil {
		return err
	}

	s.publish(ctx, events.TypeNoteDeleted, map[string]interface{}{
		"note_id": noteId,
		"user_id": userId,
	})
	return nil
}

func (s *noteService) Export(ctx context.Context, userId, noteId string) (*NoteExport, error) {
	notes, err := s.noteRepo.List(ctx, userId)
	if err != nil {
		return nil, err
	}
	for _, n := range notes {
		if n.Id == noteId {
			return FormatNoteExport(n), nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// publish logs and moves on: the activity stream is auxiliary and must not
// fail the request that triggered it.
func (s *noteService) publish(ctx context.Context, eventType string, data map[string]interface{}) {
	evt := events.BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
	if err := s.publisherService.Publish(ctx, evt); err != nil {
		s.log.Warn("note_service", "failed to publish event", map[string]interface{}{
			"event": eventType,
			"error": err.Error(),
		})
	}
}
