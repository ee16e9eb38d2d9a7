package dto

import "mm-voicenote-be/internal/entity"

// CreateNoteRequest carries one finished recording. Audio arrives base64
// encoded the way the recorder produces it; the duration is measured
// client-side and attached verbatim to the saved note.
type CreateNoteRequest struct {
	Audio         string  `json:"audio" validate:"required,base64"`
	MimeType      string  `json:"mimeType" validate:"required"`
	AudioDuration float64 `json:"audioDuration" validate:"gte=0"`
}

type CreateNoteResponse struct {
	Note *entity.VoiceNote `json:"note"`
}

type ListNotesResponse struct {
	Notes []*entity.VoiceNote `json:"notes"`
}
