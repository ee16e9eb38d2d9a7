package gemini

import (
	"context"

	"mm-voicenote-be/internal/entity"
)

// NoteAnalysis is the model's structured output for one recording. The core
// attaches id, user, timestamp and duration on top of it.
type NoteAnalysis struct {
	OriginalText string   `json:"originalText"`
	RefinedText  string   `json:"refinedText"`
	Summary      string   `json:"summary"`
	Keywords     []string `json:"keywords"`
	Category     string   `json:"category"`
	Title        string   `json:"title"`
}

// ReportAnalysis is the model's structured output for a period synthesis.
type ReportAnalysis struct {
	TopTopics       []string `json:"topTopics"`
	Insights        string   `json:"insights"`
	Recommendations string   `json:"recommendations"`
}

// Gateway is the external AI collaborator. Any transport or parse failure is
// fatal for the single in-flight operation; callers never save partial
// results and no retry is attempted.
type Gateway interface {
	ProcessAudio(ctx context.Context, audio []byte, mimeType string) (*NoteAnalysis, error)
	GenerateReport(ctx context.Context, notes []*entity.VoiceNote, period entity.ReportPeriod) (*ReportAnalysis, error)
}
