package entity

// VoiceNote is one recorded utterance after AI processing. Notes are
// immutable once saved; the only mutation path is deletion.
type VoiceNote struct {
	Id            string   `json:"id"`
	UserId        string   `json:"userId"`
	Title         string   `json:"title"`
	OriginalText  string   `json:"originalText"`
	RefinedText   string   `json:"refinedText"`
	Summary       string   `json:"summary"`
	Category      string   `json:"category"`
	Keywords      []string `json:"keywords"`
	Timestamp     int64    `json:"timestamp"`     // epoch millis
	AudioDuration float64  `json:"audioDuration"` // seconds, measured client-side
}
