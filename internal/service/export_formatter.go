package service

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"mm-voicenote-be/internal/entity"
)

// NoteExport is the downloadable rendering of one note.
type NoteExport struct {
	Filename string
	Content  string
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// FormatNoteExport renders a note as the flat text block the client offers
// for download. Field order and labels are a boundary contract with files
// users already exported; do not reorder.
func FormatNoteExport(n *entity.VoiceNote) *NoteExport {
	content := fmt.Sprintf(`TITLE: %s
DATE: %s
CATEGORY: %s

SUMMARY:
%s

REFINED TEXT:
%s

KEYWORDS:
%s

ORIGINAL TRANSCRIPT:
%s`,
		n.Title,
		time.UnixMilli(n.Timestamp).Format("1/2/2006, 3:04:05 PM"),
		n.Category,
		n.Summary,
		n.RefinedText,
		strings.Join(n.Keywords, ", "),
		n.OriginalText,
	)

	return &NoteExport{
		Filename: whitespaceRun.ReplaceAllString(n.Title, "_") + "_AI_Note.txt",
		Content:  content,
	}
}
