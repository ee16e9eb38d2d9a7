package implementation

// Storage key layout. This must stay bit-for-bit identical to the layout the
// existing client wrote, so stored data survives a backend migration.
const (
	notesKeyPrefix   = "mm_ai_notes_"
	reportsKeyPrefix = "mm_ai_reports_"
	currentUserKey   = "mm_ai_current_user"
)

func notesKey(userId string) string   { return notesKeyPrefix + userId }
func reportsKey(userId string) string { return reportsKeyPrefix + userId }
