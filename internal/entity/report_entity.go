package entity

type ReportPeriod string

const (
	PeriodDaily   ReportPeriod = "daily"
	PeriodWeekly  ReportPeriod = "weekly"
	PeriodMonthly ReportPeriod = "monthly"
)

// Valid reports whether p is one of the three known reporting periods.
func (p ReportPeriod) Valid() bool {
	switch p {
	case PeriodDaily, PeriodWeekly, PeriodMonthly:
		return true
	}
	return false
}

// Report is an AI-generated synthesis over a set of notes for one period.
// NoteCount is the snapshot count at generation time, never recomputed.
type Report struct {
	Id              string       `json:"id"`
	UserId          string       `json:"userId"`
	Period          ReportPeriod `json:"period"`
	NoteCount       int          `json:"noteCount"`
	TopTopics       []string     `json:"topTopics"`
	Insights        string       `json:"insights"`
	Recommendations string       `json:"recommendations"`
	Timestamp       int64        `json:"timestamp"`
}
