package domain

import "time"

// Stats is the dashboard summary for one user. Deleted messages are excluded
// from every count.
type Stats struct {
	JobsCount              int
	MutualsCount           int
	MessagesSentCount      int // status past Draft
	IntroductionsMadeCount int // outcome IntroMade only
	ResponsesCount         int
	InterviewsCount        int
	ByStatus               map[MessageStatus]int
	ByOutcome              map[MessageOutcome]int
}

// ResponseRate is responses over sent messages, 0 when nothing was sent.
func (s Stats) ResponseRate() float64 {
	if s.MessagesSentCount == 0 {
		return 0
	}
	return float64(s.ResponsesCount) / float64(s.MessagesSentCount)
}

// ActivityDay is one bucket of the outreach activity chart.
type ActivityDay struct {
	Date      time.Time // midnight UTC
	Sent      int
	Responses int
	Intros    int
}
