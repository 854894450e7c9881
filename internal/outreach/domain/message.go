package domain

import (
	"errors"
	"strings"
	"time"
)

type MessageStatus string

const (
	StatusDraft            MessageStatus = "Draft"
	StatusSent             MessageStatus = "Sent"
	StatusResponseReceived MessageStatus = "ResponseReceived"
	StatusDeleted          MessageStatus = "Deleted"
)

type MessageOutcome string

const (
	OutcomePending   MessageOutcome = "Pending"
	OutcomeIntroMade MessageOutcome = "IntroMade"
	OutcomeDeclined  MessageOutcome = "Declined"
	OutcomeGhosted   MessageOutcome = "Ghosted"
	OutcomeInterview MessageOutcome = "Interview"
)

var (
	ErrUnknownStatus     = errors.New("unknown message status")
	ErrUnknownOutcome    = errors.New("unknown message outcome")
	ErrStatusBackward    = errors.New("message status cannot move backward")
	ErrMessageDeleted    = errors.New("message has been deleted")
	ErrOutcomeBeforeSent = errors.New("outcome can only be recorded once the message is sent")
)

// statusRank orders the live states. Deleted sits outside the path.
var statusRank = map[MessageStatus]int{
	StatusDraft:            0,
	StatusSent:             1,
	StatusResponseReceived: 2,
}

// ParseStatus accepts the canonical names plus the older lower case
// vocabulary. "intro_made" used to be a status; it now maps to
// ResponseReceived and implies the IntroMade outcome.
func ParseStatus(s string) (status MessageStatus, implied MessageOutcome, err error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "draft", "pending", "queued":
		return StatusDraft, "", nil
	case "sent":
		return StatusSent, "", nil
	case "responsereceived", "response_received", "responded":
		return StatusResponseReceived, "", nil
	case "intro_made":
		return StatusResponseReceived, OutcomeIntroMade, nil
	case "deleted":
		return StatusDeleted, "", nil
	}
	return "", "", ErrUnknownStatus
}

// ParseOutcome accepts canonical names case-insensitively, with or without
// underscores.
func ParseOutcome(s string) (MessageOutcome, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "")
	for _, o := range []MessageOutcome{OutcomePending, OutcomeIntroMade, OutcomeDeclined, OutcomeGhosted, OutcomeInterview} {
		if strings.ToLower(string(o)) == norm {
			return o, nil
		}
	}
	return "", ErrUnknownOutcome
}

// CountsAsSent is true for anything past Draft that is still visible.
func (s MessageStatus) CountsAsSent() bool {
	return s == StatusSent || s == StatusResponseReceived
}

type Message struct {
	ID           int64
	UserID       int64
	MutualID     int64
	EmployeeID   int64
	JobID        *int64
	MessageText  string
	Status       MessageStatus
	Outcome      MessageOutcome
	SentDate     *time.Time
	ResponseDate *time.Time
	IntroDate    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Transition applies a status and/or outcome change and returns the updated
// message. nil means "leave as is". Status is applied first so a single
// update can move a draft to Sent and record the outcome together.
//
// Rules:
//   - status only moves forward along Draft -> Sent -> ResponseReceived,
//     repeating the current status is a no-op
//   - any live state may move to Deleted, nothing leaves Deleted
//   - an outcome other than Pending needs the message to be past Draft
//   - dates are stamped the first time a state is reached and never cleared
func (m Message) Transition(status *MessageStatus, outcome *MessageOutcome, now time.Time) (Message, error) {
	if m.Status == StatusDeleted {
		if (status == nil || *status == StatusDeleted) && outcome == nil {
			return m, nil
		}
		return m, ErrMessageDeleted
	}

	if status != nil && *status != m.Status {
		if *status != StatusDeleted {
			next, ok := statusRank[*status]
			if !ok {
				return m, ErrUnknownStatus
			}
			if next < statusRank[m.Status] {
				return m, ErrStatusBackward
			}
		}
		m.Status = *status
	}

	if outcome != nil && *outcome != m.Outcome {
		if *outcome != OutcomePending && m.Status == StatusDraft {
			return m, ErrOutcomeBeforeSent
		}
		m.Outcome = *outcome
	}

	m.stamp(now)
	return m, nil
}

func (m *Message) stamp(now time.Time) {
	switch m.Status {
	case StatusSent:
		m.SentDate = stampOnce(m.SentDate, now)
	case StatusResponseReceived:
		m.SentDate = stampOnce(m.SentDate, now)
		m.ResponseDate = stampOnce(m.ResponseDate, now)
	}

	// IntroDate feeds the same intro count the dashboard reports.
	if m.Outcome == OutcomeIntroMade {
		m.IntroDate = stampOnce(m.IntroDate, now)
	}
}

func stampOnce(t *time.Time, now time.Time) *time.Time {
	if t != nil {
		return t
	}
	n := now.UTC()
	return &n
}
