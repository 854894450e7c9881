package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/mutuals/internal/outreach/domain"
	"github.com/aussiebroadwan/mutuals/internal/outreach/store"
	"github.com/aussiebroadwan/mutuals/internal/outreach/template"
	"github.com/aussiebroadwan/mutuals/pkg/metrics"
	"github.com/aussiebroadwan/mutuals/pkg/slogx"
)

const maxMessageLen = 8000

type MessageService struct {
	Store store.Store
	Guard Guard

	// Now is overridable for tests
	Now func() time.Time
}

func (s *MessageService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

type CreateMessageInput struct {
	MutualID    int64
	EmployeeID  int64  // 0 = the mutual's employee
	JobID       *int64 // nil = the employee's job
	MessageText string // blank = render from the mutual's strength
	Status      string // blank = Draft
	Outcome     string // blank = Pending
	Strength    *int   // when set and different, the mutual is re-rated first
	CalendarURL string
}

// MessagePatch fields left nil are not touched.
type MessagePatch struct {
	MessageText *string
	Status      *string
	Outcome     *string
}

func (p MessagePatch) Empty() bool {
	return p.MessageText == nil && p.Status == nil && p.Outcome == nil
}

type MessageQuery struct {
	MutualID int64
	JobID    int64
	Status   string
	Limit    int
}

func (s *MessageService) List(ctx context.Context, userID int64, q MessageQuery) ([]domain.Message, error) {
	f := store.MessageFilter{UserID: userID, MutualID: q.MutualID, JobID: q.JobID, Limit: q.Limit}
	if q.Status != "" {
		status, _, err := domain.ParseStatus(q.Status)
		if err != nil {
			return nil, invalid("status", err.Error())
		}
		f.Status = status
	}
	return s.Store.Messages().ListMessages(ctx, f)
}

func (s *MessageService) Get(ctx context.Context, userID, messageID int64) (domain.Message, error) {
	return s.Guard.Message(ctx, userID, messageID)
}

// Create records a new outreach message. Every referenced row must belong to
// the caller. The writes are independent: a strength change on the mutual
// stays even if creating the message then fails.
func (s *MessageService) Create(ctx context.Context, userID int64, in CreateMessageInput) (domain.Message, error) {
	log := slogx.FromContext(ctx)

	var v validator
	v.check(in.MutualID > 0, "mutualId", "is required")
	v.check(len(in.MessageText) <= maxMessageLen, "messageText", "must be at most 8000 characters")
	if in.Strength != nil {
		v.check(domain.ValidStrength(*in.Strength), "strength", "must be between 0 and 5")
	}
	status, outcome, err := parseChange(&in.Status, &in.Outcome, domain.OutcomePending)
	if err != nil {
		return domain.Message{}, err
	}
	// Soft delete only applies to an existing message.
	v.check(status == nil || *status != domain.StatusDeleted, "status", "a new message cannot be Deleted")
	if err := v.err(); err != nil {
		return domain.Message{}, err
	}

	mutual, err := s.Guard.Mutual(ctx, userID, in.MutualID)
	if err != nil {
		return domain.Message{}, referenced(err)
	}

	employeeID := mutual.EmployeeID
	if in.EmployeeID != 0 && in.EmployeeID != employeeID {
		if _, _, err := s.Guard.Employee(ctx, userID, in.EmployeeID); err != nil {
			return domain.Message{}, referenced(err)
		}
		return domain.Message{}, invalid("employeeId", "must be the mutual's employee")
	}

	_, job, err := s.Guard.Employee(ctx, userID, employeeID)
	if err != nil {
		return domain.Message{}, referenced(err)
	}
	if in.JobID != nil && *in.JobID != job.ID {
		if _, err := s.Guard.Job(ctx, userID, *in.JobID); err != nil {
			return domain.Message{}, referenced(err)
		}
		return domain.Message{}, invalid("jobId", "must be the employee's job")
	}

	// Run the transition before any write so a bad status/outcome combination
	// fails without side effects.
	now := s.now()
	msg, err := domain.Message{
		UserID:     userID,
		MutualID:   mutual.ID,
		EmployeeID: employeeID,
		JobID:      &job.ID,
		Status:     domain.StatusDraft,
		Outcome:    domain.OutcomePending,
	}.Transition(status, outcome, now)
	if err != nil {
		return domain.Message{}, transitionErr(err)
	}

	if in.Strength != nil && *in.Strength != mutual.RatedStrength {
		mutual, err = s.Store.Mutuals().UpdateMutual(ctx, mutual.ID, store.MutualPatch{RatedStrength: in.Strength})
		if err != nil {
			return domain.Message{}, mapStoreErr(err)
		}
		log.Info("mutual re-rated from message", slog.Int64("mutual_id", mutual.ID), slog.Int("strength", mutual.RatedStrength))
	}

	msg.MessageText = strings.TrimSpace(in.MessageText)
	if msg.MessageText == "" {
		tctx, err := templateContext(ctx, s.Store, userID, mutual, in.CalendarURL)
		if err != nil {
			return domain.Message{}, err
		}
		_, msg.MessageText = template.Select(mutual.RatedStrength, tctx)
	}

	created, err := s.Store.Messages().CreateMessage(ctx, msg)
	if err != nil {
		log.Error("failed to create message", slog.Any("error", err))
		return domain.Message{}, mapStoreErr(err)
	}

	metrics.IncrementMessageTransition("", string(created.Status))
	log.Info("message created",
		slog.Int64("message_id", created.ID),
		slog.String("status", string(created.Status)),
	)
	return created, nil
}

// Update applies a patch through the transition rules. A patch that changes
// nothing does not write, so repeating it is harmless.
func (s *MessageService) Update(ctx context.Context, userID, messageID int64, p MessagePatch) (domain.Message, error) {
	current, err := s.Guard.Message(ctx, userID, messageID)
	if err != nil {
		return domain.Message{}, err
	}
	if p.Empty() {
		return current, nil
	}

	status, outcome, err := parseChange(p.Status, p.Outcome, current.Outcome)
	if err != nil {
		return domain.Message{}, err
	}

	next, err := current.Transition(status, outcome, s.now())
	if err != nil {
		return domain.Message{}, transitionErr(err)
	}

	if p.MessageText != nil {
		text := strings.TrimSpace(*p.MessageText)
		var v validator
		v.check(text != "", "messageText", "must not be empty")
		v.check(len(text) <= maxMessageLen, "messageText", "must be at most 8000 characters")
		v.check(current.Status != domain.StatusDeleted, "status", domain.ErrMessageDeleted.Error())
		if err := v.err(); err != nil {
			return domain.Message{}, err
		}
		next.MessageText = text
	}

	if next == current {
		return current, nil
	}

	updated, err := s.Store.Messages().UpdateMessage(ctx, next)
	if err != nil {
		return domain.Message{}, mapStoreErr(err)
	}

	if updated.Status != current.Status {
		metrics.IncrementMessageTransition(string(current.Status), string(updated.Status))
		slogx.FromContext(ctx).Info("message status changed",
			slog.Int64("message_id", updated.ID),
			slog.String("from", string(current.Status)),
			slog.String("to", string(updated.Status)),
		)
	}
	return updated, nil
}

// Delete is a soft delete, the row stays with status Deleted.
func (s *MessageService) Delete(ctx context.Context, userID, messageID int64) (domain.Message, error) {
	deleted := string(domain.StatusDeleted)
	return s.Update(ctx, userID, messageID, MessagePatch{Status: &deleted})
}

// parseChange turns the raw status/outcome strings into transition inputs.
// A blank or nil string means no change. The legacy "intro_made" status
// implies the IntroMade outcome unless an outcome is given or one was
// already recorded.
func parseChange(rawStatus, rawOutcome *string, currentOutcome domain.MessageOutcome) (*domain.MessageStatus, *domain.MessageOutcome, error) {
	var (
		status  *domain.MessageStatus
		outcome *domain.MessageOutcome
		implied domain.MessageOutcome
		v       validator
	)

	if rawStatus != nil && strings.TrimSpace(*rawStatus) != "" {
		st, imp, err := domain.ParseStatus(*rawStatus)
		v.check(err == nil, "status", "must be one of Draft, Sent, ResponseReceived, Deleted")
		status, implied = &st, imp
	}
	if rawOutcome != nil && strings.TrimSpace(*rawOutcome) != "" {
		oc, err := domain.ParseOutcome(*rawOutcome)
		v.check(err == nil, "outcome", "must be one of Pending, IntroMade, Declined, Ghosted, Interview")
		outcome = &oc
	}
	if err := v.err(); err != nil {
		return nil, nil, err
	}

	if implied != "" && outcome == nil && currentOutcome == domain.OutcomePending {
		outcome = &implied
	}
	return status, outcome, nil
}

func transitionErr(err error) error {
	switch {
	case errors.Is(err, domain.ErrUnknownStatus),
		errors.Is(err, domain.ErrStatusBackward),
		errors.Is(err, domain.ErrMessageDeleted):
		return invalid("status", err.Error())
	case errors.Is(err, domain.ErrUnknownOutcome),
		errors.Is(err, domain.ErrOutcomeBeforeSent):
		return invalid("outcome", err.Error())
	}
	return err
}
