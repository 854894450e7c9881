package service_test

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/mutuals/internal/outreach/domain"
	"github.com/aussiebroadwan/mutuals/internal/outreach/service"
	"github.com/stretchr/testify/require"
)

func TestCreateMessageDefaults(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()
	c := s.chain(t, "alice", 3)

	m, err := s.messages.Create(ctx, c.user.ID, service.CreateMessageInput{MutualID: c.mutual.ID})
	require.NoError(t, err)
	require.Equal(t, domain.StatusDraft, m.Status)
	require.Equal(t, domain.OutcomePending, m.Outcome)
	require.Equal(t, c.employee.ID, m.EmployeeID)
	require.NotNil(t, m.JobID)
	require.Equal(t, c.job.ID, *m.JobID)
	require.Nil(t, m.SentDate)
	require.Contains(t, m.MessageText, "Hi Alex")
}

func TestCreateMessageQuotesProfileLinks(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()
	c := s.chain(t, "alice", 4)

	_, err := s.users.UpdateProfile(ctx, c.user.ID, service.ProfileUpdate{
		LinkedInURL: ptr("https://linkedin.com/in/alice"),
	})
	require.NoError(t, err)

	m, err := s.messages.Create(ctx, c.user.ID, service.CreateMessageInput{
		MutualID:    c.mutual.ID,
		CalendarURL: "https://cal.example/alice",
	})
	require.NoError(t, err)
	require.Contains(t, m.MessageText, "(https://linkedin.com/in/alice)")
	require.Contains(t, m.MessageText, "https://cal.example/alice")
	require.NotContains(t, m.MessageText, "LinkedIn profile on request")

	preview, err := s.mutuals.Preview(ctx, c.user.ID, c.mutual.ID, "")
	require.NoError(t, err)
	require.Contains(t, preview.Text, "https://linkedin.com/in/alice")

	// a bare host is not an http(s) URL
	_, err = s.users.UpdateProfile(ctx, c.user.ID, service.ProfileUpdate{LinkedInURL: ptr("linkedin.com/in/alice")})
	requireFieldError(t, err, "linkedInUrl")
}

func TestCreateMessageSentStampsDate(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()
	c := s.chain(t, "alice", 3)

	m, err := s.messages.Create(ctx, c.user.ID, service.CreateMessageInput{
		MutualID:    c.mutual.ID,
		MessageText: "Custom note",
		Status:      "sent",
	})
	require.NoError(t, err)
	require.Equal(t, domain.StatusSent, m.Status)
	require.Equal(t, "Custom note", m.MessageText)
	require.NotNil(t, m.SentDate)
	require.True(t, fixedNow.Equal(*m.SentDate))
}

func TestCreateMessageStrengthCascade(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()
	c := s.chain(t, "alice", 1)

	m, err := s.messages.Create(ctx, c.user.ID, service.CreateMessageInput{
		MutualID: c.mutual.ID,
		Strength: ptr(5),
	})
	require.NoError(t, err)
	require.Contains(t, m.MessageText, "Hey Alex")

	mu, err := s.mutuals.Get(ctx, c.user.ID, c.mutual.ID)
	require.NoError(t, err)
	require.Equal(t, 5, mu.RatedStrength)
}

func TestCreateMessageValidation(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()
	c := s.chain(t, "alice", 3)
	other, err := s.employees.Create(ctx, c.user.ID, c.job.ID, service.EmployeeInput{Name: "Someone Else"})
	require.NoError(t, err)

	tests := []struct {
		name  string
		in    service.CreateMessageInput
		field string
	}{
		{"missing mutual", service.CreateMessageInput{}, "mutualId"},
		{"unknown status", service.CreateMessageInput{MutualID: c.mutual.ID, Status: "archived"}, "status"},
		{"born deleted", service.CreateMessageInput{MutualID: c.mutual.ID, Status: "Deleted"}, "status"},
		{"outcome on draft", service.CreateMessageInput{MutualID: c.mutual.ID, Outcome: "Interview"}, "outcome"},
		{"strength out of range", service.CreateMessageInput{MutualID: c.mutual.ID, Strength: ptr(9)}, "strength"},
		{"employee mismatch", service.CreateMessageInput{MutualID: c.mutual.ID, EmployeeID: other.ID}, "employeeId"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.messages.Create(ctx, c.user.ID, tt.in)
			requireFieldError(t, err, tt.field)
		})
	}
}

func TestUpdateMessageTransitions(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()
	c := s.chain(t, "alice", 4)

	m, err := s.messages.Create(ctx, c.user.ID, service.CreateMessageInput{MutualID: c.mutual.ID})
	require.NoError(t, err)

	m, err = s.messages.Update(ctx, c.user.ID, m.ID, service.MessagePatch{Status: ptr("Sent")})
	require.NoError(t, err)
	require.Equal(t, domain.StatusSent, m.Status)
	require.NotNil(t, m.SentDate)

	// Legacy status implies the outcome
	m, err = s.messages.Update(ctx, c.user.ID, m.ID, service.MessagePatch{Status: ptr("intro_made")})
	require.NoError(t, err)
	require.Equal(t, domain.StatusResponseReceived, m.Status)
	require.Equal(t, domain.OutcomeIntroMade, m.Outcome)
	require.NotNil(t, m.ResponseDate)
	require.NotNil(t, m.IntroDate)

	_, err = s.messages.Update(ctx, c.user.ID, m.ID, service.MessagePatch{Status: ptr("Draft")})
	requireFieldError(t, err, "status")

	got, err := s.messages.Get(ctx, c.user.ID, m.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusResponseReceived, got.Status)
}

func TestUpdateMessageNoopAndEmptyPatch(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()
	c := s.chain(t, "alice", 4)

	m, err := s.messages.Create(ctx, c.user.ID, service.CreateMessageInput{MutualID: c.mutual.ID, Status: "Sent"})
	require.NoError(t, err)

	same, err := s.messages.Update(ctx, c.user.ID, m.ID, service.MessagePatch{})
	require.NoError(t, err)
	require.Equal(t, m, same)

	again, err := s.messages.Update(ctx, c.user.ID, m.ID, service.MessagePatch{Status: ptr("Sent")})
	require.NoError(t, err)
	require.Equal(t, m.UpdatedAt, again.UpdatedAt)
	require.Equal(t, m.Status, again.Status)
}

func TestDeleteMessage(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()
	c := s.chain(t, "alice", 4)
	bob := s.register(t, "bob")

	m, err := s.messages.Create(ctx, c.user.ID, service.CreateMessageInput{MutualID: c.mutual.ID})
	require.NoError(t, err)

	_, err = s.messages.Delete(ctx, bob.ID, m.ID)
	require.ErrorIs(t, err, service.ErrForbidden)

	deleted, err := s.messages.Delete(ctx, c.user.ID, m.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusDeleted, deleted.Status)

	live, err := s.messages.List(ctx, c.user.ID, service.MessageQuery{})
	require.NoError(t, err)
	require.Empty(t, live)

	all, err := s.messages.List(ctx, c.user.ID, service.MessageQuery{Status: "Deleted"})
	require.NoError(t, err)
	require.Len(t, all, 1)

	_, err = s.messages.Update(ctx, c.user.ID, m.ID, service.MessagePatch{MessageText: ptr("edit")})
	requireFieldError(t, err, "status")

	_, err = s.messages.Update(ctx, c.user.ID, m.ID, service.MessagePatch{Status: ptr("Sent")})
	requireFieldError(t, err, "status")
}

func TestListMessagesRejectsUnknownStatus(t *testing.T) {
	s := newServices(t)
	u := s.register(t, "alice")

	_, err := s.messages.List(context.Background(), u.ID, service.MessageQuery{Status: "archived"})
	requireFieldError(t, err, "status")
}
