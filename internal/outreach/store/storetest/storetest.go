// Package storetest is a conformance suite every store driver runs against
// a fresh, migrated database.
package storetest

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/mutuals/internal/outreach/domain"
	"github.com/aussiebroadwan/mutuals/internal/outreach/store"
	"github.com/stretchr/testify/require"
)

// Factory returns an empty, migrated store. The suite closes it.
type Factory func(t *testing.T) store.Store

func Run(t *testing.T, newStore Factory) {
	t.Run("Users", func(t *testing.T) { testUsers(t, newStore(t)) })
	t.Run("Preferences", func(t *testing.T) { testPreferences(t, newStore(t)) })
	t.Run("Jobs", func(t *testing.T) { testJobs(t, newStore(t)) })
	t.Run("Mutuals", func(t *testing.T) { testMutuals(t, newStore(t)) })
	t.Run("Messages", func(t *testing.T) { testMessages(t, newStore(t)) })
	t.Run("DeleteJob", func(t *testing.T) { testDeleteJob(t, newStore(t)) })
	t.Run("Sessions", func(t *testing.T) { testSessions(t, newStore(t)) })
	t.Run("Stats", func(t *testing.T) { testStats(t, newStore(t)) })
}

func ptr[T any](v T) *T { return &v }

// fixture is one user with a job, an employee and a mutual.
type fixture struct {
	user     domain.User
	job      domain.Job
	employee domain.Employee
	mutual   domain.Mutual
}

func seed(t *testing.T, s store.Store, username string) fixture {
	t.Helper()
	ctx := context.Background()

	u, err := s.Users().CreateUser(ctx, domain.User{Username: username, PasswordHash: "hash", Name: "Sam"})
	require.NoError(t, err)

	j, err := s.Jobs().CreateJob(ctx, domain.Job{UserID: u.ID, Title: "Product Manager", Company: "TechCorp", IsNew: true})
	require.NoError(t, err)

	e, err := s.Employees().CreateEmployee(ctx, domain.Employee{JobID: j.ID, Name: "Dana", Title: "Director"})
	require.NoError(t, err)

	m, err := s.Mutuals().CreateMutual(ctx, domain.Mutual{
		UserID: u.ID, EmployeeID: e.ID, Name: "Alex", Company: "TechCorp", RatedStrength: 4,
	})
	require.NoError(t, err)

	return fixture{user: u, job: j, employee: e, mutual: m}
}

func testUsers(t *testing.T, s store.Store) {
	defer s.Close()
	ctx := context.Background()

	u, err := s.Users().CreateUser(ctx, domain.User{Username: "Sam.Lee", PasswordHash: "hash"})
	require.NoError(t, err)
	require.NotZero(t, u.ID)
	require.False(t, u.CreatedAt.IsZero())
	require.Nil(t, u.LinkedInSession)

	_, err = s.Users().CreateUser(ctx, domain.User{Username: "sam.lee", PasswordHash: "other"})
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	got, err := s.Users().GetUserByUsername(ctx, "SAM.LEE")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)

	_, err = s.Users().GetUserByID(ctx, u.ID+100)
	require.ErrorIs(t, err, store.ErrNotFound)

	updated, err := s.Users().UpdateUser(ctx, u.ID, store.UserPatch{
		JobTitle:          ptr("Designer"),
		LinkedInURL:       ptr("https://linkedin.com/in/alice"),
		LinkedInConnected: ptr(true),
		LinkedInSession:   ptr("li-session"),
	})
	require.NoError(t, err)
	require.Equal(t, "Designer", updated.JobTitle)
	require.Equal(t, "https://linkedin.com/in/alice", updated.LinkedInURL)
	require.True(t, updated.LinkedInConnected)
	require.Equal(t, "li-session", *updated.LinkedInSession)
	require.Equal(t, u.Username, updated.Username)

	cleared, err := s.Users().UpdateUser(ctx, u.ID, store.UserPatch{ClearLinkedInSession: true})
	require.NoError(t, err)
	require.Nil(t, cleared.LinkedInSession)
	require.Equal(t, "Designer", cleared.JobTitle)
	require.Equal(t, "https://linkedin.com/in/alice", cleared.LinkedInURL)

	// nothing to change still reports a missing row
	_, err = s.Users().UpdateUser(ctx, u.ID+100, store.UserPatch{})
	require.ErrorIs(t, err, store.ErrNotFound)
}

func testPreferences(t *testing.T, s store.Store) {
	defer s.Close()
	ctx := context.Background()

	u, err := s.Users().CreateUser(ctx, domain.User{Username: "prefs", PasswordHash: "hash"})
	require.NoError(t, err)

	_, err = s.Preferences().GetPreferences(ctx, u.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	p, created, err := s.Preferences().UpsertPreferences(ctx, domain.JobPreferences{
		UserID: u.ID, JobTitles: []string{"PM"}, Locations: []string{"Remote"},
	})
	require.NoError(t, err)
	require.True(t, created)
	require.Equal(t, []string{"PM"}, p.JobTitles)
	require.Equal(t, []string{}, p.Industries)

	p, created, err = s.Preferences().UpsertPreferences(ctx, domain.JobPreferences{
		UserID: u.ID, JobTitles: []string{"Designer", "Researcher"},
	})
	require.NoError(t, err)
	require.False(t, created)
	require.Equal(t, []string{"Designer", "Researcher"}, p.JobTitles)
	require.Equal(t, []string{}, p.Locations)
}

func testJobs(t *testing.T, s store.Store) {
	defer s.Close()
	ctx := context.Background()

	a := seed(t, s, "alice")
	b := seed(t, s, "bob")

	second, err := s.Jobs().CreateJob(ctx, domain.Job{UserID: a.user.ID, Title: "Designer", Company: "Acme"})
	require.NoError(t, err)

	jobs, err := s.Jobs().ListJobs(ctx, store.JobFilter{UserID: a.user.ID})
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	require.Equal(t, second.ID, jobs[0].ID, "newest first")
	require.True(t, jobs[1].IsNew)

	limited, err := s.Jobs().ListJobs(ctx, store.JobFilter{Limit: 1})
	require.NoError(t, err)
	require.Len(t, limited, 1)

	emps, err := s.Employees().ListEmployeesByJob(ctx, b.job.ID)
	require.NoError(t, err)
	require.Len(t, emps, 1)
	require.Equal(t, b.employee.ID, emps[0].ID)
}

func testMutuals(t *testing.T, s store.Store) {
	defer s.Close()
	ctx := context.Background()

	f := seed(t, s, "alice")
	weak, err := s.Mutuals().CreateMutual(ctx, domain.Mutual{UserID: f.user.ID, EmployeeID: f.employee.ID, Name: "Kim", RatedStrength: 1})
	require.NoError(t, err)

	list, err := s.Mutuals().ListMutuals(ctx, store.MutualFilter{JobID: f.job.ID})
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, f.mutual.ID, list[0].ID, "strongest first")

	list, err = s.Mutuals().ListMutuals(ctx, store.MutualFilter{UserID: f.user.ID, EmployeeID: f.employee.ID, Limit: 1})
	require.NoError(t, err)
	require.Len(t, list, 1)

	updated, err := s.Mutuals().UpdateMutual(ctx, weak.ID, store.MutualPatch{
		RatedStrength:     ptr(3),
		ConnectionContext: ptr("worked together"),
	})
	require.NoError(t, err)
	require.Equal(t, 3, updated.RatedStrength)
	require.Equal(t, "worked together", updated.ConnectionContext)
	require.Equal(t, "Kim", updated.Name)

	_, err = s.Mutuals().UpdateMutual(ctx, weak.ID+100, store.MutualPatch{Name: ptr("x")})
	require.ErrorIs(t, err, store.ErrNotFound)
}

func testMessages(t *testing.T, s store.Store) {
	defer s.Close()
	ctx := context.Background()

	f := seed(t, s, "alice")
	msg, err := s.Messages().CreateMessage(ctx, domain.Message{
		UserID: f.user.ID, MutualID: f.mutual.ID, EmployeeID: f.employee.ID, JobID: &f.job.ID,
		MessageText: "Hey Alex",
	})
	require.NoError(t, err)
	require.Equal(t, domain.StatusDraft, msg.Status)
	require.Equal(t, domain.OutcomePending, msg.Outcome)
	require.Nil(t, msg.SentDate)
	require.Equal(t, f.job.ID, *msg.JobID)

	sentAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	msg.Status = domain.StatusSent
	msg.SentDate = &sentAt
	msg, err = s.Messages().UpdateMessage(ctx, msg)
	require.NoError(t, err)
	require.Equal(t, domain.StatusSent, msg.Status)
	require.True(t, sentAt.Equal(*msg.SentDate))

	other, err := s.Messages().CreateMessage(ctx, domain.Message{
		UserID: f.user.ID, MutualID: f.mutual.ID, EmployeeID: f.employee.ID, MessageText: "second",
		Status: domain.StatusDeleted,
	})
	require.NoError(t, err)
	require.Nil(t, other.JobID)

	live, err := s.Messages().ListMessages(ctx, store.MessageFilter{UserID: f.user.ID})
	require.NoError(t, err)
	require.Len(t, live, 1)
	require.Equal(t, msg.ID, live[0].ID)

	deleted, err := s.Messages().ListMessages(ctx, store.MessageFilter{UserID: f.user.ID, Status: domain.StatusDeleted})
	require.NoError(t, err)
	require.Len(t, deleted, 1)
	require.Equal(t, other.ID, deleted[0].ID)

	_, err = s.Messages().UpdateMessage(ctx, domain.Message{ID: other.ID + 100, Status: domain.StatusSent, Outcome: domain.OutcomePending})
	require.ErrorIs(t, err, store.ErrNotFound)
}

func testDeleteJob(t *testing.T, s store.Store) {
	defer s.Close()
	ctx := context.Background()

	f := seed(t, s, "alice")
	require.NoError(t, s.Jobs().DeleteJob(ctx, f.job.ID))

	_, err := s.Employees().GetEmployee(ctx, f.employee.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
	_, err = s.Mutuals().GetMutual(ctx, f.mutual.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	require.ErrorIs(t, s.Jobs().DeleteJob(ctx, f.job.ID), store.ErrNotFound)

	g := seed(t, s, "bob")
	_, err = s.Messages().CreateMessage(ctx, domain.Message{
		UserID: g.user.ID, MutualID: g.mutual.ID, EmployeeID: g.employee.ID, MessageText: "hi",
	})
	require.NoError(t, err)
	require.ErrorIs(t, s.Jobs().DeleteJob(ctx, g.job.ID), store.ErrConflict)

	_, err = s.Jobs().GetJob(ctx, g.job.ID)
	require.NoError(t, err)
}

func testSessions(t *testing.T, s store.Store) {
	defer s.Close()
	ctx := context.Background()

	u, err := s.Users().CreateUser(ctx, domain.User{Username: "sessions", PasswordHash: "hash"})
	require.NoError(t, err)

	now := time.Now().UTC().Truncate(time.Second)
	live := domain.Session{ID: "01J0000000000000000000LIVE", UserID: u.ID, ExpiresAt: now.Add(time.Hour)}
	old := domain.Session{ID: "01J00000000000000000000OLD", UserID: u.ID, ExpiresAt: now.Add(-time.Hour)}
	require.NoError(t, s.Sessions().CreateSession(ctx, live))
	require.NoError(t, s.Sessions().CreateSession(ctx, old))

	got, err := s.Sessions().GetSession(ctx, live.ID)
	require.NoError(t, err)
	require.True(t, got.Live(now))
	require.True(t, live.ExpiresAt.Equal(got.ExpiresAt))

	n, err := s.Sessions().DeleteExpiredSessions(ctx, now)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	_, err = s.Sessions().GetSession(ctx, old.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, s.Sessions().RevokeSession(ctx, live.ID, now))
	require.NoError(t, s.Sessions().RevokeSession(ctx, live.ID, now.Add(time.Minute)))

	got, err = s.Sessions().GetSession(ctx, live.ID)
	require.NoError(t, err)
	require.False(t, got.Live(now))
	require.True(t, now.Equal(*got.RevokedAt))

	require.ErrorIs(t, s.Sessions().RevokeSession(ctx, "missing", now), store.ErrNotFound)
}

func testStats(t *testing.T, s store.Store) {
	defer s.Close()
	ctx := context.Background()

	f := seed(t, s, "alice")
	_ = seed(t, s, "bob")

	day1 := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	day2 := day1.Add(24 * time.Hour)

	create := func(m domain.Message) {
		m.UserID, m.MutualID, m.EmployeeID, m.MessageText = f.user.ID, f.mutual.ID, f.employee.ID, "text"
		_, err := s.Messages().CreateMessage(ctx, m)
		require.NoError(t, err)
	}
	create(domain.Message{Status: domain.StatusDraft})
	create(domain.Message{Status: domain.StatusSent, SentDate: &day1})
	create(domain.Message{Status: domain.StatusResponseReceived, Outcome: domain.OutcomeIntroMade,
		SentDate: &day1, ResponseDate: &day2, IntroDate: &day2})
	create(domain.Message{Status: domain.StatusSent, Outcome: domain.OutcomeInterview, SentDate: &day2, IntroDate: &day2})
	create(domain.Message{Status: domain.StatusDeleted, Outcome: domain.OutcomeIntroMade, SentDate: &day1})

	st, err := s.Stats().CountStats(ctx, f.user.ID)
	require.NoError(t, err)
	require.Equal(t, 1, st.JobsCount)
	require.Equal(t, 1, st.MutualsCount)
	require.Equal(t, 3, st.MessagesSentCount)
	require.Equal(t, 1, st.IntroductionsMadeCount)
	require.Equal(t, 1, st.ResponsesCount)
	require.Equal(t, 1, st.InterviewsCount)
	require.Equal(t, 1, st.ByStatus[domain.StatusDraft])
	require.Zero(t, st.ByStatus[domain.StatusDeleted])

	days, err := s.Stats().ActivitySince(ctx, f.user.ID, day1.Add(-time.Hour))
	require.NoError(t, err)
	require.Len(t, days, 2)
	require.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), days[0].Date)
	require.Equal(t, 2, days[0].Sent)
	require.Equal(t, 1, days[1].Sent)
	require.Equal(t, 1, days[1].Responses)
	require.Equal(t, 2, days[1].Intros)

	empty, err := s.Stats().CountStats(ctx, f.user.ID+100)
	require.NoError(t, err)
	require.Zero(t, empty.MessagesSentCount)
}
