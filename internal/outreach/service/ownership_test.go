package service_test

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/mutuals/internal/outreach/service"
	"github.com/aussiebroadwan/mutuals/internal/outreach/store"
	"github.com/stretchr/testify/require"
)

func TestCreateStampsCallerAsOwner(t *testing.T) {
	s := newServices(t)
	c := s.chain(t, "alice", 4)

	require.Equal(t, c.user.ID, c.job.UserID)
	require.Equal(t, c.user.ID, c.mutual.UserID)
	require.Equal(t, c.job.ID, c.employee.JobID)
	require.True(t, c.job.IsNew)
}

func TestGuardNotFoundAndForbidden(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()
	alice := s.chain(t, "alice", 4)
	bob := s.register(t, "bob")

	_, err := s.jobs.Get(ctx, bob.ID, alice.job.ID)
	require.ErrorIs(t, err, service.ErrForbidden)

	_, err = s.jobs.Get(ctx, alice.user.ID, 9999)
	require.ErrorIs(t, err, service.ErrNotFound)

	_, err = s.employees.Get(ctx, bob.ID, alice.employee.ID)
	require.ErrorIs(t, err, service.ErrForbidden)

	_, err = s.employees.ListByJob(ctx, bob.ID, alice.job.ID)
	require.ErrorIs(t, err, service.ErrForbidden)

	_, err = s.mutuals.Get(ctx, bob.ID, alice.mutual.ID)
	require.ErrorIs(t, err, service.ErrForbidden)
}

func TestForbiddenUpdateLeavesRowUnchanged(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()
	alice := s.chain(t, "alice", 4)
	bob := s.register(t, "bob")

	_, err := s.mutuals.Update(ctx, bob.ID, alice.mutual.ID, store.MutualPatch{
		Name:          ptr("Hijacked"),
		RatedStrength: ptr(1),
	})
	require.ErrorIs(t, err, service.ErrForbidden)

	got, err := s.mutuals.Get(ctx, alice.user.ID, alice.mutual.ID)
	require.NoError(t, err)
	require.Equal(t, alice.mutual, got)
}

func TestReferencedIdsMustBeOwned(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()
	alice := s.chain(t, "alice", 4)
	bob := s.register(t, "bob")

	_, err := s.mutuals.Create(ctx, bob.ID, service.MutualInput{EmployeeID: alice.employee.ID, Name: "Sneaky"})
	require.ErrorIs(t, err, service.ErrForbidden)

	// A body id that does not exist is indistinguishable from someone else's
	_, err = s.mutuals.Create(ctx, bob.ID, service.MutualInput{EmployeeID: 9999, Name: "Ghost"})
	require.ErrorIs(t, err, service.ErrForbidden)

	_, err = s.messages.Create(ctx, bob.ID, service.CreateMessageInput{MutualID: alice.mutual.ID})
	require.ErrorIs(t, err, service.ErrForbidden)

	_, err = s.employees.Create(ctx, bob.ID, alice.job.ID, service.EmployeeInput{Name: "X"})
	require.ErrorIs(t, err, service.ErrForbidden)
}

func TestListsAreScopedToCaller(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()
	alice := s.chain(t, "alice", 4)
	bob := s.chain(t, "bob", 2)

	jobs, err := s.jobs.List(ctx, alice.user.ID, 0)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	require.Equal(t, alice.job.ID, jobs[0].ID)

	mutuals, err := s.mutuals.List(ctx, bob.user.ID, service.MutualQuery{})
	require.NoError(t, err)
	require.Len(t, mutuals, 1)
	require.Equal(t, bob.mutual.ID, mutuals[0].ID)

	// Filtering by someone else's job yields nothing rather than an error
	mutuals, err = s.mutuals.List(ctx, bob.user.ID, service.MutualQuery{JobID: alice.job.ID})
	require.NoError(t, err)
	require.Empty(t, mutuals)
}
