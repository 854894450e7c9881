package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aussiebroadwan/mutuals/internal/outreach/linkedin"
	"github.com/aussiebroadwan/mutuals/internal/outreach/service"
	"github.com/stretchr/testify/require"
)

func newDiscovery(s services, dir linkedin.Directory) *service.DiscoveryService {
	return &service.DiscoveryService{Store: s.store, Guard: service.Guard{Store: s.store}, Directory: dir}
}

func TestImportJobsRequiresLinkedIn(t *testing.T) {
	s := newServices(t)
	u := s.register(t, "alice")

	_, err := newDiscovery(s, linkedin.DefaultFixtures()).ImportJobs(context.Background(), u.ID, 0)
	require.ErrorIs(t, err, service.ErrLinkedInRequired)
}

func TestImportJobs(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()
	u := s.register(t, "alice")
	_, err := s.users.ConnectLinkedIn(ctx, u.ID, "li_at=abc")
	require.NoError(t, err)
	_, _, err = s.prefs.Save(ctx, u.ID, nil, nil, []string{"Technology"})
	require.NoError(t, err)

	d := newDiscovery(s, linkedin.DefaultFixtures())

	jobs, err := d.ImportJobs(ctx, u.ID, 0)
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	for _, j := range jobs {
		require.Equal(t, u.ID, j.UserID)
		require.True(t, j.IsNew)
	}

	// The same listings again are skipped
	again, err := d.ImportJobs(ctx, u.ID, 0)
	require.NoError(t, err)
	require.Empty(t, again)

	all, err := s.jobs.List(ctx, u.ID, 0)
	require.NoError(t, err)
	require.Len(t, all, 2)
}

func TestDiscover(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()
	c := s.chain(t, "alice", 4)
	_, err := s.users.ConnectLinkedIn(ctx, c.user.ID, "li_at=abc")
	require.NoError(t, err)

	d := newDiscovery(s, linkedin.DefaultFixtures())

	res, err := d.Discover(ctx, c.user.ID, c.job.ID)
	require.NoError(t, err)
	require.Len(t, res.Employees, 3)
	require.Len(t, res.Mutuals, 9)
	for _, m := range res.Mutuals {
		require.Equal(t, c.user.ID, m.UserID)
	}

	// Running again reuses everything
	again, err := d.Discover(ctx, c.user.ID, c.job.ID)
	require.NoError(t, err)
	require.Len(t, again.Employees, 3)
	require.Equal(t, res.Mutuals, again.Mutuals)

	emps, err := s.employees.ListByJob(ctx, c.user.ID, c.job.ID)
	require.NoError(t, err)
	// The hand-added employee from chain plus the three discovered
	require.Len(t, emps, 4)
}

func TestDiscoverForbidden(t *testing.T) {
	s := newServices(t)
	c := s.chain(t, "alice", 4)
	bob := s.register(t, "bob")

	_, err := newDiscovery(s, linkedin.DefaultFixtures()).Discover(context.Background(), bob.ID, c.job.ID)
	require.ErrorIs(t, err, service.ErrForbidden)
}

// flakyDirectory fails mutual lookups after the first employee.
type flakyDirectory struct {
	*linkedin.FixtureDirectory
	calls int
}

var errDirectoryDown = errors.New("directory unavailable")

func (d *flakyDirectory) FindMutuals(ctx context.Context, req linkedin.LookupRequest) ([]linkedin.Connection, error) {
	d.calls++
	if d.calls > 1 {
		return nil, errDirectoryDown
	}
	return d.FixtureDirectory.FindMutuals(ctx, req)
}

func TestDiscoverKeepsPartialResults(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()
	c := s.chain(t, "alice", 4)
	_, err := s.users.ConnectLinkedIn(ctx, c.user.ID, "li_at=abc")
	require.NoError(t, err)

	res, err := newDiscovery(s, &flakyDirectory{FixtureDirectory: linkedin.DefaultFixtures()}).Discover(ctx, c.user.ID, c.job.ID)

	var partial *service.PartialError
	require.ErrorAs(t, err, &partial)
	require.ErrorIs(t, err, errDirectoryDown)
	require.Equal(t, 2, partial.Created["employees"])
	require.Equal(t, 3, partial.Created["mutuals"])
	require.Len(t, res.Mutuals, 3)

	mutuals, err := s.mutuals.List(ctx, c.user.ID, service.MutualQuery{JobID: c.job.ID})
	require.NoError(t, err)
	// chain's mutual plus the three written before the failure
	require.Len(t, mutuals, 4)
}
