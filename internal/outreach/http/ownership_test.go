package http_test

import (
	"net/http"
	"testing"

	"github.com/aussiebroadwan/mutuals/pkg/mutualsdk"
	"github.com/stretchr/testify/require"
)

// aliceChain creates a job, employee and mutual owned by a fresh user.
func aliceChain(t *testing.T, baseURL string) (*mutualsdk.Client, *mutualsdk.Job, *mutualsdk.Employee, *mutualsdk.Mutual) {
	t.Helper()
	ctx := t.Context()
	c, _ := login(t, baseURL, "alice")

	job, err := c.CreateJob(ctx, mutualsdk.CreateJobRequest{Title: "Product Manager", Company: "TechCorp"})
	require.NoError(t, err)
	emp, err := c.CreateEmployee(ctx, job.ID, mutualsdk.CreateEmployeeRequest{Name: "Dana Hiring"})
	require.NoError(t, err)
	m, err := c.CreateMutual(ctx, mutualsdk.CreateMutualRequest{EmployeeID: emp.ID, Name: "Alex Friend", RatedStrength: 4})
	require.NoError(t, err)
	return c, job, emp, m
}

func TestForeignRowsAreForbidden(t *testing.T) {
	baseURL := newTestAPI(t)
	ctx := t.Context()
	alice, job, emp, m := aliceChain(t, baseURL)
	bob, _ := login(t, baseURL, "bob")

	_, err := bob.GetJob(ctx, job.ID)
	requireAPIError(t, err, http.StatusForbidden, mutualsdk.ErrorCodeForbidden)
	_, err = bob.GetEmployee(ctx, emp.ID)
	requireAPIError(t, err, http.StatusForbidden, mutualsdk.ErrorCodeForbidden)
	_, err = bob.GetMutual(ctx, m.ID)
	requireAPIError(t, err, http.StatusForbidden, mutualsdk.ErrorCodeForbidden)
	err = bob.DeleteJob(ctx, job.ID)
	requireAPIError(t, err, http.StatusForbidden, mutualsdk.ErrorCodeForbidden)

	// Missing beats foreign
	_, err = bob.GetMutual(ctx, m.ID+1000)
	requireAPIError(t, err, http.StatusNotFound, mutualsdk.ErrorCodeNotFound)

	// Lists only ever show the caller's rows
	jobs, err := bob.ListJobs(ctx, 0)
	require.NoError(t, err)
	require.Empty(t, jobs)
	mutuals, err := bob.ListMutuals(ctx, mutualsdk.MutualQuery{})
	require.NoError(t, err)
	require.Empty(t, mutuals)

	mine, err := alice.ListMutuals(ctx, mutualsdk.MutualQuery{JobID: job.ID})
	require.NoError(t, err)
	require.Len(t, mine, 1)
}

func TestForbiddenPatchLeavesRowUnchanged(t *testing.T) {
	baseURL := newTestAPI(t)
	ctx := t.Context()
	alice, _, _, m := aliceChain(t, baseURL)
	bob, _ := login(t, baseURL, "bob")

	_, err := bob.UpdateMutual(ctx, m.ID, mutualsdk.UpdateMutualRequest{Name: ptr("Hijacked"), RatedStrength: ptr(1)})
	requireAPIError(t, err, http.StatusForbidden, mutualsdk.ErrorCodeForbidden)

	got, err := alice.GetMutual(ctx, m.ID)
	require.NoError(t, err)
	require.Equal(t, "Alex Friend", got.Name)
	require.Equal(t, 4, got.RatedStrength)
}

func TestReferencedIdsMustBeOwned(t *testing.T) {
	baseURL := newTestAPI(t)
	ctx := t.Context()
	_, job, emp, m := aliceChain(t, baseURL)
	bob, _ := login(t, baseURL, "bob")

	_, err := bob.CreateMutual(ctx, mutualsdk.CreateMutualRequest{EmployeeID: emp.ID, Name: "Sneaky"})
	requireAPIError(t, err, http.StatusForbidden, mutualsdk.ErrorCodeForbidden)

	_, err = bob.CreateMessage(ctx, mutualsdk.CreateMessageRequest{MutualID: m.ID})
	requireAPIError(t, err, http.StatusForbidden, mutualsdk.ErrorCodeForbidden)

	_, err = bob.CreateEmployee(ctx, job.ID, mutualsdk.CreateEmployeeRequest{Name: "Sneaky"})
	requireAPIError(t, err, http.StatusForbidden, mutualsdk.ErrorCodeForbidden)
}
