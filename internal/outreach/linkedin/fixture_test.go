package linkedin_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aussiebroadwan/mutuals/internal/outreach/linkedin"
	"github.com/stretchr/testify/require"
)

const testFixtures = `
jobs:
  - {title: Product Manager, company: TechCorp, location: Remote, industry: Software}
  - {title: Staff Engineer, company: TechCorp, location: Sydney, industry: Software}
  - {title: Product Designer, company: Acme, location: Melbourne, industry: Retail}
employees:
  techcorp:
    - {name: Dana Ng, title: Director, linkedinUrl: https://linkedin.com/in/dana}
  "*":
    - {name: Someone Else}
mutuals:
  https://linkedin.com/in/dana:
    - {name: Alex, company: TechCorp, strength: 5}
  "*":
    - {name: Kim, strength: 1}
`

func parse(t *testing.T) *linkedin.FixtureDirectory {
	t.Helper()
	d, err := linkedin.ParseFixtures([]byte(testFixtures))
	require.NoError(t, err)
	return d
}

func TestSearchJobs(t *testing.T) {
	d := parse(t)
	ctx := context.Background()

	all, err := d.SearchJobs(ctx, linkedin.JobQuery{})
	require.NoError(t, err)
	require.Len(t, all, 3)

	pm, err := d.SearchJobs(ctx, linkedin.JobQuery{Titles: []string{"product"}})
	require.NoError(t, err)
	require.Len(t, pm, 2)

	remote, err := d.SearchJobs(ctx, linkedin.JobQuery{Titles: []string{"product"}, Locations: []string{"REMOTE"}})
	require.NoError(t, err)
	require.Len(t, remote, 1)
	require.Equal(t, "TechCorp", remote[0].Company)

	limited, err := d.SearchJobs(ctx, linkedin.JobQuery{Industries: []string{"software"}, Limit: 1})
	require.NoError(t, err)
	require.Len(t, limited, 1)
}

func TestFindEmployeesFallsBackToWildcard(t *testing.T) {
	d := parse(t)
	ctx := context.Background()

	emps, err := d.FindEmployees(ctx, "TechCorp")
	require.NoError(t, err)
	require.Len(t, emps, 1)
	require.Equal(t, "Dana Ng", emps[0].Name)

	emps, err = d.FindEmployees(ctx, "Unknown Pty Ltd")
	require.NoError(t, err)
	require.Equal(t, "Someone Else", emps[0].Name)
}

func TestFindMutuals(t *testing.T) {
	d := parse(t)
	ctx := context.Background()

	_, err := d.FindMutuals(ctx, linkedin.LookupRequest{Employee: linkedin.Person{Name: "Dana Ng"}})
	require.ErrorIs(t, err, linkedin.ErrNotLinked)

	got, err := d.FindMutuals(ctx, linkedin.LookupRequest{
		Session:  "li-session",
		Employee: linkedin.Person{Name: "Dana Ng", LinkedInURL: "https://linkedin.com/in/dana"},
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, 5, got[0].Strength)

	got, err = d.FindMutuals(ctx, linkedin.LookupRequest{Session: "li-session", Employee: linkedin.Person{Name: "Nobody"}})
	require.NoError(t, err)
	require.Equal(t, "Kim", got[0].Name)
}

func TestParseFixturesRejectsBadStrength(t *testing.T) {
	_, err := linkedin.ParseFixtures([]byte("mutuals:\n  x:\n    - {name: A, strength: 9}\n"))
	require.Error(t, err)
}

func TestLoadFixtures(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixtures.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testFixtures), 0o600))

	d, err := linkedin.LoadFixtures(path)
	require.NoError(t, err)

	jobs, err := d.SearchJobs(context.Background(), linkedin.JobQuery{})
	require.NoError(t, err)
	require.Len(t, jobs, 3)

	_, err = linkedin.LoadFixtures(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestDefaultFixtures(t *testing.T) {
	d := linkedin.DefaultFixtures()
	jobs, err := d.SearchJobs(context.Background(), linkedin.JobQuery{})
	require.NoError(t, err)
	require.NotEmpty(t, jobs)
}
