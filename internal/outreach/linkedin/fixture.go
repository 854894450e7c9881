package linkedin

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed fixtures/default.yaml
var defaultFixtures []byte

// fixtureFile is the on-disk layout. Company and employee keys are matched
// case-insensitively; the "*" entry is used when nothing more specific exists.
type fixtureFile struct {
	Jobs      []JobListing            `yaml:"jobs"`
	Employees map[string][]Person     `yaml:"employees"`
	Mutuals   map[string][]Connection `yaml:"mutuals"`
}

const wildcard = "*"

// FixtureDirectory serves canned results from a YAML document. It is read
// only after construction and safe for concurrent use.
type FixtureDirectory struct {
	jobs      []JobListing
	employees map[string][]Person
	mutuals   map[string][]Connection
}

var _ Directory = (*FixtureDirectory)(nil)

// DefaultFixtures returns the directory built from the fixtures compiled
// into the binary.
func DefaultFixtures() *FixtureDirectory {
	d, err := ParseFixtures(defaultFixtures)
	if err != nil {
		panic(fmt.Sprintf("linkedin: embedded fixtures are invalid: %v", err))
	}
	return d
}

// LoadFixtures reads a fixture file from disk.
func LoadFixtures(path string) (*FixtureDirectory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read linkedin fixtures: %w", err)
	}
	return ParseFixtures(data)
}

func ParseFixtures(data []byte) (*FixtureDirectory, error) {
	var f fixtureFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse linkedin fixtures: %w", err)
	}

	d := &FixtureDirectory{
		jobs:      f.Jobs,
		employees: make(map[string][]Person, len(f.Employees)),
		mutuals:   make(map[string][]Connection, len(f.Mutuals)),
	}
	for k, v := range f.Employees {
		d.employees[normalize(k)] = v
	}
	for k, v := range f.Mutuals {
		for _, c := range v {
			if c.Strength < 0 || c.Strength > 5 {
				return nil, fmt.Errorf("parse linkedin fixtures: %s: strength %d out of range", c.Name, c.Strength)
			}
		}
		d.mutuals[normalize(k)] = v
	}
	return d, nil
}

func (d *FixtureDirectory) SearchJobs(ctx context.Context, q JobQuery) ([]JobListing, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := []JobListing{}
	for _, j := range d.jobs {
		if !containsAny(j.Title, q.Titles) || !containsAny(j.Location, q.Locations) || !containsAny(j.Industry, q.Industries) {
			continue
		}
		out = append(out, j)
		if q.Limit > 0 && len(out) == q.Limit {
			break
		}
	}
	return out, nil
}

func (d *FixtureDirectory) FindEmployees(ctx context.Context, company string) ([]Person, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return lookup(d.employees, company), nil
}

// FindMutuals keys on the employee's profile URL, falling back to their name.
func (d *FixtureDirectory) FindMutuals(ctx context.Context, req LookupRequest) ([]Connection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if req.Session == "" {
		return nil, ErrNotLinked
	}

	if c, ok := d.mutuals[normalize(req.Employee.LinkedInURL)]; ok && req.Employee.LinkedInURL != "" {
		return append([]Connection(nil), c...), nil
	}
	return lookup(d.mutuals, req.Employee.Name), nil
}

func lookup[T any](m map[string][]T, key string) []T {
	if v, ok := m[normalize(key)]; ok {
		return append([]T(nil), v...)
	}
	if v, ok := m[wildcard]; ok {
		return append([]T(nil), v...)
	}
	return []T{}
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// containsAny reports whether s contains any of the needles. No needles
// means no constraint.
func containsAny(s string, needles []string) bool {
	if len(needles) == 0 {
		return true
	}
	s = normalize(s)
	for _, n := range needles {
		if n = normalize(n); n != "" && strings.Contains(s, n) {
			return true
		}
	}
	return false
}
