// Package linkedin is the boundary to the professional network. The only
// implementation is a fixture backed directory standing in for the scraping
// service that eventually sits here.
package linkedin

import "context"

// Directory finds jobs, the people working at a company and the user's
// connections to them.
type Directory interface {
	SearchJobs(ctx context.Context, q JobQuery) ([]JobListing, error)
	FindEmployees(ctx context.Context, company string) ([]Person, error)
	FindMutuals(ctx context.Context, req LookupRequest) ([]Connection, error)
}

// JobQuery mirrors the user's saved preferences. Empty lists match anything.
type JobQuery struct {
	Titles     []string
	Locations  []string
	Industries []string
	Limit      int
}

type JobListing struct {
	Title      string `yaml:"title"`
	Company    string `yaml:"company"`
	Location   string `yaml:"location"`
	URL        string `yaml:"url"`
	LogoURL    string `yaml:"logoUrl"`
	PostedDate string `yaml:"postedDate"`
	Industry   string `yaml:"industry"`
}

type Person struct {
	Name        string `yaml:"name"`
	Title       string `yaml:"title"`
	LinkedInURL string `yaml:"linkedinUrl"`
	Department  string `yaml:"department"`
}

// LookupRequest asks for the user's first degree connections who also know
// the given employee. Session is the marker stored when the account was linked.
type LookupRequest struct {
	Session  string
	Company  string
	Employee Person
}

type Connection struct {
	Name           string `yaml:"name"`
	Title          string `yaml:"title"`
	Company        string `yaml:"company"`
	LinkedInURL    string `yaml:"linkedinUrl"`
	ConnectedSince string `yaml:"connectedSince"`
	Strength       int    `yaml:"strength"`
	Context        string `yaml:"context"`
}
