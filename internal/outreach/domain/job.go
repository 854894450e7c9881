package domain

import "time"

type Job struct {
	ID         int64
	UserID     int64
	Title      string
	Company    string
	Location   string
	JobURL     string
	PostedDate string // as shown on the listing, e.g. "3 days ago"
	LogoURL    string
	IsNew      bool
	CreatedAt  time.Time
}

// Employee is someone at the job's company we want an introduction to. It has
// no user id of its own, ownership always goes through the job.
type Employee struct {
	ID          int64
	JobID       int64
	Name        string
	Title       string
	LinkedInURL string
	Department  string
	CreatedAt   time.Time
}

const (
	MinStrength = 0 // unrated
	MaxStrength = 5
)

// Mutual is a first degree contact of the user who also knows an Employee.
type Mutual struct {
	ID                int64
	UserID            int64
	EmployeeID        int64
	Name              string
	Title             string
	Company           string
	LinkedInURL       string
	ConnectedSince    string
	RatedStrength     int
	ConnectionContext string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// ValidStrength reports whether r is an allowed rating.
func ValidStrength(r int) bool {
	return r >= MinStrength && r <= MaxStrength
}
