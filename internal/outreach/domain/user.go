package domain

import "time"

type User struct {
	ID                int64
	Username          string
	PasswordHash      string // argon2 encoded, never leaves the service layer
	Name              string
	JobTitle          string
	PhotoURL          string
	LinkedInURL       string // public profile link quoted in intro requests
	LinkedInConnected bool
	LinkedInSession   *string // opaque marker from the account link step (nullable)
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// JobPreferences drive job import. One row per user, replaced wholesale.
type JobPreferences struct {
	UserID     int64
	JobTitles  []string
	Locations  []string
	Industries []string
	UpdatedAt  time.Time
}

// Session is the server side half of a login. The cookie carries a signed
// token naming the session id; revoking the row kills the cookie.
type Session struct {
	ID        string // ULID
	UserID    int64
	ExpiresAt time.Time
	RevokedAt *time.Time
	CreatedAt time.Time
}

// Live reports whether the session can still authenticate requests at now.
func (s Session) Live(now time.Time) bool {
	return s.RevokedAt == nil && now.Before(s.ExpiresAt)
}
