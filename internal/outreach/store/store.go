package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/mutuals/internal/outreach/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")

	// ErrConflict is returned when a delete would orphan rows the schema
	// protects, e.g. a job whose employees still have outreach messages.
	ErrConflict = errors.New("store: conflict")
)

// Store is the root data access interface. Concrete drivers (sqlite, postgres)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable. There is no transaction support: every operation is
// a single statement and multi-entity flows are a sequence of those.
type Store interface {
	Users() Users
	Preferences() Preferences
	Jobs() Jobs
	Employees() Employees
	Mutuals() Mutuals
	Messages() Messages
	Sessions() Sessions
	Stats() Stats

	ApplyMigrations() error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

type Users interface {
	// CreateUser inserts a user and returns it with its id assigned.
	// Returns ErrAlreadyExists when the username is taken.
	CreateUser(ctx context.Context, u domain.User) (domain.User, error)

	GetUserByID(ctx context.Context, id int64) (domain.User, error)

	// GetUserByUsername matches case-insensitively.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// UpdateUser applies a shallow merge of the non-nil patch fields.
	UpdateUser(ctx context.Context, id int64, p UserPatch) (domain.User, error)
}

// UserPatch fields left nil are not touched. LinkedInSession is doubly
// optional: set ClearLinkedInSession to null the column.
type UserPatch struct {
	Name                 *string
	JobTitle             *string
	PhotoURL             *string
	LinkedInURL          *string
	LinkedInConnected    *bool
	LinkedInSession      *string
	ClearLinkedInSession bool
}

// Empty reports whether applying the patch would change nothing.
func (p UserPatch) Empty() bool {
	return p.Name == nil && p.JobTitle == nil && p.PhotoURL == nil && p.LinkedInURL == nil &&
		p.LinkedInConnected == nil && p.LinkedInSession == nil && !p.ClearLinkedInSession
}

type Preferences interface {
	GetPreferences(ctx context.Context, userID int64) (domain.JobPreferences, error)

	// UpsertPreferences replaces the row and reports whether it was newly created.
	UpsertPreferences(ctx context.Context, p domain.JobPreferences) (domain.JobPreferences, bool, error)
}

type Jobs interface {
	CreateJob(ctx context.Context, j domain.Job) (domain.Job, error)
	GetJob(ctx context.Context, id int64) (domain.Job, error)

	// ListJobs returns newest first.
	ListJobs(ctx context.Context, f JobFilter) ([]domain.Job, error)

	// DeleteJob removes the job together with its employees and their
	// mutuals. Returns ErrConflict when any message still references them.
	DeleteJob(ctx context.Context, id int64) error
}

type JobFilter struct {
	UserID int64 // 0 = any
	Limit  int   // 0 = unbounded, applied after filtering
}

type Employees interface {
	CreateEmployee(ctx context.Context, e domain.Employee) (domain.Employee, error)
	GetEmployee(ctx context.Context, id int64) (domain.Employee, error)
	ListEmployeesByJob(ctx context.Context, jobID int64) ([]domain.Employee, error)
}

type Mutuals interface {
	CreateMutual(ctx context.Context, m domain.Mutual) (domain.Mutual, error)
	GetMutual(ctx context.Context, id int64) (domain.Mutual, error)
	ListMutuals(ctx context.Context, f MutualFilter) ([]domain.Mutual, error)
	UpdateMutual(ctx context.Context, id int64, p MutualPatch) (domain.Mutual, error)
}

type MutualFilter struct {
	UserID     int64
	EmployeeID int64
	JobID      int64 // mutuals of any employee of this job
	Limit      int
}

type MutualPatch struct {
	Name              *string
	Title             *string
	Company           *string
	LinkedInURL       *string
	ConnectedSince    *string
	RatedStrength     *int
	ConnectionContext *string
}

func (p MutualPatch) Empty() bool {
	return p.Name == nil && p.Title == nil && p.Company == nil && p.LinkedInURL == nil &&
		p.ConnectedSince == nil && p.RatedStrength == nil && p.ConnectionContext == nil
}

type Messages interface {
	CreateMessage(ctx context.Context, m domain.Message) (domain.Message, error)
	GetMessage(ctx context.Context, id int64) (domain.Message, error)

	// ListMessages excludes Deleted messages unless the filter asks for them
	// explicitly by status. Newest first.
	ListMessages(ctx context.Context, f MessageFilter) ([]domain.Message, error)

	// UpdateMessage overwrites the mutable columns with the given message.
	// Transition rules are the service's job, this is last write wins.
	UpdateMessage(ctx context.Context, m domain.Message) (domain.Message, error)
}

type MessageFilter struct {
	UserID   int64
	MutualID int64
	JobID    int64
	Status   domain.MessageStatus // "" = all live statuses
	Limit    int
}

type Sessions interface {
	CreateSession(ctx context.Context, s domain.Session) error
	GetSession(ctx context.Context, id string) (domain.Session, error)
	RevokeSession(ctx context.Context, id string, at time.Time) error

	// DeleteExpiredSessions drops sessions that expired or were revoked
	// before the given time and returns how many went.
	DeleteExpiredSessions(ctx context.Context, before time.Time) (int64, error)
}

type Stats interface {
	// CountStats computes the dashboard counters for one user with a
	// handful of COUNT queries. Nothing is cached.
	CountStats(ctx context.Context, userID int64) (domain.Stats, error)

	// ActivitySince returns per-day sent/response/intro counts from the
	// message date stamps, only for days that have any activity.
	ActivitySince(ctx context.Context, userID int64, since time.Time) ([]domain.ActivityDay, error)
}
