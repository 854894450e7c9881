package mutualsdk

import "time"

type User struct {
	ID                int64     `json:"id"`
	Username          string    `json:"username"`
	Name              string    `json:"name"`
	JobTitle          string    `json:"jobTitle"`
	PhotoURL          string    `json:"photoUrl,omitempty"`
	LinkedInURL       string    `json:"linkedInUrl,omitempty"`
	LinkedInConnected bool      `json:"linkedInConnected"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UpdateUserRequest fields left nil are not changed.
type UpdateUserRequest struct {
	Name        *string `json:"name,omitempty"`
	JobTitle    *string `json:"jobTitle,omitempty"`
	PhotoURL    *string `json:"photoUrl,omitempty"`
	LinkedInURL *string `json:"linkedInUrl,omitempty"`
}

type ConnectLinkedInRequest struct {
	SessionCookie string `json:"sessionCookie"`
}

type JobPreferences struct {
	JobTitles  []string  `json:"jobTitles"`
	Locations  []string  `json:"locations"`
	Industries []string  `json:"industries"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type SavePreferencesRequest struct {
	JobTitles  []string `json:"jobTitles"`
	Locations  []string `json:"locations"`
	Industries []string `json:"industries"`
}

type Job struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"userId"`
	Title      string    `json:"title"`
	Company    string    `json:"company"`
	Location   string    `json:"location"`
	JobURL     string    `json:"jobUrl,omitempty"`
	PostedDate string    `json:"postedDate,omitempty"`
	LogoURL    string    `json:"logoUrl,omitempty"`
	IsNew      bool      `json:"isNew"`
	CreatedAt  time.Time `json:"createdAt"`
}

type CreateJobRequest struct {
	Title      string `json:"title"`
	Company    string `json:"company"`
	Location   string `json:"location,omitempty"`
	JobURL     string `json:"jobUrl,omitempty"`
	PostedDate string `json:"postedDate,omitempty"`
	LogoURL    string `json:"logoUrl,omitempty"`
}

type ImportJobsRequest struct {
	Limit int `json:"limit,omitempty"`
}

type Employee struct {
	ID          int64     `json:"id"`
	JobID       int64     `json:"jobId"`
	Name        string    `json:"name"`
	Title       string    `json:"title"`
	LinkedInURL string    `json:"linkedInUrl,omitempty"`
	Department  string    `json:"department,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type CreateEmployeeRequest struct {
	Name        string `json:"name"`
	Title       string `json:"title,omitempty"`
	LinkedInURL string `json:"linkedInUrl,omitempty"`
	Department  string `json:"department,omitempty"`
}

type Mutual struct {
	ID                int64     `json:"id"`
	UserID            int64     `json:"userId"`
	EmployeeID        int64     `json:"employeeId"`
	Name              string    `json:"name"`
	Title             string    `json:"title"`
	Company           string    `json:"company"`
	LinkedInURL       string    `json:"linkedInUrl,omitempty"`
	ConnectedSince    string    `json:"connectedSince,omitempty"`
	RatedStrength     int       `json:"ratedStrength"`
	ConnectionContext string    `json:"connectionContext,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

type CreateMutualRequest struct {
	EmployeeID        int64  `json:"employeeId"`
	Name              string `json:"name"`
	Title             string `json:"title,omitempty"`
	Company           string `json:"company,omitempty"`
	LinkedInURL       string `json:"linkedInUrl,omitempty"`
	ConnectedSince    string `json:"connectedSince,omitempty"`
	RatedStrength     int    `json:"ratedStrength"`
	ConnectionContext string `json:"connectionContext,omitempty"`
}

// UpdateMutualRequest is a shallow merge, nil fields are left alone.
type UpdateMutualRequest struct {
	Name              *string `json:"name,omitempty"`
	Title             *string `json:"title,omitempty"`
	Company           *string `json:"company,omitempty"`
	LinkedInURL       *string `json:"linkedInUrl,omitempty"`
	ConnectedSince    *string `json:"connectedSince,omitempty"`
	RatedStrength     *int    `json:"ratedStrength,omitempty"`
	ConnectionContext *string `json:"connectionContext,omitempty"`
}

type TemplatePreview struct {
	MutualID int64  `json:"mutualId"`
	Strength int    `json:"strength"`
	Band     string `json:"band"`
	Text     string `json:"text"`
}

type Message struct {
	ID           int64      `json:"id"`
	UserID       int64      `json:"userId"`
	MutualID     int64      `json:"mutualId"`
	EmployeeID   int64      `json:"employeeId"`
	JobID        *int64     `json:"jobId"`
	MessageText  string     `json:"messageText"`
	Status       string     `json:"status"`
	Outcome      string     `json:"outcome"`
	SentDate     *time.Time `json:"sentDate"`
	ResponseDate *time.Time `json:"responseDate"`
	IntroDate    *time.Time `json:"introDate"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

type CreateMessageRequest struct {
	MutualID    int64  `json:"mutualId"`
	EmployeeID  int64  `json:"employeeId,omitempty"`
	JobID       *int64 `json:"jobId,omitempty"`
	MessageText string `json:"messageText,omitempty"`
	Status      string `json:"status,omitempty"`
	Outcome     string `json:"outcome,omitempty"`
	Strength    *int   `json:"strength,omitempty"`
	CalendarURL string `json:"calendarUrl,omitempty"`
}

type UpdateMessageRequest struct {
	MessageText *string `json:"messageText,omitempty"`
	Status      *string `json:"status,omitempty"`
	Outcome     *string `json:"outcome,omitempty"`
}

type DiscoveryResult struct {
	Employees []Employee `json:"employees"`
	Mutuals   []Mutual   `json:"mutuals"`
}

type Stats struct {
	JobsCount              int            `json:"jobsCount"`
	MutualsCount           int            `json:"mutualsCount"`
	MessagesSentCount      int            `json:"messagesSentCount"`
	IntroductionsMadeCount int            `json:"introductionsMadeCount"`
	ResponsesCount         int            `json:"responsesCount"`
	InterviewsCount        int            `json:"interviewsCount"`
	ResponseRate           float64        `json:"responseRate"`
	ByStatus               map[string]int `json:"byStatus"`
	ByOutcome              map[string]int `json:"byOutcome"`
}

// ActivityDay.Date is a calendar day in UTC, formatted 2006-01-02.
type ActivityDay struct {
	Date      string `json:"date"`
	Sent      int    `json:"sent"`
	Responses int    `json:"responses"`
	Intros    int    `json:"intros"`
}

type ToolRequest struct {
	JobDescription string `json:"jobDescription"`
}

type ToolResponse struct {
	Content string `json:"content"`
}

// HealthResponse is returned by /livez and /readyz (the latter with Checks).
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime,omitempty"`
	Version string        `json:"version,omitempty"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`
}
