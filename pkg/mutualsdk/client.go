package mutualsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"
)

// SessionCookie is the name of the cookie carrying the session token.
const SessionCookie = "mutuals_session"

// Client talks to the outreach API. It is safe for concurrent use but holds
// a single session: log in again to switch users.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a client with its own cookie jar.
func NewClient(baseURL string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
			Jar:     jar,
		},
	}, nil
}

func (c *Client) url(path string) string {
	return c.BaseURL + path
}

func (c *Client) do(ctx context.Context, method, path string, body, out any, expected int) error {
	_, err := c.send(ctx, method, path, body, out, expected)
	return err
}

// send posts body (when not nil) as JSON and decodes a response with one of
// the expected statuses into out (when not nil).
func (c *Client) send(ctx context.Context, method, path string, body, out any, expected ...int) (int, error) {
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("failed to encode request: %w", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), rdr)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("failed to read response body: %w", err)
	}
	if !slices.Contains(expected, resp.StatusCode) {
		return resp.StatusCode, parseErrorResponse(resp, data)
	}
	if out == nil || len(data) == 0 {
		return resp.StatusCode, nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return resp.StatusCode, fmt.Errorf("failed to decode response: %w", err)
	}
	return resp.StatusCode, nil
}

func withLimit(path string, limit int) string {
	if limit <= 0 {
		return path
	}
	return path + "?limit=" + strconv.Itoa(limit)
}

func idPath(format string, id int64) string {
	return fmt.Sprintf(format, id)
}

// Health

func (c *Client) Livez(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	return &out, c.do(ctx, http.MethodGet, "/livez", nil, &out, http.StatusOK)
}

func (c *Client) Readyz(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	return &out, c.do(ctx, http.MethodGet, "/readyz", nil, &out, http.StatusOK)
}

// Accounts

func (c *Client) Register(ctx context.Context, username, password string) (*User, error) {
	var out User
	err := c.do(ctx, http.MethodPost, "/api/auth/register",
		CredentialsRequest{Username: username, Password: password}, &out, http.StatusCreated)
	return &out, err
}

func (c *Client) Login(ctx context.Context, username, password string) (*User, error) {
	var out User
	err := c.do(ctx, http.MethodPost, "/api/auth/login",
		CredentialsRequest{Username: username, Password: password}, &out, http.StatusOK)
	return &out, err
}

func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil, http.StatusOK)
}

func (c *Client) Me(ctx context.Context) (*User, error) {
	var out User
	return &out, c.do(ctx, http.MethodGet, "/api/auth/me", nil, &out, http.StatusOK)
}

func (c *Client) UpdateUser(ctx context.Context, req UpdateUserRequest) (*User, error) {
	var out User
	return &out, c.do(ctx, http.MethodPatch, "/api/user", req, &out, http.StatusOK)
}

func (c *Client) ConnectLinkedIn(ctx context.Context, sessionCookie string) (*User, error) {
	var out User
	err := c.do(ctx, http.MethodPost, "/api/linkedin/connect",
		ConnectLinkedInRequest{SessionCookie: sessionCookie}, &out, http.StatusOK)
	return &out, err
}

func (c *Client) DisconnectLinkedIn(ctx context.Context) (*User, error) {
	var out User
	return &out, c.do(ctx, http.MethodDelete, "/api/linkedin/disconnect", nil, &out, http.StatusOK)
}

// Preferences

func (c *Client) GetPreferences(ctx context.Context) (*JobPreferences, error) {
	var out JobPreferences
	return &out, c.do(ctx, http.MethodGet, "/api/job-preferences", nil, &out, http.StatusOK)
}

// SavePreferences replaces the preferences and reports whether they were
// newly created.
func (c *Client) SavePreferences(ctx context.Context, req SavePreferencesRequest) (*JobPreferences, bool, error) {
	var out JobPreferences
	status, err := c.send(ctx, http.MethodPost, "/api/job-preferences", req, &out, http.StatusOK, http.StatusCreated)
	return &out, status == http.StatusCreated, err
}

// Jobs

func (c *Client) ListJobs(ctx context.Context, limit int) ([]Job, error) {
	var out []Job
	return out, c.do(ctx, http.MethodGet, withLimit("/api/jobs", limit), nil, &out, http.StatusOK)
}

func (c *Client) GetJob(ctx context.Context, id int64) (*Job, error) {
	var out Job
	return &out, c.do(ctx, http.MethodGet, idPath("/api/jobs/%d", id), nil, &out, http.StatusOK)
}

func (c *Client) CreateJob(ctx context.Context, req CreateJobRequest) (*Job, error) {
	var out Job
	return &out, c.do(ctx, http.MethodPost, "/api/jobs", req, &out, http.StatusCreated)
}

func (c *Client) DeleteJob(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, idPath("/api/jobs/%d", id), nil, nil, http.StatusNoContent)
}

func (c *Client) ImportJobs(ctx context.Context, limit int) ([]Job, error) {
	var out []Job
	return out, c.do(ctx, http.MethodPost, "/api/jobs/import", ImportJobsRequest{Limit: limit}, &out, http.StatusCreated)
}

func (c *Client) Discover(ctx context.Context, jobID int64) (*DiscoveryResult, error) {
	var out DiscoveryResult
	return &out, c.do(ctx, http.MethodPost, idPath("/api/jobs/%d/discover", jobID), nil, &out, http.StatusCreated)
}

// Employees

func (c *Client) ListEmployees(ctx context.Context, jobID int64) ([]Employee, error) {
	var out []Employee
	return out, c.do(ctx, http.MethodGet, idPath("/api/jobs/%d/employees", jobID), nil, &out, http.StatusOK)
}

func (c *Client) CreateEmployee(ctx context.Context, jobID int64, req CreateEmployeeRequest) (*Employee, error) {
	var out Employee
	return &out, c.do(ctx, http.MethodPost, idPath("/api/jobs/%d/employees", jobID), req, &out, http.StatusCreated)
}

func (c *Client) GetEmployee(ctx context.Context, id int64) (*Employee, error) {
	var out Employee
	return &out, c.do(ctx, http.MethodGet, idPath("/api/employees/%d", id), nil, &out, http.StatusOK)
}

// Mutuals

type MutualQuery struct {
	EmployeeID int64
	JobID      int64
	Limit      int
}

func (q MutualQuery) encode() string {
	v := url.Values{}
	if q.EmployeeID > 0 {
		v.Set("employeeId", strconv.FormatInt(q.EmployeeID, 10))
	}
	if q.JobID > 0 {
		v.Set("jobId", strconv.FormatInt(q.JobID, 10))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}

func (c *Client) ListMutuals(ctx context.Context, q MutualQuery) ([]Mutual, error) {
	var out []Mutual
	return out, c.do(ctx, http.MethodGet, "/api/mutuals"+q.encode(), nil, &out, http.StatusOK)
}

func (c *Client) GetMutual(ctx context.Context, id int64) (*Mutual, error) {
	var out Mutual
	return &out, c.do(ctx, http.MethodGet, idPath("/api/mutuals/%d", id), nil, &out, http.StatusOK)
}

func (c *Client) CreateMutual(ctx context.Context, req CreateMutualRequest) (*Mutual, error) {
	var out Mutual
	return &out, c.do(ctx, http.MethodPost, "/api/mutuals", req, &out, http.StatusCreated)
}

func (c *Client) UpdateMutual(ctx context.Context, id int64, req UpdateMutualRequest) (*Mutual, error) {
	var out Mutual
	return &out, c.do(ctx, http.MethodPatch, idPath("/api/mutuals/%d", id), req, &out, http.StatusOK)
}

func (c *Client) PreviewTemplate(ctx context.Context, mutualID int64, calendarURL string) (*TemplatePreview, error) {
	path := idPath("/api/mutuals/%d/template", mutualID)
	if calendarURL != "" {
		path += "?calendarUrl=" + url.QueryEscape(calendarURL)
	}
	var out TemplatePreview
	return &out, c.do(ctx, http.MethodGet, path, nil, &out, http.StatusOK)
}

// Messages

type MessageQuery struct {
	MutualID int64
	JobID    int64
	Status   string
	Limit    int
}

func (q MessageQuery) encode() string {
	v := url.Values{}
	if q.MutualID > 0 {
		v.Set("mutualId", strconv.FormatInt(q.MutualID, 10))
	}
	if q.JobID > 0 {
		v.Set("jobId", strconv.FormatInt(q.JobID, 10))
	}
	if q.Status != "" {
		v.Set("status", q.Status)
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}

func (c *Client) ListMessages(ctx context.Context, q MessageQuery) ([]Message, error) {
	var out []Message
	return out, c.do(ctx, http.MethodGet, "/api/messages"+q.encode(), nil, &out, http.StatusOK)
}

func (c *Client) GetMessage(ctx context.Context, id int64) (*Message, error) {
	var out Message
	return &out, c.do(ctx, http.MethodGet, idPath("/api/messages/%d", id), nil, &out, http.StatusOK)
}

func (c *Client) CreateMessage(ctx context.Context, req CreateMessageRequest) (*Message, error) {
	var out Message
	return &out, c.do(ctx, http.MethodPost, "/api/messages", req, &out, http.StatusCreated)
}

func (c *Client) UpdateMessage(ctx context.Context, id int64, req UpdateMessageRequest) (*Message, error) {
	var out Message
	return &out, c.do(ctx, http.MethodPatch, idPath("/api/messages/%d", id), req, &out, http.StatusOK)
}

// DeleteMessage soft deletes and returns the message as it now stands.
func (c *Client) DeleteMessage(ctx context.Context, id int64) (*Message, error) {
	var out Message
	return &out, c.do(ctx, http.MethodDelete, idPath("/api/messages/%d", id), nil, &out, http.StatusOK)
}

// Stats

func (c *Client) Stats(ctx context.Context) (*Stats, error) {
	var out Stats
	return &out, c.do(ctx, http.MethodGet, "/api/stats", nil, &out, http.StatusOK)
}

func (c *Client) Activity(ctx context.Context, days int) ([]ActivityDay, error) {
	path := "/api/stats/activity"
	if days > 0 {
		path += "?days=" + strconv.Itoa(days)
	}
	var out []ActivityDay
	return out, c.do(ctx, http.MethodGet, path, nil, &out, http.StatusOK)
}

// Tools

func (c *Client) Resume(ctx context.Context, jobDescription string) (string, error) {
	return c.tool(ctx, "resume", &ToolRequest{JobDescription: jobDescription})
}

func (c *Client) CoverLetter(ctx context.Context, jobDescription string) (string, error) {
	return c.tool(ctx, "cover-letter", &ToolRequest{JobDescription: jobDescription})
}

func (c *Client) LinkedInProfile(ctx context.Context) (string, error) {
	return c.tool(ctx, "linkedin-profile", nil)
}

func (c *Client) tool(ctx context.Context, name string, req *ToolRequest) (string, error) {
	var body any
	if req != nil {
		body = req
	}
	var out ToolResponse
	err := c.do(ctx, http.MethodPost, "/api/tools/"+name, body, &out, http.StatusOK)
	return out.Content, err
}
