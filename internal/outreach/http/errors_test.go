package http_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/aussiebroadwan/mutuals/pkg/mutualsdk"
	"github.com/stretchr/testify/require"
)

func decodeError(t *testing.T, resp *http.Response) mutualsdk.ErrorResponse {
	t.Helper()
	var body mutualsdk.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestBadRequests(t *testing.T) {
	baseURL := newTestAPI(t)
	c, _ := login(t, baseURL, "alice")

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		code   string
	}{
		{"malformed json", http.MethodPost, "/api/jobs", `{"title":`, mutualsdk.ErrorCodeBadRequest},
		{"missing body", http.MethodPost, "/api/messages", "", mutualsdk.ErrorCodeBadRequest},
		{"non numeric limit", http.MethodGet, "/api/jobs?limit=ten", "", mutualsdk.ErrorCodeValidation},
		{"negative limit", http.MethodGet, "/api/messages?limit=-1", "", mutualsdk.ErrorCodeValidation},
		{"bad path id", http.MethodGet, "/api/jobs/abc", "", mutualsdk.ErrorCodeBadRequest},
		{"unsupported window", http.MethodGet, "/api/stats/activity?days=14", "", mutualsdk.ErrorCodeValidation},
		{"unknown status", http.MethodGet, "/api/messages?status=Archived", "", mutualsdk.ErrorCodeValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := raw(t, c, tt.method, tt.path, tt.body)
			require.Equal(t, http.StatusBadRequest, resp.StatusCode)
			require.Equal(t, tt.code, decodeError(t, resp).Error)
		})
	}
}

func TestValidationDetails(t *testing.T) {
	baseURL := newTestAPI(t)
	c, _ := login(t, baseURL, "alice")

	_, err := c.CreateJob(t.Context(), mutualsdk.CreateJobRequest{JobURL: "ftp://nope"})
	apiErr := requireAPIError(t, err, http.StatusBadRequest, mutualsdk.ErrorCodeValidation)
	require.Equal(t, "is required", apiErr.Details["title"])
	require.Equal(t, "is required", apiErr.Details["company"])
	require.Contains(t, apiErr.Details, "jobUrl")
}

func TestUnknownFieldsAreIgnored(t *testing.T) {
	baseURL := newTestAPI(t)
	c, _ := login(t, baseURL, "alice")

	resp := raw(t, c, http.MethodPost, "/api/jobs", `{"title":"Designer","company":"Acme","salary":"lots"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestProtectedRoutesNeedSession(t *testing.T) {
	baseURL := newTestAPI(t)
	anon := newClient(t, baseURL)

	for _, path := range []string{"/api/jobs", "/api/mutuals", "/api/messages", "/api/stats", "/api/user"} {
		resp := raw(t, anon, http.MethodGet, path, "")
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
	}
}
