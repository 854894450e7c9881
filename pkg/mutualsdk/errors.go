package mutualsdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Error codes carried in ErrorResponse.Error.
const (
	ErrorCodeUnauthenticated = "unauthenticated"
	ErrorCodeForbidden       = "forbidden"
	ErrorCodeNotFound        = "not_found"
	ErrorCodeValidation      = "validation_failed"
	ErrorCodeBadRequest      = "bad_request"
	ErrorCodeConflict        = "conflict"
	ErrorCodeUnavailable     = "unavailable"
	ErrorCodeRateLimited     = "rate_limit_exceeded"
	ErrorCodeInternal        = "internal_error"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// APIError is what the client returns for a non-2xx response.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Details    map[string]string
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("mutualsdk: http %d", e.StatusCode)
	}
	return fmt.Sprintf("mutualsdk: http %d: %s: %s", e.StatusCode, e.Code, e.Message)
}

// parseErrorResponse builds an APIError from a response body, tolerating
// bodies that are not ours (proxies, panics).
func parseErrorResponse(resp *http.Response, body []byte) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var er ErrorResponse
	if err := json.Unmarshal(body, &er); err == nil {
		apiErr.Code = er.Error
		apiErr.Message = er.Message
		apiErr.Details = er.Details
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}

// StatusCode returns the HTTP status of err when it is an *APIError, or 0.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
