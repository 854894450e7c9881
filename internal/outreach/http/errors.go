package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/mutuals/internal/outreach/service"
	"github.com/aussiebroadwan/mutuals/pkg/httpx"
	"github.com/aussiebroadwan/mutuals/pkg/mutualsdk"
	"github.com/aussiebroadwan/mutuals/pkg/slogx"
)

func writeError(w http.ResponseWriter, status int, code, message string, details map[string]string) {
	httpx.WriteJSON(w, status, mutualsdk.ErrorResponse{Error: code, Message: message, Details: details})
}

func writeBadRequest(w http.ResponseWriter, message string) {
	writeError(w, http.StatusBadRequest, mutualsdk.ErrorCodeBadRequest, message, nil)
}

// writeServiceError maps service errors onto the API error taxonomy. Anything
// unrecognised is logged and reported as a generic 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		verr    *service.ValidationError
		partial *service.PartialError
	)

	switch {
	case errors.As(err, &verr):
		writeError(w, http.StatusBadRequest, mutualsdk.ErrorCodeValidation, "Validation failed", verr.Fields)
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, mutualsdk.ErrorCodeNotFound, "Not found", nil)
	case errors.Is(err, service.ErrForbidden):
		writeError(w, http.StatusForbidden, mutualsdk.ErrorCodeForbidden, "Forbidden", nil)
	case errors.Is(err, service.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, mutualsdk.ErrorCodeUnauthenticated, "Invalid username or password", nil)
	case errors.Is(err, service.ErrInvalidSession):
		writeError(w, http.StatusUnauthorized, mutualsdk.ErrorCodeUnauthenticated, "Session is invalid or expired", nil)
	case errors.Is(err, service.ErrUsernameTaken):
		writeError(w, http.StatusConflict, mutualsdk.ErrorCodeConflict, "Username already taken", nil)
	case errors.Is(err, service.ErrConflict):
		writeError(w, http.StatusConflict, mutualsdk.ErrorCodeConflict, "Job has outreach history and cannot be deleted", nil)
	case errors.Is(err, service.ErrLinkedInRequired):
		writeError(w, http.StatusBadRequest, mutualsdk.ErrorCodeBadRequest, "Connect a LinkedIn account first", nil)
	case errors.Is(err, service.ErrGeneratorUnavailable):
		writeError(w, http.StatusServiceUnavailable, mutualsdk.ErrorCodeUnavailable, "Content generation is not configured", nil)
	case errors.As(err, &partial):
		slogx.FromContext(r.Context()).Error("bulk operation stopped part way", "created", partial.Created, "error", partial.Err)
		details := make(map[string]string, len(partial.Created))
		for k, n := range partial.Created {
			details[k] = itoa(n)
		}
		writeError(w, http.StatusInternalServerError, mutualsdk.ErrorCodeInternal, "Stopped part way, created rows were kept", details)
	default:
		slogx.FromContext(r.Context()).Error("request failed", "error", err)
		writeError(w, http.StatusInternalServerError, mutualsdk.ErrorCodeInternal, "Internal server error", nil)
	}
}
