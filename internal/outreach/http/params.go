package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/aussiebroadwan/mutuals/pkg/httpx"
	"github.com/aussiebroadwan/mutuals/pkg/mutualsdk"
)

var errInvalidParam = errors.New("invalid parameter")

// pathID reads a positive integer path value. On failure it has already
// written the 400.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		writeBadRequest(w, "Invalid "+name)
		return 0, false
	}
	return id, true
}

// queryInt reads an optional positive integer query parameter, 0 when absent.
func queryInt(r *http.Request, name string) (int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n <= 0 {
		return 0, errInvalidParam
	}
	return n, nil
}

// queryParams reads a set of optional positive integer query parameters,
// writing a 400 that names the first bad one.
func queryParams(w http.ResponseWriter, r *http.Request, names ...string) (map[string]int64, bool) {
	out := make(map[string]int64, len(names))
	for _, name := range names {
		n, err := queryInt(r, name)
		if err != nil {
			writeError(w, http.StatusBadRequest, mutualsdk.ErrorCodeValidation, "Invalid query parameter",
				map[string]string{name: "must be a positive integer"})
			return nil, false
		}
		out[name] = n
	}
	return out, true
}

// decodeBody decodes the JSON body, writing a 400 on malformed input.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := httpx.DecodeJSON(w, r, v); err != nil {
		writeBadRequest(w, "Invalid JSON in request body")
		return false
	}
	return true
}

// decodeOptionalBody is decodeBody for endpoints where the body may be left out.
func decodeOptionalBody(w http.ResponseWriter, r *http.Request, v any) bool {
	err := httpx.DecodeJSON(w, r, v)
	if err == nil || errors.Is(err, httpx.ErrEmptyBody) {
		return true
	}
	writeBadRequest(w, "Invalid JSON in request body")
	return false
}

func itoa(n int) string { return strconv.Itoa(n) }
