package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/aussiebroadwan/mutuals/pkg/httpx"
)

var (
	ErrNotFound             = errors.New("not found")
	ErrForbidden            = errors.New("forbidden")
	ErrInvalidCredentials   = errors.New("invalid username or password")
	ErrUsernameTaken        = errors.New("username already taken")
	ErrConflict             = errors.New("conflict")
	ErrLinkedInRequired     = errors.New("a linked LinkedIn account is required")
	ErrGeneratorUnavailable = errors.New("content generation is not configured")
	ErrInvalidSession       = httpx.ErrInvalidSession
)

// ValidationError carries per-field messages back to the caller. Handlers
// turn it into a 400 with the fields as details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// invalid is shorthand for a single field failure.
func invalid(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

// validator collects field failures as a request is checked.
type validator struct {
	fields map[string]string
}

func (v *validator) check(ok bool, field, msg string) {
	if ok {
		return
	}
	if v.fields == nil {
		v.fields = map[string]string{}
	}
	if _, exists := v.fields[field]; !exists {
		v.fields[field] = msg
	}
}

func (v *validator) err() error {
	if len(v.fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: v.fields}
}

// PartialError is returned by bulk operations that stopped part way. The
// rows counted here were written and stay written.
type PartialError struct {
	Created map[string]int
	Err     error
}

func (e *PartialError) Error() string {
	return fmt.Sprintf("stopped after partial writes: %v", e.Err)
}

func (e *PartialError) Unwrap() error { return e.Err }
