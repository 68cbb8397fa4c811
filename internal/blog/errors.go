package blog

import (
	"errors"
	"sort"
	"strings"
)

var (
	// ErrNotFound covers both missing entities and entities the viewer may not see.
	ErrNotFound = errors.New("not found")
	// ErrForbidden is returned when an existing entity belongs to someone else.
	ErrForbidden = errors.New("forbidden")
	// ErrUnauthenticated is returned when the operation needs a logged in viewer.
	ErrUnauthenticated = errors.New("authentication required")
)

// NonFieldErrors is the Fields key for messages not bound to a single field.
const NonFieldErrors = "__all__"

// ValidationError carries per-field messages for a rejected form.
type ValidationError struct {
	Fields map[string]string
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ": " + e.Fields[k]
	}

	return "validation failed: " + strings.Join(parts, "; ")
}
