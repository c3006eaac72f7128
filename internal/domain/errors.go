package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound is returned when a referenced listing does not exist.
// Cart mutations on a missing line are no-ops, not errors.
var ErrNotFound = errors.New("not found")

// ValidationError reports submission failures per field so the presentation
// layer can highlight the specific invalid inputs.
type ValidationError struct {
	Fields map[string]string `json:"fields"`
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, f)
	}
	sort.Strings(names)
	return fmt.Sprintf("validation failed: %s", strings.Join(names, ", "))
}

// ContextKey types for request-scoped values set by middleware.
type ContextKey string

const (
	SessionContextKey ContextKey = "session"
	UserContextKey    ContextKey = "user"
)
