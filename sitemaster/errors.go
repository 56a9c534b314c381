package sitemaster

import (
	"errors"
	"fmt"
)

// ErrNotFound signals that an operation referenced an id no longer present.
// State is left unchanged; most callers treat it as a benign no-op.
var ErrNotFound = errors.New("not found")

// ErrMalformedImport signals that an externally supplied backup is not a
// valid site document. The in-memory document is left untouched.
var ErrMalformedImport = errors.New("malformed import: not a valid site document")

// ErrNoComparison signals a commit with no cached comparison result.
var ErrNoComparison = errors.New("no comparison result to commit")

// ValidationError reports a missing or unusable required field. The
// operation that raised it did not mutate any state.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func errRequired(field string) error {
	return &ValidationError{Field: field, Reason: "must not be empty"}
}
