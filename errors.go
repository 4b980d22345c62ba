package pulley

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an edit or delete references an id absent
// from the ledger. The store is left unchanged.
var ErrNotFound = errors.New("entry not found")

// ErrDuplicateID is returned when an append would introduce a second entry
// with an id already present in the ledger.
var ErrDuplicateID = errors.New("duplicate entry id")

// ValidationError reports which field of a draft failed an invariant check.
// No entry is ever committed from a draft that fails validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalidf(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
