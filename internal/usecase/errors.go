package usecase

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrDraftNotFound     = errors.New("draft not found")
	ErrSessionNotFound   = errors.New("session not found")
	ErrSaveInFlight      = errors.New("save already in flight")
	ErrDraftFinalized    = errors.New("draft is finalized and read-only")
	ErrTooManyOptions    = errors.New("draft already carries the maximum number of options")
	ErrDraftNotPersisted = errors.New("draft has no durable id yet")
	ErrInvalidOption     = errors.New("invalid option index")
)

// ValidationError lists the required fields a draft is missing. It is raised
// before any network I/O, so a save that fails validation never reaches the
// backend.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "draft validation failed: " + strings.Join(e.Fields, "; ")
}

// PersistenceError wraps a backend failure during create or update. The local
// aggregate is left unchanged and dirty, so the save is retryable.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("draft %s failed: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// OptionSaveFailure records which option failed and why.
type OptionSaveFailure struct {
	Index int
	Err   error
}

// PartialOptionSaveError reports per-option failures after every option got
// its save attempt. Options that saved are not rolled back.
type PartialOptionSaveError struct {
	Saved    int
	Failures []OptionSaveFailure
}

func (e *PartialOptionSaveError) Error() string {
	parts := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		parts[i] = fmt.Sprintf("option %d: %v", f.Index+1, f.Err)
	}
	return fmt.Sprintf("%d option(s) saved, %d failed: %s", e.Saved, len(e.Failures), strings.Join(parts, "; "))
}
