package journal

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyEntry is returned when the content is empty after trimming.
	ErrEmptyEntry = errors.New("empty entry")

	// ErrResourceUnavailable marks failures to read or write the journal
	// itself. A journal that does not exist yet is not unavailable.
	ErrResourceUnavailable = errors.New("journal: resource unavailable")
)

// ValidationError rejects input before anything is written.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("journal: invalid %s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// MalformedBlockError describes a block that was skipped while parsing. It is
// only handed to Parser.OnSkip and never returned.
type MalformedBlockError struct {
	// Index is the zero based position of the block in the log.
	Index  int    `json:"index"`
	Block  string `json:"block"`
	Reason string `json:"reason"`
}

func (e *MalformedBlockError) Error() string {
	return fmt.Sprintf("journal: block %d: %s", e.Index+1, e.Reason)
}
