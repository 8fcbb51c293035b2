// Package journal reads and writes the flat journal log: dated blocks
// separated by blank lines, each starting with "YYYY-MM-DD c | ".
package journal

import "context"

// Resource is the text the journal lives in.
//
// ReadAll returns "" and no error when the resource does not exist yet.
// WriteAll replaces the full content. Failures of either wrap
// ErrResourceUnavailable.
type Resource interface {
	ReadAll(ctx context.Context) (string, error)
	WriteAll(ctx context.Context, text string) error
}
