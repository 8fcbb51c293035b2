package journal

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"tableflip.dev/daybook/pkg/entry"
	"tableflip.dev/daybook/pkg/glyph"
)

const (
	// BlockSeparator separates entries in the log.
	BlockSeparator = "\n\n"
	// FieldSeparator separates the header from the content.
	FieldSeparator = " | "
)

// blankLines matches a line break followed by one or more empty or
// whitespace only lines.
var blankLines = regexp.MustCompile(`\n(?:[ \t]*\n)+`)

// Appended is the result of merging a new entry into the log.
type Appended struct {
	// Entry is the serialized entry that was added.
	Entry string
	// Log is the full log text to persist.
	Log string
}

// Prefix returns "YYYY-MM-DD c | " for the given day.
func Prefix(today entry.Date) string {
	return fmt.Sprintf("%s %s%s", today, glyph.ForWeekday(today.Weekday()), FieldSeparator)
}

// Append serializes content as today's entry and merges it into existing.
// Content is trimmed and blank lines inside it are dropped, since a blank
// line would end the block early.
func Append(today entry.Date, content, existing string) (Appended, error) {
	if err := validate(today, content); err != nil {
		return Appended{}, err
	}
	line := Prefix(today) + Content(content)
	if strings.TrimSpace(existing) == "" {
		return Appended{Entry: line, Log: line}, nil
	}
	return Appended{Entry: line, Log: existing + BlockSeparator + line}, nil
}

// Content returns content as it is stored inside one block: line endings
// are normalized, runs of blank lines collapse to a single line break and
// the result is trimmed.
func Content(content string) string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	return blankLines.ReplaceAllString(strings.TrimSpace(content), "\n")
}

// AppendTo reads the current log from res, appends today's entry and writes
// the whole log back in one call. Nothing is read or written when the
// content is rejected.
//
// There is no lock around the read and the write: a second writer running
// at the same time can lose its entry.
func AppendTo(ctx context.Context, res Resource, today entry.Date, content string) (Appended, error) {
	if err := validate(today, content); err != nil {
		return Appended{}, err
	}
	existing, err := res.ReadAll(ctx)
	if err != nil {
		return Appended{}, err
	}
	out, err := Append(today, content, existing)
	if err != nil {
		return Appended{}, err
	}
	if err := res.WriteAll(ctx, out.Log); err != nil {
		return Appended{}, err
	}
	return out, nil
}

func validate(today entry.Date, content string) error {
	if !today.Valid() {
		return &ValidationError{Field: "date", Err: fmt.Errorf("%s is not a calendar day", today)}
	}
	if strings.TrimSpace(content) == "" {
		return &ValidationError{Field: "content", Err: ErrEmptyEntry}
	}
	return nil
}
