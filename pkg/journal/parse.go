package journal

import (
	"sort"
	"strings"

	"tableflip.dev/daybook/pkg/entry"
	"tableflip.dev/daybook/pkg/glyph"
)

// Parser turns log text into entries. The zero value is ready to use.
type Parser struct {
	// OnSkip, when set, is called for every block that could not be parsed.
	OnSkip func(*MalformedBlockError)
}

// Parse returns every well formed entry in document order.
func Parse(text string) []*entry.Entry {
	return Parser{}.Parse(text)
}

// OnThisDay returns the entries written on ref's month and day in an earlier
// year, newest first.
func OnThisDay(text string, ref entry.Date) []*entry.Entry {
	return Parser{}.OnThisDay(text, ref)
}

// Matches reports whether e belongs to ref's "on this day" history. Entries
// from ref's own year, including ref itself, never match.
func Matches(e *entry.Entry, ref entry.Date) bool {
	return e.Date.SameMonthDay(ref) && e.Date.Year < ref.Year
}

// Parse returns every well formed entry in document order. Malformed blocks
// are dropped and reported to OnSkip.
func (p Parser) Parse(text string) []*entry.Entry {
	entries := make([]*entry.Entry, 0)
	if strings.TrimSpace(text) == "" {
		return entries
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	for i, block := range strings.Split(text, BlockSeparator) {
		if strings.TrimSpace(block) == "" {
			continue
		}
		e, reason := parseBlock(block)
		if e == nil {
			p.skip(i, block, reason)
			continue
		}
		entries = append(entries, e)
	}
	return entries
}

// OnThisDay filters Parse by Matches and sorts the result by date, newest
// first. Entries sharing a date keep their log order.
func (p Parser) OnThisDay(text string, ref entry.Date) []*entry.Entry {
	matches := make([]*entry.Entry, 0)
	for _, e := range p.Parse(text) {
		if Matches(e, ref) {
			matches = append(matches, e)
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Date.Compare(matches[j].Date) > 0
	})
	return matches
}

func (p Parser) skip(index int, block, reason string) {
	if p.OnSkip == nil {
		return
	}
	p.OnSkip(&MalformedBlockError{Index: index, Block: block, Reason: reason})
}

// parseBlock splits a block at the first separator on its header line. The
// content is everything after that separator, later separators included.
func parseBlock(block string) (*entry.Entry, string) {
	block = strings.TrimLeft(block, " \t\n")

	headerLine := block
	if nl := strings.IndexByte(block, '\n'); nl >= 0 {
		headerLine = block[:nl]
	}
	sep := strings.Index(headerLine, FieldSeparator)
	if sep < 0 {
		return nil, "missing \" | \" separator"
	}

	fields := strings.Fields(headerLine[:sep])
	if len(fields) < 2 {
		return nil, "header needs a date and a day code"
	}
	date, err := entry.ParseDate(fields[0])
	if err != nil {
		return nil, err.Error()
	}

	content := strings.TrimSpace(block[sep+len(FieldSeparator):])
	return entry.FromLog(date, glyph.Day(fields[1]), content), ""
}
