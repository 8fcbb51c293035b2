package app

import (
	"context"

	"tableflip.dev/daybook/pkg/entry"
	"tableflip.dev/daybook/pkg/journal"
)

// Report lists the problems found in a journal.
type Report struct {
	Path      string                        `json:"path"`
	Entries   int                           `json:"entries"`
	Malformed []*journal.MalformedBlockError `json:"malformed"`
	// Mismatched entries carry a day code that disagrees with their date.
	Mismatched []*entry.Entry `json:"mismatched"`
}

// OK reports whether nothing was found.
func (r *Report) OK() bool {
	return len(r.Malformed) == 0 && len(r.Mismatched) == 0
}

// Doctor parses the whole journal and collects the blocks that were skipped
// along with entries whose day code is wrong.
func (s *Service) Doctor(ctx context.Context) (*Report, error) {
	path, err := s.JournalPath()
	if err != nil {
		return nil, err
	}
	text, err := s.Log(ctx)
	if err != nil {
		return nil, err
	}
	r := &Report{
		Path:       path,
		Malformed:  make([]*journal.MalformedBlockError, 0),
		Mismatched: make([]*entry.Entry, 0),
	}
	p := journal.Parser{OnSkip: func(err *journal.MalformedBlockError) {
		r.Malformed = append(r.Malformed, err)
	}}
	all := p.Parse(text)
	r.Entries = len(all)
	for _, e := range all {
		if e.DayMismatch() {
			r.Mismatched = append(r.Mismatched, e)
		}
	}
	return r, nil
}
