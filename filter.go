package logview

import "strings"

// Filter selects records for display. The zero value matches every record.
type Filter struct {
	// Search matches case-insensitively against message and tag; empty
	// matches everything.
	Search string

	// Level, when non-nil, matches records of exactly that level.
	Level *Level

	// Source, when non-empty, matches records whose tag equals it.
	Source string
}

// Match reports whether r passes the filter.
func (f Filter) Match(r Record) bool {
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(r.Message), needle) &&
			!strings.Contains(strings.ToLower(r.Tag), needle) {
			return false
		}
	}
	if f.Level != nil && r.Level != *f.Level {
		return false
	}
	if f.Source != "" && r.Tag != f.Source {
		return false
	}
	return true
}

// Apply returns the records that pass the filter, preserving order.
func (f Filter) Apply(records []Record) []Record {
	if len(records) == 0 {
		return nil
	}
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if f.Match(r) {
			out = append(out, r)
		}
	}
	return out
}
