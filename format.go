package logview

import (
	"fmt"
	"strings"
)

// Level column width in formatted lines; "WARNING" is the widest name.
const levelColumnWidth = 7

// Format renders a record as a single display line:
//
//	HH:MM:SS.mmm LEVEL   [tag] message
//
// The timestamp is zero-padded with millisecond precision, the level is
// upper-cased and padded to a fixed column width, and the bracketed tag
// prefix appears only when the record carries a tag. Formatting is
// best-effort and never fails, whatever the input.
func Format(r Record) string {
	return r.Time.Format("15:04:05.000") + " " + formatTail(r)
}

// FormatNoTime renders a record like Format but without the timestamp.
func FormatNoTime(r Record) string {
	return formatTail(r)
}

func formatTail(r Record) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-*s ", levelColumnWidth, r.Level.Upper())
	if r.Tag != "" {
		b.WriteString("[")
		b.WriteString(r.Tag)
		b.WriteString("] ")
	}
	b.WriteString(r.Message)
	return b.String()
}
