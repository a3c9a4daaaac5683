package adapter

import (
	"fmt"
	"sort"
	"strings"
)

// foldFields renders structured fields as deterministic "key=value" text
// appended to a record message, sorted by key.
func foldFields(fields map[string]any) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s=%v", k, fields[k])
	}
	return b.String()
}

func withFields(message string, fields map[string]any) string {
	if len(fields) == 0 {
		return message
	}
	if message == "" {
		return foldFields(fields)
	}
	return message + " " + foldFields(fields)
}
