package logview

import (
	"strings"
	"time"
)

// Level classifies a record's severity. The declaration order is
// presentation order only; filtering matches levels by equality.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
)

// String returns the lower-case level name.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// Upper returns the upper-case level name used in formatted lines.
func (l Level) Upper() string {
	return strings.ToUpper(l.String())
}

// ParseLevel maps a level name to its Level. Matching is case-insensitive
// and accepts "warn" for LevelWarning; the second result reports whether
// the name was recognized.
func ParseLevel(s string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, true
	case "info":
		return LevelInfo, true
	case "warning", "warn":
		return LevelWarning, true
	case "error":
		return LevelError, true
	default:
		return LevelDebug, false
	}
}

// Record is one captured log line. Records are immutable values; no field
// changes after construction.
type Record struct {
	Time    time.Time
	Level   Level
	Tag     string // empty means untagged
	Message string
}

// NewRecord builds a record stamped with the current time.
func NewRecord(level Level, tag, message string) Record {
	return Record{Time: time.Now(), Level: level, Tag: tag, Message: message}
}
