package adapter

import (
	"time"

	"github.com/sirupsen/logrus"

	logview "github.com/NemiKardani/in-app-logview"
)

// LogrusHook is a logrus hook that appends every entry to a logview
// buffer. Register it with logger.AddHook; the logger keeps writing to
// its own output as usual.
type LogrusHook struct {
	buf    *logview.Buffer
	tagKey string
}

// LogrusOption configures a LogrusHook.
type LogrusOption func(*LogrusHook)

// WithLogrusTag sets the entry field the record tag is read from.
func WithLogrusTag(key string) LogrusOption {
	return func(h *LogrusHook) {
		h.tagKey = key
	}
}

// NewLogrusHook returns a hook feeding buf, reading the tag from the
// "tag" field by default.
func NewLogrusHook(buf *logview.Buffer, opts ...LogrusOption) *LogrusHook {
	h := &LogrusHook{buf: buf, tagKey: DefaultTagKey}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Levels implements logrus.Hook.
func (h *LogrusHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire implements logrus.Hook. It never fails.
func (h *LogrusHook) Fire(e *logrus.Entry) error {
	tag := ""
	fields := make(map[string]any, len(e.Data))
	for k, v := range e.Data {
		if k == h.tagKey && tag == "" {
			if s, ok := v.(string); ok {
				tag = s
				continue
			}
		}
		fields[k] = v
	}

	at := e.Time
	if at.IsZero() {
		at = time.Now()
	}
	h.buf.Append(logview.Record{
		Time:    at,
		Level:   levelFromLogrus(e.Level),
		Tag:     tag,
		Message: withFields(e.Message, fields),
	})
	return nil
}

func levelFromLogrus(l logrus.Level) logview.Level {
	switch l {
	case logrus.TraceLevel, logrus.DebugLevel:
		return logview.LevelDebug
	case logrus.InfoLevel:
		return logview.LevelInfo
	case logrus.WarnLevel:
		return logview.LevelWarning
	default:
		return logview.LevelError
	}
}
