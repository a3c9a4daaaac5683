package adapter

import (
	"context"
	"log/slog"
	"strings"
	"time"

	logview "github.com/NemiKardani/in-app-logview"
)

// DefaultTagKey is the attribute or field key adapters read the record
// tag from unless configured otherwise.
const DefaultTagKey = "tag"

// SlogHandler is a log/slog handler that appends every record to a
// logview buffer. A top-level attribute under the configured tag key
// becomes the record tag; all other attributes fold into the message as
// key=value text, qualified with their group path.
type SlogHandler struct {
	buf      *logview.Buffer
	minLevel slog.Level
	tagKey   string
	attrs    []slog.Attr // keys already group-qualified
	groups   []string
}

// SlogOption configures a SlogHandler.
type SlogOption func(*SlogHandler)

// WithSlogTag sets the attribute key the record tag is read from.
func WithSlogTag(key string) SlogOption {
	return func(h *SlogHandler) {
		h.tagKey = key
	}
}

// WithSlogMinLevel drops records below the given level before they reach
// the buffer.
func WithSlogMinLevel(level slog.Level) SlogOption {
	return func(h *SlogHandler) {
		h.minLevel = level
	}
}

// NewSlogHandler returns a handler feeding buf. By default it accepts
// every level and reads the tag from the "tag" attribute.
func NewSlogHandler(buf *logview.Buffer, opts ...SlogOption) *SlogHandler {
	h := &SlogHandler{
		buf:      buf,
		minLevel: slog.LevelDebug,
		tagKey:   DefaultTagKey,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Enabled implements slog.Handler.
func (h *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.minLevel
}

// Handle implements slog.Handler.
func (h *SlogHandler) Handle(_ context.Context, r slog.Record) error {
	tag := ""
	fields := make(map[string]any)

	consider := func(key string, value slog.Value) {
		if key == h.tagKey && tag == "" {
			tag = value.String()
			return
		}
		fields[key] = value.Any()
	}

	for _, a := range h.attrs {
		consider(a.Key, a.Value)
	}
	r.Attrs(func(a slog.Attr) bool {
		consider(h.qualify(a.Key), a.Value)
		return true
	})

	at := r.Time
	if at.IsZero() {
		at = time.Now()
	}
	h.buf.Append(logview.Record{
		Time:    at,
		Level:   levelFromSlog(r.Level),
		Tag:     tag,
		Message: withFields(r.Message, fields),
	})
	return nil
}

// WithAttrs implements slog.Handler.
func (h *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	h2 := h.clone()
	for _, a := range attrs {
		a.Key = h.qualify(a.Key)
		h2.attrs = append(h2.attrs, a)
	}
	return h2
}

// WithGroup implements slog.Handler.
func (h *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := h.clone()
	h2.groups = append(h2.groups, name)
	return h2
}

func (h *SlogHandler) clone() *SlogHandler {
	h2 := *h
	h2.attrs = append([]slog.Attr(nil), h.attrs...)
	h2.groups = append([]string(nil), h.groups...)
	return &h2
}

// qualify prefixes key with the active group path. A grouped attribute
// never becomes the tag; only a top-level one does.
func (h *SlogHandler) qualify(key string) string {
	if len(h.groups) == 0 {
		return key
	}
	return strings.Join(h.groups, ".") + "." + key
}

func levelFromSlog(l slog.Level) logview.Level {
	switch {
	case l < slog.LevelInfo:
		return logview.LevelDebug
	case l < slog.LevelWarn:
		return logview.LevelInfo
	case l < slog.LevelError:
		return logview.LevelWarning
	default:
		return logview.LevelError
	}
}
