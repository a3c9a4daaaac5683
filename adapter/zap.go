package adapter

import (
	"time"

	"go.uber.org/zap/zapcore"

	logview "github.com/NemiKardani/in-app-logview"
)

// ZapCore is a zapcore.Core that appends every entry to a logview
// buffer. Hosts tee it into an existing logger:
//
//	core := zapcore.NewTee(existing, adapter.NewZapCore(buf, zap.DebugLevel))
//
// The entry's logger name (zap.Logger.Named) becomes the record tag, and
// structured fields fold into the message as key=value text.
type ZapCore struct {
	zapcore.LevelEnabler
	buf    *logview.Buffer
	fields []zapcore.Field
}

// NewZapCore returns a core feeding buf, accepting entries enab allows.
func NewZapCore(buf *logview.Buffer, enab zapcore.LevelEnabler) *ZapCore {
	return &ZapCore{LevelEnabler: enab, buf: buf}
}

// With implements zapcore.Core.
func (c *ZapCore) With(fields []zapcore.Field) zapcore.Core {
	clone := *c
	clone.fields = append(append([]zapcore.Field(nil), c.fields...), fields...)
	return &clone
}

// Check implements zapcore.Core.
func (c *ZapCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write implements zapcore.Core. It never fails.
func (c *ZapCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	enc := zapcore.NewMapObjectEncoder()
	for _, f := range c.fields {
		f.AddTo(enc)
	}
	for _, f := range fields {
		f.AddTo(enc)
	}

	at := ent.Time
	if at.IsZero() {
		at = time.Now()
	}
	c.buf.Append(logview.Record{
		Time:    at,
		Level:   levelFromZap(ent.Level),
		Tag:     ent.LoggerName,
		Message: withFields(ent.Message, enc.Fields),
	})
	return nil
}

// Sync implements zapcore.Core.
func (c *ZapCore) Sync() error { return nil }

func levelFromZap(l zapcore.Level) logview.Level {
	switch {
	case l <= zapcore.DebugLevel:
		return logview.LevelDebug
	case l == zapcore.InfoLevel:
		return logview.LevelInfo
	case l == zapcore.WarnLevel:
		return logview.LevelWarning
	default:
		return logview.LevelError
	}
}
