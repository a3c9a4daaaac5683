package adapter

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	logview "github.com/NemiKardani/in-app-logview"
)

func newLogrusLogger(buf *logview.Buffer, opts ...LogrusOption) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	logger.SetLevel(logrus.TraceLevel)
	logger.AddHook(NewLogrusHook(buf, opts...))
	return logger
}

func TestLogrusHook_LevelMapping(t *testing.T) {
	tests := []struct {
		name string
		log  func(l *logrus.Logger)
		want logview.Level
	}{
		{"trace", func(l *logrus.Logger) { l.Trace("m") }, logview.LevelDebug},
		{"debug", func(l *logrus.Logger) { l.Debug("m") }, logview.LevelDebug},
		{"info", func(l *logrus.Logger) { l.Info("m") }, logview.LevelInfo},
		{"warn", func(l *logrus.Logger) { l.Warn("m") }, logview.LevelWarning},
		{"error", func(l *logrus.Logger) { l.Error("m") }, logview.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := newEnabledBuffer(t)
			tt.log(newLogrusLogger(buf))

			snap := buf.Snapshot()
			require.Len(t, snap, 1)
			require.Equal(t, tt.want, snap[0].Level)
			require.Equal(t, "m", snap[0].Message)
		})
	}
}

func TestLogrusHook_TagFieldBecomesTag(t *testing.T) {
	buf := newEnabledBuffer(t)
	logger := newLogrusLogger(buf)

	logger.WithField("tag", "Auth").Warn("login failed")

	snap := buf.Snapshot()
	require.Len(t, snap, 1)
	require.Equal(t, "Auth", snap[0].Tag)
	require.Equal(t, "login failed", snap[0].Message)
	require.Equal(t, logview.LevelWarning, snap[0].Level)
}

func TestLogrusHook_FoldsFieldsSorted(t *testing.T) {
	buf := newEnabledBuffer(t)
	logger := newLogrusLogger(buf)

	logger.WithFields(logrus.Fields{"user": "bob", "attempt": 2}).Error("denied")

	snap := buf.Snapshot()
	require.Len(t, snap, 1)
	require.Equal(t, "denied attempt=2 user=bob", snap[0].Message)
}

func TestLogrusHook_CustomTagKey(t *testing.T) {
	buf := newEnabledBuffer(t)
	logger := newLogrusLogger(buf, WithLogrusTag("component"))

	logger.WithField("component", "Jobs").Info("tick")

	snap := buf.Snapshot()
	require.Len(t, snap, 1)
	require.Equal(t, "Jobs", snap[0].Tag)
	require.Equal(t, "tick", snap[0].Message)
}

func TestLogrusHook_NonStringTagValueFolds(t *testing.T) {
	buf := newEnabledBuffer(t)
	logger := newLogrusLogger(buf)

	logger.WithField("tag", 42).Info("m")

	snap := buf.Snapshot()
	require.Len(t, snap, 1)
	require.Empty(t, snap[0].Tag)
	require.Equal(t, "m tag=42", snap[0].Message)
}
