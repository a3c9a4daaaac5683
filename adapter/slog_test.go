package adapter

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	logview "github.com/NemiKardani/in-app-logview"
)

func newEnabledBuffer(t *testing.T) *logview.Buffer {
	t.Helper()
	b := logview.New()
	b.Initialize()
	return b
}

func TestSlogHandler_LevelMapping(t *testing.T) {
	tests := []struct {
		name string
		log  func(l *slog.Logger)
		want logview.Level
	}{
		{"debug", func(l *slog.Logger) { l.Debug("m") }, logview.LevelDebug},
		{"info", func(l *slog.Logger) { l.Info("m") }, logview.LevelInfo},
		{"warn", func(l *slog.Logger) { l.Warn("m") }, logview.LevelWarning},
		{"error", func(l *slog.Logger) { l.Error("m") }, logview.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := newEnabledBuffer(t)
			tt.log(slog.New(NewSlogHandler(buf)))

			snap := buf.Snapshot()
			require.Len(t, snap, 1)
			require.Equal(t, tt.want, snap[0].Level)
			require.Equal(t, "m", snap[0].Message)
			require.False(t, snap[0].Time.IsZero())
		})
	}
}

func TestSlogHandler_TagAttrBecomesTag(t *testing.T) {
	buf := newEnabledBuffer(t)
	logger := slog.New(NewSlogHandler(buf))

	logger.Info("listening", "tag", "API", "port", 8080)

	snap := buf.Snapshot()
	require.Len(t, snap, 1)
	require.Equal(t, "API", snap[0].Tag)
	require.Equal(t, "listening port=8080", snap[0].Message)
}

func TestSlogHandler_WithAttrsAndGroups(t *testing.T) {
	buf := newEnabledBuffer(t)
	logger := slog.New(NewSlogHandler(buf)).
		With("tag", "DB", "request_id", "r1").
		WithGroup("query")

	logger.Info("executed", "rows", 3)

	snap := buf.Snapshot()
	require.Len(t, snap, 1)
	require.Equal(t, "DB", snap[0].Tag)
	require.Equal(t, "executed query.rows=3 request_id=r1", snap[0].Message)
}

func TestSlogHandler_GroupedTagKeyIsNotATag(t *testing.T) {
	buf := newEnabledBuffer(t)
	logger := slog.New(NewSlogHandler(buf)).WithGroup("meta")

	logger.Info("m", "tag", "NotATag")

	snap := buf.Snapshot()
	require.Len(t, snap, 1)
	require.Empty(t, snap[0].Tag)
	require.Equal(t, "m meta.tag=NotATag", snap[0].Message)
}

func TestSlogHandler_CustomTagKey(t *testing.T) {
	buf := newEnabledBuffer(t)
	logger := slog.New(NewSlogHandler(buf, WithSlogTag("component")))

	logger.Info("m", "component", "Jobs")

	snap := buf.Snapshot()
	require.Len(t, snap, 1)
	require.Equal(t, "Jobs", snap[0].Tag)
	require.Equal(t, "m", snap[0].Message)
}

func TestSlogHandler_MinLevelGate(t *testing.T) {
	buf := newEnabledBuffer(t)
	logger := slog.New(NewSlogHandler(buf, WithSlogMinLevel(slog.LevelWarn)))

	logger.Info("dropped")
	logger.Warn("kept")

	snap := buf.Snapshot()
	require.Len(t, snap, 1)
	require.Equal(t, "kept", snap[0].Message)
}
