package adapter

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	logview "github.com/NemiKardani/in-app-logview"
)

func TestZapCore_LevelMapping(t *testing.T) {
	tests := []struct {
		name string
		log  func(l *zap.Logger)
		want logview.Level
	}{
		{"debug", func(l *zap.Logger) { l.Debug("m") }, logview.LevelDebug},
		{"info", func(l *zap.Logger) { l.Info("m") }, logview.LevelInfo},
		{"warn", func(l *zap.Logger) { l.Warn("m") }, logview.LevelWarning},
		{"error", func(l *zap.Logger) { l.Error("m") }, logview.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := newEnabledBuffer(t)
			logger := zap.New(NewZapCore(buf, zapcore.DebugLevel))

			tt.log(logger)

			snap := buf.Snapshot()
			require.Len(t, snap, 1)
			require.Equal(t, tt.want, snap[0].Level)
			require.Equal(t, "m", snap[0].Message)
		})
	}
}

func TestZapCore_LoggerNameBecomesTag(t *testing.T) {
	buf := newEnabledBuffer(t)
	logger := zap.New(NewZapCore(buf, zapcore.DebugLevel)).Named("DB")

	logger.Warn("slow query", zap.Int("ms", 150))

	snap := buf.Snapshot()
	require.Len(t, snap, 1)
	require.Equal(t, "DB", snap[0].Tag)
	require.Equal(t, "slow query ms=150", snap[0].Message)
}

func TestZapCore_WithFieldsCarryOver(t *testing.T) {
	buf := newEnabledBuffer(t)
	logger := zap.New(NewZapCore(buf, zapcore.DebugLevel)).
		With(zap.String("request_id", "r1"))

	logger.Info("handled", zap.Int("status", 200))

	snap := buf.Snapshot()
	require.Len(t, snap, 1)
	require.Equal(t, "handled request_id=r1 status=200", snap[0].Message)
}

func TestZapCore_LevelEnablerGate(t *testing.T) {
	buf := newEnabledBuffer(t)
	logger := zap.New(NewZapCore(buf, zapcore.WarnLevel))

	logger.Info("dropped")
	logger.Error("kept")

	snap := buf.Snapshot()
	require.Len(t, snap, 1)
	require.Equal(t, "kept", snap[0].Message)
}

func TestZapCore_TeeAlongsideExistingCore(t *testing.T) {
	buf := newEnabledBuffer(t)
	observed := zapcore.NewNopCore()
	logger := zap.New(zapcore.NewTee(observed, NewZapCore(buf, zapcore.DebugLevel)))

	logger.Info("both sinks")

	require.Equal(t, 1, buf.Count())
}
