// Package adapter connects third-party logging facilities to a logview
// buffer, so host applications can keep their existing loggers and still
// feed the in-app console.
//
// Each adapter is a thin level-mapping translator from an external
// severity vocabulary onto logview's four levels:
//
//   - SlogHandler plugs into log/slog.
//   - LogrusHook plugs into sirupsen/logrus.
//   - ZapCore tees into a zap logger via zapcore.NewTee.
//   - Writer captures line-oriented output from anything that takes an
//     io.Writer, including the stdlib log package via CaptureStdLog.
//
// Adapters never fail their callers: appending to a disabled buffer is
// the buffer's own silent no-op, and structured fields the four-level
// model cannot carry are folded into the message as key=value text.
package adapter
