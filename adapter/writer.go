package adapter

import (
	"bytes"
	"io"
	"log"
	"strings"
	"sync"

	logview "github.com/NemiKardani/in-app-logview"
)

// Writer turns line-oriented output into buffer records: each completed
// line becomes one record at a fixed level and tag. Partial lines are
// carried across writes until their newline arrives; Close flushes an
// unterminated remainder. Blank lines are skipped and trailing carriage
// returns are stripped.
type Writer struct {
	buf   *logview.Buffer
	level logview.Level
	tag   string

	mu      sync.Mutex
	pending bytes.Buffer
}

var _ io.WriteCloser = (*Writer)(nil)

// NewWriter returns a Writer that appends each line to buf at the given
// level under tag.
func NewWriter(buf *logview.Buffer, level logview.Level, tag string) *Writer {
	return &Writer{buf: buf, level: level, tag: tag}
}

// Write implements io.Writer. It never fails.
func (w *Writer) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.pending.Write(p)
	for {
		data := w.pending.Bytes()
		i := bytes.IndexByte(data, '\n')
		if i < 0 {
			break
		}
		line := string(data[:i])
		w.pending.Next(i + 1)
		w.emit(line)
	}
	return len(p), nil
}

// Close flushes a pending unterminated line. The Writer stays usable
// afterwards.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.pending.Len() > 0 {
		w.emit(w.pending.String())
		w.pending.Reset()
	}
	return nil
}

func (w *Writer) emit(line string) {
	line = strings.TrimRight(line, "\r")
	if strings.TrimSpace(line) == "" {
		return
	}
	w.buf.Append(logview.NewRecord(w.level, w.tag, line))
}

// CaptureStdLog points the stdlib log default logger at buf, capturing
// each line as an untagged-text debug record under tag. The returned
// func restores the previous output and flushes any partial line.
func CaptureStdLog(buf *logview.Buffer, tag string) (restore func()) {
	w := NewWriter(buf, logview.LevelDebug, tag)
	prev := log.Writer()
	log.SetOutput(w)
	return func() {
		log.SetOutput(prev)
		_ = w.Close()
	}
}
