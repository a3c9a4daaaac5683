package logview

import (
	"fmt"
	"sync"
)

const (
	// DefaultCapacity bounds retained history unless WithCapacity
	// overrides it.
	DefaultCapacity = 10000

	// ClearedMessage is the message of the synthetic marker record Clear
	// broadcasts so observers can render a clear boundary.
	ClearedMessage = "--- Logs cleared ---"

	defaultSubscriptionBuffer = 128
)

// Option configures a Buffer.
type Option func(*Buffer)

// WithCapacity sets the retention bound. Zero retains nothing while still
// notifying subscribers of every record; negative values fall back to
// DefaultCapacity.
func WithCapacity(n int) Option {
	return func(b *Buffer) {
		b.capacity = n
	}
}

// WithSubscriptionBuffer sets the channel depth of each subscription.
// Values below one fall back to the default of 128.
func WithSubscriptionBuffer(n int) Option {
	return func(b *Buffer) {
		b.subBuf = n
	}
}

// Buffer is a capacity-bounded, append-only log history with broadcast
// notification. A single mutex guards the record ring, the enabled flag,
// and the subscriber fan-out, so producers on any goroutine can log into
// the same buffer.
//
// A new Buffer starts disabled: every mutating operation is a silent
// no-op until Initialize enables capture. That makes the buffer safe to
// call unconditionally from anywhere in a host application without
// guarding call sites.
type Buffer struct {
	mu       sync.RWMutex
	enabled  bool
	disposed bool

	capacity int
	subBuf   int

	// Fixed-bound ring. The ring grows by appending until it reaches
	// capacity; after that next is the write position, which is also the
	// oldest record.
	ring  []Record
	next  int
	count int

	subs map[*Subscription]struct{}
}

// New returns a disabled buffer. Call Initialize before logging into it.
func New(opts ...Option) *Buffer {
	b := &Buffer{
		capacity: DefaultCapacity,
		subBuf:   defaultSubscriptionBuffer,
		subs:     make(map[*Subscription]struct{}),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.capacity < 0 {
		b.capacity = DefaultCapacity
	}
	if b.subBuf < 1 {
		b.subBuf = defaultSubscriptionBuffer
	}
	return b
}

// Initialize enables capture. It is idempotent, and it re-enables a
// disposed buffer; subscriptions closed by an earlier Dispose stay
// closed.
func (b *Buffer) Initialize() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.enabled = true
	b.disposed = false
}

// Enabled reports whether the buffer is capturing. Hosts check this
// before wiring any log console UI.
func (b *Buffer) Enabled() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.enabled
}

// Append retains r and broadcasts it to every subscriber. While the
// buffer is disabled it is a silent no-op. Append never blocks: a
// subscriber whose channel is full misses the record and has it counted
// as dropped.
func (b *Buffer) Append(r Record) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.enabled {
		return
	}
	b.retainLocked(r)
	b.publishLocked(r)
}

// Log appends a record stamped with the current time.
func (b *Buffer) Log(level Level, tag, message string) {
	b.Append(NewRecord(level, tag, message))
}

// AppendText appends untagged message text at the debug level.
func (b *Buffer) AppendText(message string) {
	b.Append(NewRecord(LevelDebug, "", message))
}

// Debugf appends a formatted debug record under tag.
func (b *Buffer) Debugf(tag, format string, args ...any) {
	b.Append(NewRecord(LevelDebug, tag, fmt.Sprintf(format, args...)))
}

// Infof appends a formatted info record under tag.
func (b *Buffer) Infof(tag, format string, args ...any) {
	b.Append(NewRecord(LevelInfo, tag, fmt.Sprintf(format, args...)))
}

// Warningf appends a formatted warning record under tag.
func (b *Buffer) Warningf(tag, format string, args ...any) {
	b.Append(NewRecord(LevelWarning, tag, fmt.Sprintf(format, args...)))
}

// Errorf appends a formatted error record under tag.
func (b *Buffer) Errorf(tag, format string, args ...any) {
	b.Append(NewRecord(LevelError, tag, fmt.Sprintf(format, args...)))
}

// Clear empties the history, then broadcasts a single marker record
// (LevelInfo, ClearedMessage, current time) so observers can render the
// boundary. The marker itself is not retained. Clear is a no-op while
// disabled.
func (b *Buffer) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.enabled {
		return
	}
	clear(b.ring)
	b.ring = b.ring[:0]
	b.next, b.count = 0, 0
	b.publishLocked(NewRecord(LevelInfo, "", ClearedMessage))
}

// Subscribe registers a broadcast receiver for records published after
// the call. On a disposed buffer the returned subscription is already
// canceled.
func (b *Buffer) Subscribe() *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.subscribeLocked()
}

// Follow returns the retained history together with a subscription
// created under the same lock, so a catch-up reader sees every record
// exactly once across the two.
func (b *Buffer) Follow() ([]Record, *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.snapshotLocked(), b.subscribeLocked()
}

// Snapshot returns a copy of the retained records, oldest first.
// Mutating the result does not affect the buffer.
func (b *Buffer) Snapshot() []Record {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.snapshotLocked()
}

// Count returns the number of retained records.
func (b *Buffer) Count() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.count
}

// Capacity returns the retention bound the buffer was built with.
func (b *Buffer) Capacity() int {
	return b.capacity
}

// Dispose disables capture and closes every subscription. It is
// idempotent and safe with zero subscribers. Retained records stay
// readable through Snapshot and Count; Initialize re-enables capture.
func (b *Buffer) Dispose() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.enabled = false
	b.disposed = true
	for sub := range b.subs {
		sub.closed = true
		close(sub.ch)
	}
	clear(b.subs)
}

func (b *Buffer) retainLocked(r Record) {
	if b.capacity == 0 {
		return
	}
	if len(b.ring) < b.capacity {
		b.ring = append(b.ring, r)
		b.count = len(b.ring)
		b.next = len(b.ring) % b.capacity
		return
	}
	b.ring[b.next] = r
	b.next = (b.next + 1) % b.capacity
}

func (b *Buffer) snapshotLocked() []Record {
	if b.count == 0 {
		return nil
	}
	out := make([]Record, b.count)
	if b.count == b.capacity {
		for i := range out {
			out[i] = b.ring[(b.next+i)%b.capacity]
		}
	} else {
		copy(out, b.ring[:b.count])
	}
	return out
}

func (b *Buffer) subscribeLocked() *Subscription {
	sub := &Subscription{buf: b, ch: make(chan Record, b.subBuf)}
	if b.disposed {
		sub.closed = true
		close(sub.ch)
		return sub
	}
	b.subs[sub] = struct{}{}
	return sub
}

func (b *Buffer) publishLocked(r Record) {
	for sub := range b.subs {
		select {
		case sub.ch <- r:
		default:
			sub.dropped.Add(1)
		}
	}
}
