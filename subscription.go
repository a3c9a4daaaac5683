package logview

import "sync/atomic"

// Subscription is one receiver on a Buffer's broadcast. Receive from
// Records until it closes, and Cancel when done; canceling affects
// neither the buffer nor other subscribers.
type Subscription struct {
	buf     *Buffer
	ch      chan Record
	closed  bool // guarded by buf.mu
	dropped atomic.Uint64
}

// Records returns the subscription's receive channel. It carries every
// record published after the subscription was created, in publish order,
// and is closed by Cancel or by the buffer's Dispose.
func (s *Subscription) Records() <-chan Record {
	return s.ch
}

// Cancel removes the subscription from the buffer and closes its
// channel. It is idempotent.
func (s *Subscription) Cancel() {
	s.buf.mu.Lock()
	defer s.buf.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	delete(s.buf.subs, s)
	close(s.ch)
}

// Dropped counts records this subscription missed because its channel
// was full when they were published.
func (s *Subscription) Dropped() uint64 {
	return s.dropped.Load()
}
