// Package logview captures application log lines in a bounded in-memory
// buffer and broadcasts them to live observers. It is the capture core of
// an in-app log console: host code logs into a Buffer from anywhere, and
// a viewer (the console package, or any subscriber) renders the stream.
//
// # Overview
//
// The package is deliberately small. A Buffer owns the canonical log
// history as an append-only, capacity-bounded sequence of immutable
// Records. When the sequence is full, each append evicts exactly the
// oldest record. Every append is also broadcast to every active
// Subscription, fire-and-forget: a slow or absent subscriber never
// blocks a producer.
//
// # Lifecycle
//
// A Buffer is an explicit context object owned by the host application
// and handed to producers and consumers; there is no package-level
// global. It starts disabled. Initialize enables capture and is
// idempotent; Dispose disables capture and closes all subscriptions.
// While disabled, Append, Log, and Clear are silent no-ops, which makes
// log calls safe to leave in place unconditionally. A production build
// that never calls Initialize pays only the cost of a mutex check.
// Enabled exposes the gate for hosts that want to skip wiring viewer UI
// entirely.
//
// # Capacity
//
// DefaultCapacity is 10000 records. WithCapacity overrides it; a zero
// capacity retains nothing while still broadcasting every record, so
// live observers keep working even when history is turned off.
//
// # Subscriptions
//
// Subscribe returns a Subscription whose channel carries every record
// published after the call, in publish order. Follow atomically couples
// a Snapshot with a new Subscription so a viewer can render history and
// then switch to the live stream without missing or double-seeing a
// record. Delivery is non-blocking with a bounded per-subscription
// channel; records a full subscription misses are counted on its Dropped
// counter.
//
// Clear empties the history and broadcasts a marker record with message
// ClearedMessage at LevelInfo. The marker is not retained; observers use
// it to draw a clear boundary.
//
// # Concurrency
//
// One RWMutex guards the record sequence, the enabled flag, the
// subscriber set, and the notification fan-out. All Buffer and
// Subscription methods are safe for concurrent use from preemptive
// goroutines. No operation blocks on I/O and none return errors; the
// component is designed to never fail its callers.
//
// # Filtering and formatting
//
// Filter is the viewer-side predicate: case-insensitive substring search
// over message and tag, equality level selection, and a source-tag
// match. Format and FormatNoTime render the canonical human-readable
// line ("HH:MM:SS.mmm LEVEL   [tag] message"). Both are pure helpers
// with no buffer state; presentation concerns such as colors live in the
// console package.
//
// # Usage
//
//	buf := logview.New()
//	buf.Initialize()
//	defer buf.Dispose()
//
//	buf.Infof("API", "listening on %s", addr)
//
//	records, sub := buf.Follow()
//	defer sub.Cancel()
//	render(records)
//	for r := range sub.Records() {
//		render([]logview.Record{r})
//	}
package logview
