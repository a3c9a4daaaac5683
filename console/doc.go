// Package console renders a logview buffer as an interactive terminal
// pane built on Bubble Tea.
//
// The console shows the buffer's retained history and follows the live
// stream. It supports substring search (/), a level filter cycle (f), a
// source-tag toggle (s), follow mode (Space), timestamp toggling
// (t), clipboard copy of the visible lines (c), and clearing the
// underlying buffer (x). Press ? for the full key reference.
//
// Use Run for a standalone full-screen console:
//
//	if err := console.Run(ctx, buf); err != nil { ... }
//
// Or embed Model in an existing Bubble Tea program. The component
// follows the Bubbles convention: forward messages to Update, render
// with View, and size it with SetSize from the host's WindowSizeMsg
// handling. Call Close when the host discards the console so its
// subscription is released.
package console
