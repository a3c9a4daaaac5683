// Package app provides the orchestration layer for the logview demo.
//
// # Overview
//
// This package wires together preferences, the log buffer, the demo
// producers, and the console UI. It serves as the composition root
// where all dependencies are initialized and connected.
//
// # Architecture
//
// The app package follows a simple initialization pattern:
//
//  1. Load viewer preferences from ~/.config/logview/prefs.toml
//  2. Create and initialize the in-memory log buffer
//  3. Launch the demo producers feeding the buffer
//  4. Start the console UI and block until the user exits or the
//     context cancels
//  5. Dispose the buffer so every subscriber shuts down
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> prefs.Load()      Read viewer preferences
//	       ├─────> logview.New()     In-memory ring buffer
//	       ├─────> demo.Run()        Background producers (errgroup)
//	       └─────> console.Run()     Console UI (blocks)
//
// The producers append through the slog, logrus, zap, and direct paths
// while the console follows the buffer's live stream. Quitting the
// console cancels the shared context, which stops the producers.
//
// # Configuration
//
// The Options struct allows callers to customize:
//
//   - Capacity: retained records (default: 10000)
//   - Interval: base producer cadence (default: 400ms)
//   - PrefsPath: preferences file (default: ~/.config/logview/prefs.toml)
//
// # Usage Example
//
//	ctx, cancel := context.WithCancel(context.Background())
//	defer cancel()
//
//	if err := app.Run(ctx, app.Options{}); err != nil {
//		log.Fatalf("logview-demo failed: %v", err)
//	}
package app
