package app

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	logview "github.com/NemiKardani/in-app-logview"
	"github.com/NemiKardani/in-app-logview/console"
	"github.com/NemiKardani/in-app-logview/internal/demo"
	"github.com/NemiKardani/in-app-logview/prefs"
)

// Options configure the demo application.
type Options struct {
	Capacity  int           // retained records; zero uses the logview default
	Interval  time.Duration // base producer cadence; zero uses the demo default
	PrefsPath string        // empty uses default ~/.config/logview/prefs.toml
}

// Run boots the demo console until the context is cancelled or the user
// quits.
func Run(ctx context.Context, opts Options) error {
	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		return fmt.Errorf("load preferences: %w", err)
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	var bufOpts []logview.Option
	if opts.Capacity > 0 {
		bufOpts = append(bufOpts, logview.WithCapacity(opts.Capacity))
	}
	buf := logview.New(bufOpts...)
	buf.Initialize()
	defer buf.Dispose()

	// Quitting the console must also stop the producers
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return demo.Run(ctx, buf, opts.Interval)
	})
	g.Go(func() error {
		defer cancel()
		return console.Run(ctx, buf,
			console.WithTitle("logview demo"),
			console.WithFollow(userPrefs.Follow),
			console.WithShowTimestamps(userPrefs.ShowTimestamps),
			console.WithSourceTag(userPrefs.SourceTag),
			console.WithPrefsPath(prefsPath),
		)
	})
	return g.Wait()
}
