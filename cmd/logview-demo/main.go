package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/NemiKardani/in-app-logview/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	capacity := flag.Int("cap", 0, "retained records (optional, defaults to 10000)")
	interval := flag.Duration("rate", 0, "base producer cadence (optional, defaults to 400ms)")
	prefsPath := flag.String("prefs", "", "override preferences file path (optional)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{PrefsPath: *prefsPath}
	if *capacity > 0 {
		opts.Capacity = *capacity
	}
	if *interval > 0 {
		opts.Interval = *interval
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "logview-demo: %v\n", err)
		return 1
	}
	return 0
}
