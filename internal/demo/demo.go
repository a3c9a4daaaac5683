// Package demo generates synthetic log traffic for the demo binary.
// Each producer exercises a different ingestion path so the console has
// realistic mixed traffic to show: slog for API requests, logrus for
// auth events, zap for database activity, and the buffer's own helpers
// for background jobs.
package demo

import (
	"context"
	"io"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	logview "github.com/NemiKardani/in-app-logview"
	"github.com/NemiKardani/in-app-logview/adapter"
)

const defaultInterval = 400 * time.Millisecond

// Run produces log records on buf until the context is canceled.
// interval is the base cadence of the busiest producer; the others run
// at multiples of it. Cancellation is a normal stop, not an error.
func Run(ctx context.Context, buf *logview.Buffer, interval time.Duration) error {
	if interval <= 0 {
		interval = defaultInterval
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return produceAPI(ctx, buf, interval) })
	g.Go(func() error { return produceAuth(ctx, buf, interval*3) })
	g.Go(func() error { return produceDB(ctx, buf, interval*2) })
	g.Go(func() error { return produceJobs(ctx, buf, interval*5) })
	return g.Wait()
}

// jitter spreads an interval between 60% and 140% of its nominal value
// so the producers do not tick in lockstep.
func jitter(d time.Duration) time.Duration {
	f := 0.6 + 0.8*rand.Float64()
	return time.Duration(float64(d) * f)
}

func produceAPI(ctx context.Context, buf *logview.Buffer, interval time.Duration) error {
	logger := slog.New(adapter.NewSlogHandler(buf)).With("tag", "API")
	routes := []string{"/users", "/orders", "/health", "/search", "/login"}

	ticker := time.NewTicker(jitter(interval))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		route := routes[rand.Intn(len(routes))]
		requestID := uuid.NewString()
		switch rand.Intn(10) {
		case 0:
			logger.Error("request failed", "method", "POST", "path", route, "status", 500, "request_id", requestID)
		case 1, 2:
			logger.Warn("slow request", "path", route, "ms", 800+rand.Intn(1200), "request_id", requestID)
		default:
			logger.Info("request handled", "method", "GET", "path", route, "status", 200, "request_id", requestID)
		}
		ticker.Reset(jitter(interval))
	}
}

func produceAuth(ctx context.Context, buf *logview.Buffer, interval time.Duration) error {
	lg := logrus.New()
	lg.SetOutput(io.Discard)
	lg.SetLevel(logrus.DebugLevel)
	lg.AddHook(adapter.NewLogrusHook(buf))

	users := []string{"alice", "bob", "carol", "dave"}

	ticker := time.NewTicker(jitter(interval))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		entry := lg.WithField("tag", "Auth").WithField("user", users[rand.Intn(len(users))])
		switch rand.Intn(6) {
		case 0:
			entry.WithField("attempt", 1+rand.Intn(3)).Warn("Login failed")
		case 1:
			entry.Info("User logged out")
		default:
			entry.Info("User login successful")
		}
		ticker.Reset(jitter(interval))
	}
}

func produceDB(ctx context.Context, buf *logview.Buffer, interval time.Duration) error {
	zl := zap.New(adapter.NewZapCore(buf, zapcore.DebugLevel)).Named("DB")
	tables := []string{"users", "orders", "sessions", "invoices"}

	ticker := time.NewTicker(jitter(interval))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		table := tables[rand.Intn(len(tables))]
		ms := 2 + rand.Intn(250)
		switch {
		case ms > 200:
			zl.Warn("slow query", zap.String("table", table), zap.Int("ms", ms))
		case rand.Intn(20) == 0:
			zl.Error("deadlock detected", zap.String("table", table))
		default:
			zl.Debug("query executed", zap.String("table", table), zap.Int("rows", rand.Intn(40)), zap.Int("ms", ms))
		}
		ticker.Reset(jitter(interval))
	}
}

func produceJobs(ctx context.Context, buf *logview.Buffer, interval time.Duration) error {
	jobs := []string{"cleanup", "email-digest", "reindex", "backup"}
	runs := 0

	ticker := time.NewTicker(jitter(interval))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		job := jobs[rand.Intn(len(jobs))]
		runs++
		buf.Infof("Jobs", "job %s started", job)
		if rand.Intn(8) == 0 {
			buf.Errorf("Jobs", "job %s failed: connection reset", job)
		} else {
			buf.Infof("Jobs", "job %s finished in %dms", job, 10+rand.Intn(500))
		}
		if runs%7 == 0 {
			buf.Debugf("Jobs", "queue depth %d", rand.Intn(5))
		}
		ticker.Reset(jitter(interval))
	}
}
