package ticker

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"
)

// Runs `task` every `interval` until the context is done. Returns nil when the context ends; task errors stop the loop and are returned.
func Periodically(ctx context.Context, interval time.Duration, task func(context.Context) error) error {
	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			if err := task(ctx); err != nil {
				return err
			}
		}
	}
}

// Counts completed units of work, safe for concurrent use, and can log progress on an interval.
type Progress struct {
	Total  int64
	Logger *slog.Logger

	done atomic.Int64
}

func NewProgress(total int, logger *slog.Logger) *Progress {
	if logger == nil {
		logger = slog.Default()
	}
	return &Progress{Total: int64(total), Logger: logger}
}

func (p *Progress) Add(n int) {
	p.done.Add(int64(n))
}

func (p *Progress) Done() int64 {
	return p.done.Load()
}

var errComplete = errors.New("progress complete")

// Logs progress every `interval` until the context ends or all work is done.
func (p *Progress) Report(ctx context.Context, interval time.Duration) {
	start := time.Now()
	err := Periodically(ctx, interval, func(context.Context) error {
		done := p.Done()
		p.Logger.Info("progress", "done", done, "total", p.Total, "elapsed", time.Since(start).Round(time.Millisecond))
		if done >= p.Total {
			return errComplete
		}
		return nil
	})
	if err != nil && !errors.Is(err, errComplete) {
		p.Logger.Warn("progress reporting stopped", "err", err)
	}
}
