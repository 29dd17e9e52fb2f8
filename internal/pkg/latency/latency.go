// Package latency simulates the response time of external systems without
// tying up the scheduler: waiting parks the calling goroutine on a timer
// while every other request keeps running.
package latency

import (
	"context"
	"time"
)

// Delayer pauses the caller for a duration.
type Delayer interface {
	// Wait returns after d has elapsed, or early with ctx.Err() if the
	// context ends first. Non-positive durations return immediately.
	Wait(ctx context.Context, d time.Duration) error
}

// TimerDelayer is the production Delayer, backed by time.Timer.
type TimerDelayer struct{}

// Wait implements Delayer.
func (TimerDelayer) Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// NoDelay skips every wait. Used by tests and the CLI.
type NoDelay struct{}

// Wait implements Delayer.
func (NoDelay) Wait(ctx context.Context, _ time.Duration) error {
	return ctx.Err()
}

// Recorder never waits; it keeps the durations it was asked for. Not safe
// for concurrent use.
type Recorder struct {
	Waits []time.Duration
}

// Wait implements Delayer.
func (r *Recorder) Wait(ctx context.Context, d time.Duration) error {
	r.Waits = append(r.Waits, d)
	return ctx.Err()
}

// Range is a half-open span of durations.
type Range struct {
	Min time.Duration
	Max time.Duration
}

// Fixed returns a range that always yields d.
func Fixed(d time.Duration) Range {
	return Range{Min: d, Max: d}
}

// Pick maps a uniform sample u in [0, 1) onto the range.
func (r Range) Pick(u float64) time.Duration {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + time.Duration(u*float64(r.Max-r.Min))
}
