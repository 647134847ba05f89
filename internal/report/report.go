// Package report simulates slow report generation with a cancelable delay.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/Veraticus/finsecure-hub/internal/common"
	"github.com/Veraticus/finsecure-hub/internal/model"
)

// DefaultDelay matches the wait shown by the dashboard export button.
const DefaultDelay = 2 * time.Second

// DefaultSteps is how many progress ticks the delay is split into.
const DefaultSteps = 20

// Progress receives one Add(1) per elapsed step.
type Progress interface {
	Add(num int) error
	Finish() error
}

// Sink receives the bundle once the delay has elapsed.
type Sink func(b *model.DatasetBundle) error

// Options configures a Runner.
type Options struct {
	Progress Progress
	Delay    time.Duration
	Steps    int
}

// Runner waits out the fixed delay, then hands the bundle to a sink.
type Runner struct {
	progress Progress
	delay    time.Duration
	steps    int
}

// NewRunner validates options and applies defaults for unset fields.
func NewRunner(opts Options) (*Runner, error) {
	if opts.Delay < 0 {
		return nil, fmt.Errorf("%w: delay must not be negative, got %s", common.ErrInvalidParameter, opts.Delay)
	}
	if opts.Steps < 0 {
		return nil, fmt.Errorf("%w: steps must not be negative, got %d", common.ErrInvalidParameter, opts.Steps)
	}
	if opts.Steps == 0 {
		opts.Steps = DefaultSteps
	}

	return &Runner{
		progress: opts.Progress,
		delay:    opts.Delay,
		steps:    opts.Steps,
	}, nil
}

// Steps returns the number of progress ticks per run.
func (r *Runner) Steps() int {
	return r.steps
}

// Run blocks for the configured delay and then calls sink. Cancellation
// returns ctx.Err() and sink is never called.
func (r *Runner) Run(ctx context.Context, b *model.DatasetBundle, sink Sink) error {
	if err := r.wait(ctx); err != nil {
		return err
	}

	if r.progress != nil {
		if err := r.progress.Finish(); err != nil {
			common.LogDebug("failed to finish progress bar", common.Fields{"error": err})
		}
	}

	if err := sink(b); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	common.LogInfo("report generated", common.Fields{
		"bundle_id": b.ID.String(),
		"scenario":  b.Scenario,
	})
	return nil
}

func (r *Runner) wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if r.delay == 0 {
		return nil
	}

	interval := r.delay / time.Duration(r.steps)
	if interval <= 0 {
		interval = time.Nanosecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for done := 0; done < r.steps; {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			done++
			if r.progress != nil {
				if err := r.progress.Add(1); err != nil {
					common.LogDebug("failed to update progress bar", common.Fields{"error": err})
				}
			}
		}
	}
	return nil
}
