// Package runner implements the headless host loop that drives a machine at a fixed speed.
package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/retroenv/retrogolib/log"
)

// Machine is a machine that advances one simulated tick per call.
type Machine interface {
	Tick() error
}

// Runner ticks a machine until the step budget is used up, the context is cancelled or
// the machine reports an error.
type Runner struct {
	logger *log.Logger
	speed  int    // ticks per second, 0 runs unthrottled
	steps  uint64 // 0 runs until cancelled
	onTick func()
}

// New returns a runner for the given speed and step budget.
func New(logger *log.Logger, speed int, steps uint64) *Runner {
	return &Runner{
		logger: logger,
		speed:  speed,
		steps:  steps,
	}
}

// OnTick sets a function that is called after every successful tick.
func (r *Runner) OnTick(fn func()) {
	r.onTick = fn
}

// Run ticks the machine and returns the number of completed ticks.
func (r *Runner) Run(ctx context.Context, machine Machine) (uint64, error) {
	var pace <-chan time.Time
	if r.speed > 0 {
		ticker := time.NewTicker(time.Second / time.Duration(r.speed))
		defer ticker.Stop()
		pace = ticker.C
	}

	var ticks uint64
	for r.steps == 0 || ticks < r.steps {
		if err := r.wait(ctx, pace); err != nil {
			return ticks, err
		}

		if err := machine.Tick(); err != nil {
			return ticks, fmt.Errorf("tick %d: %w", ticks, err)
		}
		ticks++

		if r.onTick != nil {
			r.onTick()
		}
	}

	r.logger.Debug("Step budget reached", log.Int("ticks", int(ticks)))
	return ticks, nil
}

// wait blocks until the next tick is due or the context is cancelled.
func (r *Runner) wait(ctx context.Context, pace <-chan time.Time) error {
	if pace == nil {
		return ctx.Err()
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-pace:
		return nil
	}
}
