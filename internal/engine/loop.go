package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/keyloop/internal/core"
	"github.com/vovakirdan/keyloop/internal/diag"
	"github.com/vovakirdan/keyloop/internal/shape"
	"github.com/vovakirdan/keyloop/internal/timing"
)

// Options configures a Loop.
type Options struct {
	// Cadence defaults to timing.DefaultCadence when left zero.
	Cadence timing.Cadence

	// PollInterval is the sleep between iterations in Run. Zero disables sleeping.
	PollInterval time.Duration

	// Clock defaults to a SystemClock.
	Clock timing.Clock

	// Logger defaults to a discarding logger.
	Logger *log.Logger
}

// Loop is the single-threaded host loop.
type Loop struct {
	window   Window
	clock    timing.Clock
	sched    *timing.Scheduler
	ctx      *Context
	hooks    Hooks
	queue    core.EventQueue
	interval time.Duration
	running  bool
	logger   *log.Logger
}

// NewLoop creates a loop over the window and context.
// Returns an error wrapping timing.ErrInvalidCadence when any cadence field
// of a non-zero Cadence is not positive.
func NewLoop(w Window, ctx *Context, hooks Hooks, opts Options) (*Loop, error) {
	if w == nil {
		return nil, errors.New("engine: window is required")
	}
	if ctx == nil {
		return nil, errors.New("engine: context is required")
	}
	if opts.PollInterval < 0 {
		return nil, fmt.Errorf("engine: negative poll interval %v", opts.PollInterval)
	}

	cadence := opts.Cadence
	if cadence == (timing.Cadence{}) {
		cadence = timing.DefaultCadence()
	}
	sched, err := timing.NewScheduler(cadence)
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}

	clock := opts.Clock
	if clock == nil {
		clock = timing.NewSystemClock()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Loop{
		window:   w,
		clock:    clock,
		sched:    sched,
		ctx:      ctx,
		hooks:    hooks,
		interval: opts.PollInterval,
		running:  true,
		logger:   logger,
	}, nil
}

// WithSink returns a copy of h whose Diagnostic hook forwards to sink.
// A Diagnostic hook already present keeps running first.
func (h Hooks) WithSink(sink diag.Sink) Hooks {
	if sink == nil {
		return h
	}
	prev := h.Diagnostic
	h.Diagnostic = func(ctx *Context, line string) {
		if prev != nil {
			prev(ctx, line)
		}
		sink(line)
	}
	return h
}

// Context returns the loop's shared state.
func (l *Loop) Context() *Context {
	return l.ctx
}

// Scheduler returns the loop's scheduler.
func (l *Loop) Scheduler() *timing.Scheduler {
	return l.sched
}

// Running reports whether the loop will start another iteration.
func (l *Loop) Running() bool {
	return l.running
}

// Stop clears the running flag; the current iteration still completes.
// Must be called from the loop goroutine, typically from a hook.
func (l *Loop) Stop() {
	l.running = false
}

// Step runs one iteration: drain input, advance the scheduler by the clock's
// elapsed time and dispatch whatever events fired.
func (l *Loop) Step() timing.Events {
	l.window.PollEvents(&l.queue)
	for _, ev := range l.queue.Drain() {
		l.handleEvent(ev)
	}

	l.ctx.Width, l.ctx.Height = l.window.Size()

	elapsed := l.clock.ElapsedMillis()
	l.clock.Reset()

	ev := l.sched.Advance(elapsed)

	if ev.Update {
		l.ctx.Ticks++
		if l.hooks.Update != nil {
			l.hooks.Update(l.ctx, ev.UpdateDelta)
		}
	}

	if ev.Draw {
		l.draw()
	}

	if ev.Diagnostic {
		line := diag.FormatFrames(ev.Frames)
		l.ctx.LastDiagnostic = line
		l.logger.Debug("diagnostic", "frames", ev.Frames, "ticks", l.ctx.Ticks)
		if l.hooks.Diagnostic != nil {
			l.hooks.Diagnostic(l.ctx, line)
		}
	}

	return ev
}

// Run repeats Step until the running flag is cleared or ctx is done,
// sleeping PollInterval between iterations. A window close is a normal
// termination and returns nil; cancellation returns ctx.Err().
func (l *Loop) Run(ctx context.Context) error {
	l.clock.Reset()
	l.logger.Info("loop started",
		"update_ms", l.sched.Cadence().UpdateMillis,
		"draw_ms", l.sched.Cadence().DrawMillis,
		"poll", l.interval,
	)

	var timer *time.Timer
	if l.interval > 0 {
		timer = time.NewTimer(l.interval)
		defer timer.Stop()
	}

	for l.running {
		l.Step()
		if !l.running {
			break
		}

		if timer == nil {
			if err := ctx.Err(); err != nil {
				l.running = false
				return err
			}
			continue
		}

		timer.Reset(l.interval)
		select {
		case <-ctx.Done():
			l.running = false
			return ctx.Err()
		case <-timer.C:
		}
	}

	l.logger.Info("loop stopped", "ticks", l.ctx.Ticks, "frames", l.ctx.Frames)
	return nil
}

// handleEvent applies one window event to the context.
// A close also releases every held action.
func (l *Loop) handleEvent(ev core.Event) {
	l.logger.Debug("event", "kind", ev.Kind.String(), "key", ev.Key)
	switch ev.Kind {
	case core.WindowClosed:
		l.running = false
		l.ctx.Keys.Reset()
	case core.KeyPressed:
		if a, ok := l.ctx.Bind.Lookup(ev.Key); ok {
			l.ctx.Keys.Press(a)
		}
	case core.KeyReleased:
		if a, ok := l.ctx.Bind.Lookup(ev.Key); ok {
			l.ctx.Keys.Release(a)
		}
	}
}

// draw clears the window, renders every registered shape in order, runs the
// draw hook and presents the frame.
func (l *Loop) draw() {
	l.window.Clear()
	l.ctx.Shapes.Each(func(d shape.Drawable) {
		l.window.Draw(d)
	})
	if l.hooks.Draw != nil {
		l.hooks.Draw(l.ctx, l.window)
	}
	l.window.Display()
	l.ctx.Frames++
}
