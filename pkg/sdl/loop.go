package sdl

import (
	"context"
	"time"

	"github.com/thelolagemann/gosdl/internal/scheduler"
	"github.com/thelolagemann/gosdl/pkg/sdl/event"
)

// RenderFunc draws one frame. It usually updates textures, composites them
// and presents.
type RenderFunc func() error

// Loop drives the two periodic ticks of an application: an event poll tick
// and an optional render tick. Both run on the goroutine that calls Tick or
// Run, so every native call is issued from one thread in program order.
//
// A quit event stops both ticks and shuts the binding down. Stopping the
// ticks is the only way to cancel a loop.
type Loop struct {
	b      *Binding
	render RenderFunc
	sched  *scheduler.Scheduler

	pollEvery, renderEvery, resolution time.Duration

	quitSub *event.Subscription
	running bool
	err     error
}

// NewLoop returns a running loop. render may be nil for applications that
// only handle events.
func (b *Binding) NewLoop(render RenderFunc, opts ...LoopOpt) *Loop {
	l := &Loop{
		b:           b,
		render:      render,
		sched:       scheduler.NewScheduler(),
		pollEvery:   DefaultPollEvery,
		renderEvery: DefaultRenderEvery,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.resolution <= 0 {
		l.resolution = l.pollEvery
		if render != nil && l.renderEvery < l.resolution {
			l.resolution = l.renderEvery
		}
	}

	l.sched.RegisterEvent(scheduler.PollEvents, l.poll)
	l.sched.RegisterEvent(scheduler.Render, l.frame)
	l.sched.SchedulePeriodic(scheduler.PollEvents, l.pollEvery)
	if render != nil {
		l.sched.SchedulePeriodic(scheduler.Render, l.renderEvery)
	}

	l.quitSub = b.events.Subscribe(event.NameQuit, func(event.Event) {
		l.Stop()
		b.Quit()
	})
	l.running = true
	return l
}

func (l *Loop) poll() {
	l.b.PollEvents()
}

func (l *Loop) frame() {
	if err := l.render(); err != nil {
		l.b.log.Errorf("render tick: %v", err)
		if l.err == nil {
			l.err = err
		}
	}
}

// Tick advances the loop clock by d, running every tick that falls due,
// and returns the first render error raised while doing so.
func (l *Loop) Tick(d time.Duration) error {
	if !l.running {
		return nil
	}
	l.sched.Tick(d)

	err := l.err
	l.err = nil
	return err
}

// Run ticks the loop in real time until it stops, ctx is done or a render
// tick fails. A loop stopped by a quit event returns nil.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.resolution)
	defer ticker.Stop()

	last := time.Now()
	for l.running {
		select {
		case <-ctx.Done():
			l.Stop()
			return ctx.Err()
		case now := <-ticker.C:
			if err := l.Tick(now.Sub(last)); err != nil {
				l.Stop()
				return err
			}
			last = now
		}
	}
	return nil
}

// Stop cancels both ticks. It does not shut the binding down.
func (l *Loop) Stop() {
	if !l.running {
		return
	}
	l.running = false
	l.sched.DescheduleEvent(scheduler.PollEvents)
	l.sched.DescheduleEvent(scheduler.Render)
	l.quitSub.Unsubscribe()
}

// Running reports whether the ticks are still scheduled.
func (l *Loop) Running() bool {
	return l.running
}

// Polling reports whether the event poll tick is scheduled.
func (l *Loop) Polling() bool {
	return l.sched.Scheduled(scheduler.PollEvents)
}

// Rendering reports whether the render tick is scheduled.
func (l *Loop) Rendering() bool {
	return l.sched.Scheduled(scheduler.Render)
}
