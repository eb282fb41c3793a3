package sdl

import (
	"errors"
	"sync/atomic"

	"github.com/thelolagemann/gosdl/internal/abi"
)

// PollState is the state of the event demuxer.
type PollState int32

const (
	Idle PollState = iota
	Polling
	Dispatching
)

func (s PollState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Polling:
		return "polling"
	case Dispatching:
		return "dispatching"
	}
	return "unknown"
}

// Poller drains the native event queue and republishes each decoded event
// on the binding's bus, in queue order.
type Poller struct {
	b     *Binding
	state atomic.Int32
	rec   abi.Event

	published atomic.Uint64
	dropped   atomic.Uint64
}

func newPoller(b *Binding) *Poller {
	return &Poller{b: b}
}

// State returns the current demuxer state.
func (p *Poller) State() PollState {
	return PollState(p.state.Load())
}

// Published returns how many events have been published.
func (p *Poller) Published() uint64 {
	return p.published.Load()
}

// Dropped returns how many records were discarded, either because their
// discriminant is not modelled or because their payload was out of range.
func (p *Poller) Dropped() uint64 {
	return p.dropped.Load()
}

// PollOnce asks the native library for events until none are left and
// returns how many were published. It stops early once a handler has shut
// the binding down, and does nothing after that.
func (p *Poller) PollOnce() int {
	n := 0
	p.state.Store(int32(Polling))
	defer p.state.Store(int32(Idle))

	for !p.b.quit {
		p.rec.Reset()
		if !p.b.lib.PollEvent(&p.rec) {
			break
		}
		if p.dispatch(&p.rec) {
			n++
		}
		p.state.Store(int32(Polling))
	}
	return n
}

// WaitOnce blocks for a single native event and publishes it.
func (p *Poller) WaitOnce() error {
	if p.b.quit {
		return ErrQuit
	}
	p.state.Store(int32(Polling))
	defer p.state.Store(int32(Idle))

	p.rec.Reset()
	if p.b.lib.WaitEvent(&p.rec) == 0 {
		return nativeError(ErrWait, p.b.lib.GetError())
	}
	p.dispatch(&p.rec)
	return nil
}

func (p *Poller) dispatch(rec *abi.Event) bool {
	ev, err := Decode(rec)
	if err != nil {
		p.dropped.Add(1)
		if !errors.Is(err, ErrUnknownEventType) {
			p.b.log.Errorf("dropping event: %v", err)
		}
		return false
	}

	p.state.Store(int32(Dispatching))
	p.b.events.Publish(ev)
	p.published.Add(1)
	return true
}
