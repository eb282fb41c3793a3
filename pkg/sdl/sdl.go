// Package sdl is a safe binding over the native SDL2 windowing, rendering
// and event subsystem.
//
// A Binding owns the connection to the native library. Windows create
// renderers, renderers create textures, and each wrapper owns exactly one
// native handle which it releases at most once. Native events are drained
// by PollEvents (or a Loop), decoded by their discriminant and republished
// on the binding's event bus by name.
//
// Calls are not serialized: all native calls for a handle must be issued
// in order from a thread the native library accepts, which for most
// platforms means the main thread.
package sdl

import (
	"errors"
	"fmt"

	"github.com/thelolagemann/gosdl/internal/abi"
	"github.com/thelolagemann/gosdl/internal/native"
	"github.com/thelolagemann/gosdl/pkg/log"
	"github.com/thelolagemann/gosdl/pkg/sdl/event"
)

// Binding is the entry point to the native library.
type Binding struct {
	lib       native.Library
	log       log.Logger
	events    *event.Bus
	poller    *Poller
	tracker   *Tracker
	initFlags uint32

	initialized bool
	quit        bool

	// windows holds every live window by native id
	windows map[uint32]*Window
}

// New returns a binding over lib. Init must be called before any handle
// is created.
func New(lib native.Library, opts ...Opt) *Binding {
	b := &Binding{
		lib:       lib,
		log:       log.NewNullLogger(),
		events:    event.NewBus(),
		initFlags: abi.InitVideo,
		windows:   make(map[uint32]*Window),
	}
	for _, opt := range opts {
		opt(b)
	}

	b.poller = newPoller(b)
	b.tracker = newTracker(b)
	return b
}

// Init starts the native subsystems. Calling it again after a successful
// Init is a no-op.
func (b *Binding) Init() error {
	if b.quit {
		return ErrQuit
	}
	if b.initialized {
		return nil
	}
	if status := b.lib.Init(b.initFlags); status != 0 {
		err := nativeError(ErrInit, b.lib.GetError())
		b.log.Errorf("init flags=%#x status=%d: %v", b.initFlags, status, err)
		return err
	}

	b.initialized = true
	b.log.Infof("initialized native subsystems flags=%#x", b.initFlags)
	return nil
}

// Quit destroys every live handle, tears down the event bus and shuts the
// native library down. Only the first call has any effect.
func (b *Binding) Quit() {
	if b.quit {
		return
	}
	b.quit = true

	var errs []error
	for _, w := range b.windows {
		if err := w.Destroy(); err != nil {
			errs = append(errs, err)
		}
	}
	b.tracker.reset()
	if err := errors.Join(errs...); err != nil {
		b.log.Errorf("releasing handles on quit: %v", err)
	}

	b.events.Close()
	b.lib.Quit()
	b.log.Infof("native library shut down")
}

// Initialized reports whether Init succeeded and Quit has not been called.
func (b *Binding) Initialized() bool {
	return b.initialized && !b.quit
}

// Quitted reports whether Quit has been called.
func (b *Binding) Quitted() bool {
	return b.quit
}

// Events returns the bus on which decoded events are published.
func (b *Binding) Events() *event.Bus {
	return b.events
}

// Poller returns the event demuxer.
func (b *Binding) Poller() *Poller {
	return b.poller
}

// PollEvents drains the native event queue without blocking and returns
// how many events were published.
func (b *Binding) PollEvents() int {
	return b.poller.PollOnce()
}

// WaitEvent blocks until the native library delivers one event, then
// publishes it. It exists for hosts without a periodic tick; prefer
// PollEvents so rendering is not stalled.
func (b *Binding) WaitEvent() error {
	return b.poller.WaitOnce()
}

// NewWindow creates a window with the given title, 640x480 at a position
// chosen by the native library unless configured otherwise.
func (b *Binding) NewWindow(title string, opts ...WindowOpt) (*Window, error) {
	if err := b.ready(); err != nil {
		return nil, err
	}

	conf := defaultWindowConfig()
	for _, opt := range opts {
		opt(&conf)
	}
	if conf.width <= 0 || conf.height <= 0 {
		return nil, fmt.Errorf("%w: window %dx%d", ErrInvalidSize, conf.width, conf.height)
	}

	ptr := b.lib.CreateWindow(title, conf.x, conf.y, conf.width, conf.height, conf.flags)
	if ptr == nil {
		err := nativeError(ErrCreateWindow, b.lib.GetError())
		b.log.Errorf("creating window %q: %v", title, err)
		return nil, err
	}

	id := b.lib.GetWindowID(ptr)
	if id == 0 {
		err := nativeError(ErrCreateWindow, b.lib.GetError())
		b.lib.DestroyWindow(ptr)
		b.log.Errorf("querying id of window %q: %v", title, err)
		return nil, err
	}

	w := &Window{
		b:      b,
		ptr:    ptr,
		id:     id,
		title:  title,
		width:  int(conf.width),
		height: int(conf.height),
	}
	b.windows[id] = w
	b.log.Debugf("created window %d %q %dx%d", id, title, w.width, w.height)
	return w, nil
}

// WindowFromID returns the live window with the given native id.
func (b *Binding) WindowFromID(id uint32) (*Window, bool) {
	w, ok := b.windows[id]
	if !ok || w.destroyed {
		return nil, false
	}
	// confirm the native library still knows the handle
	if b.lib.GetWindowFromID(id) != w.ptr {
		return nil, false
	}
	return w, true
}

// Windows returns the number of live windows.
func (b *Binding) Windows() int {
	return len(b.windows)
}

// Track registers a window, and optionally the renderer and texture
// drawing into it, so that a close request for the window destroys all
// three. Renderer and texture may be nil.
func (b *Binding) Track(w *Window, r *Renderer, t *Texture) *Group {
	return b.tracker.Add(w, r, t)
}

// Tracker returns the collection of tracked windows.
func (b *Binding) Tracker() *Tracker {
	return b.tracker
}

func (b *Binding) ready() error {
	switch {
	case b.quit:
		return ErrQuit
	case !b.initialized:
		return ErrNotInitialized
	}
	return nil
}
