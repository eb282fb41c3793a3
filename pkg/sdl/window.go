package sdl

import (
	"errors"
	"fmt"

	"github.com/thelolagemann/gosdl/internal/native"
)

// Window owns a native window handle.
type Window struct {
	b   *Binding
	ptr native.WindowPtr

	id            uint32
	title         string
	width, height int

	renderers []*Renderer
	destroyed bool
}

// ID returns the native window id. It is fixed for the lifetime of the
// handle and is used to correlate window and motion events. After Destroy
// it still returns the last id, which the native library may hand to a new
// window; WindowFromID no longer resolves it.
func (w *Window) ID() uint32 {
	return w.id
}

// Title returns the title the window was created with.
func (w *Window) Title() string {
	return w.title
}

// Size returns the window size in pixels, as requested at creation.
func (w *Window) Size() (width, height int) {
	return w.width, w.height
}

// Destroyed reports whether Destroy has been called.
func (w *Window) Destroyed() bool {
	return w.destroyed
}

// CreateRenderer creates a renderer drawing into the window, using the
// first native backend available. The window keeps ownership of itself;
// destroying the window destroys the renderer first.
func (w *Window) CreateRenderer() (*Renderer, error) {
	if w.destroyed {
		return nil, fmt.Errorf("%w: window %d", ErrDestroyed, w.id)
	}

	lib := w.b.lib
	ptr := lib.CreateRenderer(w.ptr, -1, 0)
	if ptr == nil {
		err := nativeError(ErrCreateRenderer, lib.GetError())
		w.b.log.Errorf("creating renderer for window %d: %v", w.id, err)
		return nil, err
	}

	r := &Renderer{window: w, ptr: ptr}
	w.renderers = append(w.renderers, r)
	w.b.log.Debugf("created renderer for window %d", w.id)
	return r, nil
}

// Destroy releases the native window after destroying every live renderer
// created from it. Destroying a window twice returns ErrDestroyed and does
// not reach the native library.
func (w *Window) Destroy() error {
	if w.destroyed {
		return fmt.Errorf("%w: window %d", ErrDestroyed, w.id)
	}

	var errs []error
	for len(w.renderers) > 0 {
		r := w.renderers[0]
		if err := r.Destroy(); err != nil {
			errs = append(errs, err)
		}
		// a renderer removes itself once destroyed
		if len(w.renderers) > 0 && w.renderers[0] == r {
			w.renderers = w.renderers[1:]
		}
	}

	w.destroyed = true
	w.b.lib.DestroyWindow(w.ptr)
	w.ptr = nil
	delete(w.b.windows, w.id)
	w.b.tracker.forget(w)
	w.b.log.Debugf("destroyed window %d", w.id)
	return errors.Join(errs...)
}

func (w *Window) removeRenderer(r *Renderer) {
	for i, rr := range w.renderers {
		if rr == r {
			w.renderers = append(w.renderers[:i], w.renderers[i+1:]...)
			return
		}
	}
}
