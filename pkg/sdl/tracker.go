package sdl

import (
	"errors"

	"github.com/thelolagemann/gosdl/pkg/sdl/event"
)

// Group is a window together with the renderer and texture drawing into
// it. Renderer and Texture may be nil.
type Group struct {
	Window   *Window
	Renderer *Renderer
	Texture  *Texture
}

// Destroy releases the texture, then the renderer, then the window,
// skipping handles that are nil or already destroyed.
func (g *Group) Destroy() error {
	var errs []error
	if g.Texture != nil && !g.Texture.Destroyed() {
		errs = append(errs, g.Texture.Destroy())
	}
	if g.Renderer != nil && !g.Renderer.Destroyed() {
		errs = append(errs, g.Renderer.Destroy())
	}
	if g.Window != nil && !g.Window.Destroyed() {
		errs = append(errs, g.Window.Destroy())
	}
	return errors.Join(errs...)
}

// Tracker keeps the windows an application wants closed on request. When a
// close event arrives for a tracked window its group is destroyed and
// removed from the collection.
type Tracker struct {
	b       *Binding
	groups  map[uint32]*Group
	sub     *event.Subscription
	onClose func(*Group)
}

func newTracker(b *Binding) *Tracker {
	t := &Tracker{
		b:      b,
		groups: make(map[uint32]*Group),
	}
	t.sub = b.events.Subscribe(event.NameWindow, t.handle)
	return t
}

// Add tracks a window and the handles drawing into it. Tracking a window id
// again replaces the previous group.
func (t *Tracker) Add(w *Window, r *Renderer, tex *Texture) *Group {
	g := &Group{Window: w, Renderer: r, Texture: tex}
	t.groups[w.ID()] = g
	return g
}

// Lookup returns the group tracked for a window id.
func (t *Tracker) Lookup(id uint32) (*Group, bool) {
	g, ok := t.groups[id]
	return g, ok
}

// Len returns the number of tracked windows.
func (t *Tracker) Len() int {
	return len(t.groups)
}

// OnClose sets a function called after a group is closed.
func (t *Tracker) OnClose(fn func(*Group)) {
	t.onClose = fn
}

// Close destroys and forgets the group tracked for a window id. Closing an
// untracked id is a no-op.
func (t *Tracker) Close(id uint32) error {
	g, ok := t.groups[id]
	if !ok {
		return nil
	}
	delete(t.groups, id)

	err := g.Destroy()
	if err != nil {
		t.b.log.Errorf("closing window %d: %v", id, err)
	}
	if t.onClose != nil {
		t.onClose(g)
	}
	return err
}

func (t *Tracker) handle(e event.Event) {
	we, ok := e.(event.Window)
	if !ok || we.Event != event.WindowClose {
		return
	}
	_ = t.Close(we.WindowID)
}

// forget drops the group of a window destroyed outside the tracker.
func (t *Tracker) forget(w *Window) {
	if g, ok := t.groups[w.id]; ok && g.Window == w {
		delete(t.groups, w.id)
	}
}

// reset forgets every group without destroying anything.
func (t *Tracker) reset() {
	clear(t.groups)
}
