package sdl

import (
	"errors"
	"testing"

	"github.com/thelolagemann/gosdl/internal/abi"
	"github.com/thelolagemann/gosdl/internal/native/nativetest"
)

func newTestBinding(t *testing.T) (*Binding, *nativetest.Library) {
	t.Helper()
	lib := nativetest.New()
	b := New(lib)
	if err := b.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	return b, lib
}

// newTestChain creates a window, a renderer and a texture of the given size.
func newTestChain(t *testing.T, b *Binding, title string, width, height int) (*Window, *Renderer, *Texture) {
	t.Helper()
	w, err := b.NewWindow(title, WithSize(width, height))
	if err != nil {
		t.Fatalf("create window: %v", err)
	}
	r, err := w.CreateRenderer()
	if err != nil {
		t.Fatalf("create renderer: %v", err)
	}
	tex, err := r.CreateTexture(width, height)
	if err != nil {
		t.Fatalf("create texture: %v", err)
	}
	return w, r, tex
}

func TestBinding_Init(t *testing.T) {
	lib := nativetest.New()
	b := New(lib)

	if _, err := b.NewWindow("early"); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("expected ErrNotInitialized, got %v", err)
	}

	lib.FailNext(nativetest.CallInit)
	err := b.Init()
	if !errors.Is(err, ErrInit) {
		t.Fatalf("expected ErrInit, got %v", err)
	}
	if b.Initialized() {
		t.Error("expected binding to stay uninitialized after a failed init")
	}

	if err := b.Init(); err != nil {
		t.Fatalf("expected second init to succeed, got %v", err)
	}
	if err := b.Init(); err != nil {
		t.Fatalf("expected repeated init to be a no-op, got %v", err)
	}
	if got := lib.Calls(nativetest.CallInit); got != 2 {
		t.Errorf("expected 2 native init calls, got %d", got)
	}
}

func TestBinding_InitFlags(t *testing.T) {
	lib := nativetest.New()
	b := New(lib, WithInitFlags(abi.InitVideo|abi.InitEvents))
	if b.initFlags != abi.InitVideo|abi.InitEvents {
		t.Errorf("expected flags %#x, got %#x", abi.InitVideo|abi.InitEvents, b.initFlags)
	}
}

func TestBinding_QuitOnce(t *testing.T) {
	b, lib := newTestBinding(t)
	newTestChain(t, b, "a", 32, 32)

	b.Quit()
	b.Quit()

	if got := lib.Calls(nativetest.CallQuit); got != 1 {
		t.Errorf("expected native quit once, got %d", got)
	}
	if w, r, tex := lib.Live(); w+r+tex != 0 {
		t.Errorf("expected every handle released, got %d windows %d renderers %d textures", w, r, tex)
	}
	if !b.Events().Closed() {
		t.Error("expected the event bus to be closed")
	}
	if _, err := b.NewWindow("late"); !errors.Is(err, ErrQuit) {
		t.Errorf("expected ErrQuit, got %v", err)
	}
	if err := b.Init(); !errors.Is(err, ErrQuit) {
		t.Errorf("expected ErrQuit from init after quit, got %v", err)
	}
}
