// Package nativetest provides an in-memory native.Library for tests.
//
// It keeps a synthetic event queue, allocates texture memory with a
// configurable row padding and a trailing guard region, counts every call,
// and can be told to fail the next call to any entry point.
package nativetest

import (
	"sync"
	"unsafe"

	"github.com/thelolagemann/gosdl/internal/abi"
	"github.com/thelolagemann/gosdl/internal/native"
)

// Canary fills row padding and the guard region after every texture buffer.
const Canary byte = 0xCD

// GuardSize is the number of canary bytes after every texture buffer.
const GuardSize = 64

// Entry point names accepted by FailNext and Calls.
const (
	CallInit            = "Init"
	CallQuit            = "Quit"
	CallCreateWindow    = "CreateWindow"
	CallDestroyWindow   = "DestroyWindow"
	CallGetWindowID     = "GetWindowID"
	CallGetWindowFromID = "GetWindowFromID"
	CallCreateRenderer  = "CreateRenderer"
	CallRenderPresent   = "RenderPresent"
	CallRenderCopy      = "RenderCopy"
	CallDestroyRenderer = "DestroyRenderer"
	CallCreateTexture   = "CreateTexture"
	CallLockTexture     = "LockTexture"
	CallUnlockTexture   = "UnlockTexture"
	CallDestroyTexture  = "DestroyTexture"
	CallWaitEvent       = "WaitEvent"
	CallPollEvent       = "PollEvent"
)

// Window is the state behind a fake window handle.
type Window struct {
	ID         uint32
	Title      string
	X, Y, W, H int32
	Flags      uint32
	Destroyed  int
}

// Renderer is the state behind a fake renderer handle.
type Renderer struct {
	Window    native.WindowPtr
	Index     int32
	Flags     uint32
	Copies    []native.TexturePtr
	Presented int
	Destroyed int
}

// Texture is the state behind a fake texture handle. Memory holds Pitch*H
// bytes of pixels followed by GuardSize canary bytes.
type Texture struct {
	Format    uint32
	Access    int32
	W, H      int32
	Pitch     int
	Memory    []byte
	Locked    bool
	Destroyed int
}

// Library is a fake native.Library. The zero value is not usable; call New.
type Library struct {
	// PitchPadding is added to the row length of textures created after it is set.
	PitchPadding int

	mu        sync.Mutex
	err       string
	calls     map[string]int
	fail      map[string]bool
	queue     []abi.Event
	nextID    uint32
	windows   map[native.WindowPtr]*Window
	renderers map[native.RendererPtr]*Renderer
	textures  map[native.TexturePtr]*Texture
	presents  []native.RendererPtr
}

var _ native.Library = (*Library)(nil)

// New returns an empty fake library.
func New() *Library {
	return &Library{
		calls:     make(map[string]int),
		fail:      make(map[string]bool),
		windows:   make(map[native.WindowPtr]*Window),
		renderers: make(map[native.RendererPtr]*Renderer),
		textures:  make(map[native.TexturePtr]*Texture),
	}
}

// FailNext makes the next call to the named entry point fail.
func (l *Library) FailNext(call string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.fail[call] = true
}

// Calls returns how many times the named entry point was called.
func (l *Library) Calls(call string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.calls[call]
}

// Push appends records to the event queue.
func (l *Library) Push(events ...abi.Event) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.queue = append(l.queue, events...)
}

// PushQuit queues a quit record.
func (l *Library) PushQuit() {
	l.Push(abi.NewQuitEvent(abi.QuitEvent{}))
}

// PushWindowEvent queues a window record with the given sub-event code.
func (l *Library) PushWindowEvent(windowID uint32, code uint8, data1, data2 int32) {
	l.Push(abi.NewWindowEvent(abi.WindowEvent{WindowID: windowID, Event: code, Data1: data1, Data2: data2}))
}

// PushMotion queues a mouse motion record.
func (l *Library) PushMotion(m abi.MouseMotionEvent) {
	l.Push(abi.NewMotionEvent(m))
}

// Pending returns the number of queued records.
func (l *Library) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.queue)
}

// Window returns the state behind a window handle.
func (l *Library) Window(p native.WindowPtr) *Window {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.windows[p]
}

// Renderer returns the state behind a renderer handle.
func (l *Library) Renderer(p native.RendererPtr) *Renderer {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.renderers[p]
}

// Texture returns the state behind a texture handle.
func (l *Library) Texture(p native.TexturePtr) *Texture {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.textures[p]
}

// Presents returns the renderers in the order they presented.
func (l *Library) Presents() []native.RendererPtr {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]native.RendererPtr(nil), l.presents...)
}

// Live returns the number of windows, renderers and textures not yet destroyed.
func (l *Library) Live() (windows, renderers, textures int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, w := range l.windows {
		if w.Destroyed == 0 {
			windows++
		}
	}
	for _, r := range l.renderers {
		if r.Destroyed == 0 {
			renderers++
		}
	}
	for _, t := range l.textures {
		if t.Destroyed == 0 {
			textures++
		}
	}
	return
}

// ReadPixels reads back the visible pixels of a texture, packed without
// row padding.
func (l *Library) ReadPixels(p native.TexturePtr) []byte {
	l.mu.Lock()
	defer l.mu.Unlock()
	t := l.textures[p]
	if t == nil {
		return nil
	}
	row := int(t.W) * abi.BytesPerPixel
	out := make([]byte, 0, row*int(t.H))
	for y := 0; y < int(t.H); y++ {
		out = append(out, t.Memory[y*t.Pitch:y*t.Pitch+row]...)
	}
	return out
}

// Overrun reports whether any byte outside the visible pixels of a texture
// was written, either in row padding or past the end of the buffer.
func (l *Library) Overrun(p native.TexturePtr) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	t := l.textures[p]
	if t == nil {
		return false
	}
	row := int(t.W) * abi.BytesPerPixel
	for y := 0; y < int(t.H); y++ {
		for _, b := range t.Memory[y*t.Pitch+row : (y+1)*t.Pitch] {
			if b != Canary {
				return true
			}
		}
	}
	for _, b := range t.Memory[t.Pitch*int(t.H):] {
		if b != Canary {
			return true
		}
	}
	return false
}

// call records a call and reports whether it should fail.
func (l *Library) call(name string) bool {
	l.calls[name]++
	if l.fail[name] {
		delete(l.fail, name)
		l.err = name + " failed"
		return true
	}
	return false
}

func (l *Library) Init(flags uint32) int32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.call(CallInit) {
		return -1
	}
	return 0
}

func (l *Library) Quit() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.call(CallQuit)
}

func (l *Library) GetError() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

func (l *Library) CreateWindow(title string, x, y, w, h int32, flags uint32) native.WindowPtr {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.call(CallCreateWindow) {
		return nil
	}
	if w <= 0 || h <= 0 {
		l.err = "Window size must be positive"
		return nil
	}
	l.nextID++
	win := &Window{ID: l.nextID, Title: title, X: x, Y: y, W: w, H: h, Flags: flags}
	p := native.WindowPtr(unsafe.Pointer(win))
	l.windows[p] = win
	return p
}

func (l *Library) DestroyWindow(window native.WindowPtr) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.call(CallDestroyWindow)
	if w := l.windows[window]; w != nil {
		w.Destroyed++
	}
}

func (l *Library) GetWindowID(window native.WindowPtr) uint32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.call(CallGetWindowID) {
		return 0
	}
	w := l.windows[window]
	if w == nil || w.Destroyed > 0 {
		l.err = "Invalid window"
		return 0
	}
	return w.ID
}

func (l *Library) GetWindowFromID(id uint32) native.WindowPtr {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.call(CallGetWindowFromID) {
		return nil
	}
	for p, w := range l.windows {
		if w.ID == id && w.Destroyed == 0 {
			return p
		}
	}
	return nil
}

func (l *Library) CreateRenderer(window native.WindowPtr, index int32, flags uint32) native.RendererPtr {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.call(CallCreateRenderer) {
		return nil
	}
	if w := l.windows[window]; w == nil || w.Destroyed > 0 {
		l.err = "Invalid window"
		return nil
	}
	r := &Renderer{Window: window, Index: index, Flags: flags}
	p := native.RendererPtr(unsafe.Pointer(r))
	l.renderers[p] = r
	return p
}

func (l *Library) RenderPresent(renderer native.RendererPtr) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.call(CallRenderPresent)
	if r := l.renderers[renderer]; r != nil {
		r.Presented++
		l.presents = append(l.presents, renderer)
	}
}

func (l *Library) RenderCopy(renderer native.RendererPtr, texture native.TexturePtr, src, dst *abi.Rect) int32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.call(CallRenderCopy) {
		return -1
	}
	r, t := l.renderers[renderer], l.textures[texture]
	if r == nil || t == nil || r.Destroyed > 0 || t.Destroyed > 0 {
		l.err = "Invalid renderer or texture"
		return -1
	}
	r.Copies = append(r.Copies, texture)
	return 0
}

func (l *Library) DestroyRenderer(renderer native.RendererPtr) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.call(CallDestroyRenderer)
	if r := l.renderers[renderer]; r != nil {
		r.Destroyed++
	}
}

func (l *Library) CreateTexture(renderer native.RendererPtr, format uint32, access int32, w, h int32) native.TexturePtr {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.call(CallCreateTexture) {
		return nil
	}
	if r := l.renderers[renderer]; r == nil || r.Destroyed > 0 {
		l.err = "Invalid renderer"
		return nil
	}
	if w <= 0 || h <= 0 {
		l.err = "Texture dimensions are limited to positive values"
		return nil
	}
	pitch := int(w)*abi.BytesPerPixel + l.PitchPadding
	mem := make([]byte, pitch*int(h)+GuardSize)
	for i := range mem {
		mem[i] = Canary
	}
	t := &Texture{Format: format, Access: access, W: w, H: h, Pitch: pitch, Memory: mem}
	p := native.TexturePtr(unsafe.Pointer(t))
	l.textures[p] = t
	return p
}

func (l *Library) LockTexture(texture native.TexturePtr, rect *abi.Rect, pixels *unsafe.Pointer, pitch *int32) int32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.call(CallLockTexture) {
		return -1
	}
	t := l.textures[texture]
	if t == nil || t.Destroyed > 0 {
		l.err = "Invalid texture"
		return -1
	}
	if t.Access != abi.TextureAccessStreaming {
		l.err = "SDL_LockTexture(): texture must be streaming"
		return -1
	}
	if t.Locked {
		l.err = "Texture is already locked"
		return -1
	}
	if rect != nil {
		l.err = "partial locks are not modelled"
		return -1
	}
	t.Locked = true
	*pixels = unsafe.Pointer(&t.Memory[0])
	*pitch = int32(t.Pitch)
	return 0
}

func (l *Library) UnlockTexture(texture native.TexturePtr) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.call(CallUnlockTexture)
	if t := l.textures[texture]; t != nil {
		t.Locked = false
	}
}

func (l *Library) DestroyTexture(texture native.TexturePtr) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.call(CallDestroyTexture)
	if t := l.textures[texture]; t != nil {
		t.Destroyed++
	}
}

// WaitEvent never blocks: an empty queue is reported as a failure.
func (l *Library) WaitEvent(event *abi.Event) int32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.call(CallWaitEvent) {
		return 0
	}
	if len(l.queue) == 0 {
		l.err = "no events queued"
		return 0
	}
	*event, l.queue = l.queue[0], l.queue[1:]
	return 1
}

func (l *Library) PollEvent(event *abi.Event) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.call(CallPollEvent) || len(l.queue) == 0 {
		return false
	}
	*event, l.queue = l.queue[0], l.queue[1:]
	return true
}
