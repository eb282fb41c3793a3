//go:build cgo

// Package sdl2 implements native.Library against the system SDL2 library.
//
// Lifecycle and rendering calls go through go-sdl2. Event polling and
// texture locking are issued directly through cgo, since those are the two
// calls where the raw ABI (the event union and the void**/int* out-params)
// must reach the caller unmodified.
package sdl2

/*
#cgo linux freebsd darwin pkg-config: sdl2
#cgo windows LDFLAGS: -lSDL2
#include <SDL2/SDL.h>
*/
import "C"
import (
	"unsafe"

	"github.com/thelolagemann/gosdl/internal/abi"
	"github.com/thelolagemann/gosdl/internal/native"
	"github.com/veandco/go-sdl2/sdl"
)

// Library is the SDL2 call surface. The zero value is ready to use.
type Library struct{}

var _ native.Library = Library{}

func (Library) Init(flags uint32) int32 {
	if err := sdl.Init(flags); err != nil {
		return -1
	}
	return 0
}

func (Library) Quit() {
	sdl.Quit()
}

func (Library) GetError() string {
	if err := sdl.GetError(); err != nil {
		return err.Error()
	}
	return ""
}

func (Library) CreateWindow(title string, x, y, w, h int32, flags uint32) native.WindowPtr {
	window, err := sdl.CreateWindow(title, x, y, w, h, flags)
	if err != nil {
		return nil
	}
	return native.WindowPtr(unsafe.Pointer(window))
}

func (Library) DestroyWindow(window native.WindowPtr) {
	_ = (*sdl.Window)(unsafe.Pointer(window)).Destroy()
}

func (Library) GetWindowID(window native.WindowPtr) uint32 {
	id, err := (*sdl.Window)(unsafe.Pointer(window)).GetID()
	if err != nil {
		return 0
	}
	return id
}

func (Library) GetWindowFromID(id uint32) native.WindowPtr {
	window, err := sdl.GetWindowFromID(id)
	if err != nil {
		return nil
	}
	return native.WindowPtr(unsafe.Pointer(window))
}

func (Library) CreateRenderer(window native.WindowPtr, index int32, flags uint32) native.RendererPtr {
	renderer, err := sdl.CreateRenderer((*sdl.Window)(unsafe.Pointer(window)), int(index), flags)
	if err != nil {
		return nil
	}
	return native.RendererPtr(unsafe.Pointer(renderer))
}

func (Library) RenderPresent(renderer native.RendererPtr) {
	(*sdl.Renderer)(unsafe.Pointer(renderer)).Present()
}

func (Library) RenderCopy(renderer native.RendererPtr, texture native.TexturePtr, src, dst *abi.Rect) int32 {
	err := (*sdl.Renderer)(unsafe.Pointer(renderer)).Copy(
		(*sdl.Texture)(unsafe.Pointer(texture)),
		(*sdl.Rect)(unsafe.Pointer(src)),
		(*sdl.Rect)(unsafe.Pointer(dst)),
	)
	if err != nil {
		return -1
	}
	return 0
}

func (Library) DestroyRenderer(renderer native.RendererPtr) {
	_ = (*sdl.Renderer)(unsafe.Pointer(renderer)).Destroy()
}

func (Library) CreateTexture(renderer native.RendererPtr, format uint32, access int32, w, h int32) native.TexturePtr {
	texture, err := (*sdl.Renderer)(unsafe.Pointer(renderer)).CreateTexture(format, int(access), w, h)
	if err != nil {
		return nil
	}
	return native.TexturePtr(unsafe.Pointer(texture))
}

func (Library) LockTexture(texture native.TexturePtr, rect *abi.Rect, pixels *unsafe.Pointer, pitch *int32) int32 {
	return int32(C.SDL_LockTexture(
		(*C.SDL_Texture)(texture),
		(*C.SDL_Rect)(unsafe.Pointer(rect)),
		pixels,
		(*C.int)(unsafe.Pointer(pitch)),
	))
}

func (Library) UnlockTexture(texture native.TexturePtr) {
	(*sdl.Texture)(unsafe.Pointer(texture)).Unlock()
}

func (Library) DestroyTexture(texture native.TexturePtr) {
	_ = (*sdl.Texture)(unsafe.Pointer(texture)).Destroy()
}

func (Library) WaitEvent(event *abi.Event) int32 {
	return int32(C.SDL_WaitEvent((*C.SDL_Event)(unsafe.Pointer(event))))
}

func (Library) PollEvent(event *abi.Event) bool {
	return C.SDL_PollEvent((*C.SDL_Event)(unsafe.Pointer(event))) != 0
}
