// Package native declares the fixed set of SDL2 entry points the binding
// calls. The Library interface is a direct call boundary: implementations
// pass arguments through unchanged and return the native result codes
// untouched. Interpreting those codes is the caller's job.
//
// Native library state is global. Nothing here serializes calls; callers
// must issue them from a thread the native library accepts.
package native

import (
	"unsafe"

	"github.com/thelolagemann/gosdl/internal/abi"
)

// WindowPtr is an opaque SDL_Window pointer.
type WindowPtr unsafe.Pointer

// RendererPtr is an opaque SDL_Renderer pointer.
type RendererPtr unsafe.Pointer

// TexturePtr is an opaque SDL_Texture pointer.
type TexturePtr unsafe.Pointer

// Library is the native call surface. Pointer categories are distinct types
// even though they share a representation at the ABI level, so a renderer
// pointer can never be passed where a window pointer is expected.
type Library interface {
	// Init mirrors SDL_Init. A non-zero result is a failure.
	Init(flags uint32) int32
	// Quit mirrors SDL_Quit.
	Quit()
	// GetError mirrors SDL_GetError.
	GetError() string

	// CreateWindow mirrors SDL_CreateWindow. A nil result is a failure.
	CreateWindow(title string, x, y, w, h int32, flags uint32) WindowPtr
	DestroyWindow(window WindowPtr)
	// GetWindowID mirrors SDL_GetWindowID. Zero is a failure.
	GetWindowID(window WindowPtr) uint32
	GetWindowFromID(id uint32) WindowPtr

	// CreateRenderer mirrors SDL_CreateRenderer. Index -1 selects the first
	// backend supporting flags.
	CreateRenderer(window WindowPtr, index int32, flags uint32) RendererPtr
	RenderPresent(renderer RendererPtr)
	// RenderCopy mirrors SDL_RenderCopy. Nil rectangles cover the whole
	// texture and the whole target.
	RenderCopy(renderer RendererPtr, texture TexturePtr, src, dst *abi.Rect) int32
	DestroyRenderer(renderer RendererPtr)

	CreateTexture(renderer RendererPtr, format uint32, access int32, w, h int32) TexturePtr
	// LockTexture mirrors SDL_LockTexture. On success pixels holds a
	// writable pointer to the locked area and pitch its row length in bytes.
	LockTexture(texture TexturePtr, rect *abi.Rect, pixels *unsafe.Pointer, pitch *int32) int32
	UnlockTexture(texture TexturePtr)
	DestroyTexture(texture TexturePtr)

	// WaitEvent mirrors SDL_WaitEvent. It blocks; zero is a failure.
	WaitEvent(event *abi.Event) int32
	// PollEvent mirrors SDL_PollEvent, reporting whether event was filled.
	PollEvent(event *abi.Event) bool
}
