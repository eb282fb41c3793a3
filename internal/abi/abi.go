// Package abi mirrors the binary layout of the SDL2 records that cross the
// native boundary. Every type in this package is laid out byte for byte as
// the C definition it mirrors; field order and widths must never change.
//
// Records are read and written in native byte order, as the native library
// writes them straight into memory owned by the caller.
package abi

// Subsystem flags accepted by SDL_Init.
const (
	InitTimer  uint32 = 0x00000001
	InitAudio  uint32 = 0x00000010
	InitVideo  uint32 = 0x00000020
	InitEvents uint32 = 0x00004000
)

// WindowPosUndefined lets the native library choose the window position.
const WindowPosUndefined int32 = 0x1FFF0000

// WindowPosCentered centres the window on the display.
const WindowPosCentered int32 = 0x2FFF0000

// Window creation flags.
const (
	WindowFullscreen uint32 = 0x00000001
	WindowShown      uint32 = 0x00000004
	WindowHidden     uint32 = 0x00000008
	WindowBorderless uint32 = 0x00000010
	WindowResizable  uint32 = 0x00000020
)

// Texture access modes.
const (
	TextureAccessStatic    int32 = 0
	TextureAccessStreaming int32 = 1
	TextureAccessTarget    int32 = 2
)

// BytesPerPixel is the pixel stride of every texture the binding creates.
const BytesPerPixel = 4

// Rect mirrors SDL_Rect.
type Rect struct {
	X, Y int32
	W, H int32
}
