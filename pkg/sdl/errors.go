package sdl

import (
	"errors"
	"fmt"
)

var (
	// ErrInit is returned when the native subsystem fails to start.
	ErrInit = errors.New("sdl: init failed")
	// ErrNotInitialized is returned when a handle is requested before Init.
	ErrNotInitialized = errors.New("sdl: not initialized")
	// ErrQuit is returned when the binding is used after Quit.
	ErrQuit = errors.New("sdl: binding has quit")

	ErrCreateWindow   = errors.New("sdl: could not create window")
	ErrCreateRenderer = errors.New("sdl: could not create renderer")
	ErrCreateTexture  = errors.New("sdl: could not create texture")

	// ErrInvalidSize is returned for non-positive window or texture sizes.
	ErrInvalidSize = errors.New("sdl: invalid size")
	// ErrDestroyed is returned when a handle is used or destroyed after
	// it has been destroyed. The native layer is never called again for
	// a destroyed handle.
	ErrDestroyed = errors.New("sdl: handle destroyed")

	ErrLock   = errors.New("sdl: could not lock texture")
	ErrRender = errors.New("sdl: render copy failed")
	// ErrShortBuffer is returned when a source buffer holds fewer bytes
	// than its pitch and the texture height require.
	ErrShortBuffer = errors.New("sdl: source buffer too short")
	// ErrInvalidPitch is returned for non-positive pitches.
	ErrInvalidPitch = errors.New("sdl: invalid pitch")

	ErrWait = errors.New("sdl: wait event failed")
)

// nativeError wraps sentinel with the native library's error text.
func nativeError(sentinel error, msg string) error {
	if msg == "" {
		return sentinel
	}
	return fmt.Errorf("%w: %s", sentinel, msg)
}
