package sdl

import (
	"errors"
	"fmt"

	"github.com/thelolagemann/gosdl/internal/abi"
	"github.com/thelolagemann/gosdl/internal/native"
)

// Renderer owns a native renderer handle bound to one window.
type Renderer struct {
	window *Window
	ptr    native.RendererPtr

	textures  []*Texture
	destroyed bool
}

// Window returns the window the renderer draws into.
func (r *Renderer) Window() *Window {
	return r.window
}

// Destroyed reports whether Destroy has been called.
func (r *Renderer) Destroyed() bool {
	return r.destroyed
}

// CreateTexture creates a streaming texture of the given size in the fixed
// ABGR8888 pixel format.
func (r *Renderer) CreateTexture(width, height int) (*Texture, error) {
	if r.destroyed {
		return nil, fmt.Errorf("%w: renderer", ErrDestroyed)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: texture %dx%d", ErrInvalidSize, width, height)
	}

	b := r.window.b
	ptr := b.lib.CreateTexture(r.ptr, abi.PixelFormatABGR8888, abi.TextureAccessStreaming, int32(width), int32(height))
	if ptr == nil {
		err := nativeError(ErrCreateTexture, b.lib.GetError())
		b.log.Errorf("creating %dx%d texture for window %d: %v", width, height, r.window.id, err)
		return nil, err
	}

	t := &Texture{
		renderer: r,
		ptr:      ptr,
		width:    width,
		height:   height,
		format:   abi.PixelFormatABGR8888,
	}
	r.textures = append(r.textures, t)
	b.log.Debugf("created %dx%d texture for window %d", width, height, r.window.id)
	return t, nil
}

// RenderTexture composites the whole texture over the whole render target.
// The result becomes visible on the next Present.
func (r *Renderer) RenderTexture(t *Texture) error {
	switch {
	case r.destroyed:
		return fmt.Errorf("%w: renderer", ErrDestroyed)
	case t == nil:
		return fmt.Errorf("%w: nil texture", ErrRender)
	case t.destroyed:
		return fmt.Errorf("%w: texture", ErrDestroyed)
	case t.renderer != r:
		return fmt.Errorf("%w: texture belongs to another renderer", ErrRender)
	}

	lib := r.window.b.lib
	if status := lib.RenderCopy(r.ptr, t.ptr, nil, nil); status != 0 {
		return nativeError(ErrRender, lib.GetError())
	}
	return nil
}

// Present shows everything composited since the previous Present.
func (r *Renderer) Present() error {
	if r.destroyed {
		return fmt.Errorf("%w: renderer", ErrDestroyed)
	}
	r.window.b.lib.RenderPresent(r.ptr)
	return nil
}

// Destroy releases the native renderer after destroying every live texture
// created from it. Destroying a renderer twice returns ErrDestroyed and
// does not reach the native library.
func (r *Renderer) Destroy() error {
	if r.destroyed {
		return fmt.Errorf("%w: renderer", ErrDestroyed)
	}

	var errs []error
	for len(r.textures) > 0 {
		t := r.textures[0]
		if err := t.Destroy(); err != nil {
			errs = append(errs, err)
		}
		if len(r.textures) > 0 && r.textures[0] == t {
			r.textures = r.textures[1:]
		}
	}

	r.destroyed = true
	r.window.b.lib.DestroyRenderer(r.ptr)
	r.ptr = nil
	r.window.removeRenderer(r)
	r.window.b.log.Debugf("destroyed renderer for window %d", r.window.id)
	return errors.Join(errs...)
}

func (r *Renderer) removeTexture(t *Texture) {
	for i, tt := range r.textures {
		if tt == t {
			r.textures = append(r.textures[:i], r.textures[i+1:]...)
			return
		}
	}
}
