package sdl

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/thelolagemann/gosdl/internal/abi"
	"github.com/thelolagemann/gosdl/internal/native"
)

// BytesPerPixel is the size of one pixel in every texture.
const BytesPerPixel = abi.BytesPerPixel

// Texture owns a native streaming texture handle.
//
// The pixel format is ABGR8888: on a little-endian host each pixel is
// stored as the bytes R, G, B, A, which is the layout of image.NRGBA and of
// most canvas-style rasterizers.
type Texture struct {
	renderer *Renderer
	ptr      native.TexturePtr

	width, height int
	format        uint32
	pitch         int

	frames    frameCache
	destroyed bool
}

// Width returns the texture width in pixels.
func (t *Texture) Width() int { return t.width }

// Height returns the texture height in pixels.
func (t *Texture) Height() int { return t.height }

// Format returns the native pixel format.
func (t *Texture) Format() uint32 { return t.format }

// Pitch returns the destination row length reported by the most recent
// successful lock, or 0 if the texture was never updated.
func (t *Texture) Pitch() int { return t.pitch }

// Renderer returns the renderer the texture was created from.
func (t *Texture) Renderer() *Renderer { return t.renderer }

// Destroyed reports whether Destroy has been called.
func (t *Texture) Destroyed() bool { return t.destroyed }

// Update copies src, whose rows are pitch bytes apart, into the texture.
//
// The whole texture is locked, and each row copies at most the shorter of
// the source pitch, the native destination pitch and the texture row
// length. A source too short for every row is rejected before locking. If
// the lock fails nothing is written and the native error is returned.
func (t *Texture) Update(src []byte, pitch int) error {
	if t.destroyed {
		return fmt.Errorf("%w: texture", ErrDestroyed)
	}
	return t.upload(src, pitch, t.frames.sum(src, pitch, t.height))
}

// upload writes src into the texture and records sum as the frame it now
// holds. On error the texture and the recorded frame are left unchanged.
func (t *Texture) upload(src []byte, pitch int, sum uint64) error {
	if err := checkSource(src, pitch, t.width*BytesPerPixel, t.height); err != nil {
		return err
	}

	lib := t.renderer.window.b.lib
	var (
		pixels   unsafe.Pointer
		dstPitch int32
	)
	if status := lib.LockTexture(t.ptr, nil, &pixels, &dstPitch); status != 0 {
		err := nativeError(ErrLock, lib.GetError())
		t.renderer.window.b.log.Errorf("locking %dx%d texture: %v", t.width, t.height, err)
		return err
	}
	defer lib.UnlockTexture(t.ptr)

	if pixels == nil || dstPitch <= 0 {
		return fmt.Errorf("%w: native pitch %d", ErrLock, dstPitch)
	}

	dst := unsafe.Slice((*byte)(pixels), int(dstPitch)*t.height)
	blit(dst, int(dstPitch), src, pitch, t.width*BytesPerPixel, t.height)
	t.pitch = int(dstPitch)
	t.frames.add(sum)
	return nil
}

// UpdateIfChanged behaves like Update but skips the upload when src and
// pitch match the frame the texture already holds, whichever of Update,
// UpdateImage or UpdateIfChanged wrote it. It reports whether the texture
// was written.
func (t *Texture) UpdateIfChanged(src []byte, pitch int) (bool, error) {
	if t.destroyed {
		return false, fmt.Errorf("%w: texture", ErrDestroyed)
	}
	sum := t.frames.sum(src, pitch, t.height)
	if t.frames.has(sum) {
		return false, nil
	}
	if err := t.upload(src, pitch, sum); err != nil {
		return false, err
	}
	return true, nil
}

// UpdateImage converts img to the texture layout, scaling it to the
// texture size if needed, and uploads it.
func (t *Texture) UpdateImage(img image.Image) error {
	pix, pitch := Pixels(img, t.width, t.height)
	return t.Update(pix, pitch)
}

// Destroy releases the native texture. Destroying a texture twice returns
// ErrDestroyed and does not reach the native library.
func (t *Texture) Destroy() error {
	if t.destroyed {
		return fmt.Errorf("%w: texture", ErrDestroyed)
	}
	t.destroyed = true
	t.renderer.window.b.lib.DestroyTexture(t.ptr)
	t.ptr = nil
	t.frames.reset()
	t.renderer.removeTexture(t)
	t.renderer.window.b.log.Debugf("destroyed %dx%d texture for window %d", t.width, t.height, t.renderer.window.id)
	return nil
}
