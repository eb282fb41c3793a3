package sdl

import (
	"bytes"
	"image"
	"image/color"
	"testing"
)

func TestPixels(t *testing.T) {
	t.Run("matching nrgba is used as is", func(t *testing.T) {
		img := image.NewNRGBA(image.Rect(0, 0, 4, 2))
		pix, pitch := Pixels(img, 4, 2)
		if &pix[0] != &img.Pix[0] || pitch != img.Stride {
			t.Error("expected the image buffer to be reused")
		}
	})

	t.Run("rgba is converted", func(t *testing.T) {
		img := image.NewRGBA(image.Rect(0, 0, 2, 2))
		img.Set(1, 1, color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xFF})
		pix, pitch := Pixels(img, 2, 2)
		if pitch != 8 {
			t.Fatalf("expected pitch 8, got %d", pitch)
		}
		if got := pix[12:16]; !bytes.Equal(got, []byte{0x10, 0x20, 0x30, 0xFF}) {
			t.Errorf("expected R, G, B, A bytes, got %v", got)
		}
	})

	t.Run("offset bounds are honoured", func(t *testing.T) {
		img := image.NewNRGBA(image.Rect(5, 5, 8, 8))
		for i := 0; i < len(img.Pix); i += 4 {
			copy(img.Pix[i:], []byte{0xFF, 0x00, 0x00, 0xFF})
		}
		pix, _ := Pixels(img, 3, 3)
		if !bytes.Equal(pix, red(3, 3)) {
			t.Errorf("expected a red frame, got %v", pix)
		}
	})

	t.Run("other sizes are scaled", func(t *testing.T) {
		img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
		for i := 0; i < len(img.Pix); i += 4 {
			copy(img.Pix[i:], []byte{0xFF, 0x00, 0x00, 0xFF})
		}
		pix, pitch := Pixels(img, 8, 6)
		if pitch != 8*4 || len(pix) != 8*6*4 {
			t.Fatalf("expected an 8x6 buffer, got pitch %d len %d", pitch, len(pix))
		}
		if !bytes.Equal(pix, red(8, 6)) {
			t.Error("expected a uniform red frame after scaling")
		}
	})
}

func TestTexture_UpdateImage(t *testing.T) {
	b, lib := newTestBinding(t)
	_, _, tex := newTestChain(t, b, "image", 4, 4)

	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for i := range img.Pix {
		img.Pix[i] = byte(i)
	}
	if err := tex.UpdateImage(img); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(lib.ReadPixels(tex.ptr), img.Pix) {
		t.Error("expected the texture to hold the image pixels")
	}
}
