package sdl

import (
	"image"

	"golang.org/x/image/draw"
)

// Pixels converts img into a width x height buffer in the texture layout
// (R, G, B, A bytes, straight alpha) and returns it with its pitch. Images
// of a different size are scaled bilinearly.
func Pixels(img image.Image, width, height int) ([]byte, int) {
	if nrgba, ok := img.(*image.NRGBA); ok && nrgba.Rect == image.Rect(0, 0, width, height) {
		return nrgba.Pix, nrgba.Stride
	}

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	b := img.Bounds()
	if b.Dx() == width && b.Dy() == height {
		draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	} else {
		draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	}
	return dst.Pix, dst.Stride
}
