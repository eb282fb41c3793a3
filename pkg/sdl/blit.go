package sdl

import "fmt"

// checkSource validates a source buffer of height rows, pitch bytes apart,
// for a texture whose rows are rowBytes long. The last row only needs to
// hold the bytes that will be copied from it.
func checkSource(src []byte, pitch, rowBytes, height int) error {
	if pitch <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidPitch, pitch)
	}
	if need := (height-1)*pitch + min(pitch, rowBytes); len(src) < need {
		return fmt.Errorf("%w: need %d bytes, got %d", ErrShortBuffer, need, len(src))
	}
	return nil
}

// blit copies height rows from src to dst, returning the number of bytes
// written. Each row copies min(srcPitch, dstPitch, rowBytes) bytes, so the
// total never exceeds rowBytes*height and no row spills into the next
// row's padding. dst must hold dstPitch*height bytes and src must pass
// checkSource.
func blit(dst []byte, dstPitch int, src []byte, srcPitch int, rowBytes, height int) int {
	n := min(srcPitch, dstPitch, rowBytes)
	for row := 0; row < height; row++ {
		d, s := row*dstPitch, row*srcPitch
		copy(dst[d:d+n], src[s:s+n])
	}
	return n * height
}
