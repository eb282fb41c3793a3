package sdl

import (
	"bytes"
	"errors"
	"image"
	"testing"
	"testing/quick"

	"github.com/thelolagemann/gosdl/internal/native/nativetest"
)

func pattern(n int, seed byte) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = seed + byte(i*7)
	}
	return b
}

func TestBlit_RowBounds(t *testing.T) {
	tests := []struct {
		name                       string
		dstPitch, srcPitch, rowLen int
		want                       int
	}{
		{"packed", 16, 16, 16, 16},
		{"padded destination", 24, 16, 16, 16},
		{"padded source", 16, 20, 16, 16},
		{"short source rows", 16, 10, 16, 10},
		{"short destination rows", 12, 16, 16, 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			const height = 3
			dst := bytes.Repeat([]byte{nativetest.Canary}, tt.dstPitch*height)
			src := pattern(tt.srcPitch*height, 1)

			if got := blit(dst, tt.dstPitch, src, tt.srcPitch, tt.rowLen, height); got != tt.want*height {
				t.Errorf("expected %d bytes written, got %d", tt.want*height, got)
			}
			for row := 0; row < height; row++ {
				d := dst[row*tt.dstPitch : (row+1)*tt.dstPitch]
				s := src[row*tt.srcPitch:]
				if !bytes.Equal(d[:tt.want], s[:tt.want]) {
					t.Errorf("row %d: expected copied prefix %v, got %v", row, s[:tt.want], d[:tt.want])
				}
				for i, b := range d[tt.want:] {
					if b != nativetest.Canary {
						t.Fatalf("row %d: byte %d past the copied span was written", row, tt.want+i)
					}
				}
			}
		})
	}
}

func TestCheckSource(t *testing.T) {
	tests := []struct {
		name   string
		len    int
		pitch  int
		expect error
	}{
		{"exact", 4 * 16, 16, nil},
		{"last row only needs visible bytes", 3*20 + 16, 20, nil},
		{"short last row", 3*20 + 15, 20, ErrShortBuffer},
		{"short pitch", 3*8 + 8, 8, nil},
		{"empty", 0, 16, ErrShortBuffer},
		{"zero pitch", 64, 0, ErrInvalidPitch},
		{"negative pitch", 64, -16, ErrInvalidPitch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkSource(make([]byte, tt.len), tt.pitch, 16, 4)
			if !errors.Is(err, tt.expect) || (tt.expect == nil && err != nil) {
				t.Errorf("expected %v, got %v", tt.expect, err)
			}
		})
	}
}

// TestTexture_UpdateNeverOverruns uploads random sized frames with
// mismatched source and destination pitches and checks that only the
// bytes inside each visible row change.
func TestTexture_UpdateNeverOverruns(t *testing.T) {
	b, lib := newTestBinding(t)
	w, err := b.NewWindow("blit")
	if err != nil {
		t.Fatal(err)
	}
	r, err := w.CreateRenderer()
	if err != nil {
		t.Fatal(err)
	}

	f := func(width, height, srcPad, dstPad uint8, narrow bool, seed byte) bool {
		tw, th := int(width%24)+1, int(height%24)+1
		row := tw * BytesPerPixel

		srcPitch := row + int(srcPad%32)
		if narrow {
			srcPitch = int(srcPad)%row + 1
		}
		lib.PitchPadding = int(dstPad % 32)

		tex, err := r.CreateTexture(tw, th)
		if err != nil {
			t.Logf("create texture: %v", err)
			return false
		}
		defer tex.Destroy()

		src := pattern(srcPitch*th, seed)
		if err := tex.Update(src, srcPitch); err != nil {
			t.Logf("update %dx%d src pitch %d: %v", tw, th, srcPitch, err)
			return false
		}
		if lib.Overrun(tex.ptr) {
			t.Logf("overrun %dx%d src pitch %d dst pitch %d", tw, th, srcPitch, tex.Pitch())
			return false
		}

		n := min(srcPitch, row)
		got := lib.ReadPixels(tex.ptr)
		for y := 0; y < th; y++ {
			visible := got[y*row : (y+1)*row]
			if !bytes.Equal(visible[:n], src[y*srcPitch:y*srcPitch+n]) {
				return false
			}
			for _, c := range visible[n:] {
				if c != nativetest.Canary {
					return false
				}
			}
		}
		return true
	}
	if err := quick.Check(f, &quick.Config{MaxCount: 200}); err != nil {
		t.Error(err)
	}
}

func TestTexture_UpdateShortSource(t *testing.T) {
	b, lib := newTestBinding(t)
	_, _, tex := newTestChain(t, b, "short", 8, 8)

	err := tex.Update(make([]byte, 8*8*4-1), 8*4)
	if !errors.Is(err, ErrShortBuffer) {
		t.Fatalf("expected ErrShortBuffer, got %v", err)
	}
	if got := lib.Calls(nativetest.CallLockTexture); got != 0 {
		t.Errorf("expected short source to be rejected before locking, got %d locks", got)
	}
}

func TestTexture_UpdateLockFailure(t *testing.T) {
	b, lib := newTestBinding(t)
	_, _, tex := newTestChain(t, b, "lock", 8, 8)

	lib.FailNext(nativetest.CallLockTexture)
	err := tex.Update(pattern(8*8*4, 3), 8*4)
	if !errors.Is(err, ErrLock) {
		t.Fatalf("expected ErrLock, got %v", err)
	}
	if got := err.Error(); got != "sdl: could not lock texture: LockTexture failed" {
		t.Errorf("expected native error text, got %q", got)
	}
	for i, c := range lib.ReadPixels(tex.ptr) {
		if c != nativetest.Canary {
			t.Fatalf("expected no write after a failed lock, byte %d is %#x", i, c)
		}
	}
	if got := lib.Calls(nativetest.CallUnlockTexture); got != 0 {
		t.Errorf("expected no unlock after a failed lock, got %d", got)
	}

	if err := tex.Update(pattern(8*8*4, 3), 8*4); err != nil {
		t.Fatalf("expected the next update to succeed, got %v", err)
	}
	if got := lib.Calls(nativetest.CallUnlockTexture); got != 1 {
		t.Errorf("expected one unlock, got %d", got)
	}
}

func TestTexture_UpdateIfChanged(t *testing.T) {
	b, lib := newTestBinding(t)
	_, _, tex := newTestChain(t, b, "cache", 4, 4)

	frame := pattern(4*4*4, 9)
	other := pattern(4*4*4, 10)
	steps := []struct {
		src     []byte
		pitch   int
		plain   bool
		written bool
	}{
		{frame, 16, false, true},
		{frame, 16, false, false},
		{append([]byte(nil), frame...), 16, false, false},
		{other, 16, false, true},
		{frame, 16, false, true},
		{append(frame, make([]byte, 16)...), 20, false, true},
		{frame, 16, false, true},
		// a plain update replaces the frame the texture holds
		{other, 16, true, true},
		{frame, 16, false, true},
		{frame, 16, true, true},
		{frame, 16, false, false},
	}
	locks := 0
	for i, s := range steps {
		written := true
		var err error
		if s.plain {
			err = tex.Update(s.src, s.pitch)
		} else {
			written, err = tex.UpdateIfChanged(s.src, s.pitch)
		}
		if err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if written != s.written {
			t.Errorf("step %d: expected written=%v, got %v", i, s.written, written)
		}
		if written {
			locks++
		}
	}
	if got := lib.Calls(nativetest.CallLockTexture); got != locks {
		t.Errorf("expected %d locks, got %d", locks, got)
	}
	if !bytes.Equal(lib.ReadPixels(tex.ptr), frame) {
		t.Error("expected the texture to hold the last uploaded frame")
	}
}

func TestTexture_UpdateImageReplacesFrame(t *testing.T) {
	b, lib := newTestBinding(t)
	_, _, tex := newTestChain(t, b, "image", 2, 2)

	a := bytes.Repeat([]byte{1}, 2*2*4)
	if written, err := tex.UpdateIfChanged(a, 8); err != nil || !written {
		t.Fatalf("expected the first frame to be written, got %v, %v", written, err)
	}

	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for i := range img.Pix {
		img.Pix[i] = 2
	}
	if err := tex.UpdateImage(img); err != nil {
		t.Fatal(err)
	}

	if written, err := tex.UpdateIfChanged(a, 8); err != nil || !written {
		t.Errorf("expected the first frame to be written again, got %v, %v", written, err)
	}
	if !bytes.Equal(lib.ReadPixels(tex.ptr), a) {
		t.Errorf("expected the texture to hold %v, got %v", a, lib.ReadPixels(tex.ptr))
	}
}

func TestTexture_RedFrame(t *testing.T) {
	b, lib := newTestBinding(t)
	lib.PitchPadding = 16
	_, r, tex := newTestChain(t, b, "red", 640, 480)

	red := bytes.Repeat([]byte{0xFF, 0x00, 0x00, 0xFF}, 640*480)
	if err := tex.Update(red, 2560); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := r.RenderTexture(tex); err != nil {
		t.Fatalf("render: %v", err)
	}
	if err := r.Present(); err != nil {
		t.Fatalf("present: %v", err)
	}

	if !bytes.Equal(lib.ReadPixels(tex.ptr), red) {
		t.Error("expected the texture to hold the red frame")
	}
	if lib.Overrun(tex.ptr) {
		t.Error("expected no writes into row padding")
	}
	if presents := lib.Presents(); len(presents) != 1 || presents[0] != r.ptr {
		t.Errorf("expected one present from the renderer, got %v", presents)
	}
}
