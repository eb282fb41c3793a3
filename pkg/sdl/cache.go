package sdl

import (
	"encoding/binary"

	"github.com/cespare/xxhash"
)

// frameCache remembers the hash of the last frame uploaded to a texture.
type frameCache struct {
	hash  uint64
	valid bool
}

// sum hashes the bytes of a frame that an upload would read, along with
// its pitch, so the same bytes laid out differently hash differently.
func (c *frameCache) sum(src []byte, pitch, height int) uint64 {
	d := xxhash.New()
	var p [8]byte
	binary.LittleEndian.PutUint64(p[:], uint64(pitch))
	d.Write(p[:])
	if end := pitch * height; end > 0 && end < len(src) {
		src = src[:end]
	}
	d.Write(src)
	return d.Sum64()
}

func (c *frameCache) has(hash uint64) bool {
	return c.valid && c.hash == hash
}

func (c *frameCache) add(hash uint64) {
	c.hash = hash
	c.valid = true
}

func (c *frameCache) reset() {
	c.hash = 0
	c.valid = false
}
