package abi

// Pixel types, orders and layouts used to pack a pixel format value.
const (
	PixelTypePacked32 uint32 = 6

	PackedOrderRGBA uint32 = 4
	PackedOrderABGR uint32 = 7

	PackedLayout8888 uint32 = 6
)

// PixelFormat packs a pixel format value the way SDL_DEFINE_PIXELFORMAT does.
func PixelFormat(typ, order, layout, bits uint32) uint32 {
	return (1 << 28) | (typ << 24) | (order << 20) | (layout << 16) | (bits << 8) | (bits / 8)
}

var (
	// PixelFormatRGBA8888 stores a packed 32-bit value with red in the high byte.
	PixelFormatRGBA8888 = PixelFormat(PixelTypePacked32, PackedOrderRGBA, PackedLayout8888, 32)
	// PixelFormatABGR8888 stores a packed 32-bit value with alpha in the high
	// byte. On a little-endian host its bytes are R, G, B, A in memory order.
	PixelFormatABGR8888 = PixelFormat(PixelTypePacked32, PackedOrderABGR, PackedLayout8888, 32)
)
