package jpeg

// block holds 64 coefficients or samples for one 8x8 unit.
type block [64]int32

// zigzagOrder maps a zig-zag index (0..63) to a natural row-major index
// (row*8+col). This is the fixed, universally known JPEG coefficient scan.
var zigzagOrder = [64]uint8{
	0, 1, 8, 16, 9, 2, 3, 10,
	17, 24, 32, 25, 18, 11, 4, 5,
	12, 19, 26, 33, 40, 48, 41, 34,
	27, 20, 13, 6, 7, 14, 21, 28,
	35, 42, 49, 56, 57, 50, 43, 36,
	29, 22, 15, 23, 30, 37, 44, 51,
	58, 59, 52, 45, 38, 31, 39, 46,
	53, 60, 61, 54, 47, 55, 62, 63,
}

// naturalOrder is the inverse permutation of zigzagOrder: naturalOrder[n]
// is the zig-zag index holding the coefficient at natural index n.
var naturalOrder = func() [64]uint8 {
	var inv [64]uint8
	for zig, nat := range zigzagOrder {
		inv[nat] = uint8(zig)
	}
	return inv
}()

// dezigzag permutes a zig-zag ordered block into natural (row-major) order.
func dezigzag(src *block) block {
	var dst block
	for nat := 0; nat < 64; nat++ {
		dst[nat] = src[naturalOrder[nat]]
	}
	return dst
}

// zigzag permutes a natural (row-major) ordered block into zig-zag order.
func zigzag(src *block) block {
	var dst block
	for zig := 0; zig < 64; zig++ {
		dst[zig] = src[zigzagOrder[zig]]
	}
	return dst
}
