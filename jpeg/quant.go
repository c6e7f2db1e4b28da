package jpeg

// QuantTable holds 64 quantizer values in zig-zag order, indexed the same
// way SOF/DQT segments store them (§3).
type QuantTable struct {
	entries [64]uint16
}

// baseLuminance, baseChrominance are the Annex K.1/K.2 standard quantization
// tables at quality 50, in canonical zig-zag order.
var baseLuminance = [64]uint16{
	16, 11, 12, 14, 12, 10, 16, 14,
	13, 14, 18, 17, 16, 19, 24, 40,
	26, 24, 22, 22, 24, 49, 35, 37,
	29, 40, 58, 51, 61, 60, 57, 51,
	56, 55, 64, 72, 92, 78, 64, 68,
	87, 69, 55, 56, 80, 109, 81, 87,
	95, 98, 103, 104, 103, 62, 77, 113,
	121, 112, 100, 120, 92, 101, 103, 99,
}

var baseChrominance = [64]uint16{
	17, 18, 18, 24, 21, 24, 47, 26,
	26, 47, 99, 66, 56, 66, 99, 99,
	99, 99, 99, 99, 99, 99, 99, 99,
	99, 99, 99, 99, 99, 99, 99, 99,
	99, 99, 99, 99, 99, 99, 99, 99,
	99, 99, 99, 99, 99, 99, 99, 99,
	99, 99, 99, 99, 99, 99, 99, 99,
	99, 99, 99, 99, 99, 99, 99, 99,
}

// qualityScale converts a 1..100 quality factor to the Annex K scaling
// percentage, per §4.9: below 50 the table is scaled up aggressively,
// at 50 it is unscaled, and above 50 it is scaled down toward all-ones.
func qualityScale(quality int) int {
	if quality < 1 {
		quality = 1
	}
	if quality > 100 {
		quality = 100
	}
	if quality < 50 {
		return 5000 / quality
	}
	return 200 - 2*quality
}

// scaledTable applies scale (as returned by qualityScale) to a base table,
// clamping every entry to the 1..255 range baseline JPEG requires.
func scaledTable(base [64]uint16, scale int) *QuantTable {
	q := &QuantTable{}
	for i, b := range base {
		v := (int(b)*scale + 50) / 100
		if v < 1 {
			v = 1
		}
		if v > 255 {
			v = 255
		}
		q.entries[i] = uint16(v)
	}
	return q
}

// standardLuminanceTable returns the Annex K.1 luminance table scaled for
// quality (1..100).
func standardLuminanceTable(quality int) *QuantTable {
	return scaledTable(baseLuminance, qualityScale(quality))
}

// standardChrominanceTable returns the Annex K.2 chrominance table scaled
// for quality (1..100).
func standardChrominanceTable(quality int) *QuantTable {
	return scaledTable(baseChrominance, qualityScale(quality))
}

// quantTableFromDQT builds a QuantTable from a DQT segment's raw zig-zag
// entries, validating that no entry is zero (§3: divide-by-zero guard).
func quantTableFromDQT(values [64]uint16) (*QuantTable, error) {
	for _, v := range values {
		if v == 0 {
			return nil, newErr(Malformed, "quantization table entry is zero")
		}
	}
	return &QuantTable{entries: values}, nil
}

// dequantize multiplies each zig-zag-ordered coefficient by its table entry
// (§4.5).
func dequantize(coeffs *block, q *QuantTable) {
	for i := 0; i < 64; i++ {
		coeffs[i] *= int32(q.entries[i])
	}
}

// quantize divides each zig-zag-ordered coefficient by its table entry,
// rounding to nearest (§4.9).
func quantize(coeffs *block, q *QuantTable) {
	for i := 0; i < 64; i++ {
		c := coeffs[i]
		d := int32(q.entries[i])
		if c >= 0 {
			coeffs[i] = (c + d/2) / d
		} else {
			coeffs[i] = -((-c + d/2) / d)
		}
	}
}
