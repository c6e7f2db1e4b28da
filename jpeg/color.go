package jpeg

// 16.16 fixed-point YCbCr<->RGB conversion, full-range ITU-R BT.601, per
// §4.11: component planes are flat per-component sample arrays in row-major
// order, and the coefficients are expressed as fixed-point constants rather
// than floating point as §4.7/§4.11 both require.
const fixShift = 16

func fix(f float64) int32 {
	return int32(f*(1<<fixShift) + 0.5)
}

var (
	fixY2R  = fix(1.402)
	fixCb2G = fix(0.344136)
	fixCr2G = fix(0.714136)
	fixCb2B = fix(1.772)

	fixR2Y  = fix(0.299)
	fixG2Y  = fix(0.587)
	fixB2Y  = fix(0.114)
	fixR2Cb = fix(0.168736)
	fixG2Cb = fix(0.331264)
	fixB2Cb = fix(0.5)
	fixR2Cr = fix(0.5)
	fixG2Cr = fix(0.418688)
	fixB2Cr = fix(0.081312)
)

func clamp8(v int32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func fixMul(a int32, b int32) int32 {
	return int32((int64(a) * int64(b)) >> fixShift)
}

func fixRound(v int32) int32 {
	return (v + (1 << (fixShift - 1))) >> fixShift
}

// ycbcrToRGB converts one YCbCr triple to RGB, per §4.11's inverse
// transform.
func ycbcrToRGB(y, cb, cr uint8) (r, g, b uint8) {
	cbOff := int32(cb) - 128
	crOff := int32(cr) - 128
	yy := int32(y) << fixShift

	rr := yy + fixMul(fixY2R, crOff<<fixShift)
	gg := yy - fixMul(fixCb2G, cbOff<<fixShift) - fixMul(fixCr2G, crOff<<fixShift)
	bb := yy + fixMul(fixCb2B, cbOff<<fixShift)

	r = clamp8(fixRound(rr))
	g = clamp8(fixRound(gg))
	b = clamp8(fixRound(bb))
	return
}

// rgbToYCbCr converts one RGB triple to YCbCr, per §4.11's forward
// transform.
func rgbToYCbCr(r, g, b uint8) (y, cb, cr uint8) {
	rr := int32(r) << fixShift
	gg := int32(g) << fixShift
	bb := int32(b) << fixShift

	yy := fixMul(fixR2Y, rr) + fixMul(fixG2Y, gg) + fixMul(fixB2Y, bb)
	cbb := -fixMul(fixR2Cb, rr) - fixMul(fixG2Cb, gg) + fixMul(fixB2Cb, bb) + (128 << fixShift)
	crr := fixMul(fixR2Cr, rr) - fixMul(fixG2Cr, gg) - fixMul(fixB2Cr, bb) + (128 << fixShift)

	y = clamp8(fixRound(yy))
	cb = clamp8(fixRound(cbb))
	cr = clamp8(fixRound(crr))
	return
}
