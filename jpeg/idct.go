package jpeg

// Fixed-point inverse DCT. §4.7 requires deterministic fixed-point
// arithmetic rather than floating point: a separable row/column structure
// (an 8-point 1D inverse transform applied to every column, then to every
// row) using the classic scaled-integer coefficients, carried at 13
// fractional bits through two passes the way IEEE 1180 reference decoders do.
const (
	idctConstBits = 13
	idctPass1Bits = 2

	fix0298631336 = 2446
	fix0390180644 = 3196
	fix0541196100 = 4433
	fix0765366865 = 6270
	fix0899976223 = 7373
	fix1175875602 = 9633
	fix1501321110 = 12299
	fix1847759065 = 15137
	fix1961570560 = 16069
	fix2053119869 = 16819
	fix2562915447 = 20995
	fix3072711026 = 25172
)

func idctDescale(x int64, shift uint) int32 {
	return int32((x + (1 << (shift - 1))) >> shift)
}

// idct8x8 performs a full inverse DCT of a natural-order (not zig-zag)
// dequantized coefficient block, returning level-shifted, clamped 8-bit
// samples in raster order.
func idct8x8(coeffs *block) [64]uint8 {
	var tmp [64]int32

	for col := 0; col < 8; col++ {
		idct1DColumn(coeffs, col, tmp[:])
	}

	var out [64]uint8
	for row := 0; row < 8; row++ {
		idct1DRow(tmp[:], row, &out)
	}
	return out
}

func idct1DColumn(in *block, col int, out []int32) {
	s0 := int64(in[col])
	s1 := int64(in[8+col])
	s2 := int64(in[16+col])
	s3 := int64(in[24+col])
	s4 := int64(in[32+col])
	s5 := int64(in[40+col])
	s6 := int64(in[48+col])
	s7 := int64(in[56+col])

	if s1|s2|s3|s4|s5|s6|s7 == 0 {
		dc := idctDescale(s0<<idctPass1Bits, 0)
		for row := 0; row < 8; row++ {
			out[row*8+col] = int32(dc)
		}
		return
	}

	z2 := s2
	z3 := s6

	z1 := (z2 + z3) * fix0541196100
	tmp2 := z1 + z3*-fix1847759065
	tmp3 := z1 + z2*fix0765366865

	tmp0 := (s0 + s4) << idctConstBits
	tmp1 := (s0 - s4) << idctConstBits

	v10 := tmp0 + tmp3
	v13 := tmp0 - tmp3
	v11 := tmp1 + tmp2
	v12 := tmp1 - tmp2

	t0 := s7
	t1 := s5
	t2 := s3
	t3 := s1

	z1 = t0 + t3
	z2 = t1 + t2
	z3 = t0 + t2
	z4 := t1 + t3
	z5 := (z3 + z4) * fix1175875602

	t0 = t0 * fix0298631336
	t1 = t1 * fix2053119869
	t2 = t2 * fix3072711026
	t3 = t3 * fix1501321110
	z1 = -z1 * fix0899976223
	z2 = -z2 * fix2562915447
	z3 = -z3*fix1961570560 + z5
	z4 = -z4*fix0390180644 + z5

	t0 += z1 + z3
	t1 += z2 + z4
	t2 += z2 + z3
	t3 += z1 + z4

	out[0*8+col] = idctDescale(v10+t3, idctConstBits-idctPass1Bits)
	out[7*8+col] = idctDescale(v10-t3, idctConstBits-idctPass1Bits)
	out[1*8+col] = idctDescale(v11+t2, idctConstBits-idctPass1Bits)
	out[6*8+col] = idctDescale(v11-t2, idctConstBits-idctPass1Bits)
	out[2*8+col] = idctDescale(v12+t1, idctConstBits-idctPass1Bits)
	out[5*8+col] = idctDescale(v12-t1, idctConstBits-idctPass1Bits)
	out[3*8+col] = idctDescale(v13+t0, idctConstBits-idctPass1Bits)
	out[4*8+col] = idctDescale(v13-t0, idctConstBits-idctPass1Bits)
}

func idct1DRow(in []int32, row int, out *[64]uint8) {
	base := row * 8
	s0 := int64(in[base+0])
	s1 := int64(in[base+1])
	s2 := int64(in[base+2])
	s3 := int64(in[base+3])
	s4 := int64(in[base+4])
	s5 := int64(in[base+5])
	s6 := int64(in[base+6])
	s7 := int64(in[base+7])

	store := func(col int, v int32) {
		val := v + 128
		if val < 0 {
			val = 0
		} else if val > 255 {
			val = 255
		}
		out[base+col] = uint8(val)
	}

	if s1|s2|s3|s4|s5|s6|s7 == 0 {
		dc := idctDescale(s0, idctPass1Bits+3)
		for col := 0; col < 8; col++ {
			store(col, dc)
		}
		return
	}

	z2 := s2
	z3 := s6

	z1 := (z2 + z3) * fix0541196100
	tmp2 := z1 + z3*-fix1847759065
	tmp3 := z1 + z2*fix0765366865

	tmp0 := (s0 + s4) << idctConstBits
	tmp1 := (s0 - s4) << idctConstBits

	v10 := tmp0 + tmp3
	v13 := tmp0 - tmp3
	v11 := tmp1 + tmp2
	v12 := tmp1 - tmp2

	t0 := s7
	t1 := s5
	t2 := s3
	t3 := s1

	z1 = t0 + t3
	z2 = t1 + t2
	z3 = t0 + t2
	z4 := t1 + t3
	z5 := (z3 + z4) * fix1175875602

	t0 = t0 * fix0298631336
	t1 = t1 * fix2053119869
	t2 = t2 * fix3072711026
	t3 = t3 * fix1501321110
	z1 = -z1 * fix0899976223
	z2 = -z2 * fix2562915447
	z3 = -z3*fix1961570560 + z5
	z4 = -z4*fix0390180644 + z5

	t0 += z1 + z3
	t1 += z2 + z4
	t2 += z2 + z3
	t3 += z1 + z4

	shift := uint(idctConstBits + idctPass1Bits + 3)
	store(0, idctDescale(v10+t3, shift))
	store(7, idctDescale(v10-t3, shift))
	store(1, idctDescale(v11+t2, shift))
	store(6, idctDescale(v11-t2, shift))
	store(2, idctDescale(v12+t1, shift))
	store(5, idctDescale(v12-t1, shift))
	store(3, idctDescale(v13+t0, shift))
	store(4, idctDescale(v13-t0, shift))
}
