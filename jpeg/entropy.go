package jpeg

// decodeEntropyData walks every scan position in order, decoding one
// coefficient block per call into dst (indexed by component, then block
// row-major within that component's padded plane). Restart markers are
// consumed and DC predictors reset per §4.6, over this module's zig-zag
// block storage and generalized to arbitrary baseline component counts.
func decodeEntropyData(br *bitReader, frame *FrameState, planes []componentPlane, dataEnd int) error {
	pos := newScanPosition(frame, frame.ScanComponents)
	lastDC := make([]int32, len(frame.Components))

	for !pos.done() {
		compIdx, col, row := pos.current()
		c := &frame.Components[compIdx]
		dcTable := frame.HuffDC[c.HuffDC]
		acTable := frame.HuffAC[c.HuffAC]

		blk, err := decodeBlock(br, dcTable, acTable, &lastDC[compIdx])
		if err != nil {
			return err
		}
		planes[compIdx].setBlock(col, row, blk)

		pos.advance()
		if pos.atRestartBoundary() && !pos.done() {
			if err := consumeRestart(br); err != nil {
				return err
			}
			pos.resetRestart()
			for i := range lastDC {
				lastDC[i] = 0
			}
		}
	}
	if br.truncated() {
		return newErrAt(Truncated, br.position(), "scan data ended before all MCUs were decoded")
	}
	return nil
}

// decodeBlock reads one 8x8 block's worth of Huffman-coded coefficients:
// a differential DC term followed by run-length-coded AC terms, stopping at
// EOB. lastDC is updated in place with the new running DC value.
func decodeBlock(br *bitReader, dcTable, acTable *HuffmanTable, lastDC *int32) (*block, error) {
	var blk block

	dcSize, err := dcTable.decodeSymbol(br)
	if err != nil {
		return nil, err
	}
	var dcDiff int32
	if dcSize > 0 {
		bits, err := br.readBits(uint(dcSize))
		if err != nil {
			return nil, err
		}
		dcDiff = extend(bits, dcSize)
	}
	*lastDC += dcDiff
	blk[0] = *lastDC

	k := 1
	for k < 64 {
		rs, err := acTable.decodeSymbol(br)
		if err != nil {
			return nil, err
		}
		run := int(rs >> 4)
		size := rs & 0x0F

		if size == 0 {
			if run == 15 {
				k += 16 // ZRL
				continue
			}
			break // EOB
		}

		k += run
		if k >= 64 {
			return nil, newErr(CorruptEntropy, "AC run exceeds block boundary")
		}
		bits, err := br.readBits(uint(size))
		if err != nil {
			return nil, err
		}
		blk[k] = extend(bits, size)
		k++
	}

	return &blk, nil
}

// consumeRestart requires and consumes the next RST marker, resetting the
// bit reader's register per §4.6.
func consumeRestart(br *bitReader) error {
	marker, _, atM := br.atMarker()
	if !atM {
		if br.truncated() {
			return newErrAt(Truncated, br.position(), "scan data truncated before expected restart marker")
		}
		return newErrAt(Malformed, br.position(), "expected restart marker")
	}
	if !isRST(marker) {
		return newErrAt(Malformed, br.position(), "expected restart marker, found other marker")
	}
	br.consumeMarker()
	return nil
}

// encodeEntropyData is the encode-side mirror of decodeEntropyData: it
// walks the same scan order, differential-DC/RLE-AC encodes each block from
// planes, and emits a restart marker at every interval boundary (§4.9).
func encodeEntropyData(bw *bitWriter, frame *FrameState, planes []componentPlane, dcTables, acTables []*huffEncodeTable) {
	pos := newScanPosition(frame, frame.ScanComponents)
	lastDC := make([]int32, len(frame.Components))
	restartCount := 0

	for !pos.done() {
		compIdx, col, row := pos.current()
		c := &frame.Components[compIdx]
		blk := planes[compIdx].block(col, row)

		encodeBlock(bw, blk, dcTables[c.HuffDC], acTables[c.HuffAC], &lastDC[compIdx])

		pos.advance()
		if pos.atRestartBoundary() && !pos.done() {
			bw.pad()
			bw.buf = append(bw.buf, 0xFF, markerRST0+byte(restartCount%8))
			restartCount++
			pos.resetRestart()
			for i := range lastDC {
				lastDC[i] = 0
			}
		}
	}
}

func encodeBlock(bw *bitWriter, blk *block, dcTable, acTable *huffEncodeTable, lastDC *int32) {
	diff := blk[0] - *lastDC
	*lastDC = blk[0]
	encodeDC(bw, diff, dcTable)
	encodeAC(bw, blk, acTable)
}

func encodeDC(bw *bitWriter, diff int32, table *huffEncodeTable) {
	size, bits := vliEncode(diff)
	bw.writeBits(uint32(table.codes[size]), uint(table.lengths[size]))
	if size > 0 {
		bw.writeBits(bits, uint(size))
	}
}

func encodeAC(bw *bitWriter, blk *block, table *huffEncodeTable) {
	run := 0
	for k := 1; k < 64; k++ {
		coef := blk[k]
		if coef == 0 {
			run++
			continue
		}
		for run >= 16 {
			bw.writeBits(uint32(table.codes[0xF0]), uint(table.lengths[0xF0]))
			run -= 16
		}
		size, bits := vliEncode(coef)
		symbol := uint8(run<<4) | size
		bw.writeBits(uint32(table.codes[symbol]), uint(table.lengths[symbol]))
		bw.writeBits(bits, uint(size))
		run = 0
	}
	if run > 0 {
		bw.writeBits(uint32(table.codes[0x00]), uint(table.lengths[0x00]))
	}
}

// vliEncode returns the JPEG variable-length-integer category (size) and
// the size-bit payload for v, the inverse of extend (§4.4/§4.9).
func vliEncode(v int32) (size uint8, bits uint32) {
	abs := v
	if abs < 0 {
		abs = -abs
	}
	for abs>>size != 0 {
		size++
	}
	if v >= 0 {
		bits = uint32(v)
	} else {
		bits = uint32(v-1) & ((1 << size) - 1)
	}
	return size, bits
}
