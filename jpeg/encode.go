package jpeg

// Encode renders an Image to a baseline JPEG byte stream, orchestrating
// every stage named in §2's encode pipeline (the mirror of Decode):
// color convert -> chroma downsample -> block segment with edge padding ->
// forward DCT -> quantize -> Huffman encode -> marker emission
// (SOI -> APP0 -> DQT -> SOF0 -> DHT -> SOS -> entropy data -> EOI).
func Encode(img *Image, opts EncodeOptions) ([]byte, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if img.Width <= 0 || img.Height <= 0 {
		return nil, newErr(InvalidInput, "image dimensions must be positive, got %dx%d", img.Width, img.Height)
	}
	if len(img.Pix) != 4*img.Width*img.Height {
		return nil, newErr(InvalidInput, "pixel buffer length %d does not match %dx%d RGBA", len(img.Pix), img.Width, img.Height)
	}

	grayscale := opts.ColorSpace == ColorSpaceGrayscale
	hRatio, vRatio := 1, 1
	switch opts.ChromaSubsampling {
	case Subsampling422:
		hRatio = 2
	case Subsampling420:
		hRatio, vRatio = 2, 2
	}

	yPlane := newSamplePlane(img.Width, img.Height)
	var cbPlane, crPlane samplePlane
	if !grayscale {
		cbPlane = newSamplePlane(img.Width, img.Height)
		crPlane = newSamplePlane(img.Width, img.Height)
	}

	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			r, g, b, _ := img.at(x, y)
			if grayscale {
				yy, _, _ := rgbToYCbCr(r, g, b)
				yPlane.set(x, y, yy)
				continue
			}
			yy, cb, cr := rgbToYCbCr(r, g, b)
			yPlane.set(x, y, yy)
			cbPlane.set(x, y, cb)
			crPlane.set(x, y, cr)
		}
	}

	frame := &FrameState{
		Precision: 8,
		Width:     img.Width,
		Height:    img.Height,
		RestartInterval: opts.RestartInterval,
	}

	if grayscale {
		frame.Components = []Component{{ID: 1, H: 1, V: 1, QuantTableID: 0, HuffDC: 0, HuffAC: 0}}
	} else {
		h, v := uint8(1), uint8(1)
		if opts.ChromaSubsampling != Subsampling444 {
			h = uint8(hRatio)
		}
		if opts.ChromaSubsampling == Subsampling420 {
			v = uint8(vRatio)
		}
		frame.Components = []Component{
			{ID: 1, H: h, V: v, QuantTableID: 0, HuffDC: 0, HuffAC: 0},
			{ID: 2, H: 1, V: 1, QuantTableID: 1, HuffDC: 1, HuffAC: 1},
			{ID: 3, H: 1, V: 1, QuantTableID: 1, HuffDC: 1, HuffAC: 1},
		}
	}
	frame.sofSeen = true
	if err := frame.finalizeSOF(); err != nil {
		return nil, err
	}
	frame.ScanComponents = make([]int, len(frame.Components))
	for i := range frame.Components {
		frame.ScanComponents[i] = i
	}

	lumaQ := standardLuminanceTable(opts.Quality)
	chromaQ := standardChrominanceTable(opts.Quality)
	frame.QuantTables[0] = lumaQ
	if !grayscale {
		frame.QuantTables[1] = chromaQ
	}

	dcTables := []*HuffmanTable{
		standardHuffmanTable(stdLuminanceDCCounts, stdLuminanceDCSymbols),
		standardHuffmanTable(stdChrominanceDCCounts, stdChrominanceDCSymbols),
	}
	acTables := []*HuffmanTable{
		standardHuffmanTable(stdLuminanceACCounts, stdLuminanceACSymbols),
		standardHuffmanTable(stdChrominanceACCounts, stdChrominanceACSymbols),
	}
	frame.HuffDC[0], frame.HuffAC[0] = dcTables[0], acTables[0]
	if !grayscale {
		frame.HuffDC[1], frame.HuffAC[1] = dcTables[1], acTables[1]
	}

	planes := newComponentPlanes(frame)

	encodeComponentPlane(&yPlane, frame, 0, lumaQ, &planes[0])
	if !grayscale {
		dsCb := downsamplePlane(&cbPlane, hRatio, vRatio)
		dsCr := downsamplePlane(&crPlane, hRatio, vRatio)
		encodeComponentPlane(&dsCb, frame, 1, chromaQ, &planes[1])
		encodeComponentPlane(&dsCr, frame, 2, chromaQ, &planes[2])
	}

	buf := make([]byte, 0, img.Width*img.Height)
	buf = writeSOI(buf)
	buf = writeJFIF(buf)
	buf = writeDQT(buf, 0, lumaQ)
	if !grayscale {
		buf = writeDQT(buf, 1, chromaQ)
	}
	buf = writeSOF0(buf, frame)
	buf = writeDHTSegment(buf, 0, 0, dcTables[0])
	buf = writeDHTSegment(buf, 1, 0, acTables[0])
	if !grayscale {
		buf = writeDHTSegment(buf, 0, 1, dcTables[1])
		buf = writeDHTSegment(buf, 1, 1, acTables[1])
	}
	if frame.RestartInterval > 0 {
		buf = writeDRI(buf, frame.RestartInterval)
	}
	buf = writeSOS(buf, frame)

	bw := newBitWriter(img.Width * img.Height)
	dcEnc := []*huffEncodeTable{buildEncodeTable(dcTables[0]), buildEncodeTable(dcTables[1])}
	acEnc := []*huffEncodeTable{buildEncodeTable(acTables[0]), buildEncodeTable(acTables[1])}
	dcByComponent := make([]*huffEncodeTable, len(frame.Components))
	acByComponent := make([]*huffEncodeTable, len(frame.Components))
	for i, c := range frame.Components {
		if c.HuffDC < 2 {
			dcByComponent[i] = dcEnc[c.HuffDC]
		}
		if c.HuffAC < 2 {
			acByComponent[i] = acEnc[c.HuffAC]
		}
	}
	encodeEntropyData(bw, frame, planes, dcByComponent, acByComponent)
	bw.pad()
	buf = append(buf, bw.bytes()...)

	buf = writeEOI(buf)
	return buf, nil
}

// encodeComponentPlane edge-extends plane to a whole number of 8x8 blocks,
// forward-DCTs and quantizes every block, and stores the zig-zag ordered
// result into dst.
func encodeComponentPlane(plane *samplePlane, frame *FrameState, compIdx int, q *QuantTable, dst *componentPlane) {
	plane.extendEdges()
	c := &frame.Components[compIdx]
	for row := 0; row < c.blocksPerColumn; row++ {
		for col := 0; col < c.blocksPerLine; col++ {
			var samples [64]uint8
			srcCol, srcRow := col, row
			if srcCol >= plane.stride/8 {
				srcCol = plane.stride/8 - 1
			}
			if srcRow >= plane.rows/8 {
				srcRow = plane.rows/8 - 1
			}
			plane.blockAt(srcCol, srcRow, &samples)
			coeffs := fdct8x8(&samples)
			zz := zigzag(&coeffs)
			quantize(&zz, q)
			dst.setBlock(col, row, &zz)
		}
	}
}
