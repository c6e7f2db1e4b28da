package jpeg

// Decode parses a baseline JPEG byte stream and reconstructs it to an RGBA
// Image, orchestrating every stage named in §2's decode pipeline:
// marker scan -> header parse -> Huffman table build -> entropy decode ->
// dequantize -> IDCT -> MCU assembly -> chroma upsample -> color convert.
func Decode(data []byte) (*Image, error) {
	frame, scanStart, err := parseHeader(data)
	if err != nil {
		return nil, err
	}

	planes := newComponentPlanes(frame)
	br := newBitReader(data, scanStart)

	if err := decodeEntropyData(br, frame, planes, len(data)); err != nil {
		// Truncated is §7's best-effort case: blocks not reached
		// before the stream ran out are left at their zero value (flat
		// DC, no AC), and reconstruction proceeds on what was decoded.
		if e, ok := AsError(err); !ok || e.Kind != Truncated {
			return nil, err
		}
	}

	samples := make([]samplePlane, len(frame.Components))
	for ci := range frame.Components {
		c := &frame.Components[ci]
		q := frame.QuantTables[c.QuantTableID]
		width := c.actualBlocksPerLine * 8
		height := c.actualBlocksPerColumn * 8
		samples[ci] = newSamplePlane(width, height)

		for row := 0; row < c.actualBlocksPerColumn; row++ {
			for col := 0; col < c.actualBlocksPerLine; col++ {
				coeffs := *planes[ci].block(col, row)
				dequantize(&coeffs, q)
				natural := dezigzag(&coeffs)
				pix := idct8x8(&natural)
				samples[ci].setBlockAt(col, row, &pix)
			}
		}
	}

	img := newImage(frame.Width, frame.Height)

	if len(frame.Components) == 1 {
		y := &samples[0]
		for py := 0; py < frame.Height; py++ {
			for px := 0; px < frame.Width; px++ {
				v := y.at(px, py)
				img.setRGBA(px, py, v, v, v, 255)
			}
		}
		return img, nil
	}

	full := make([]samplePlane, len(frame.Components))
	for ci := range frame.Components {
		c := &frame.Components[ci]
		hRatio := int(frame.MaxH) / int(c.H)
		vRatio := int(frame.MaxV) / int(c.V)
		if hRatio == 1 && vRatio == 1 {
			full[ci] = samples[ci]
		} else {
			full[ci] = upsamplePlane(&samples[ci], hRatio, vRatio, samples[0].width, samples[0].height)
		}
	}

	for py := 0; py < frame.Height; py++ {
		for px := 0; px < frame.Width; px++ {
			y := full[0].at(px, py)
			cb := full[1].at(px, py)
			cr := full[2].at(px, py)
			r, g, b := ycbcrToRGB(y, cb, cr)
			img.setRGBA(px, py, r, g, b, 255)
		}
	}
	return img, nil
}
