package jpeg

// parseHeader scans buf from the start, consuming SOI and every marker
// segment up to and including SOS, and returns the resulting FrameState
// together with the byte offset where entropy-coded data begins. Assumes a
// single SOF and single SOS, true for baseline frames (§2), and reads
// directly over a borrowed byte slice instead of a bufio.Reader.
func parseHeader(buf []byte) (*FrameState, int, error) {
	if len(buf) < 4 || buf[0] != 0xFF || buf[1] != markerSOI {
		return nil, 0, newErr(Malformed, "missing SOI marker")
	}

	frame := &FrameState{}
	pos := 2

	for {
		marker, at, ok := nextMarker(buf, pos)
		if !ok {
			return nil, 0, newErr(Truncated, "missing SOS before end of data")
		}
		segStart := at + 2

		if marker == markerEOI {
			return nil, 0, newErr(Malformed, "unexpected EOI before SOS")
		}
		if isRST(marker) {
			return nil, 0, newErr(Malformed, "unexpected restart marker before SOS")
		}

		length, ok := segmentLength(buf, segStart)
		if !ok {
			return nil, 0, newErrAt(Truncated, segStart, "truncated segment length")
		}
		if length < 2 || segStart+length > len(buf) {
			return nil, 0, newErrAt(Malformed, segStart, "invalid segment length")
		}
		data := buf[segStart+2 : segStart+length]
		pos = segStart + length

		switch {
		case marker == markerSOF0:
			if err := parseSOF(frame, data); err != nil {
				return nil, 0, err
			}
		case isSOF(marker):
			return nil, 0, newErrAt(Unsupported, at, "only baseline (SOF0) frames are supported")
		case marker == markerDHT:
			if err := parseDHT(frame, data); err != nil {
				return nil, 0, err
			}
		case marker == markerDQT:
			if err := parseDQT(frame, data); err != nil {
				return nil, 0, err
			}
		case marker == markerDRI:
			if len(data) < 2 {
				return nil, 0, newErrAt(Malformed, segStart, "DRI segment too short")
			}
			frame.RestartInterval = int(data[0])<<8 | int(data[1])
		case marker == markerAPP0:
			parseJFIF(frame, data)
		case marker == markerSOS:
			if !frame.sofSeen {
				return nil, 0, newErrAt(Malformed, at, "SOS before SOF")
			}
			if err := parseSOS(frame, data); err != nil {
				return nil, 0, err
			}
			return frame, pos, nil
		default:
			// COM, other APPn, and any other marker segment: not
			// semantically relevant, skipped per §4.2.
		}
	}
}

func parseSOF(frame *FrameState, data []byte) error {
	if frame.sofSeen {
		return newErr(Malformed, "multiple SOF markers")
	}
	if len(data) < 6 {
		return newErr(Malformed, "SOF segment too short")
	}

	frame.Precision = data[0]
	if frame.Precision != 8 {
		return newErr(Unsupported, "%d-bit sample precision not supported", frame.Precision)
	}

	frame.Height = int(data[1])<<8 | int(data[2])
	frame.Width = int(data[3])<<8 | int(data[4])
	if frame.Width == 0 || frame.Height == 0 {
		return newErr(Malformed, "image dimensions cannot be zero")
	}

	numComponents := int(data[5])
	if numComponents == 0 || numComponents > MaxComponents {
		return newErr(Malformed, "unsupported component count %d", numComponents)
	}

	pos := 6
	frame.Components = make([]Component, numComponents)
	for i := 0; i < numComponents; i++ {
		if pos+3 > len(data) {
			return newErr(Malformed, "SOF segment too short for component list")
		}
		c := &frame.Components[i]
		c.ID = data[pos]
		c.H = data[pos+1] >> 4
		c.V = data[pos+1] & 0x0F
		c.QuantTableID = data[pos+2]
		if c.QuantTableID >= 4 {
			return newErr(Malformed, "quantization table index out of range")
		}
		pos += 3
	}

	frame.sofSeen = true
	return frame.finalizeSOF()
}

func parseDHT(frame *FrameState, data []byte) error {
	pos := 0
	for pos < len(data) {
		class := data[pos] >> 4
		id := data[pos] & 0x0F
		pos++
		if class > 1 || id > 3 {
			return newErr(Malformed, "invalid Huffman table selector")
		}
		if pos+16 > len(data) {
			return newErr(Malformed, "DHT segment too short")
		}
		var counts [16]uint8
		total := 0
		for i := 0; i < 16; i++ {
			counts[i] = data[pos+i]
			total += int(counts[i])
		}
		pos += 16
		if pos+total > len(data) {
			return newErr(Malformed, "DHT segment too short for symbol list")
		}
		symbols := data[pos : pos+total]
		pos += total

		table, err := buildHuffmanTable(counts, symbols)
		if err != nil {
			return err
		}
		if class == 0 {
			frame.HuffDC[id] = table
		} else {
			frame.HuffAC[id] = table
		}
	}
	return nil
}

func parseDQT(frame *FrameState, data []byte) error {
	pos := 0
	for pos < len(data) {
		precision := data[pos] >> 4
		id := data[pos] & 0x0F
		pos++
		if id >= 4 {
			return newErr(Malformed, "invalid quantization table index")
		}
		var values [64]uint16
		if precision == 0 {
			if pos+64 > len(data) {
				return newErr(Malformed, "DQT segment too short")
			}
			for i := 0; i < 64; i++ {
				values[i] = uint16(data[pos+i])
			}
			pos += 64
		} else {
			if pos+128 > len(data) {
				return newErr(Malformed, "DQT segment too short")
			}
			for i := 0; i < 64; i++ {
				values[i] = uint16(data[pos+i*2])<<8 | uint16(data[pos+i*2+1])
			}
			pos += 128
		}
		table, err := quantTableFromDQT(values)
		if err != nil {
			return err
		}
		frame.QuantTables[id] = table
	}
	return nil
}

func parseSOS(frame *FrameState, data []byte) error {
	if len(data) < 1 {
		return newErr(Malformed, "SOS segment too short")
	}
	n := int(data[0])
	if n == 0 || n > len(frame.Components) {
		return newErr(Malformed, "invalid scan component count")
	}
	pos := 1
	order := make([]int, n)
	for i := 0; i < n; i++ {
		if pos+2 > len(data) {
			return newErr(Malformed, "SOS segment too short for component list")
		}
		idx, ok := frame.componentByID(data[pos])
		if !ok {
			return newErr(Inconsistent, "SOS references unknown component id %d", data[pos])
		}
		order[i] = idx
		frame.Components[idx].HuffDC = data[pos+1] >> 4
		frame.Components[idx].HuffAC = data[pos+1] & 0x0F
		pos += 2
	}
	if pos+3 > len(data) {
		return newErr(Malformed, "SOS segment too short for spectral selection")
	}
	// Baseline requires Ss=0, Se=63, Ah=0, Al=0; reject anything else
	// outright rather than let a progressive scan slip into the decoder.
	if data[pos] != 0 || data[pos+1] != 63 {
		return newErr(Unsupported, "progressive spectral selection not supported")
	}
	if data[pos+2] != 0 {
		return newErr(Unsupported, "successive approximation not supported")
	}

	for _, idx := range order {
		c := &frame.Components[idx]
		if frame.QuantTables[c.QuantTableID] == nil {
			return newErr(Inconsistent, "scan references undefined quantization table")
		}
		if frame.HuffDC[c.HuffDC] == nil || frame.HuffAC[c.HuffAC] == nil {
			return newErr(Inconsistent, "scan references undefined Huffman table")
		}
	}

	frame.ScanComponents = order
	frame.sosSeen = true
	return nil
}

// parseJFIF reads the APP0 JFIF density hint, if present (§4.2).
// Malformed or unrecognized APP0 payloads are silently ignored, matching
// how the rest of the parser treats application-specific segments.
func parseJFIF(frame *FrameState, data []byte) {
	if len(data) < 14 {
		return
	}
	if string(data[0:5]) != "JFIF\x00" {
		return
	}
	frame.JFIF = &JFIFInfo{
		Present:      true,
		VersionMajor: data[5],
		VersionMinor: data[6],
		DensityUnits: data[7],
		XDensity:     uint16(data[8])<<8 | uint16(data[9]),
		YDensity:     uint16(data[10])<<8 | uint16(data[11]),
	}
}
