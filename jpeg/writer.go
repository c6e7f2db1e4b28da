package jpeg

// Marker segment emission helpers: each segment is a big-endian length
// (including the length field itself, §6) followed by its payload.

func appendMarker(buf []byte, marker byte) []byte {
	return append(buf, 0xFF, marker)
}

func appendLength(buf []byte, length int) []byte {
	return append(buf, byte(length>>8), byte(length))
}

func writeSOI(buf []byte) []byte {
	return appendMarker(buf, markerSOI)
}

func writeEOI(buf []byte) []byte {
	return appendMarker(buf, markerEOI)
}

// writeJFIF emits the APP0 JFIF identifier segment (§6: version 1.01,
// units=0, X-density=Y-density=1, no thumbnail).
func writeJFIF(buf []byte) []byte {
	buf = appendMarker(buf, markerAPP0)
	buf = appendLength(buf, 16)
	buf = append(buf, 'J', 'F', 'I', 'F', 0x00)
	buf = append(buf, 1, 1) // version 1.01
	buf = append(buf, 0)    // units: 0 = aspect ratio only
	buf = append(buf, 0, 1) // Xdensity = 1
	buf = append(buf, 0, 1) // Ydensity = 1
	buf = append(buf, 0, 0) // no thumbnail
	return buf
}

func writeDQT(buf []byte, id uint8, q *QuantTable) []byte {
	buf = appendMarker(buf, markerDQT)
	buf = appendLength(buf, 2+1+64)
	buf = append(buf, id) // precision nibble 0 (8-bit) | id
	for _, v := range q.entries {
		buf = append(buf, uint8(v))
	}
	return buf
}

func writeSOF0(buf []byte, frame *FrameState) []byte {
	buf = appendMarker(buf, markerSOF0)
	buf = appendLength(buf, 8+3*len(frame.Components))
	buf = append(buf, frame.Precision)
	buf = append(buf, byte(frame.Height>>8), byte(frame.Height))
	buf = append(buf, byte(frame.Width>>8), byte(frame.Width))
	buf = append(buf, byte(len(frame.Components)))
	for _, c := range frame.Components {
		buf = append(buf, c.ID, c.H<<4|c.V, c.QuantTableID)
	}
	return buf
}

func writeDHTSegment(buf []byte, class, id uint8, h *HuffmanTable) []byte {
	counts, symbols := h.codeLengths()
	buf = appendMarker(buf, markerDHT)
	buf = appendLength(buf, 2+1+16+len(symbols))
	buf = append(buf, class<<4|id)
	buf = append(buf, counts[:]...)
	buf = append(buf, symbols...)
	return buf
}

func writeDRI(buf []byte, interval int) []byte {
	buf = appendMarker(buf, markerDRI)
	buf = appendLength(buf, 4)
	buf = append(buf, byte(interval>>8), byte(interval))
	return buf
}

func writeSOS(buf []byte, frame *FrameState) []byte {
	buf = appendMarker(buf, markerSOS)
	buf = appendLength(buf, 6+2*len(frame.Components))
	buf = append(buf, byte(len(frame.Components)))
	for _, c := range frame.Components {
		buf = append(buf, c.ID, c.HuffDC<<4|c.HuffAC)
	}
	buf = append(buf, 0, 63, 0) // Ss=0, Se=63, Ah=Al=0
	return buf
}
