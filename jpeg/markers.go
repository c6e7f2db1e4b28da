package jpeg

// JPEG marker codes (second byte following 0xFF). See §4.1, §6.
const (
	markerSOI  = 0xD8 // Start Of Image
	markerEOI  = 0xD9 // End Of Image
	markerSOS  = 0xDA // Start Of Scan
	markerDQT  = 0xDB // Define Quantization Table
	markerDHT  = 0xC4 // Define Huffman Table
	markerDRI  = 0xDD // Define Restart Interval
	markerAPP0 = 0xE0 // Application Segment 0 (JFIF)
	markerCOM  = 0xFE // Comment
	markerSOF0 = 0xC0 // Baseline DCT
	markerRST0 = 0xD0 // Restart marker 0
	markerRST7 = 0xD7 // Restart marker 7
)

// isSOF reports whether marker is any Start-Of-Frame variant. Only SOF0 is
// supported; the others are recognized so the parser can report
// Unsupported rather than Malformed.
func isSOF(marker byte) bool {
	return marker >= 0xC0 && marker <= 0xCF && marker != 0xC4 && marker != 0xC8 && marker != 0xCC
}

// isAPPn reports whether marker is an APP0..APP15 application segment.
func isAPPn(marker byte) bool {
	return marker >= 0xE0 && marker <= 0xEF
}

// isRST reports whether marker is a restart marker RST0..RST7.
func isRST(marker byte) bool {
	return marker >= markerRST0 && marker <= markerRST7
}

// nextMarker scans buf starting at offset for the next 0xFF marker pair,
// per §4.1: stuffed bytes (0xFF 0x00) and fill-byte runs (0xFF 0xFF...)
// are skipped; only the final 0xFF of a run pairs with the following
// non-zero, non-0xFF byte. It returns the marker byte and the offset of its
// leading 0xFF, or ok=false if no marker remains before the end of buf.
func nextMarker(buf []byte, offset int) (marker byte, at int, ok bool) {
	i := offset
	for i < len(buf) {
		if buf[i] != 0xFF {
			i++
			continue
		}
		// Found a run of 0xFF; find the byte that terminates it.
		for i < len(buf) && buf[i] == 0xFF {
			i++
		}
		if i >= len(buf) {
			return 0, 0, false
		}
		b := buf[i]
		if b == 0x00 {
			// Stuffed byte inside entropy-coded data; not a marker here.
			i++
			continue
		}
		return b, i - 1, true
	}
	return 0, 0, false
}

// segmentLength reads the big-endian 16-bit length field (including the two
// length bytes themselves) at buf[pos:pos+2].
func segmentLength(buf []byte, pos int) (int, bool) {
	if pos+2 > len(buf) {
		return 0, false
	}
	return int(buf[pos])<<8 | int(buf[pos+1]), true
}
