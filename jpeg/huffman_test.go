package jpeg

import "testing"

func TestBuildHuffmanTableRejectsCountMismatch(t *testing.T) {
	counts := [16]uint8{1, 1}
	symbols := []uint8{0}
	if _, err := buildHuffmanTable(counts, symbols); err == nil {
		t.Fatalf("expected error for symbol count mismatch")
	}
}

func TestBuildHuffmanTableRejectsKraftViolation(t *testing.T) {
	var counts [16]uint8
	counts[0] = 3 // three codes of length 1 cannot exist (max is 2)
	symbols := []uint8{0, 1, 2}
	if _, err := buildHuffmanTable(counts, symbols); err == nil {
		t.Fatalf("expected Kraft inequality violation")
	}
}

func TestHuffmanCanonicityRoundTrip(t *testing.T) {
	table := standardHuffmanTable(stdLuminanceDCCounts, stdLuminanceDCSymbols)
	counts, symbols := table.codeLengths()
	rebuilt, err := buildHuffmanTable(counts, symbols)
	if err != nil {
		t.Fatalf("rebuilding from codeLengths failed: %v", err)
	}
	if rebuilt.numCodes != table.numCodes {
		t.Fatalf("numCodes mismatch after round trip")
	}
	if rebuilt.symbols != table.symbols {
		t.Fatalf("symbols mismatch after round trip")
	}
}

func TestHuffmanEncodeDecodeRoundTrip(t *testing.T) {
	decodeTable := standardHuffmanTable(stdLuminanceACCounts, stdLuminanceACSymbols)
	encodeTable := buildEncodeTable(decodeTable)

	bw := newBitWriter(64)
	symbols := []uint8{0x01, 0xF0, 0x23, 0x00}
	for _, s := range symbols {
		bw.writeBits(uint32(encodeTable.codes[s]), uint(encodeTable.lengths[s]))
	}
	bw.pad()
	data := bw.bytes()

	br := newBitReader(data, 0)
	for _, want := range symbols {
		got, err := decodeTable.decodeSymbol(br)
		if err != nil {
			t.Fatalf("decodeSymbol: %v", err)
		}
		if got != want {
			t.Fatalf("decoded %#x, want %#x", got, want)
		}
	}
}
