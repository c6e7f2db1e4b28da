package jpeg

// MaxComponents is the largest number of color components a baseline frame
// may declare (§3: 1-4 entries).
const MaxComponents = 4

// Component holds one SOF component descriptor plus the geometry derived
// from it once the frame's sampling factors are known.
type Component struct {
	// ID is the component identifier byte from SOF0.
	ID uint8

	// H, V are the horizontal/vertical sampling factors, each 1..4.
	H, V uint8

	// QuantTableID selects FrameState.QuantTables[QuantTableID].
	QuantTableID uint8

	// HuffDC, HuffAC select the Huffman tables used by this component's
	// scan, set while parsing SOS.
	HuffDC, HuffAC uint8

	// blocksPerMCU is H*V: how many 8x8 blocks of this component appear in
	// one MCU.
	blocksPerMCU int

	// blocksPerLine/blocksPerColumn are the padded (MCU-aligned) block grid
	// dimensions for this component's plane.
	blocksPerLine, blocksPerColumn int

	// actualBlocksPerLine/actualBlocksPerColumn are the block grid
	// dimensions needed to cover the image without MCU padding, used for
	// non-interleaved (single-component) scans.
	actualBlocksPerLine, actualBlocksPerColumn int
}

// JFIFInfo records the APP0 JFIF density hints (§4.2); not interpreted
// beyond identifying the stream and carrying the values through.
type JFIFInfo struct {
	Present           bool
	VersionMajor      uint8
	VersionMinor      uint8
	DensityUnits      uint8
	XDensity, YDensity uint16
}

// FrameState is the decoder's/encoder's single source of truth for one
// frame: populated by the header parser, consumed by the entropy decoder
// and pixel reconstruction (§3).
type FrameState struct {
	Precision uint8
	Width     int
	Height    int

	Components []Component

	// MaxH, MaxV are the maxima of Components[i].H / .V.
	MaxH, MaxV uint8

	// MCUWidth, MCUHeight are 8*MaxH, 8*MaxV pixels.
	MCUWidth, MCUHeight int

	// MCUsPerRow, MCUsPerCol are ceil(Width/MCUWidth), ceil(Height/MCUHeight).
	MCUsPerRow, MCUsPerCol int

	QuantTables [4]*QuantTable
	HuffDC      [4]*HuffmanTable
	HuffAC      [4]*HuffmanTable

	// RestartInterval is the DRI-declared MCU count between RST markers,
	// 0 if none.
	RestartInterval int

	// ScanComponents lists, in SOS order, indices into Components.
	ScanComponents []int

	JFIF *JFIFInfo

	sofSeen bool
	sosSeen bool
}

// componentByID finds a component by its SOF-declared identifier.
func (f *FrameState) componentByID(id uint8) (int, bool) {
	for i := range f.Components {
		if f.Components[i].ID == id {
			return i, true
		}
	}
	return 0, false
}

// finalizeSOF computes MCU and per-component block geometry once all SOF
// component descriptors have been read, for both interleaved and
// non-interleaved scans.
func (f *FrameState) finalizeSOF() error {
	f.MaxH, f.MaxV = 0, 0
	for i := range f.Components {
		c := &f.Components[i]
		if c.H == 0 || c.H > 4 || c.V == 0 || c.V > 4 {
			return newErr(Malformed, "component %d: sampling factor out of range", c.ID)
		}
		if uint32(c.H)*uint32(c.V) > 10 {
			return newErr(Malformed, "component %d: H*V exceeds baseline limit", c.ID)
		}
		if c.H > f.MaxH {
			f.MaxH = c.H
		}
		if c.V > f.MaxV {
			f.MaxV = c.V
		}
	}

	var sampleSum uint32
	for i := range f.Components {
		sampleSum += uint32(f.Components[i].H) * uint32(f.Components[i].V)
	}
	if sampleSum > 10 {
		return newErr(Malformed, "sum of H*V across components exceeds baseline limit")
	}

	f.MCUWidth = 8 * int(f.MaxH)
	f.MCUHeight = 8 * int(f.MaxV)
	f.MCUsPerRow = ceilDiv(f.Width, f.MCUWidth)
	f.MCUsPerCol = ceilDiv(f.Height, f.MCUHeight)

	for i := range f.Components {
		c := &f.Components[i]
		c.blocksPerMCU = int(c.H) * int(c.V)
		c.blocksPerLine = f.MCUsPerRow * int(c.H)
		c.blocksPerColumn = f.MCUsPerCol * int(c.V)
		c.actualBlocksPerLine = ceilDiv(f.Width*int(c.H), int(f.MaxH)*8)
		c.actualBlocksPerColumn = ceilDiv(f.Height*int(c.V), int(f.MaxV)*8)
	}
	return nil
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
