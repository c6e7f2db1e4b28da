package jpeg

// scanPosition walks the block order of one scan, interleaved or not, in
// the sequence the entropy coder must decode/encode them in (§3). Carries
// no progressive-scan Eobrun/PrevEobrun bookkeeping, since this module's
// baseline-only scope never exercises it.
type scanPosition struct {
	frame      *FrameState
	components []int // indices into frame.Components, in scan order

	interleaved bool

	mcu uint32 // current MCU index (interleaved scans)
	csc int     // index into components for the current sub-block
	sub uint32  // block offset within the current component's MCU share

	// blockCol, blockRow track the current block for a non-interleaved scan.
	blockCol, blockRow int

	// unitsSinceRestart counts restart units (one MCU for an interleaved
	// scan, one block for a non-interleaved scan) completed since the scan
	// started or the last RST marker was consumed.
	unitsSinceRestart uint32
}

// newScanPosition builds a position walker for a scan over components
// (indices into frame.Components, in SOS order).
func newScanPosition(frame *FrameState, components []int) *scanPosition {
	return &scanPosition{
		frame:       frame,
		components:  components,
		interleaved: len(components) > 1,
	}
}

// resetRestart zeroes the restart countdown. Callers must invoke this after
// consuming (decode) or emitting (encode) a restart marker; advance itself
// never resets the countdown so the caller always gets to observe the
// boundary first.
func (s *scanPosition) resetRestart() {
	s.unitsSinceRestart = 0
}

// current returns the component index and block (column, row) in that
// component's plane for the block about to be coded.
func (s *scanPosition) current() (compIdx int, col int, row int) {
	if !s.interleaved {
		compIdx = s.components[0]
		return compIdx, s.blockCol, s.blockRow
	}

	compIdx = s.components[s.csc]
	c := &s.frame.Components[compIdx]
	// sub enumerates this component's H*V grid in row-major order within
	// the current MCU.
	within := int(s.sub)
	subCol := within % int(c.H)
	subRow := within / int(c.H)
	mcuCol := int(s.mcu) % s.frame.MCUsPerRow
	mcuRow := int(s.mcu) / s.frame.MCUsPerRow
	col = mcuCol*int(c.H) + subCol
	row = mcuRow*int(c.V) + subRow
	return compIdx, col, row
}

// atRestartBoundary reports whether a restart marker is expected before the
// next block: the interval counts whole MCUs for an interleaved scan (not
// individual component blocks), and whole blocks for a non-interleaved one.
func (s *scanPosition) atRestartBoundary() bool {
	return s.frame.RestartInterval > 0 && s.unitsSinceRestart == uint32(s.frame.RestartInterval)
}

// advance moves to the next block, returning false once the scan is
// complete. It does not reset the restart countdown itself: the caller must
// check atRestartBoundary after advance, consume/emit the marker, and only
// then call resetRestart.
func (s *scanPosition) advance() bool {
	if !s.interleaved {
		compIdx := s.components[0]
		c := &s.frame.Components[compIdx]
		s.blockCol++
		if s.blockCol >= c.actualBlocksPerLine {
			s.blockCol = 0
			s.blockRow++
		}
		s.unitsSinceRestart++
		return s.blockRow < c.actualBlocksPerColumn
	}

	compIdx := s.components[s.csc]
	c := &s.frame.Components[compIdx]
	s.sub++
	if int(s.sub) >= c.blocksPerMCU {
		s.sub = 0
		s.csc++
		if s.csc >= len(s.components) {
			s.csc = 0
			s.mcu++
			s.unitsSinceRestart++
		}
	}
	return int(s.mcu) < s.frame.MCUsPerRow*s.frame.MCUsPerCol
}

// done reports whether the scan has already produced every block it covers.
func (s *scanPosition) done() bool {
	if !s.interleaved {
		c := &s.frame.Components[s.components[0]]
		return s.blockRow >= c.actualBlocksPerColumn
	}
	return int(s.mcu) >= s.frame.MCUsPerRow*s.frame.MCUsPerCol
}
