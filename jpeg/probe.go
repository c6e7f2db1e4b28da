package jpeg

// Info is the header-only summary returned by Probe.
type Info struct {
	Width           int
	Height          int
	Components      int
	ChromaSubsampled bool
	JFIF            *JFIFInfo
}

// Probe parses just enough of data to report its dimensions and component
// layout, without decoding any entropy-coded scan data. Supplements spec
// §6's Decode/Encode pair with a cheap introspection path for callers that
// only need image metadata (e.g. a thumbnail grid), reusing parseHeader
// exactly as Decode does.
func Probe(data []byte) (*Info, error) {
	frame, _, err := parseHeader(data)
	if err != nil {
		return nil, err
	}
	subsampled := false
	for _, c := range frame.Components {
		if c.H != frame.MaxH || c.V != frame.MaxV {
			subsampled = true
		}
	}
	return &Info{
		Width:            frame.Width,
		Height:           frame.Height,
		Components:       len(frame.Components),
		ChromaSubsampled: subsampled,
		JFIF:             frame.JFIF,
	}, nil
}
