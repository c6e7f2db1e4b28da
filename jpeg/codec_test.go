package jpeg

import "testing"

func solidImage(width, height int, r, g, b uint8) *Image {
	img := newImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.setRGBA(x, y, r, g, b, 255)
		}
	}
	return img
}

func TestEncodeDecodeRoundTripSolidColorHighQuality(t *testing.T) {
	original := solidImage(16, 16, 200, 80, 30)
	data, err := Encode(original, EncodeOptions{Quality: 100, ColorSpace: ColorSpaceYCbCr, ChromaSubsampling: Subsampling444})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if decoded.Width != original.Width || decoded.Height != original.Height {
		t.Fatalf("dimension mismatch: got %dx%d, want %dx%d", decoded.Width, decoded.Height, original.Width, original.Height)
	}
	for i := range original.Pix {
		diff := int(original.Pix[i]) - int(decoded.Pix[i])
		if diff < 0 {
			diff = -diff
		}
		if diff > 6 {
			t.Fatalf("pixel byte %d: original %d, decoded %d (diff %d)", i, original.Pix[i], decoded.Pix[i], diff)
		}
	}
}

func TestEncodeDecodeNonMultipleOf8Dimensions(t *testing.T) {
	original := solidImage(10, 6, 128, 128, 128)
	data, err := Encode(original, EncodeOptions{Quality: 90, ColorSpace: ColorSpaceYCbCr, ChromaSubsampling: Subsampling420})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if decoded.Width != 10 || decoded.Height != 6 {
		t.Fatalf("got %dx%d, want 10x6", decoded.Width, decoded.Height)
	}
}

func TestEncodeGrayscaleSingleComponent(t *testing.T) {
	original := solidImage(8, 8, 100, 100, 100)
	data, err := Encode(original, EncodeOptions{Quality: 95, ColorSpace: ColorSpaceGrayscale, ChromaSubsampling: Subsampling444})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	info, err := Probe(data)
	if err != nil {
		t.Fatalf("Probe: %v", err)
	}
	if info.Components != 1 {
		t.Fatalf("expected 1 component, got %d", info.Components)
	}
	decoded, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	r, g, b, a := decoded.at(0, 0)
	if r != g || g != b {
		t.Fatalf("grayscale decode should have R=G=B, got %d,%d,%d", r, g, b)
	}
	if a != 255 {
		t.Fatalf("alpha must always be 255, got %d", a)
	}
}

func TestEncodeQualityMonotonicSize(t *testing.T) {
	img := solidImage(64, 64, 30, 180, 220)
	low, err := Encode(img, EncodeOptions{Quality: 10, ColorSpace: ColorSpaceYCbCr, ChromaSubsampling: Subsampling420})
	if err != nil {
		t.Fatalf("Encode low: %v", err)
	}
	high, err := Encode(img, EncodeOptions{Quality: 95, ColorSpace: ColorSpaceYCbCr, ChromaSubsampling: Subsampling420})
	if err != nil {
		t.Fatalf("Encode high: %v", err)
	}
	if len(high) < len(low) {
		t.Fatalf("higher quality should not produce a smaller stream: low=%d high=%d", len(low), len(high))
	}
}

func TestEncodeMarkerWellFormedness(t *testing.T) {
	img := solidImage(8, 8, 10, 20, 30)
	data, err := Encode(img, EncodeOptions{Quality: 80, ColorSpace: ColorSpaceYCbCr, ChromaSubsampling: Subsampling444})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if data[0] != 0xFF || data[1] != markerSOI {
		t.Fatalf("stream must begin with SOI")
	}
	if data[len(data)-2] != 0xFF || data[len(data)-1] != markerEOI {
		t.Fatalf("stream must end with EOI")
	}
}

func TestDecodeRejectsEmptyStream(t *testing.T) {
	if _, err := Decode([]byte{0xFF, 0xD8, 0xFF, 0xD9}); err == nil {
		t.Fatalf("expected error for a stream with no SOF/SOS")
	}
}

func TestDecodeRejectsMissingSOI(t *testing.T) {
	if _, err := Decode([]byte{0x00, 0x00, 0x00, 0x00}); err == nil {
		t.Fatalf("expected error for missing SOI")
	}
}

func TestEncodeRejectsInvalidOptions(t *testing.T) {
	img := solidImage(4, 4, 1, 2, 3)
	if _, err := Encode(img, EncodeOptions{Quality: 0, ColorSpace: ColorSpaceYCbCr}); err == nil {
		t.Fatalf("expected error for quality 0")
	}
	if _, err := Encode(img, EncodeOptions{Quality: 50, ColorSpace: ColorSpaceGrayscale, ChromaSubsampling: Subsampling420}); err == nil {
		t.Fatalf("expected error for subsampling combined with grayscale")
	}
}

func TestEncodeDecodeWithRestartIntervals(t *testing.T) {
	img := solidImage(32, 32, 50, 60, 70)
	data, err := Encode(img, EncodeOptions{
		Quality:           85,
		ColorSpace:        ColorSpaceYCbCr,
		ChromaSubsampling: Subsampling420,
		RestartInterval:   2,
	})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if decoded.Width != 32 || decoded.Height != 32 {
		t.Fatalf("got %dx%d, want 32x32", decoded.Width, decoded.Height)
	}
}
