package jpeg

import "testing"

func TestIDCTFlatDCBlock(t *testing.T) {
	var coeffs block
	coeffs[0] = 0 // DC-only block at zero should reconstruct to mid-gray
	samples := idct8x8(&coeffs)
	for i, v := range samples {
		if v != 128 {
			t.Fatalf("sample %d: got %d, want 128 for an all-zero block", i, v)
		}
	}
}

func TestFDCTIDCTRoundTrip(t *testing.T) {
	var samples [64]uint8
	for i := range samples {
		samples[i] = uint8(64 + i*2%128)
	}

	coeffs := fdct8x8(&samples)
	recon := idct8x8(&coeffs)

	for i := range samples {
		diff := int(samples[i]) - int(recon[i])
		if diff < 0 {
			diff = -diff
		}
		if diff > 2 {
			t.Fatalf("sample %d: round trip error %d too large (original %d, got %d)", i, diff, samples[i], recon[i])
		}
	}
}

func TestIDCTClampsToByteRange(t *testing.T) {
	var coeffs block
	coeffs[0] = 4096 // large DC should clamp, not wrap
	samples := idct8x8(&coeffs)
	for _, v := range samples {
		if v != 255 {
			t.Fatalf("expected clamp to 255, got %d", v)
		}
	}
}
