package jpeg

import "testing"

func TestQualityScaleMonotonic(t *testing.T) {
	prev := qualityScale(1)
	for q := 2; q <= 100; q++ {
		cur := qualityScale(q)
		if cur > prev {
			t.Fatalf("qualityScale should be non-increasing in quality: q=%d gave %d after %d", q, cur, prev)
		}
		prev = cur
	}
}

func TestQualityScaleAt50IsUnscaled(t *testing.T) {
	if got := qualityScale(50); got != 100 {
		t.Fatalf("quality 50 should leave the base table unscaled (scale=100), got %d", got)
	}
	table := standardLuminanceTable(50)
	if table.entries != baseLuminance {
		t.Fatalf("quality 50 luminance table should equal the Annex K.1 base table")
	}
}

func TestScaledTableClamped(t *testing.T) {
	table := standardLuminanceTable(1)
	for i, v := range table.entries {
		if v < 1 || v > 255 {
			t.Fatalf("entry %d out of range: %d", i, v)
		}
	}
	table = standardLuminanceTable(100)
	for i, v := range table.entries {
		if v < 1 || v > 255 {
			t.Fatalf("entry %d out of range: %d", i, v)
		}
	}
}

func TestQuantizeDequantizeRoundTrip(t *testing.T) {
	q := standardLuminanceTable(90)
	var original block
	for i := range original {
		original[i] = int32(i)*7 - 200
	}

	work := original
	quantize(&work, q)
	dequantize(&work, q)

	for i := range original {
		diff := original[i] - work[i]
		if diff < 0 {
			diff = -diff
		}
		if diff > int32(q.entries[i]) {
			t.Fatalf("index %d: round-trip error %d exceeds quantization step %d", i, diff, q.entries[i])
		}
	}
}

func TestQuantTableFromDQTRejectsZero(t *testing.T) {
	var values [64]uint16
	for i := range values {
		values[i] = 1
	}
	if _, err := quantTableFromDQT(values); err != nil {
		t.Fatalf("all-ones table should be valid: %v", err)
	}
	values[10] = 0
	if _, err := quantTableFromDQT(values); err == nil {
		t.Fatalf("expected error for zero quantization entry")
	}
}
