package jpeg

import "testing"

func TestZigzagInvolution(t *testing.T) {
	var src block
	for i := range src {
		src[i] = int32(i) * 3
	}
	nat := dezigzag(&src)
	back := zigzag(&nat)
	if back != src {
		t.Fatalf("zigzag(dezigzag(x)) != x: got %v, want %v", back, src)
	}
}

func TestZigzagOrderIsPermutation(t *testing.T) {
	var seen [64]bool
	for _, v := range zigzagOrder {
		if seen[v] {
			t.Fatalf("zigzagOrder is not a permutation: %d repeats", v)
		}
		seen[v] = true
	}
}

func TestZigzagDCStaysAtZero(t *testing.T) {
	var src block
	src[0] = 42
	nat := dezigzag(&src)
	if nat[0] != 42 {
		t.Fatalf("DC coefficient must stay at natural index 0, got %d", nat[0])
	}
}
