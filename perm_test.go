package minsketch

import "testing"

func TestSplitmix64KnownValues(t *testing.T) {
	// The finalizer fixes zero: every round xors and multiplies a
	// zero value back to zero.
	if got := splitmix64(0); got != 0 {
		t.Errorf("splitmix64(0) = %#x, expected 0", got)
	}
	if splitmix64(1) == splitmix64(2) {
		t.Error("expected distinct outputs for distinct inputs")
	}
	if splitmix64(42) != splitmix64(42) {
		t.Error("expected splitmix64 to be deterministic")
	}
}

func TestPermuterRestartableFromSeed(t *testing.T) {
	const n = 256
	seed := uint64(0xdeadbeefcafe)

	first := make([]uint64, n)
	p := newPermuter[uint64](seed)
	for i := range first {
		first[i] = p.next()
	}

	q := newPermuter[uint64](seed)
	for i := range first {
		if v := q.next(); v != first[i] {
			t.Fatalf("replayed stream diverged at position %d: %#x vs %#x", i, v, first[i])
		}
	}
}

func TestPermuterSeedsDiverge(t *testing.T) {
	p := newPermuter[uint64](1)
	q := newPermuter[uint64](2)

	var diff int
	for range 64 {
		if p.next() != q.next() {
			diff++
		}
	}
	if diff == 0 {
		t.Error("expected streams from different seeds to diverge")
	}
}

func TestPermuterNoRepeatsWithinPrefix(t *testing.T) {
	// The advance transform is a bijection, so a 64-bit stream cannot
	// revisit a value within any prefix far shorter than its cycle.
	seen := make(map[uint64]int, 4096)
	p := newPermuter[uint64](0x0123456789abcdef)
	for i := range 4096 {
		v := p.next()
		if prev, ok := seen[v]; ok {
			t.Fatalf("value %#x repeated at positions %d and %d", v, prev, i)
		}
		seen[v] = i
	}
}

func TestPermuterNarrowWidths(t *testing.T) {
	// Narrow streams must stay within the word's domain and replay
	// identically, same as the 64-bit stream.
	p := newPermuter[uint8](12345)
	q := newPermuter[uint8](12345)
	for range 64 {
		if p.next() != q.next() {
			t.Fatal("uint8 stream not deterministic")
		}
	}
}
