package minsketch

import "sync/atomic"

// AtomicSketch is a thread-safe MinHash sketch. Any number of
// goroutines may call Insert and MayContain concurrently on the same
// instance with no external locking: every slot is an independently
// addressable atomic word, and because minimum is commutative,
// associative, and idempotent, any interleaving of concurrent inserts
// converges to the same final state as some sequential ordering of the
// same insertions.
//
// Slots are stored as 64-bit atomics regardless of the word width W (Go
// provides no narrower atomic integers); logical slot values always
// stay within W's domain. Use Memory to see the physical footprint, and
// Snapshot to lower into a plain Sketch for merging and estimation.
//
// All operations use sequentially consistent atomics, which is stronger
// than the relaxed ordering the min-reduction itself requires.
type AtomicSketch[W Word] struct {
	slots []atomic.Uint64
}

// NewAtomic creates a thread-safe sketch with the given number of
// permutation slots, all initialized to the word's maximum sentinel.
// A negative count is treated as zero.
func NewAtomic[W Word](permutations int) *AtomicSketch[W] {
	if permutations < 0 {
		permutations = 0
	}

	s := &AtomicSketch[W]{slots: make([]atomic.Uint64, permutations)}
	sentinel := uint64(maxWord[W]())
	for i := range s.slots {
		s.slots[i].Store(sentinel)
	}
	return s
}

// Insert adds data to the sketch under the given hash family. Safe to
// call concurrently with any other operation on the sketch.
func (s *AtomicSketch[W]) Insert(fam Family, data []byte) {
	s.insertSeed(fam.Seed(data))
}

// InsertString adds a string to the sketch without allocating. Safe to
// call concurrently with any other operation on the sketch.
func (s *AtomicSketch[W]) InsertString(fam Family, str string) {
	s.insertSeed(fam.SeedString(str))
}

func (s *AtomicSketch[W]) insertSeed(seed uint64) {
	p := newPermuter[W](seed)
	for i := range s.slots {
		fetchMin(&s.slots[i], uint64(p.next()))
	}
}

// fetchMin atomically lowers slot to min(slot, v). Go has no hardware
// fetch-min, so this loops load + compare-and-swap; the loop terminates
// because slot values only ever decrease.
func fetchMin(slot *atomic.Uint64, v uint64) {
	for {
		cur := slot.Load()
		if cur <= v {
			return
		}
		if slot.CompareAndSwap(cur, v) {
			return
		}
	}
}

// MayContain reports whether data might have been inserted under the
// given hash family. Safe to call concurrently with Insert; a test that
// races an insert of the same element may observe either outcome, but
// once an insert has completed the element is never reported absent.
func (s *AtomicSketch[W]) MayContain(fam Family, data []byte) bool {
	return s.mayContainSeed(fam.Seed(data))
}

// MayContainString is MayContain for strings, without allocating.
func (s *AtomicSketch[W]) MayContainString(fam Family, str string) bool {
	return s.mayContainSeed(fam.SeedString(str))
}

func (s *AtomicSketch[W]) mayContainSeed(seed uint64) bool {
	p := newPermuter[W](seed)
	for i := range s.slots {
		if s.slots[i].Load() > uint64(p.next()) {
			return false
		}
	}
	return true
}

// IsEmpty reports whether no insertion has ever occurred.
func (s *AtomicSketch[W]) IsEmpty() bool {
	sentinel := uint64(maxWord[W]())
	for i := range s.slots {
		if s.slots[i].Load() != sentinel {
			return false
		}
	}
	return true
}

// IsFull reports whether every slot has been driven to zero.
func (s *AtomicSketch[W]) IsFull() bool {
	for i := range s.slots {
		if s.slots[i].Load() != 0 {
			return false
		}
	}
	return true
}

// Permutations returns the number of permutation slots.
func (s *AtomicSketch[W]) Permutations() int {
	return len(s.slots)
}

// Memory returns the physical slot footprint in bits. Every slot
// occupies 64 bits regardless of the word width.
func (s *AtomicSketch[W]) Memory() uint64 {
	return uint64(len(s.slots)) * 64
}

// Snapshot copies the current slot values into a plain Sketch, which
// can then be merged and compared. Snapshotting concurrently with
// inserts yields a sketch that reflects some subset of the in-flight
// insertions; each slot individually is a value the sketch held.
func (s *AtomicSketch[W]) Snapshot() *Sketch[W] {
	out := New[W](len(s.slots))
	for i := range s.slots {
		out.slots[i] = W(s.slots[i].Load())
	}
	return out
}
