package minsketch

// Sketch is a non-thread-safe MinHash sketch: a fixed array of
// permutation slots, each tracking the minimum value produced by one
// independent pseudorandom permutation over all inserted elements.
//
// Two sketches built with the same word type, permutation count, and
// hash family can be merged and compared to estimate the Jaccard
// similarity of their underlying sets.
type Sketch[W Word] struct {
	slots []W
}

// New creates a sketch with the given number of permutation slots, all
// initialized to the word's maximum sentinel ("no element has touched
// this slot yet"). More permutations cost more memory and insertion
// time but tighten the similarity estimate; see OptimalPermutations.
//
// A negative count is treated as zero. A zero-slot sketch is legal: it
// is vacuously empty and full, admits every element, and estimates a
// similarity of 1 against any other zero-slot sketch.
func New[W Word](permutations int) *Sketch[W] {
	if permutations < 0 {
		permutations = 0
	}

	slots := make([]W, permutations)
	for i := range slots {
		slots[i] = maxWord[W]()
	}
	return &Sketch[W]{slots: slots}
}

// FromElements builds a sketch by inserting every element of elems,
// equivalent to folding Insert over the slice starting from New.
func FromElements[W Word](permutations int, fam Family, elems ...[]byte) *Sketch[W] {
	s := New[W](permutations)
	for _, e := range elems {
		s.Insert(fam, e)
	}
	return s
}

// FromStrings builds a sketch by inserting every string of elems.
func FromStrings[W Word](permutations int, fam Family, elems ...string) *Sketch[W] {
	s := New[W](permutations)
	for _, e := range elems {
		s.InsertString(fam, e)
	}
	return s
}

// Insert adds data to the sketch under the given hash family: for each
// slot i, slot[i] becomes min(slot[i], permutation[i]). Slots only ever
// decrease, so insertion is idempotent and order-independent.
func (s *Sketch[W]) Insert(fam Family, data []byte) {
	s.insertSeed(fam.Seed(data))
}

// InsertString adds a string to the sketch without allocating.
func (s *Sketch[W]) InsertString(fam Family, str string) {
	s.insertSeed(fam.SeedString(str))
}

func (s *Sketch[W]) insertSeed(seed uint64) {
	p := newPermuter[W](seed)
	for i := range s.slots {
		if v := p.next(); v < s.slots[i] {
			s.slots[i] = v
		}
	}
}

// MayContain reports whether data might have been inserted under the
// given hash family: true iff every slot is <= the corresponding
// permutation value for data.
//
// The test is one-sided. It never returns false for an element that was
// inserted with the same family and keys (absent merges with unrelated
// sketches), but it may return true for elements never inserted. The
// false positive probability shrinks as the permutation count grows and
// as fewer elements share the sketch.
func (s *Sketch[W]) MayContain(fam Family, data []byte) bool {
	return s.mayContainSeed(fam.Seed(data))
}

// MayContainString is MayContain for strings, without allocating.
func (s *Sketch[W]) MayContainString(fam Family, str string) bool {
	return s.mayContainSeed(fam.SeedString(str))
}

func (s *Sketch[W]) mayContainSeed(seed uint64) bool {
	p := newPermuter[W](seed)
	for i := range s.slots {
		if s.slots[i] > p.next() {
			return false
		}
	}
	return true
}

// IsEmpty reports whether no insertion has ever occurred: every slot
// still holds the maximum sentinel.
func (s *Sketch[W]) IsEmpty() bool {
	for _, v := range s.slots {
		if v != maxWord[W]() {
			return false
		}
	}
	return true
}

// IsFull reports whether every slot has been driven to zero, the
// degenerate saturation state. Reachable in practice only with narrow
// words under heavy insertion; included for completeness.
func (s *Sketch[W]) IsFull() bool {
	for _, v := range s.slots {
		if v != 0 {
			return false
		}
	}
	return true
}

// Clear resets every slot to the maximum sentinel, returning the sketch
// to its freshly-constructed state.
func (s *Sketch[W]) Clear() {
	for i := range s.slots {
		s.slots[i] = maxWord[W]()
	}
}

// Permutations returns the number of permutation slots.
func (s *Sketch[W]) Permutations() int {
	return len(s.slots)
}

// Memory returns the sketch's slot footprint in bits:
// permutations * bit_width(W).
func (s *Sketch[W]) Memory() uint64 {
	return uint64(len(s.slots)) * uint64(wordBits[W]())
}

// Slot returns the value at slot index i. Intended for inspection and
// debugging; slot values are not part of the estimation contract.
func (s *Sketch[W]) Slot(i int) W {
	return s.slots[i]
}

// Slots returns a copy of the slot array.
func (s *Sketch[W]) Slots() []W {
	out := make([]W, len(s.slots))
	copy(out, s.slots)
	return out
}

// Clone returns an independent copy of the sketch.
func (s *Sketch[W]) Clone() *Sketch[W] {
	return &Sketch[W]{slots: s.Slots()}
}

// Equal reports whether both sketches have identical slot arrays.
func (s *Sketch[W]) Equal(other *Sketch[W]) bool {
	if len(s.slots) != len(other.slots) {
		return false
	}
	for i, v := range s.slots {
		if v != other.slots[i] {
			return false
		}
	}
	return true
}
