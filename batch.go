package minsketch

// Batch holds n independent sketches carved out of a single backing
// allocation, for workloads that maintain many sketches (one per
// bucket, shard, or time window) without n separate slot arrays.
//
// Entries share no state: operations on one entry never observably
// affect another. Batch itself is not thread-safe; confine each entry
// (or the whole batch) to one goroutine, or use AtomicSketch instances
// instead.
type Batch[W Word] struct {
	backing  []W
	sketches []Sketch[W]
}

// NewBatch creates a batch of n sketches, each with the given number of
// permutation slots. Negative counts are treated as zero.
func NewBatch[W Word](n, permutations int) *Batch[W] {
	if n < 0 {
		n = 0
	}
	if permutations < 0 {
		permutations = 0
	}

	backing := make([]W, n*permutations)
	for i := range backing {
		backing[i] = maxWord[W]()
	}

	sketches := make([]Sketch[W], n)
	for i := range sketches {
		sketches[i] = Sketch[W]{slots: backing[i*permutations : (i+1)*permutations : (i+1)*permutations]}
	}

	return &Batch[W]{backing: backing, sketches: sketches}
}

// At returns the sketch at index i. The pointer stays valid for the
// life of the batch.
func (b *Batch[W]) At(i int) *Sketch[W] {
	return &b.sketches[i]
}

// Len returns the number of sketches in the batch.
func (b *Batch[W]) Len() int {
	return len(b.sketches)
}

// Permutations returns the permutation count of each entry.
func (b *Batch[W]) Permutations() int {
	if len(b.sketches) == 0 {
		return 0
	}
	return b.sketches[0].Permutations()
}

// Memory returns the total slot footprint of all entries in bits.
func (b *Batch[W]) Memory() uint64 {
	return uint64(len(b.backing)) * uint64(wordBits[W]())
}

// Clear resets every entry to its freshly-constructed state.
func (b *Batch[W]) Clear() {
	for i := range b.backing {
		b.backing[i] = maxWord[W]()
	}
}
