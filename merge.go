package minsketch

import (
	"errors"
	"fmt"
)

// ErrPermutationMismatch is returned when two sketches with different
// permutation counts are merged or compared.
var ErrPermutationMismatch = errors.New("minsketch: permutation counts differ")

// Merge folds other into s elementwise: slot[i] = min(slot[i],
// other.slot[i]). The result is the MinHash sketch of the union of the
// two underlying sets. Merge is associative, commutative, and
// idempotent, and merging a fresh sketch is a no-op.
//
// Both operands must have the same permutation count and must have been
// built with the same word type, hash family, and keys for the result
// to be meaningful.
func (s *Sketch[W]) Merge(other *Sketch[W]) error {
	if len(s.slots) != len(other.slots) {
		return fmt.Errorf("%w: %d vs %d", ErrPermutationMismatch, len(s.slots), len(other.slots))
	}

	for i, v := range other.slots {
		if v < s.slots[i] {
			s.slots[i] = v
		}
	}
	return nil
}

// MergeAll returns a new sketch that is the merge of all given
// sketches: the sketch of the union of every underlying set. With no
// arguments it returns a fresh sketch of the given permutation count.
func MergeAll[W Word](permutations int, sketches ...*Sketch[W]) (*Sketch[W], error) {
	out := New[W](permutations)
	for _, s := range sketches {
		if err := out.Merge(s); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// EstimateJaccard returns the fraction of slot indices on which the two
// sketches agree: the classical unbiased MinHash estimator of the
// Jaccard similarity of their underlying sets. The standard error
// decreases as O(1/sqrt(permutations)); see EstimateStdError.
//
// Zero-slot sketches estimate 1, since no disagreeing slot exists.
func (s *Sketch[W]) EstimateJaccard(other *Sketch[W]) (float64, error) {
	if len(s.slots) != len(other.slots) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrPermutationMismatch, len(s.slots), len(other.slots))
	}
	if len(s.slots) == 0 {
		return 1, nil
	}

	var matches int
	for i, v := range s.slots {
		if v == other.slots[i] {
			matches++
		}
	}
	return float64(matches) / float64(len(s.slots)), nil
}
