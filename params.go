package minsketch

import "math"

// EstimateStdError returns the standard error of the Jaccard estimator
// for the given permutation count: 1/sqrt(p). A zero-slot sketch has no
// estimator, so its error is reported as 1.
func EstimateStdError(permutations int) float64 {
	if permutations <= 0 {
		return 1
	}
	return 1 / math.Sqrt(float64(permutations))
}

// OptimalPermutations returns the smallest permutation count whose
// estimator standard error is at most targetStdErr: ceil(1/e^2).
// Non-positive or >= 1 targets fall back to the conventional default of
// 128 permutations (standard error ~0.088).
func OptimalPermutations(targetStdErr float64) int {
	if targetStdErr <= 0 || targetStdErr >= 1 {
		return 128
	}
	return int(math.Ceil(1 / (targetStdErr * targetStdErr)))
}

// MemoryBits returns the slot footprint in bits of a W-word sketch with
// the given permutation count, without constructing one.
func MemoryBits[W Word](permutations int) uint64 {
	if permutations < 0 {
		permutations = 0
	}
	return uint64(permutations) * uint64(wordBits[W]())
}
