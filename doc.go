// Package minsketch provides fixed-memory MinHash sketches for
// approximate set-similarity estimation in Go.
//
// A MinHash sketch summarizes a set in a fixed array of P slots, each
// tracking the minimum value produced by one independent pseudorandom
// permutation of the hash space over all inserted elements. Two
// sketches built under the same configuration can be compared in O(P)
// to estimate the Jaccard similarity of their underlying sets, and
// merged in O(P) to obtain the sketch of their union — all without
// retaining a single original element. Insertion is O(P) with no
// allocation after construction.
//
// # Architecture
//
// Every inserted element is first reduced to a 64-bit seed by a
// pluggable hash family, then the seed is expanded into P permutation
// values by a deterministic stream: two rounds of the SplitMix64
// finalizer, truncation to the configured word width, and a bijective
// xorshift walk emitting one value per slot. Because the stream is a
// pure function of the seed, membership tests replay it exactly, and no
// process-wide random state exists anywhere in the package.
//
// The word width is a type parameter. Wider words (uint64) minimize
// accidental slot collisions and give the cleanest estimates; narrower
// words (uint8, uint16) quarter or halve the footprint at the cost of
// saturating sooner on large sets.
//
// # Implementations
//
// [Sketch] is the fastest option for single-owner workloads. It has no
// synchronization overhead; the caller enforces exclusive access during
// mutation.
//
// [AtomicSketch] provides lock-free thread safety. Multiple goroutines
// can insert and test concurrently; each slot is an independent atomic
// word lowered with a compare-and-swap fetch-min, and since minimum is
// commutative and idempotent, concurrent insertion converges to exactly
// the state sequential insertion would produce.
//
// [Batch] aggregates N independent sketches in one allocation for
// workloads that keep a sketch per bucket.
//
// # Hash families
//
// Six interchangeable [Family] front ends are provided: [SipHash13] and
// [KeyedSipHash13] (SipHash-1-3, with optional 128-bit key separation
// against adversarial collisions), [FNV1] and [KeyedFNV1] (cheapest, for
// trusted inputs), and [XXH3] and [SeededXXH3] (fastest on large
// inputs). A sketch must always be queried with the family and keys it
// was built with; none of the families is cryptographically secure.
//
// # Choosing parameters
//
// The Jaccard estimator's standard error is 1/sqrt(P). Use
// [OptimalPermutations] to size a sketch for a target error:
//
//	// standard error <= 0.05 -> 400 permutations
//	s := minsketch.New[uint64](minsketch.OptimalPermutations(0.05))
//
// Memory is P * width bits ([Sketch.Memory], [MemoryBits]): 128
// permutations of uint64 cost 1 KiB per sketch.
//
// # Accuracy
//
// Membership tests are one-sided: an inserted element is never reported
// absent (under the same hash configuration and absent merges with
// unrelated sketches), but false positives occur with a probability
// that shrinks as P grows. The similarity estimate is unbiased; P = 128
// gives a standard error of about 0.09, P = 1024 about 0.03.
//
// # Thread safety
//
// [Sketch] and [Batch] are NOT thread-safe. [AtomicSketch] is safe for
// fully concurrent use; lower it with [AtomicSketch.Snapshot] before
// merging or estimating, and do not mix atomic and plain variants over
// the same data.
//
// # References
//
//   - Broder, "On the resemblance and containment of documents"
//     https://doi.org/10.1109/SEQUEN.1997.666900
//   - SplitMix64: https://prng.di.unimi.it/splitmix64.c
//   - Marsaglia, "Xorshift RNGs": https://doi.org/10.18637/jss.v008.i14
package minsketch
