package minsketch

import "math/bits"

// Word is the set of unsigned integer types usable as sketch slots.
// Narrower words trade estimation accuracy for a smaller memory
// footprint; see the package documentation for guidance.
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// wordBits returns the bit width of W.
func wordBits[W Word]() int {
	return bits.Len64(uint64(^W(0)))
}

// maxWord returns the maximum value of W, used as the "untouched slot"
// sentinel: a fresh sketch has every slot at maxWord.
func maxWord[W Word]() W {
	return ^W(0)
}

// advance applies a width-specific xorshift step to w and returns the
// result. Each step is a bijection on the word's domain (every xorshift
// round is an invertible linear transform), so for a fixed starting
// value the emitted sequence is deterministic and does not repeat
// within one full cycle.
//
// The shift triples per width:
//
//	64-bit (and uint): 13, 7, 17
//	32-bit:            13, 17, 5
//	16-bit:            the 32-bit transform, truncated
//	8-bit:             3, 7, 1
func advance[W Word](w W) W {
	switch wordBits[W]() {
	case 8:
		w ^= w << 3
		w ^= w >> 7
		w ^= w << 1
		return w
	case 16:
		v := uint32(w)
		v ^= v << 13
		v ^= v >> 17
		v ^= v << 5
		return W(uint16(v))
	case 32:
		v := uint32(w)
		v ^= v << 13
		v ^= v >> 17
		v ^= v << 5
		return W(v)
	default:
		v := uint64(w)
		v ^= v << 13
		v ^= v >> 7
		v ^= v << 17
		return W(v)
	}
}
