package minsketch

import (
	sip13 "github.com/dgryski/go-sip13"
	"github.com/zeebo/xxh3"
)

// FNV-1 constants, taken from hash/fnv.
const (
	fnvOffset64 = 14695981039346656037
	fnvPrime64  = 1099511628211
)

// A Family maps an input element to the 64-bit seed that drives its
// permutation stream. All families are interchangeable: the sketch
// logic downstream of the seed is identical. A sketch must be queried
// with the same family (and keys) it was built with.
//
// Family values are stateless and safe for concurrent use.
type Family interface {
	// Seed returns the 64-bit digest of data.
	Seed(data []byte) uint64

	// SeedString returns the 64-bit digest of s without allocating.
	SeedString(s string) uint64
}

// SipHash13 hashes with SipHash-1-3 under the fixed all-zero key pair.
// This is the default family: slower than XXH3 but with stronger
// diffusion on short adversarially-chosen keys.
type SipHash13 struct{}

func (SipHash13) Seed(data []byte) uint64 {
	return sip13.Sum64(0, 0, data)
}

func (SipHash13) SeedString(s string) uint64 {
	return sip13.Sum64Str(0, 0, s)
}

// KeyedSipHash13 hashes with SipHash-1-3 under a caller-supplied
// 128-bit key (two 64-bit halves). Distinct keys give independent
// sketch universes, enabling cross-run or cross-tenant separation so
// that hash collisions cannot be replayed across keys.
type KeyedSipHash13 struct {
	K0, K1 uint64
}

func (k KeyedSipHash13) Seed(data []byte) uint64 {
	return sip13.Sum64(k.K0, k.K1, data)
}

func (k KeyedSipHash13) SeedString(s string) uint64 {
	return sip13.Sum64Str(k.K0, k.K1, s)
}

// FNV1 hashes with FNV-1 from the standard offset basis. It is the
// cheapest family and fine for trusted, well-distributed inputs.
type FNV1 struct{}

func (FNV1) Seed(data []byte) uint64 {
	return fnv1(fnvOffset64, data)
}

func (FNV1) SeedString(s string) uint64 {
	return fnv1String(fnvOffset64, s)
}

// KeyedFNV1 hashes with FNV-1 starting from a caller-supplied offset
// basis instead of the standard one. Any 64-bit value is a legal key.
type KeyedFNV1 struct {
	Key uint64
}

func (k KeyedFNV1) Seed(data []byte) uint64 {
	return fnv1(k.Key, data)
}

func (k KeyedFNV1) SeedString(s string) uint64 {
	return fnv1String(k.Key, s)
}

// XXH3 hashes with unseeded XXH3. The fastest family on large inputs.
type XXH3 struct{}

func (XXH3) Seed(data []byte) uint64 {
	return xxh3.Hash(data)
}

func (XXH3) SeedString(s string) uint64 {
	return xxh3.HashString(s)
}

// SeededXXH3 hashes with XXH3 under a caller-supplied 64-bit seed.
type SeededXXH3 struct {
	Seed64 uint64
}

func (x SeededXXH3) Seed(data []byte) uint64 {
	return xxh3.HashSeed(data, x.Seed64)
}

func (x SeededXXH3) SeedString(s string) uint64 {
	return xxh3.HashStringSeed(s, x.Seed64)
}

// fnv1 computes FNV-1 (multiply, then xor) over data from the given
// basis.
func fnv1(basis uint64, data []byte) uint64 {
	h := basis
	for _, b := range data {
		h *= fnvPrime64
		h ^= uint64(b)
	}
	return h
}

// fnv1String is fnv1 for strings, avoiding a []byte conversion.
func fnv1String(basis uint64, s string) uint64 {
	h := basis
	for i := 0; i < len(s); i++ {
		h *= fnvPrime64
		h ^= uint64(s[i])
	}
	return h
}
