package minsketch

// splitmix64 is the SplitMix64 finalizer (public domain; Steele et al.).
// It diffuses a 64-bit seed so that structured inputs (sequential
// integers, short keys) still produce well-spread permutation walks.
func splitmix64(z uint64) uint64 {
	const (
		splitmix64Mul1 = 0xbf58476d1ce4e5b9
		splitmix64Mul2 = 0x94d049bb133111eb
	)
	z = (z ^ (z >> 30)) * splitmix64Mul1
	z = (z ^ (z >> 27)) * splitmix64Mul2
	return z ^ (z >> 31)
}

// permuter walks the pseudorandom permutation stream for one seed.
// The stream is deterministic: restarting from the same seed replays
// the same sequence, which is what makes membership tests reproducible
// without retaining the inserted elements.
type permuter[W Word] struct {
	cur W
}

// newPermuter derives the stream's starting point from a 64-bit hash
// digest: two splitmix64 rounds, then truncation to the word width.
func newPermuter[W Word](seed uint64) permuter[W] {
	return permuter[W]{cur: W(splitmix64(splitmix64(seed)))}
}

// next emits the permutation value for the next slot index.
func (p *permuter[W]) next() W {
	p.cur = advance(p.cur)
	return p.cur
}
