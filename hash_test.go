package minsketch

import "testing"

func allFamilies() map[string]Family {
	return map[string]Family{
		"SipHash13":      SipHash13{},
		"KeyedSipHash13": KeyedSipHash13{K0: 0x0123456789abcdef, K1: 0xfedcba9876543210},
		"FNV1":           FNV1{},
		"KeyedFNV1":      KeyedFNV1{Key: 0x0123456789abcdef},
		"XXH3":           XXH3{},
		"SeededXXH3":     SeededXXH3{Seed64: 0x0123456789abcdef},
	}
}

func TestFamilyBytesStringAgreement(t *testing.T) {
	for name, fam := range allFamilies() {
		t.Run(name, func(t *testing.T) {
			for _, s := range []string{"", "a", "hello world", "user:12345"} {
				if fam.Seed([]byte(s)) != fam.SeedString(s) {
					t.Errorf("Seed and SeedString disagree for %q", s)
				}
			}
		})
	}
}

func TestFamilyDeterministic(t *testing.T) {
	for name, fam := range allFamilies() {
		t.Run(name, func(t *testing.T) {
			if fam.Seed([]byte("hello")) != fam.Seed([]byte("hello")) {
				t.Error("expected identical digests for identical input")
			}
		})
	}
}

func TestZeroKeyedSipMatchesUnkeyed(t *testing.T) {
	// The unkeyed variant is defined as the zero key pair.
	keyed := KeyedSipHash13{}
	unkeyed := SipHash13{}
	for _, s := range []string{"", "a", "minhash"} {
		if keyed.SeedString(s) != unkeyed.SeedString(s) {
			t.Errorf("zero-keyed and unkeyed SipHash13 disagree for %q", s)
		}
	}
}

func TestFNV1EmptyInputIsBasis(t *testing.T) {
	// FNV-1 of the empty input is the offset basis by definition.
	if got := (FNV1{}).Seed(nil); got != fnvOffset64 {
		t.Errorf("FNV1 of empty input = %#x, expected offset basis %#x", got, uint64(fnvOffset64))
	}
	key := uint64(0xabcdef)
	if got := (KeyedFNV1{Key: key}).Seed(nil); got != key {
		t.Errorf("KeyedFNV1 of empty input = %#x, expected key %#x", got, key)
	}
}

func TestFNV1KnownVector(t *testing.T) {
	// FNV-1 folds multiply-then-xor per byte; check one byte by hand.
	basis := uint64(fnvOffset64)
	want := (basis * fnvPrime64) ^ uint64('a')
	if got := (FNV1{}).SeedString("a"); got != want {
		t.Errorf("FNV1(\"a\") = %#x, expected %#x", got, want)
	}
}

func TestKeyedFamiliesSeparateUniverses(t *testing.T) {
	in := []byte("shared input")
	if (KeyedFNV1{Key: 1}).Seed(in) == (KeyedFNV1{Key: 2}).Seed(in) {
		t.Error("expected different FNV1 keys to produce different digests")
	}
	a := KeyedSipHash13{K0: 1, K1: 1}
	b := KeyedSipHash13{K0: 2, K1: 2}
	if a.Seed(in) == b.Seed(in) {
		t.Error("expected different SipHash13 keys to produce different digests")
	}
	if (SeededXXH3{Seed64: 1}).Seed(in) == (SeededXXH3{Seed64: 2}).Seed(in) {
		t.Error("expected different XXH3 seeds to produce different digests")
	}
}
