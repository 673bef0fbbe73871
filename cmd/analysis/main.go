// Command analysis measures MinHash estimation quality and cost across
// word widths and permutation counts, and writes the results as CSV for
// offline comparison (e.g. against cardinality-based estimators).
//
// Two element sets with a controlled overlap are generated per trial,
// sketched at every width/permutation combination, and the estimated
// Jaccard index is recorded next to the exact one along with the sketch
// footprint and build+estimate time.
//
// Usage:
//
//	analysis -elements 10000 -overlap 0.5 -trials 10 -out results.csv
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"github.com/jcalabro/minsketch"
)

var permutationCounts = []int{16, 64, 128, 512, 1024, 4096}

func main() {
	log.SetFlags(0)
	log.SetPrefix("analysis: ")

	var (
		elements = flag.Int("elements", 10000, "elements per set")
		overlap  = flag.Float64("overlap", 0.5, "fraction of elements shared between the two sets")
		trials   = flag.Int("trials", 10, "number of independent trials")
		out      = flag.String("out", "", "output CSV path (default stdout)")
	)
	flag.Parse()

	if *elements <= 0 {
		log.Fatal("-elements must be positive")
	}
	if *overlap < 0 || *overlap > 1 {
		log.Fatal("-overlap must be in [0,1]")
	}

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			log.Fatalf("create %s: %v", *out, err)
		}
		defer f.Close()
		w = f
	}

	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"trial", "elements", "permutations", "word", "memory_bits", "estimate", "ground_truth", "micros"}
	if err := cw.Write(header); err != nil {
		log.Fatalf("write header: %v", err)
	}

	for trial := range *trials {
		first, second, truth := buildSets(*elements, *overlap, uint64(trial))
		log.Printf("trial %d: %d elements, ground truth %.4f", trial, *elements, truth)

		for _, p := range permutationCounts {
			runTrial[uint8](cw, "uint8", trial, p, first, second, truth)
			runTrial[uint16](cw, "uint16", trial, p, first, second, truth)
			runTrial[uint32](cw, "uint32", trial, p, first, second, truth)
			runTrial[uint64](cw, "uint64", trial, p, first, second, truth)
		}
		cw.Flush()
	}

	if err := cw.Error(); err != nil {
		log.Fatalf("write csv: %v", err)
	}
}

// buildSets returns two sets of distinct random 64-bit elements sharing
// floor(n*overlap) members, plus their exact Jaccard index.
func buildSets(n int, overlap float64, trial uint64) (first, second [][]byte, truth float64) {
	rng := rand.New(rand.NewPCG(0x6d696e736b65, trial))

	shared := int(float64(n) * overlap)
	distinct := 2*n - shared

	seen := make(map[uint64]struct{}, distinct)
	ids := make([]uint64, 0, distinct)
	for len(ids) < distinct {
		id := rng.Uint64()
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	encode := func(id uint64) []byte {
		return fmt.Appendf(nil, "%016x", id)
	}

	// first = shared ids + its own tail, second = shared ids + the rest.
	for _, id := range ids[:shared] {
		first = append(first, encode(id))
		second = append(second, encode(id))
	}
	for _, id := range ids[shared:n] {
		first = append(first, encode(id))
	}
	for _, id := range ids[n:] {
		second = append(second, encode(id))
	}

	truth = float64(shared) / float64(distinct)
	return first, second, truth
}

// runTrial sketches both sets at the given width and permutation count
// and writes one CSV row.
func runTrial[W minsketch.Word](cw *csv.Writer, word string, trial, permutations int, first, second [][]byte, truth float64) {
	fam := minsketch.SipHash13{}

	start := time.Now()
	a := minsketch.FromElements[W](permutations, fam, first...)
	b := minsketch.FromElements[W](permutations, fam, second...)
	estimate, err := a.EstimateJaccard(b)
	elapsed := time.Since(start)
	if err != nil {
		log.Fatalf("estimate: %v", err)
	}

	row := []string{
		fmt.Sprint(trial),
		fmt.Sprint(len(first)),
		fmt.Sprint(permutations),
		word,
		fmt.Sprint(a.Memory()),
		fmt.Sprintf("%.6f", estimate),
		fmt.Sprintf("%.6f", truth),
		fmt.Sprint(elapsed.Microseconds()),
	}
	if err := cw.Write(row); err != nil {
		log.Fatalf("write row: %v", err)
	}
}
