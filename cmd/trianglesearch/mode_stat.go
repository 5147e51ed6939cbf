//go:build mode_stat

// File: mode_stat.go
// Role: statistics build — for each input signature, compute how many
// (start, permutation) candidates the canonicaliser's cheapest run
// would actually try, and emit a histogram of that count.

package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/kevinjzhang/triangulations/invariant"
	"github.com/kevinjzhang/triangulations/isosig"
	"github.com/kevinjzhang/triangulations/triangulation"
)

func runMode(dim triangulation.Dimension, number int, in io.Reader, out io.Writer) error {
	hist := make(map[int]int)
	for x := 0; x < number; x++ {
		var name string
		if _, err := fmt.Fscan(in, &name); err != nil {
			return fmt.Errorf("reading signature %d: %w", x, err)
		}
		t, err := isosig.FromSignature(dim, name)
		if err != nil {
			return err
		}
		combs, err := candidateCount(t)
		if err != nil {
			return err
		}
		hist[combs]++
	}

	keys := make([]int, 0, len(hist))
	for k := range hist {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	for _, k := range keys {
		fmt.Fprintf(out, "%d %d\n", k, hist[k])
	}
	return nil
}

// candidateCount mirrors the canonicaliser's run selection: sort the
// simplex invariants, partition into equal runs, and return the
// smallest run's total candidate count.
func candidateCount(t *triangulation.Triangulation) (int, error) {
	invs, err := invariant.ComputeAll(t)
	if err != nil {
		return 0, err
	}
	sort.Slice(invs, func(i, j int) bool { return invariant.Compare(invs[i], invs[j]) < 0 })

	best := -1
	start := 0
	for i := 1; i <= len(invs); i++ {
		if i < len(invs) && invariant.Equal(invs[i], invs[start]) {
			continue
		}
		count := 0
		for j := start; j < i; j++ {
			count += invs[j].AutomorphismCount()
		}
		if best < 0 || count < best {
			best = count
		}
		start = i
	}
	return best, nil
}
