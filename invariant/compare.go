// File: compare.go
// Role: the total order on SimplexInvariant, the per-vertex rank it
// induces on one simplex, and the admissible-permutation / automorphism-
// count operations built on top of that rank.

package invariant

import (
	"golang.org/x/exp/constraints"

	"github.com/kevinjzhang/triangulations/triangulation"
)

// compareSlices is strict lexicographic <=> on equal-length slices of
// any ordered element type: -1 if a<b, 0 if equal, 1 if a>b.
func compareSlices[T constraints.Ordered](a, b []T) int {
	for i := range a {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Compare implements the total order: vertexDegreesSorted first,
// edgeCombLabel as tiebreak. Returns -1, 0, or 1.
func Compare(a, b SimplexInvariant) int {
	if c := compareSlices(a.VertexDegreesSorted, b.VertexDegreesSorted); c != 0 {
		return c
	}
	return compareSlices(a.EdgeCombLabel, b.EdgeCombLabel)
}

// Equal reports whether a and b carry identical vertexDegreesSorted and
// edgeCombLabel tuples.
func Equal(a, b SimplexInvariant) bool {
	return Compare(a, b) == 0
}

// vertexLess is the vertex-rank comparator between local
// vertices i and j of the same simplex: (vertexDegrees, incidentEdgeDegrees)
// lexicographically.
func (inv SimplexInvariant) vertexLess(i, j int) bool {
	if inv.VertexDegrees[i] != inv.VertexDegrees[j] {
		return inv.VertexDegrees[i] < inv.VertexDegrees[j]
	}
	return compareSlices(inv.IncidentEdgeDegrees[i], inv.IncidentEdgeDegrees[j]) < 0
}

// vertexEqualRank reports whether i and j occupy the same rank class.
func (inv SimplexInvariant) vertexEqualRank(i, j int) bool {
	if inv.VertexDegrees[i] != inv.VertexDegrees[j] {
		return false
	}
	return compareSlices(inv.IncidentEdgeDegrees[i], inv.IncidentEdgeDegrees[j]) == 0
}

// AdmissiblePermutations enumerates, in natural permutation-index order,
// every permutation index idx (0 <= idx < (D+1)!) such that the images
// p(0), p(1), ..., p(D) are non-decreasing under vertexRank. p(i) is read
// as "the local vertex placed at canonical position i".
func (inv SimplexInvariant) AdmissiblePermutations() []int {
	n := len(inv.VertexDegrees)
	total := triangulation.NumPerms(n)
	out := make([]int, 0, total)
	for idx := 0; idx < total; idx++ {
		p := triangulation.PermAtIndex(n, idx)
		ok := true
		for i := 0; i+1 < n; i++ {
			a, b := p.Apply(i), p.Apply(i+1)
			if inv.vertexLess(b, a) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, idx)
		}
	}
	return out
}

// AutomorphismCount returns the product of factorials of the sizes of
// the maximal equal-rank runs in vertex-rank order: the number of
// admissible permutations, computed directly rather than by counting
// AdmissiblePermutations' output (O((D+1)^2) instead of O((D+1)!)).
func (inv SimplexInvariant) AutomorphismCount() int {
	n := len(inv.VertexDegrees)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	// Insertion sort: n <= 5, and a stable order matters for run detection.
	for i := 1; i < n; i++ {
		for j := i; j > 0 && inv.vertexLess(order[j], order[j-1]); j-- {
			order[j], order[j-1] = order[j-1], order[j]
		}
	}
	total := 1
	runLen := 1
	for i := 1; i < n; i++ {
		if inv.vertexEqualRank(order[i], order[i-1]) {
			runLen++
			continue
		}
		total *= factorial(runLen)
		runLen = 1
	}
	total *= factorial(runLen)
	return total
}

func factorial(n int) int {
	f := 1
	for i := 2; i <= n; i++ {
		f *= i
	}
	return f
}
