// File: canonicalize.go
// Role: the canonicaliser driver — partition simplices into
// equal-invariant runs, pick the cheapest run to search exhaustively,
// and minimise EncodeFrom's output over every (simplex, admissible
// permutation) pair in that run.

package isosig

import (
	"fmt"

	"github.com/kevinjzhang/triangulations/invariant"
	"github.com/kevinjzhang/triangulations/triangulation"
)

type run struct {
	members []int // simplex indices, contiguous in sorted-invariant order
}

// Canonicalize computes the canonical isomorphism signature of t: the
// lexicographically minimal EncodeFrom output over the cheapest
// equal-invariant run of candidate starts.
func Canonicalize(t *triangulation.Triangulation) (string, error) {
	sig, _, err := CanonicalizeWithOptions(t)
	return sig, err
}

// CanonicalizeWithOptions is Canonicalize plus functional options; the
// returned Isomorphism is nil unless WithIsomorphism was given.
func CanonicalizeWithOptions(t *triangulation.Triangulation, opts ...Option) (string, *Isomorphism, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	n := t.Size()
	if n == 0 {
		return "", nil, fmt.Errorf("Canonicalize: %w", ErrEmptyTriangulation)
	}
	if cfg.maxSimplices > 0 && n > cfg.maxSimplices {
		return "", nil, fmt.Errorf("Canonicalize: %w", ErrSizeOverflow)
	}
	if !t.Connected() {
		return "", nil, fmt.Errorf("Canonicalize: %w", ErrDisconnected)
	}

	invs, err := invariant.ComputeAll(t)
	if err != nil {
		return "", nil, fmt.Errorf("Canonicalize: %w", err)
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	// Stable sort by invariant.Compare.
	for i := 1; i < n; i++ {
		for j := i; j > 0 && invariant.Compare(invs[order[j]], invs[order[j-1]]) < 0; j-- {
			order[j], order[j-1] = order[j-1], order[j]
		}
	}

	var runs []run
	start := 0
	for i := 1; i <= n; i++ {
		if i < n && invariant.Equal(invs[order[i]], invs[order[start]]) {
			continue
		}
		members := append([]int(nil), order[start:i]...)
		runs = append(runs, run{members: members})
		start = i
	}

	bestRunIdx := 0
	bestCost := -1
	for ri, r := range runs {
		cost := len(r.members) * invs[r.members[0]].AutomorphismCount()
		if bestCost < 0 || cost < bestCost {
			bestCost = cost
			bestRunIdx = ri
		}
	}

	dim := int(t.Dim())
	best := ""
	var bestIso *Isomorphism
	for _, s := range runs[bestRunIdx].members {
		for _, permIdx := range invs[s].AdmissiblePermutations() {
			pi := triangulation.PermAtIndex(dim+1, permIdx)
			sig, iso, err := EncodeFrom(t, s, pi, cfg.wantIso)
			if err != nil {
				return "", nil, fmt.Errorf("Canonicalize: %w", err)
			}
			if best == "" || sig < best {
				best = sig
				bestIso = iso
			}
		}
	}
	return best, bestIso, nil
}
