// File: decode.go
// Role: FromSignature, the inverse of EncodeFrom — reconstructs a
// triangulation whose canonical encoding (starting at simplex 0 with
// the identity vertex permutation) reproduces the input string.
//
// The component size and dimension fix a structural identity for any
// connected encoding walk: writing B for the number of boundary-facet
// emissions and J for the number of join emissions, every non-boundary
// emission (new-simplex or join) accounts for two facet visits (itself
// and the partner side it resolves without its own trit), while exactly
// one "new" emission occurs per additional component simplex. That
// gives facetPos (the trit count) = dim*nCompSimp + 1 - J, independent
// of the signature's actual content. Combined with the signature's
// total length (header + trits + joinDest + joinGluing, each of known
// per-entry width), this pins down J uniquely, which is what lets the
// three string regions (packed in sequence, not interleaved) be sliced
// apart before replaying the facet-by-facet reconstruction.
package isosig

import (
	"fmt"

	"github.com/kevinjzhang/triangulations/triangulation"
)

// FromSignature reconstructs a triangulation of dimension dim from a
// signature string produced by EncodeFrom/Canonicalize.
func FromSignature(dim triangulation.Dimension, sig string) (*triangulation.Triangulation, error) {
	if !dim.Valid() {
		return nil, fmt.Errorf("FromSignature: %w", triangulation.ErrBadDimension)
	}
	if len(sig) == 0 {
		return nil, fmt.Errorf("FromSignature: %w", ErrMalformedSignature)
	}

	d := int(dim)
	first := sval(sig[0])
	if first < 0 {
		return nil, fmt.Errorf("FromSignature: %w", ErrMalformedSignature)
	}

	var nCompSimp, nChars, headerLen int
	if first == sentinelIndex {
		if len(sig) < 2 {
			return nil, fmt.Errorf("FromSignature: %w", ErrMalformedSignature)
		}
		nChars = sval(sig[1])
		if nChars <= 0 {
			return nil, fmt.Errorf("FromSignature: %w", ErrMalformedSignature)
		}
		val, _, err := readInt(sig, 2, nChars)
		if err != nil {
			return nil, fmt.Errorf("FromSignature: %w", err)
		}
		nCompSimp = val
		headerLen = 2 + nChars
	} else {
		nCompSimp = first
		nChars = 1
		headerLen = 1
	}

	t, err := triangulation.New(dim)
	if err != nil {
		return nil, fmt.Errorf("FromSignature: %w", err)
	}
	if nCompSimp == 0 {
		return t, nil
	}

	permChars := charsPerPerm(triangulation.NumPerms(d + 1))
	remaining := len(sig) - headerLen
	if remaining < 0 {
		return nil, fmt.Errorf("FromSignature: %w", ErrMalformedSignature)
	}

	joinPos, facetPos, ok := solveFieldWidths(d, nCompSimp, nChars, permChars, remaining)
	if !ok {
		return nil, fmt.Errorf("FromSignature: %w", ErrMalformedSignature)
	}

	cursor := headerLen
	facetActions := make([]int, 0, facetPos)
	for len(facetActions) < facetPos {
		count := facetPos - len(facetActions)
		if count > 3 {
			count = 3
		}
		trits, next, err := readTrits(sig, cursor, count)
		if err != nil {
			return nil, fmt.Errorf("FromSignature: %w", err)
		}
		facetActions = append(facetActions, trits...)
		cursor = next
	}

	joinDest := make([]int, joinPos)
	for i := range joinDest {
		v, next, err := readInt(sig, cursor, nChars)
		if err != nil {
			return nil, fmt.Errorf("FromSignature: %w", err)
		}
		joinDest[i] = v
		cursor = next
	}

	joinGluing := make([]int, joinPos)
	for i := range joinGluing {
		v, next, err := readInt(sig, cursor, permChars)
		if err != nil {
			return nil, fmt.Errorf("FromSignature: %w", err)
		}
		joinGluing[i] = v
		cursor = next
	}

	for i := 0; i < nCompSimp; i++ {
		t.AddSimplex()
	}

	decided := make([][]bool, nCompSimp)
	for i := range decided {
		decided[i] = make([]bool, d+1)
	}

	actionCursor, joinCursor, nextUnused := 0, 0, 1
	for simp := 0; simp < nCompSimp; simp++ {
		for facet := 0; facet <= d; facet++ {
			if decided[simp][facet] {
				continue
			}
			if actionCursor >= len(facetActions) {
				return nil, fmt.Errorf("FromSignature: %w", ErrMalformedSignature)
			}
			action := facetActions[actionCursor]
			actionCursor++
			decided[simp][facet] = true

			switch action {
			case actionBoundary:
				// Nothing to do: AddSimplex already leaves facets boundary.
			case actionNew:
				if nextUnused >= nCompSimp {
					return nil, fmt.Errorf("FromSignature: %w", ErrMalformedSignature)
				}
				newIdx := nextUnused
				nextUnused++
				if err := t.Glue(simp, facet, newIdx, facet, triangulation.Identity(d+1)); err != nil {
					return nil, fmt.Errorf("FromSignature: %w", err)
				}
				decided[newIdx][facet] = true
			case actionJoin:
				if joinCursor >= joinPos {
					return nil, fmt.Errorf("FromSignature: %w", ErrMalformedSignature)
				}
				dest := joinDest[joinCursor]
				permIdx := joinGluing[joinCursor]
				joinCursor++
				if dest < 0 || dest >= nCompSimp {
					return nil, fmt.Errorf("FromSignature: %w", ErrMalformedSignature)
				}
				perm := triangulation.PermAtIndex(d+1, permIdx)
				destFacet := perm.Apply(facet)
				if destFacet < 0 || destFacet > d {
					return nil, fmt.Errorf("FromSignature: %w", ErrMalformedSignature)
				}
				if err := t.Glue(simp, facet, dest, destFacet, perm); err != nil {
					return nil, fmt.Errorf("FromSignature: %w", err)
				}
				decided[dest][destFacet] = true
			default:
				return nil, fmt.Errorf("FromSignature: %w", ErrMalformedSignature)
			}
		}
	}

	if nextUnused != nCompSimp || joinCursor != joinPos {
		return nil, fmt.Errorf("FromSignature: %w", ErrMalformedSignature)
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("FromSignature: %w: %v", ErrMalformedSignature, err)
	}
	return t, nil
}

// solveFieldWidths recovers the join count J (and hence the trit count,
// via facetPos = dim*nCompSimp + 1 - J) consistent with the signature's
// remaining byte length, using the structural identity described in
// this file's header comment.
func solveFieldWidths(dim, nCompSimp, nChars, permChars, remaining int) (joinPos, facetPos int, ok bool) {
	maxJoin := dim * nCompSimp
	for jp := 0; jp <= maxJoin+1; jp++ {
		fp := dim*nCompSimp + 1 - jp
		if fp < 0 {
			break
		}
		tritChars := (fp + 2) / 3
		if fp == 0 {
			tritChars = 0
		}
		if tritChars+jp*(nChars+permChars) == remaining {
			return jp, fp, true
		}
	}
	return 0, 0, false
}
