// File: neighbours.go
// Role: single-move neighbour enumeration over the Pachner-move graph.

package pachner

import (
	"fmt"

	"github.com/kevinjzhang/triangulations/triangulation"
)

// moveSpec describes one move family at a fixed dimension: the move
// index i (removing i+1 simplices around a (D-i)-face, installing
// D+1-i new ones) and the net simplex-count change it causes.
type moveSpec struct {
	moveIndex int
	delta     int
}

// Move tables in the order the search explores them: shrinking and
// size-preserving moves first, then growing moves (which are the only
// ones the ceiling can veto).
var (
	movesDim3 = []moveSpec{
		{moveIndex: 2, delta: -1}, // 3-2 on edges
		{moveIndex: 1, delta: +1}, // 2-3 on triangles
	}
	movesDim4 = []moveSpec{
		{moveIndex: 4, delta: -4}, // 5-1 on vertices
		{moveIndex: 3, delta: -2}, // 4-2 on edges
		{moveIndex: 2, delta: 0},  // 3-3 on triangles
		{moveIndex: 1, delta: +2}, // 2-4 on tetrahedra
		{moveIndex: 0, delta: +4}, // 1-5 on pentachora
	}
)

// Neighbours returns an owned clone of t for every legal single Pachner
// move whose result has at most ceiling simplices. Moves that shrink or
// preserve the simplex count are never gated by the ceiling. The input
// is only ever read; every returned triangulation is independent of t
// and of its siblings.
func Neighbours(t *triangulation.Triangulation, ceiling int) ([]*triangulation.Triangulation, error) {
	if t == nil {
		return nil, fmt.Errorf("pachner.Neighbours: %w", ErrNilTriangulation)
	}
	if ceiling < 1 {
		return nil, fmt.Errorf("pachner.Neighbours: %w", ErrBadCeiling)
	}

	var specs []moveSpec
	switch t.Dim() {
	case triangulation.Dim3:
		specs = movesDim3
	case triangulation.Dim4:
		specs = movesDim4
	default:
		return nil, fmt.Errorf("pachner.Neighbours: %w", triangulation.ErrBadDimension)
	}

	size := t.Size()
	var out []*triangulation.Triangulation
	for _, spec := range specs {
		if spec.delta > 0 && size+spec.delta > ceiling {
			continue
		}
		faceDim := triangulation.FaceDimensionForMove(t.Dim(), spec.moveIndex)
		for _, face := range triangulation.EnumerateFaces(t, faceDim) {
			if !t.PachnerDryRun(spec.moveIndex, face) {
				continue
			}
			alt := t.Clone()
			if err := alt.PachnerCommit(spec.moveIndex, face); err != nil {
				// Dry run passed on an identical triangulation, so the
				// commit cannot legally refuse; surface it rather than
				// silently dropping the neighbour.
				return nil, fmt.Errorf("pachner.Neighbours: %w", err)
			}
			out = append(out, alt)
		}
	}
	return out, nil
}
