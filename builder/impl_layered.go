// File: impl_layered.go
// Role: layered solid tori — a folded base tetrahedron with further
// tetrahedra layered onto the two free faces of the previous layer.

package builder

import (
	"fmt"

	"github.com/kevinjzhang/triangulations/triangulation"
)

// LayeredSolidTorus returns a layered solid torus of n tetrahedra,
// n >= 1. The base tetrahedron is folded onto itself across facets 0
// and 1; each subsequent tetrahedron is layered onto the two free
// facets of the one below, leaving the top layer's facets 2 and 3 as
// the two-triangle torus boundary.
func LayeredSolidTorus(n int) (*triangulation.Triangulation, error) {
	if n < 1 {
		return nil, fmt.Errorf("builder.LayeredSolidTorus: %w", ErrBadParameter)
	}
	t, err := triangulation.New(triangulation.Dim3)
	if err != nil {
		return nil, err
	}
	base := t.AddSimplex()

	// Fold facet 0 onto facet 1: any permutation carrying 0 to 1 gives a
	// symmetric self-gluing; this one swaps the facet pair and the free
	// pair, the standard base fold.
	fold := triangulation.NewPermFromImages([]int{1, 0, 3, 2})
	if err := t.Glue(base, 0, base, 1, fold); err != nil {
		return nil, fmt.Errorf("builder.LayeredSolidTorus: %w", err)
	}

	// Each layer's facets 0 and 1 wrap onto the free facets 2 and 3 of
	// the layer below; (2,3,0,1) carries facet 0 to 2 and facet 1 to 3
	// and is its own inverse.
	wrap := triangulation.NewPermFromImages([]int{2, 3, 0, 1})
	for i := 1; i < n; i++ {
		layer := t.AddSimplex()
		if err := t.Glue(layer, 0, layer-1, 2, wrap); err != nil {
			return nil, fmt.Errorf("builder.LayeredSolidTorus: %w", err)
		}
		if err := t.Glue(layer, 1, layer-1, 3, wrap); err != nil {
			return nil, fmt.Errorf("builder.LayeredSolidTorus: %w", err)
		}
	}

	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("builder.LayeredSolidTorus: %w", err)
	}
	return t, nil
}
