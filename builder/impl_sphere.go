// File: impl_sphere.go
// Role: minimal sphere triangulations — the two-simplex double in each
// dimension, plus the lone pentachoron with boundary.

package builder

import (
	"fmt"

	"github.com/kevinjzhang/triangulations/triangulation"
)

// MinimalSphere3 returns the minimal 3-sphere: two tetrahedra glued to
// each other across all four facets by the identity vertex
// correspondence (the double of a tetrahedron along its boundary).
func MinimalSphere3() (*triangulation.Triangulation, error) {
	t, err := triangulation.New(triangulation.Dim3)
	if err != nil {
		return nil, err
	}
	a := t.AddSimplex()
	b := t.AddSimplex()
	id := triangulation.Identity(4)
	for f := 0; f < 4; f++ {
		if err := t.Glue(a, f, b, f, id); err != nil {
			return nil, fmt.Errorf("builder.MinimalSphere3: %w", err)
		}
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("builder.MinimalSphere3: %w", err)
	}
	return t, nil
}

// Pentachoron returns a single 4-simplex with all five facets boundary.
func Pentachoron() (*triangulation.Triangulation, error) {
	t, err := triangulation.New(triangulation.Dim4)
	if err != nil {
		return nil, err
	}
	t.AddSimplex()
	return t, nil
}

// MinimalSphere4 returns the minimal 4-sphere: two pentachora glued to
// each other across all five facets by the identity vertex
// correspondence.
func MinimalSphere4() (*triangulation.Triangulation, error) {
	t, err := triangulation.New(triangulation.Dim4)
	if err != nil {
		return nil, err
	}
	a := t.AddSimplex()
	b := t.AddSimplex()
	id := triangulation.Identity(5)
	for f := 0; f < 5; f++ {
		if err := t.Glue(a, f, b, f, id); err != nil {
			return nil, fmt.Errorf("builder.MinimalSphere4: %w", err)
		}
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("builder.MinimalSphere4: %w", err)
	}
	return t, nil
}
