// File: impl_figure_eight.go
// Role: the two-tetrahedron ideal triangulation of the figure-eight
// knot complement (census m004).

package builder

import (
	"fmt"

	"github.com/kevinjzhang/triangulations/triangulation"
)

// FigureEight returns the classic two-tetrahedron ideal triangulation
// of the figure-eight knot complement: each facet of the first
// tetrahedron glued to a distinct facet of the second.
func FigureEight() (*triangulation.Triangulation, error) {
	t, err := triangulation.New(triangulation.Dim3)
	if err != nil {
		return nil, err
	}
	p := t.AddSimplex()
	q := t.AddSimplex()

	gluings := [][]int{
		{1, 3, 0, 2},
		{2, 0, 3, 1},
		{0, 3, 2, 1},
		{2, 1, 0, 3},
	}
	for f, images := range gluings {
		perm := triangulation.NewPermFromImages(images)
		if err := t.Glue(p, f, q, perm.Apply(f), perm); err != nil {
			return nil, fmt.Errorf("builder.FigureEight: %w", err)
		}
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("builder.FigureEight: %w", err)
	}
	return t, nil
}
