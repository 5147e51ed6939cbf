// File: api.go
// Role: name-based seed resolution, the single entry point the CLI and
// tests use when a seed list names a triangulation instead of spelling
// out its signature.

package builder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kevinjzhang/triangulations/triangulation"
)

// Seed resolves a constructor by name. Recognised names:
//
//	pentachoron        — single 4-simplex, boundary facets
//	sphere3            — minimal two-tetrahedron 3-sphere
//	sphere4            — minimal two-pentachoron 4-sphere
//	lst<n>             — layered solid torus of n tetrahedra, e.g. lst3
//	figure8            — figure-eight knot complement
func Seed(name string) (*triangulation.Triangulation, error) {
	switch {
	case name == "pentachoron":
		return Pentachoron()
	case name == "sphere3":
		return MinimalSphere3()
	case name == "sphere4":
		return MinimalSphere4()
	case name == "figure8":
		return FigureEight()
	case strings.HasPrefix(name, "lst"):
		n, err := strconv.Atoi(strings.TrimPrefix(name, "lst"))
		if err != nil {
			return nil, fmt.Errorf("builder.Seed(%q): %w", name, ErrUnknownSeed)
		}
		return LayeredSolidTorus(n)
	}
	return nil, fmt.Errorf("builder.Seed(%q): %w", name, ErrUnknownSeed)
}
