package triangulation_test

import (
	"testing"

	"github.com/kevinjzhang/triangulations/triangulation"
	"github.com/stretchr/testify/require"
)

// faceOfDegree returns the first k-face whose degree matches.
func faceOfDegree(t *testing.T, tri *triangulation.Triangulation, k, degree int) (triangulation.FaceRef, bool) {
	t.Helper()
	for _, fr := range triangulation.EnumerateFaces(tri, k) {
		if fr.Degree() == degree {
			return fr, true
		}
	}
	return triangulation.FaceRef{}, false
}

func TestPachner_TwoThreeOnSphere(t *testing.T) {
	t.Parallel()

	tri := twoSimplexDouble(t, triangulation.Dim3)

	// Every triangle of the two-tetrahedron sphere admits a 2-3 move.
	triangles := triangulation.EnumerateFaces(tri, 2)
	require.Len(t, triangles, 4)
	for _, face := range triangles {
		require.True(t, tri.PachnerDryRun(1, face))
	}

	alt := tri.Clone()
	require.NoError(t, alt.PachnerCommit(1, triangles[0]))
	require.Equal(t, 3, alt.Size())
	require.NoError(t, alt.Validate())
	require.True(t, alt.Connected())
	// The original is untouched.
	require.Equal(t, 2, tri.Size())
}

func TestPachner_ThreeTwoUndoesTwoThree(t *testing.T) {
	t.Parallel()

	tri := twoSimplexDouble(t, triangulation.Dim3)
	face, ok := faceOfDegree(t, tri, 2, 2)
	require.True(t, ok)
	require.NoError(t, tri.PachnerCommit(1, face))
	require.Equal(t, 3, tri.Size())

	// The move introduced a degree-3 edge; a 3-2 on it restores the
	// original simplex count.
	edge, ok := faceOfDegree(t, tri, 1, 3)
	require.True(t, ok)
	require.True(t, tri.PachnerDryRun(2, edge))
	require.NoError(t, tri.PachnerCommit(2, edge))
	require.Equal(t, 2, tri.Size())
	require.NoError(t, tri.Validate())
}

func TestPachner_IllegalOnLowDegreeEdge(t *testing.T) {
	t.Parallel()

	tri := twoSimplexDouble(t, triangulation.Dim3)
	// All edges have degree 2; no 3-2 move is legal anywhere.
	for _, edge := range triangulation.EnumerateFaces(tri, 1) {
		require.False(t, tri.PachnerDryRun(2, edge))
		require.ErrorIs(t, tri.PachnerCommit(2, edge), triangulation.ErrMoveIllegal)
	}
	// A failed commit must not mutate.
	require.Equal(t, 2, tri.Size())
	require.NoError(t, tri.Validate())
}

func TestPachner_OneFiveOnPentachoron(t *testing.T) {
	t.Parallel()

	tri, err := triangulation.New(triangulation.Dim4)
	require.NoError(t, err)
	tri.AddSimplex()

	faces := triangulation.EnumerateFaces(tri, 4)
	require.Len(t, faces, 1)
	require.True(t, tri.PachnerDryRun(0, faces[0]))
	require.NoError(t, tri.PachnerCommit(0, faces[0]))
	require.Equal(t, 5, tri.Size())
	require.NoError(t, tri.Validate())
	require.True(t, tri.Connected())

	// The cone subdivision keeps the old boundary: five boundary facets.
	boundary := 0
	for s := 0; s < tri.Size(); s++ {
		for f := 0; f < 5; f++ {
			g, err := tri.Facet(s, f)
			require.NoError(t, err)
			if g.IsBoundary() {
				boundary++
			}
		}
	}
	require.Equal(t, 5, boundary)
}

func TestPachner_TwoFourOnSphere4(t *testing.T) {
	t.Parallel()

	tri := twoSimplexDouble(t, triangulation.Dim4)
	tet, ok := faceOfDegree(t, tri, 3, 2)
	require.True(t, ok)
	require.True(t, tri.PachnerDryRun(1, tet))
	require.NoError(t, tri.PachnerCommit(1, tet))
	require.Equal(t, 4, tri.Size())
	require.NoError(t, tri.Validate())
	require.True(t, tri.Connected())
}

func TestFaceDimensionForMove(t *testing.T) {
	t.Parallel()

	require.Equal(t, 1, triangulation.FaceDimensionForMove(triangulation.Dim3, 2)) // 3-2 on edges
	require.Equal(t, 2, triangulation.FaceDimensionForMove(triangulation.Dim3, 1)) // 2-3 on triangles
	require.Equal(t, 0, triangulation.FaceDimensionForMove(triangulation.Dim4, 4)) // 5-1 on vertices
	require.Equal(t, 4, triangulation.FaceDimensionForMove(triangulation.Dim4, 0)) // 1-5 on pentachora
}
