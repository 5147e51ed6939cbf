package invariant_test

import (
	"testing"

	"github.com/kevinjzhang/triangulations/builder"
	"github.com/kevinjzhang/triangulations/invariant"
	"github.com/kevinjzhang/triangulations/triangulation"
	"github.com/stretchr/testify/require"
)

func TestComputeAll_TwoTetrahedronSphere(t *testing.T) {
	t.Parallel()

	tri, err := builder.MinimalSphere3()
	require.NoError(t, err)

	invs, err := invariant.ComputeAll(tri)
	require.NoError(t, err)
	require.Len(t, invs, 2)

	// Both tetrahedra see the same picture: vertex degrees all 2, every
	// edge degree 2, combined opposite-pair labels 2*|T|+2 = 6.
	for _, inv := range invs {
		require.Equal(t, []int{2, 2, 2, 2}, inv.VertexDegrees)
		require.Equal(t, []int{2, 2, 2, 2}, inv.VertexDegreesSorted)
		require.Equal(t, []int{6, 6, 6}, inv.EdgeCombLabel)
		require.Len(t, inv.IncidentEdgeDegrees, 4)
		for _, per := range inv.IncidentEdgeDegrees {
			require.Equal(t, []int{2, 2, 2}, per)
		}
	}
	require.True(t, invariant.Equal(invs[0], invs[1]))
	require.Equal(t, 0, invariant.Compare(invs[0], invs[1]))
}

func TestComputeAll_Dim4UsesOppositeTriangles(t *testing.T) {
	t.Parallel()

	tri, err := builder.MinimalSphere4()
	require.NoError(t, err)

	invs, err := invariant.ComputeAll(tri)
	require.NoError(t, err)
	require.Len(t, invs, 2)

	// Identity double of a pentachoron: every vertex, edge, and triangle
	// has degree 2, so every edge+opposite-triangle label is 2*|T|+2 = 6,
	// ten edges per simplex.
	for _, inv := range invs {
		require.Equal(t, []int{2, 2, 2, 2, 2}, inv.VertexDegreesSorted)
		require.Len(t, inv.EdgeCombLabel, 10)
		for _, label := range inv.EdgeCombLabel {
			require.Equal(t, 6, label)
		}
		require.Len(t, inv.IncidentEdgeDegrees, 5)
		for _, per := range inv.IncidentEdgeDegrees {
			require.Equal(t, []int{6, 6, 6, 6}, per)
		}
	}
	require.True(t, invariant.Equal(invs[0], invs[1]))
}

func TestAutomorphismCount_FullSymmetry(t *testing.T) {
	t.Parallel()

	tri, err := builder.MinimalSphere3()
	require.NoError(t, err)
	invs, err := invariant.ComputeAll(tri)
	require.NoError(t, err)

	// Every vertex has equal rank, so all 4! orderings are admissible.
	require.Equal(t, 24, invs[0].AutomorphismCount())
	require.Len(t, invs[0].AdmissiblePermutations(), 24)
}

func TestAdmissiblePermutations_MatchCountAndOrder(t *testing.T) {
	t.Parallel()

	seeds := []func() (*triangulation.Triangulation, error){
		builder.MinimalSphere3,
		builder.FigureEight,
		func() (*triangulation.Triangulation, error) { return builder.LayeredSolidTorus(3) },
		builder.MinimalSphere4,
	}
	for _, seed := range seeds {
		tri, err := seed()
		require.NoError(t, err)
		invs, err := invariant.ComputeAll(tri)
		require.NoError(t, err)
		for s, inv := range invs {
			perms := inv.AdmissiblePermutations()
			require.Len(t, perms, inv.AutomorphismCount(), "simplex %d", s)
			// Natural index order, no duplicates.
			for i := 1; i < len(perms); i++ {
				require.Less(t, perms[i-1], perms[i], "simplex %d", s)
			}
			// The identity ordering of an already-ascending rank, or some
			// other permutation, is always present: the set is non-empty.
			require.NotEmpty(t, perms, "simplex %d", s)
		}
	}
}

func TestCompare_IsTotalOrder(t *testing.T) {
	t.Parallel()

	tri, err := builder.LayeredSolidTorus(3)
	require.NoError(t, err)
	invs, err := invariant.ComputeAll(tri)
	require.NoError(t, err)

	for i := range invs {
		for j := range invs {
			cij := invariant.Compare(invs[i], invs[j])
			cji := invariant.Compare(invs[j], invs[i])
			require.Equal(t, -cij, cji, "antisymmetry %d/%d", i, j)
			if i == j {
				require.Equal(t, 0, cij)
			}
			require.Equal(t, cij == 0, invariant.Equal(invs[i], invs[j]))
		}
	}
}
