package isosig_test

import (
	"testing"

	"github.com/kevinjzhang/triangulations/builder"
	"github.com/kevinjzhang/triangulations/invariant"
	"github.com/kevinjzhang/triangulations/isosig"
	"github.com/kevinjzhang/triangulations/triangulation"
	"github.com/stretchr/testify/require"
)

// bruteMinimumFrom returns the lexicographic minimum of EncodeFrom over
// the given permutation indices at start s.
func bruteMinimumFrom(t *testing.T, tri *triangulation.Triangulation, s int, permIdxs []int) string {
	t.Helper()
	d := int(tri.Dim())
	best := ""
	for _, idx := range permIdxs {
		sig, _, err := isosig.EncodeFrom(tri, s, triangulation.PermAtIndex(d+1, idx), false)
		require.NoError(t, err)
		if best == "" || sig < best {
			best = sig
		}
	}
	return best
}

func TestAdmissiblePermutationCompleteness(t *testing.T) {
	t.Parallel()

	// Restricting to admissible permutations never loses the minimum:
	// at every start simplex, the minimum over admissible frames equals
	// the minimum over all (D+1)! frames.
	for name, tri := range seedTriangulations(t) {
		invs, err := invariant.ComputeAll(tri)
		require.NoError(t, err)
		d := int(tri.Dim())
		for s := 0; s < tri.Size(); s++ {
			all := triangulation.AllPermIndices(d + 1)
			admissible := invs[s].AdmissiblePermutations()
			require.Equal(t,
				bruteMinimumFrom(t, tri, s, all),
				bruteMinimumFrom(t, tri, s, admissible),
				"%s simplex %d", name, s)
		}
	}
}

func TestOrbitSufficiency(t *testing.T) {
	t.Parallel()

	// The canonicaliser only searches the cheapest equal-invariant run;
	// its answer must equal the global minimum over every start and
	// every frame.
	for name, tri := range seedTriangulations(t) {
		got, err := isosig.Canonicalize(tri)
		require.NoError(t, err, name)

		d := int(tri.Dim())
		global := ""
		for s := 0; s < tri.Size(); s++ {
			min := bruteMinimumFrom(t, tri, s, triangulation.AllPermIndices(d+1))
			if global == "" || min < global {
				global = min
			}
		}
		require.Equal(t, global, got, name)
	}
}

func TestCanonicalize_NeighboursOfSphereAgree(t *testing.T) {
	t.Parallel()

	// The four 2-3 moves on the two-tetrahedron sphere all produce the
	// same isomorphism class, so all four canonical signatures coincide.
	tri, err := builder.MinimalSphere3()
	require.NoError(t, err)

	sigs := map[string]bool{}
	for _, face := range triangulation.EnumerateFaces(tri, 2) {
		alt := tri.Clone()
		require.NoError(t, alt.PachnerCommit(1, face))
		sig, err := isosig.Canonicalize(alt)
		require.NoError(t, err)
		sigs[sig] = true
	}
	require.Len(t, sigs, 1)
}
