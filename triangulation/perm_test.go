package triangulation_test

import (
	"testing"

	"github.com/kevinjzhang/triangulations/triangulation"
	"github.com/stretchr/testify/require"
)

func TestPerm_IndexRoundTrip(t *testing.T) {
	t.Parallel()

	for _, n := range []int{4, 5} {
		total := triangulation.NumPerms(n)
		seen := make(map[string]bool, total)
		for idx := 0; idx < total; idx++ {
			p := triangulation.PermAtIndex(n, idx)
			require.True(t, p.Valid(), "n=%d idx=%d not a bijection", n, idx)
			require.Equal(t, idx, p.Index(), "n=%d: Index(PermAtIndex(idx)) mismatch", n)
			key := string(rune(p.Apply(0))) + string(rune(p.Apply(1))) + string(rune(p.Apply(2))) + string(rune(p.Apply(3)))
			require.False(t, seen[key+string(rune(n))], "n=%d idx=%d duplicate permutation", n, idx)
			seen[key+string(rune(n))] = true
		}
	}
}

func TestPerm_LexOrder(t *testing.T) {
	t.Parallel()

	// Rank order must agree with image-tuple lexicographic order.
	total := triangulation.NumPerms(4)
	for idx := 1; idx < total; idx++ {
		prev := triangulation.PermAtIndex(4, idx-1)
		cur := triangulation.PermAtIndex(4, idx)
		require.True(t, prev.Less(cur), "idx %d not ascending", idx)
	}

	require.Equal(t, 0, triangulation.Identity(4).Index(), "identity must rank first")
}

func TestPerm_InverseAndMul(t *testing.T) {
	t.Parallel()

	id := triangulation.Identity(5)
	for idx := 0; idx < triangulation.NumPerms(5); idx++ {
		p := triangulation.PermAtIndex(5, idx)
		require.True(t, p.Mul(p.Inverse()).Equal(id))
		require.True(t, p.Inverse().Mul(p).Equal(id))
	}

	// Composition convention: (p*q)(x) = p(q(x)).
	p := triangulation.NewPermFromImages([]int{1, 2, 0, 3})
	q := triangulation.NewPermFromImages([]int{0, 3, 2, 1})
	r := p.Mul(q)
	for x := 0; x < 4; x++ {
		require.Equal(t, p.Apply(q.Apply(x)), r.Apply(x))
	}
}
