package search

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFifo_Order(t *testing.T) {
	t.Parallel()

	var q fifo
	_, ok := q.pop()
	require.False(t, ok)

	for i := 0; i < 200; i++ {
		q.push(string(rune('a' + i%26)))
	}
	require.Equal(t, 200, q.len())
	for i := 0; i < 200; i++ {
		s, ok := q.pop()
		require.True(t, ok)
		require.Equal(t, string(rune('a'+i%26)), s)
	}
	require.Equal(t, 0, q.len())
	_, ok = q.pop()
	require.False(t, ok)

	// Interleaved pushes and pops across the compaction threshold.
	for i := 0; i < 500; i++ {
		q.push("x")
		q.push("y")
		s, ok := q.pop()
		require.True(t, ok)
		_ = s
	}
	require.Equal(t, 500, q.len())
}

func TestOwner_DeterministicAndInRange(t *testing.T) {
	t.Parallel()

	sigs := []string{"", "a", "abc", "cPcbbbiht", "some-longer-signature-string"}
	for _, s := range sigs {
		for _, n := range []int{1, 2, 3, 7} {
			o := Owner(s, n)
			require.GreaterOrEqual(t, o, 0)
			require.Less(t, o, n)
			require.Equal(t, o, Owner(s, n), "stable across calls")
		}
		require.Equal(t, 0, Owner(s, 1))
	}
}
