package transport_test

import (
	"testing"

	"github.com/kevinjzhang/triangulations/search/transport"
	"github.com/stretchr/testify/require"
)

func TestLocalMesh_DeliveryAndFIFO(t *testing.T) {
	t.Parallel()

	mesh := transport.NewLocalMesh(3)
	require.Len(t, mesh, 3)
	require.Equal(t, 1, mesh[1].Self())
	require.Equal(t, 3, mesh[1].Peers())

	// Nothing pending initially.
	_, ok, err := mesh[2].Recv()
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, mesh[0].Send(2, transport.Message{Tag: transport.TagSignature, Sig: "abc"}))
	require.NoError(t, mesh[0].Send(2, transport.Message{Tag: transport.TagStatus, Idle: true}))
	require.NoError(t, mesh[1].Send(2, transport.Message{Tag: transport.TagSignature, Sig: "xyz"}))

	// Per-pair FIFO: node 0's two messages arrive in order relative to
	// each other.
	var got []transport.Message
	for i := 0; i < 3; i++ {
		msg, ok, err := mesh[2].Recv()
		require.NoError(t, err)
		require.True(t, ok)
		got = append(got, msg)
	}
	idx0 := -1
	for i, msg := range got {
		if msg.From == 0 && msg.Tag == transport.TagSignature {
			require.Equal(t, "abc", msg.Sig)
			idx0 = i
		}
		if msg.From == 0 && msg.Tag == transport.TagStatus {
			require.True(t, msg.Idle)
			require.Greater(t, i, idx0, "status must follow the earlier signature")
		}
		if msg.From == 1 {
			require.Equal(t, "xyz", msg.Sig)
		}
	}
}

func TestLocalMesh_BadDestAndClose(t *testing.T) {
	t.Parallel()

	mesh := transport.NewLocalMesh(2)
	require.ErrorIs(t, mesh[0].Send(0, transport.Message{}), transport.ErrBadDest)
	require.ErrorIs(t, mesh[0].Send(5, transport.Message{}), transport.ErrBadDest)

	require.NoError(t, mesh[1].Close())
	require.ErrorIs(t, mesh[0].Send(1, transport.Message{}), transport.ErrClosed)
	_, _, err := mesh[1].Recv()
	require.ErrorIs(t, err, transport.ErrClosed)
}
