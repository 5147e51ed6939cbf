package transport_test

import (
	"net"
	"testing"
	"time"

	"github.com/kevinjzhang/triangulations/search/transport"
	"github.com/stretchr/testify/require"
)

// reserveAddrs grabs n distinct loopback addresses by briefly listening
// on ephemeral ports.
func reserveAddrs(t *testing.T, n int) []string {
	t.Helper()
	addrs := make([]string, n)
	listeners := make([]net.Listener, n)
	for i := range addrs {
		ln, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		listeners[i] = ln
		addrs[i] = ln.Addr().String()
	}
	for _, ln := range listeners {
		require.NoError(t, ln.Close())
	}
	return addrs
}

// recvBlocking polls a non-blocking endpoint until a message arrives.
func recvBlocking(t *testing.T, ep transport.Transport) transport.Message {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		msg, ok, err := ep.Recv()
		require.NoError(t, err)
		if ok {
			return msg
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("no message within deadline")
	return transport.Message{}
}

func TestDialMesh_TwoNodes(t *testing.T) {
	t.Parallel()

	addrs := reserveAddrs(t, 2)
	eps := make([]transport.Transport, 2)
	errsCh := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func(i int) {
			ep, err := transport.DialMesh(i, addrs)
			eps[i] = ep
			errsCh <- err
		}(i)
	}
	require.NoError(t, <-errsCh)
	require.NoError(t, <-errsCh)
	defer eps[0].Close()
	defer eps[1].Close()

	require.NoError(t, eps[0].Send(1, transport.Message{Tag: transport.TagSignature, Sig: "hello"}))
	msg := recvBlocking(t, eps[1])
	require.Equal(t, transport.TagSignature, msg.Tag)
	require.Equal(t, "hello", msg.Sig)
	require.Equal(t, 0, msg.From)

	require.NoError(t, eps[1].Send(0, transport.Message{Tag: transport.TagStatus, Idle: true}))
	msg = recvBlocking(t, eps[0])
	require.Equal(t, transport.TagStatus, msg.Tag)
	require.True(t, msg.Idle)
	require.Equal(t, 1, msg.From)

	// FIFO per pair over a burst.
	for i := 0; i < 50; i++ {
		require.NoError(t, eps[0].Send(1, transport.Message{Tag: transport.TagSignature, Sig: string(rune('a' + i%26))}))
	}
	for i := 0; i < 50; i++ {
		msg := recvBlocking(t, eps[1])
		require.Equal(t, string(rune('a'+i%26)), msg.Sig)
	}
}
