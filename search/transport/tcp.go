// File: tcp.go
// Role: TCP mesh transport. Node i listens on addrs[i], dials every
// lower-indexed peer and accepts from every higher-indexed one, so each
// pair shares exactly one duplex connection. Messages are gob-framed
// wire frames whose body keeps the tag-0 null-terminated-string /
// tag-1 single-flag layout, and per-connection writes are serialised,
// which is what gives the per-pair FIFO guarantee.

package transport

import (
	"encoding/gob"
	"fmt"
	"net"
	"sync"
	"time"
)

// wireFrame is the on-the-wire shape. Body holds the signature bytes
// plus a terminating NUL for TagSignature, or a single 0/1 byte for
// TagStatus.
type wireFrame struct {
	From int
	Tag  Tag
	Body []byte
}

type tcpPeer struct {
	conn net.Conn
	enc  *gob.Encoder
	mu   sync.Mutex // serialises writes on this connection
}

type tcpEndpoint struct {
	self  int
	peers []*tcpPeer // peers[self] is nil
	inbox chan Message

	mu       sync.Mutex
	closed   bool
	listener net.Listener
}

// DialMesh connects node self into a full mesh over the given listen
// addresses, one per node. It blocks until every pairwise connection is
// established, so a successful return on every node means the mesh is
// fully up.
func DialMesh(self int, addrs []string) (Transport, error) {
	n := len(addrs)
	if self < 0 || self >= n {
		return nil, fmt.Errorf("transport.DialMesh: %w", ErrBadDest)
	}
	ln, err := net.Listen("tcp", addrs[self])
	if err != nil {
		return nil, fmt.Errorf("transport.DialMesh: %w", err)
	}

	ep := &tcpEndpoint{
		self:     self,
		peers:    make([]*tcpPeer, n),
		inbox:    make(chan Message, inboxDepth),
		listener: ln,
	}

	var wg sync.WaitGroup
	errs := make(chan error, n)

	// Accept one connection from every higher-indexed peer; the dialer
	// identifies itself with a gob-encoded index on the same stream the
	// frames will use, so the handshake decoder (which may read ahead)
	// is kept and reused for the frames.
	wg.Add(1)
	go func() {
		defer wg.Done()
		for accepted := 0; accepted < n-1-self; accepted++ {
			conn, err := ln.Accept()
			if err != nil {
				errs <- err
				return
			}
			dec := gob.NewDecoder(conn)
			var from int
			if err := dec.Decode(&from); err != nil {
				errs <- err
				return
			}
			ep.attach(from, conn, gob.NewEncoder(conn), dec)
		}
	}()

	// Dial every lower-indexed peer, retrying briefly: meshes come up in
	// no particular order and a peer may not be listening yet.
	for j := 0; j < self; j++ {
		wg.Add(1)
		go func(j int) {
			defer wg.Done()
			conn, err := dialWithRetry(addrs[j])
			if err != nil {
				errs <- err
				return
			}
			enc := gob.NewEncoder(conn)
			if err := enc.Encode(self); err != nil {
				errs <- err
				return
			}
			ep.attach(j, conn, enc, gob.NewDecoder(conn))
		}(j)
	}

	wg.Wait()
	close(errs)
	for err := range errs {
		_ = ep.Close()
		return nil, fmt.Errorf("transport.DialMesh: %w", err)
	}
	return ep, nil
}

func dialWithRetry(addr string) (net.Conn, error) {
	var lastErr error
	deadline := time.Now().Add(10 * time.Second)
	for time.Now().Before(deadline) {
		conn, err := net.Dial("tcp", addr)
		if err == nil {
			return conn, nil
		}
		lastErr = err
		time.Sleep(50 * time.Millisecond)
	}
	return nil, lastErr
}

// attach registers an established connection to peer index from and
// starts its reader goroutine.
func (ep *tcpEndpoint) attach(from int, conn net.Conn, enc *gob.Encoder, dec *gob.Decoder) {
	p := &tcpPeer{conn: conn, enc: enc}
	ep.mu.Lock()
	ep.peers[from] = p
	ep.mu.Unlock()

	go func() {
		for {
			var frame wireFrame
			if err := dec.Decode(&frame); err != nil {
				return
			}
			msg, ok := decodeFrame(frame)
			if !ok {
				continue
			}
			ep.mu.Lock()
			closed := ep.closed
			ep.mu.Unlock()
			if closed {
				return
			}
			ep.inbox <- msg
		}
	}()
}

func encodeFrame(msg Message) wireFrame {
	frame := wireFrame{From: msg.From, Tag: msg.Tag}
	switch msg.Tag {
	case TagSignature:
		frame.Body = append([]byte(msg.Sig), 0)
	case TagStatus:
		if msg.Idle {
			frame.Body = []byte{1}
		} else {
			frame.Body = []byte{0}
		}
	}
	return frame
}

func decodeFrame(frame wireFrame) (Message, bool) {
	msg := Message{From: frame.From, Tag: frame.Tag}
	switch frame.Tag {
	case TagSignature:
		if len(frame.Body) == 0 || frame.Body[len(frame.Body)-1] != 0 {
			return Message{}, false
		}
		msg.Sig = string(frame.Body[:len(frame.Body)-1])
	case TagStatus:
		if len(frame.Body) != 1 {
			return Message{}, false
		}
		msg.Idle = frame.Body[0] != 0
	default:
		return Message{}, false
	}
	return msg, true
}

func (ep *tcpEndpoint) Self() int  { return ep.self }
func (ep *tcpEndpoint) Peers() int { return len(ep.peers) }

func (ep *tcpEndpoint) Send(dest int, msg Message) error {
	if dest < 0 || dest >= len(ep.peers) || dest == ep.self {
		return ErrBadDest
	}
	ep.mu.Lock()
	if ep.closed {
		ep.mu.Unlock()
		return ErrClosed
	}
	p := ep.peers[dest]
	ep.mu.Unlock()
	if p == nil {
		return ErrClosed
	}
	msg.From = ep.self
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.enc.Encode(encodeFrame(msg)); err != nil {
		return fmt.Errorf("transport: send to %d: %w", dest, err)
	}
	return nil
}

func (ep *tcpEndpoint) Recv() (Message, bool, error) {
	ep.mu.Lock()
	if ep.closed {
		ep.mu.Unlock()
		return Message{}, false, ErrClosed
	}
	ep.mu.Unlock()
	select {
	case msg := <-ep.inbox:
		return msg, true, nil
	default:
		return Message{}, false, nil
	}
}

func (ep *tcpEndpoint) Close() error {
	ep.mu.Lock()
	if ep.closed {
		ep.mu.Unlock()
		return nil
	}
	ep.closed = true
	peers := append([]*tcpPeer(nil), ep.peers...)
	ln := ep.listener
	ep.mu.Unlock()

	if ln != nil {
		_ = ln.Close()
	}
	for _, p := range peers {
		if p != nil {
			_ = p.conn.Close()
		}
	}
	return nil
}
