// File: node.go
// Role: one shard of the distributed BFS — dedup set, local FIFO,
// per-peer outbox, cached peer idle states, and the worker pool that
// drains the queue to quiescence.

package search

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/kevinjzhang/triangulations/isosig"
	"github.com/kevinjzhang/triangulations/pachner"
	"github.com/kevinjzhang/triangulations/search/transport"
	"github.com/kevinjzhang/triangulations/triangulation"
)

// Node is one shard of the search. Construct with NewNode, run once
// with Run, then read results with Seen.
type Node struct {
	tr      transport.Transport
	dim     triangulation.Dimension
	ceiling int
	self    int
	nNodes  int
	cfg     config

	// queue lock: dedup set, local FIFO, in-flight worker count.
	mu       sync.Mutex
	seen     map[string]struct{}
	local    fifo
	inFlight int

	// outbox lock: per-peer batches plus their sends.
	outMu  sync.Mutex
	outbox []fifo

	// peer-state lock: cached peer idleness, own announced state, plus
	// status sends.
	peerMu   sync.Mutex
	peerIdle []bool
	selfIdle bool

	stopped atomic.Bool
	errOnce sync.Once
	runErr  error
	ran     bool
}

// NewNode builds a search node over the given transport endpoint. The
// ceiling is the simplex-count bound K every explored triangulation
// must respect.
func NewNode(tr transport.Transport, dim triangulation.Dimension, ceiling int, opts ...Option) (*Node, error) {
	if tr == nil {
		return nil, fmt.Errorf("search.NewNode: %w", ErrNilTransport)
	}
	if !dim.Valid() {
		return nil, fmt.Errorf("search.NewNode: %w", triangulation.ErrBadDimension)
	}
	if ceiling < 1 {
		return nil, fmt.Errorf("search.NewNode: %w", pachner.ErrBadCeiling)
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("search.NewNode: %w", err)
	}
	n := tr.Peers()
	node := &Node{
		tr:       tr,
		dim:      dim,
		ceiling:  ceiling,
		self:     tr.Self(),
		nNodes:   n,
		cfg:      cfg,
		seen:     make(map[string]struct{}),
		outbox:   make([]fifo, n),
		peerIdle: make([]bool, n),
	}
	return node, nil
}

// Run seeds the node (an empty slice is fine — non-root nodes start
// with no work of their own) and drives the worker pool to quiescence.
// It returns the first fatal error any worker hit, or nil once the
// whole mesh has drained.
func (n *Node) Run(seeds []string) error {
	if n.ran {
		return fmt.Errorf("search.Run: %w", ErrAlreadyRan)
	}
	n.ran = true

	for _, seed := range seeds {
		t, err := isosig.FromSignature(n.dim, seed)
		if err != nil {
			// Malformed seeds are skipped, not fatal; the operator's
			// seed list may mix dialects.
			n.cfg.logger.Printf("node %d: skipping malformed seed %q: %v", n.self, seed, err)
			continue
		}
		sig, err := isosig.Canonicalize(t)
		if err != nil {
			return fmt.Errorf("search.Run: %w", err)
		}
		if err := n.queueSig(sig); err != nil {
			return err
		}
	}

	var wg sync.WaitGroup
	for w := 0; w < n.cfg.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n.workerLoop()
		}()
	}
	wg.Wait()

	n.cfg.logger.Printf("node %d: finished with %d signatures", n.self, n.SeenCount())
	return n.runErr
}

// fail records the first fatal error and stops every worker.
func (n *Node) fail(err error) {
	n.errOnce.Do(func() { n.runErr = err })
	n.stopped.Store(true)
}

func (n *Node) workerLoop() {
	for !n.stopped.Load() {
		if err := n.drainInbound(); err != nil {
			n.fail(err)
			return
		}
		sig, ok := n.pop()
		if !ok {
			n.announceIdleIfDrained()
			if n.quiescent() {
				return
			}
			time.Sleep(n.cfg.pollInterval)
			continue
		}
		err := n.process(sig)
		n.mu.Lock()
		n.inFlight--
		n.mu.Unlock()
		if err != nil {
			n.fail(err)
			return
		}
	}
}

// pop takes one signature off the local queue, marking a worker as
// in-flight so idleness cannot be announced while it still might
// produce new work.
func (n *Node) pop() (string, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	sig, ok := n.local.pop()
	if ok {
		n.inFlight++
	}
	return sig, ok
}

// process expands one signature: decode, enumerate Pachner neighbours,
// canonicalise each, route. Any canonicalisation failure aborts the
// search on this node.
func (n *Node) process(sig string) error {
	t, err := isosig.FromSignature(n.dim, sig)
	if err != nil {
		return fmt.Errorf("search: decode of owned signature %q: %w", sig, err)
	}
	adjacent, err := pachner.Neighbours(t, n.ceiling)
	if err != nil {
		return err
	}
	for _, alt := range adjacent {
		s, err := isosig.Canonicalize(alt)
		if err != nil {
			return fmt.Errorf("search: canonicalise neighbour: %w", err)
		}
		if err := n.queueSig(s); err != nil {
			return err
		}
	}
	return nil
}

// queueSig routes one canonical signature to its owning shard: local
// insertion under the queue lock, or an outbox append plus flush under
// the outbox lock.
func (n *Node) queueSig(s string) error {
	owner := Owner(s, n.nNodes)
	if owner == n.self {
		n.mu.Lock()
		if _, dup := n.seen[s]; !dup {
			n.seen[s] = struct{}{}
			n.local.push(s)
		}
		n.mu.Unlock()
		return nil
	}

	n.outMu.Lock()
	n.outbox[owner].push(s)
	for {
		item, ok := n.outbox[owner].pop()
		if !ok {
			break
		}
		n.cfg.logger.Printf("node %d: send %s -> %d", n.self, item, owner)
		if err := n.tr.Send(owner, transport.Message{Tag: transport.TagSignature, Sig: item}); err != nil {
			n.outMu.Unlock()
			return fmt.Errorf("search: %w: %v", ErrTransport, err)
		}
	}
	n.outMu.Unlock()
	return nil
}

// drainInbound empties the transport's pending messages: signatures go
// through the dedup set onto the local queue, status flags update the
// peer-state cache. If a delivery produced new work while this node had
// announced idle, the non-idle flip is broadcast before the work can be
// processed.
func (n *Node) drainInbound() error {
	for {
		msg, ok, err := n.tr.Recv()
		if err != nil {
			if errors.Is(err, transport.ErrClosed) {
				return nil
			}
			return fmt.Errorf("search: %w: %v", ErrTransport, err)
		}
		if !ok {
			return nil
		}
		switch msg.Tag {
		case transport.TagSignature:
			n.cfg.logger.Printf("node %d: recv %s <- %d", n.self, msg.Sig, msg.From)
			n.mu.Lock()
			_, dup := n.seen[msg.Sig]
			n.mu.Unlock()
			if dup {
				continue
			}
			if err := n.announceState(false); err != nil {
				return err
			}
			n.mu.Lock()
			if _, dup := n.seen[msg.Sig]; !dup {
				n.seen[msg.Sig] = struct{}{}
				n.local.push(msg.Sig)
			}
			n.mu.Unlock()
		case transport.TagStatus:
			n.peerMu.Lock()
			n.peerIdle[msg.From] = msg.Idle
			n.peerMu.Unlock()
		}
	}
}

// announceIdleIfDrained flips this node to idle, broadcasting the flip,
// once the local queue is empty and no worker is mid-processing.
func (n *Node) announceIdleIfDrained() {
	n.mu.Lock()
	drained := n.local.len() == 0 && n.inFlight == 0
	n.mu.Unlock()
	if !drained {
		return
	}
	if err := n.announceState(true); err != nil {
		n.fail(err)
	}
}

// announceState broadcasts an idle/non-idle flip to every peer, only if
// it actually changes the announced state. Called with no other lock
// held, or with the queue lock released, respecting the queue ->
// outbox -> peer-state hierarchy.
func (n *Node) announceState(idle bool) error {
	n.peerMu.Lock()
	defer n.peerMu.Unlock()
	if n.selfIdle == idle {
		return nil
	}
	n.selfIdle = idle
	n.cfg.logger.Printf("node %d: idle=%v", n.self, idle)
	for p := 0; p < n.nNodes; p++ {
		if p == n.self {
			continue
		}
		if err := n.tr.Send(p, transport.Message{Tag: transport.TagStatus, Idle: idle}); err != nil {
			return fmt.Errorf("search: %w: %v", ErrTransport, err)
		}
	}
	return nil
}

// quiescent reports whether this node may exit: its own queue drained
// and announced idle, and every cached peer state idle.
func (n *Node) quiescent() bool {
	n.mu.Lock()
	drained := n.local.len() == 0 && n.inFlight == 0
	n.mu.Unlock()
	if !drained {
		return false
	}
	n.peerMu.Lock()
	defer n.peerMu.Unlock()
	if !n.selfIdle {
		return false
	}
	for p := 0; p < n.nNodes; p++ {
		if p != n.self && !n.peerIdle[p] {
			return false
		}
	}
	return true
}

// SeenCount returns how many signatures this shard owns so far.
func (n *Node) SeenCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.seen)
}

// Seen returns this shard's owned signatures in sorted order.
func (n *Node) Seen() []string {
	n.mu.Lock()
	out := make([]string, 0, len(n.seen))
	for s := range n.seen {
		out = append(out, s)
	}
	n.mu.Unlock()
	sort.Strings(out)
	return out
}
