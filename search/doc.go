// Package search runs the sharded, duplicate-eliminating breadth-first
// exploration of the Pachner-move graph.
//
// Every node owns the signatures whose hash lands on its shard
// (hash(sig) mod N), keeps a dedup set and a FIFO of unprocessed
// signatures, and batches outbound signatures per destination peer.
// Within a node a pool of worker goroutines cooperates on the queue;
// across nodes a transport.Transport carries signature and idle-status
// messages.
//
// Three disjoint critical sections protect (a) the queue plus dedup set,
// (b) the outbox plus signature sends, and (c) the peer-state table plus
// status sends. Where more than one is taken, the order is always
// queue, then outbox, then peer-state.
//
// Termination is a barrier-free quiescence detector: each node
// broadcasts flips of its own idle state and caches every peer's last
// announced state; a node exits once its own queue is drained, no
// worker is mid-processing, and every cached peer state reads idle.
package search
