// File: shard.go
// Role: shard ownership — a fixed, deterministic string hash shared by
// every node, so all nodes agree on who owns any signature.

package search

import "hash/fnv"

// Owner returns the index of the node owning signature sig in a mesh
// of n nodes: FNV-1a over the signature bytes, reduced mod n.
func Owner(sig string, n int) int {
	h := fnv.New64a()
	_, _ = h.Write([]byte(sig))
	return int(h.Sum64() % uint64(n))
}
