// Package transport carries signature and idle-status messages between
// search nodes.
//
// The wire contract mirrors the two-tag scheme of the search design:
// tag 0 carries one null-terminated signature string, tag 1 carries a
// single idle/non-idle flag. Two implementations are provided: an
// in-process mesh of buffered channels (NewLocalMesh) for single-process
// multi-shard runs and tests, and a TCP mesh (DialMesh) framing each
// message with encoding/gob for genuinely distributed runs. Both
// guarantee FIFO ordering per sender-receiver pair and reliable
// delivery while the mesh is open; neither guarantees any global order.
package transport
