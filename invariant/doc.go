// Package invariant computes a per-simplex isomorphism-stable pre-ranking
// used to prune the canonicaliser's search for a starting frame: vertex
// degrees, edge-opposition combined labels, and per-vertex incident-edge
// degree multisets, plus the vertex rank and admissible-permutation set
// those induce.
//
// Complexity is O((D+1)^2 + D^2 log D) per simplex once the triangulation's
// face-degree tables are built; ComputeAll amortises the table
// construction across every simplex in one pass.
package invariant
