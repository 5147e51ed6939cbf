// Package triangulation provides a thread-safe-by-convention (single
// owner at a time, see Clone) in-memory model of a combinatorial
// triangulation: a finite list of top-dimensional simplices glued along
// their facets by vertex-relabelling permutations.
//
// Dimension is fixed per Triangulation to either 3 (tetrahedra) or 4
// (pentachora). A Simplex never stores global vertex identities — only
// D+1 local vertex slots and, for each facet, either nothing (a boundary
// facet) or the index of the glued neighbour plus the permutation that
// carries this simplex's vertices across the shared facet. Global
// structure (which simplices/vertices are "the same" face) is derived on
// demand by crossing gluings (see EnumerateFaces).
//
// Ownership follows one rule: the move generator (package pachner)
// produces owned copies via Clone; the canonicaliser (package isosig)
// only ever borrows a read-only reference; a BFS worker (package search)
// owns a decoded copy and drops it once processed. There is no shared
// mutable triangulation visible to more than one goroutine at a time.
package triangulation
