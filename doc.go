// Package triangulations computes canonical isomorphism signatures for
// combinatorial triangulations of 3- and 4-manifolds and explores the
// Pachner-move graph reachable from a set of seed signatures.
//
// 🚀 What is this?
//
//	A pure-Go toolkit bringing together:
//
//	  • triangulation — the combinatorial data model: simplices, facet
//	    gluings, derived face degrees, Pachner moves, clone semantics.
//	  • invariant     — per-simplex isomorphism invariants used to prune
//	    the search for a canonicalisation starting frame.
//	  • isosig        — the canonical breadth-first encoder and the
//	    driver that minimises it over the cheapest candidate starts.
//	  • pachner       — enumerates the legal neighbouring triangulations
//	    reachable by a single bistellar move.
//	  • search        — a sharded, duplicate-eliminating, distributed
//	    breadth-first exploration of the move graph, one worker pool per
//	    node and message passing across nodes.
//	  • builder       — deterministic constructors for known seed
//	    triangulations (single pentachoron, minimal 3-sphere, layered
//	    solid torus, figure-eight knot complement).
//
// Under the hood, everything is organized as one flat package per concern,
// so each piece can be imported and tested independently:
//
//	triangulation/ — Triangulation, Simplex, Perm, Pachner moves
//	invariant/     — SimplexInvariant, vertex ranking, automorphism counts
//	isosig/        — signature codec, canonicaliser
//	pachner/       — move-graph neighbour enumeration
//	search/        — distributed BFS over signatures
//	search/transport — wire format + Transport abstraction
//	builder/       — seed-triangulation constructors
//	cmd/trianglesearch — the CLI surface described in the design notes
package triangulations
