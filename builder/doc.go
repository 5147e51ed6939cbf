// Package builder constructs known seed triangulations by explicit
// facet gluing: the single pentachoron and its double (a 4-sphere), the
// minimal two-tetrahedron 3-sphere, layered solid tori, and the
// two-tetrahedron figure-eight knot complement.
//
// Every constructor returns a fresh, validated, connected triangulation
// the caller owns outright. Seed resolves a constructor by name, which
// is what lets a seed file mention well-known triangulations without
// spelling out their signatures.
package builder
