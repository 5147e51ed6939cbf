// File: isomorphism.go
// Role: the optional output of EncodeFrom — the relabelling isomorphism
// that carries the source triangulation's simplex/vertex labels to the
// canonical ones the signature describes.

package isosig

import "github.com/kevinjzhang/triangulations/triangulation"

// Isomorphism records, for every simplex index in the source
// triangulation that lies in the encoded component, the canonical image
// index it was assigned and the vertex permutation carrying its local
// vertices to the canonical 0..D labelling.
type Isomorphism struct {
	SimpImage []int               // source index -> canonical image index, -1 if unvisited
	VertexMap []triangulation.Perm // source index -> vertex permutation (meaningful where SimpImage >= 0)
}
