// Package isosig implements the canonical breadth-first relabelling
// encoder and the canonicaliser driver that selects the cheapest
// candidate starting frame and minimises the encoder's output over it
// plus the signature alphabet codec and the decoder that
// reconstructs a triangulation from a signature string.
//
// The encoding walks simplices in image order,
// assigning each newly-discovered simplex the next free image and
// recording, per canonical facet, whether it is a boundary, a first
// discovery of a neighbour, or a join back to an already-imaged simplex.
package isosig
