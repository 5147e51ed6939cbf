// Package pachner enumerates the triangulations reachable from a given
// one by a single Pachner (bistellar) move, subject to a simplex-count
// ceiling.
//
// At dimension 3 the moves are 3-2 (on edges, shrinking) and 2-3 (on
// triangles, growing); at dimension 4 they are 5-1 (vertices), 4-2
// (edges), 3-3 (triangles), 2-4 (tetrahedra) and 1-5 (pentachora).
// Shrinking and size-preserving moves are attempted unconditionally;
// growing moves only while the result stays within the ceiling.
//
// Neighbours is a plain sequential function returning owned clones, so
// it can be called concurrently from many search workers without any
// internal synchronisation.
package pachner
