// File: errors.go
// Role: sentinel errors for the isosig package, following the same
// discipline as triangulation/errors.go: sentinels only, never wrapped
// with formatted text at definition site, callers branch with errors.Is.

package isosig

import "errors"

// ErrMalformedSignature is returned by FromSignature when the
// input string cannot be parsed as a valid signature (bad alphabet
// character, truncated field, or a decoded structure that fails
// Triangulation.Validate).
var ErrMalformedSignature = errors.New("isosig: malformed signature")

// ErrEmptyTriangulation is returned by Canonicalize/EncodeFrom when
// given a triangulation with zero simplices; there is no candidate
// start to encode from.
var ErrEmptyTriangulation = errors.New("isosig: empty triangulation")

// ErrSizeOverflow is returned by CanonicalizeWithOptions when the
// triangulation exceeds a configured WithMaxSimplices cap.
var ErrSizeOverflow = errors.New("isosig: triangulation exceeds configured size cap")

// ErrDisconnected is returned by Canonicalize when the triangulation is
// not a single connected component; the encoder's BFS relabelling only
// ever covers one component by construction, and Pachner move search
// only ever hands it connected triangulations.
var ErrDisconnected = errors.New("isosig: triangulation is not connected")
