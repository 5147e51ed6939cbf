// File: errors.go
// Role: sentinel errors for the triangulation package.
//
// Policy:
//   - Only sentinel variables are exported.
//   - Callers branch with errors.Is, never by comparing strings.
//   - Sentinels are never wrapped with formatted text at definition site;
//     call sites add context with fmt.Errorf("...: %w", Err...).

package triangulation

import "errors"

// ErrBadDimension is returned when a Dimension other than 3 or 4 is used.
var ErrBadDimension = errors.New("triangulation: dimension must be 3 or 4")

// ErrMalformedSignature names a signature string that fails to decode. No
// function in this package returns it; isosig.FromSignature reports decode
// failures with isosig.ErrMalformedSignature.
var ErrMalformedSignature = errors.New("triangulation: malformed signature")

// ErrSizeOverflow is returned when a triangulation's simplex count would
// violate the |T|^2 < 2^31 bound that edgeCombLabel packing relies on.
var ErrSizeOverflow = errors.New("triangulation: size overflow")

// ErrFacetOutOfRange is returned when a facet or vertex index is not in 0..Dim.
var ErrFacetOutOfRange = errors.New("triangulation: facet index out of range")

// ErrSimplexOutOfRange is returned when a simplex index is not in 0..Size()-1.
var ErrSimplexOutOfRange = errors.New("triangulation: simplex index out of range")

// ErrGluingAsymmetric is returned by Validate when a facet gluing is not its
// own inverse from the other side. Glue keeps both sides consistent, but
// Unglue clears only the named side and can leave such a one-sided gluing.
var ErrGluingAsymmetric = errors.New("triangulation: asymmetric facet gluing")

// ErrMoveIllegal is returned by PachnerCommit when the requested move is
// not legal at the given face. Per the collaborator contract, callers
// normally check PachnerDryRun first; a neighbour-enumerating caller
// simply omits candidates that fail the dry run rather than treating
// this as an error.
var ErrMoveIllegal = errors.New("triangulation: pachner move illegal at this face")
