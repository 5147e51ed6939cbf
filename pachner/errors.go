// File: errors.go
// Role: sentinel errors for the pachner package; same discipline as
// triangulation/errors.go (sentinels only, errors.Is at call sites).

package pachner

import "errors"

// ErrNilTriangulation is returned when Neighbours is given a nil input.
var ErrNilTriangulation = errors.New("pachner: nil triangulation")

// ErrBadCeiling is returned when the simplex-count ceiling is below 1;
// no triangulation fits under it, so the caller's bound is malformed
// rather than merely tight.
var ErrBadCeiling = errors.New("pachner: simplex-count ceiling must be at least 1")
