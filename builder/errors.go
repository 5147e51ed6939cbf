// File: errors.go
// Role: sentinel errors for the builder package.

package builder

import "errors"

// ErrUnknownSeed is returned by Seed for a name no constructor claims.
var ErrUnknownSeed = errors.New("builder: unknown seed name")

// ErrBadParameter is returned when a constructor parameter is out of
// range (for example a layered solid torus of fewer than one
// tetrahedron).
var ErrBadParameter = errors.New("builder: parameter out of range")
