// File: options.go
// Role: functional-options configuration for Canonicalize, matching
// triangulation.Option/NewWithOptions: validated eagerly, never a
// struct literal exposed directly to callers.

package isosig

// Option configures a canonicalization run.
type Option func(*config)

type config struct {
	maxSimplices int
	wantIso      bool
}

func defaultConfig() config {
	return config{}
}

// WithMaxSimplices caps the component size Canonicalize will accept,
// returning ErrSizeOverflow instead of running an exhaustive search
// over a run whose cost would be impractical. A limit of 0 (the
// default) means no cap.
func WithMaxSimplices(n int) Option {
	if n < 0 {
		panic("isosig: WithMaxSimplices(n<0)")
	}
	return func(c *config) {
		c.maxSimplices = n
	}
}

// WithIsomorphism requests that CanonicalizeWithOptions also return the
// Isomorphism realizing the winning encoding, at the cost of keeping
// one extra relabelling alive per admissible-permutation candidate
// tried against the current best.
func WithIsomorphism() Option {
	return func(c *config) {
		c.wantIso = true
	}
}
