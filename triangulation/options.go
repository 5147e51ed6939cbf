// File: options.go
// Role: functional-options configuration (validated eagerly, never a
// struct literal exposed directly to callers).

package triangulation

// Option configures a Triangulation at construction time.
type Option func(*config)

type config struct {
	capacityHint int
}

func defaultConfig() config { return config{} }

// WithCapacityHint preallocates room for roughly n simplices, avoiding
// repeated slice growth for callers that know their target size (e.g.
// the move generator cloning a triangulation it is about to grow).
func WithCapacityHint(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.capacityHint = n
		}
	}
}

// NewWithOptions is New plus functional options.
func NewWithOptions(dim Dimension, opts ...Option) (*Triangulation, error) {
	t, err := New(dim)
	if err != nil {
		return nil, err
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.capacityHint > 0 {
		t.simplices = make([]Simplex, 0, cfg.capacityHint)
	}
	return t, nil
}
