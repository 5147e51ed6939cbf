// File: options.go
// Role: functional-options configuration for a search node, following
// the same Option shape as the triangulation and isosig packages.

package search

import (
	"io"
	"log"
	"time"
)

// Option configures a Node at construction time.
type Option func(*config)

type config struct {
	workers      int
	pollInterval time.Duration
	logger       *log.Logger
	verbose      bool
}

func defaultConfig() config {
	return config{
		workers:      4,
		pollInterval: 5 * time.Millisecond,
		logger:       log.New(io.Discard, "", 0),
	}
}

// WithWorkers sets the number of worker goroutines processing this
// node's queue. Values below 1 are an option violation surfaced by
// NewNode.
func WithWorkers(n int) Option {
	return func(c *config) { c.workers = n }
}

// WithPollInterval sets how long an idle worker sleeps between polls
// of the local queue and the inbound message stream.
func WithPollInterval(d time.Duration) Option {
	return func(c *config) { c.pollInterval = d }
}

// WithLogger routes the node's progress lines (sent/received
// signatures, idle transitions, final counts) to the given logger.
// The default logger discards everything.
func WithLogger(l *log.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
			c.verbose = true
		}
	}
}

func (c config) validate() error {
	if c.workers < 1 {
		return ErrOptionViolation
	}
	if c.pollInterval <= 0 {
		return ErrOptionViolation
	}
	return nil
}
