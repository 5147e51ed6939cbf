//go:build mode_timing

// File: mode_timing.go
// Role: timing build — decode every input signature up front, then time
// one canonicalisation pass over the whole batch.

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/kevinjzhang/triangulations/isosig"
	"github.com/kevinjzhang/triangulations/triangulation"
)

func runMode(dim triangulation.Dimension, number int, in io.Reader, out io.Writer) error {
	triangulations := make([]*triangulation.Triangulation, 0, number)
	for x := 0; x < number; x++ {
		var name string
		if _, err := fmt.Fscan(in, &name); err != nil {
			return fmt.Errorf("reading signature %d: %w", x, err)
		}
		t, err := isosig.FromSignature(dim, name)
		if err != nil {
			return err
		}
		triangulations = append(triangulations, t)
	}

	start := time.Now()
	for _, t := range triangulations {
		if _, err := isosig.Canonicalize(t); err != nil {
			return err
		}
	}
	fmt.Fprintf(out, "Canonicalize: %d\n", time.Since(start).Microseconds())
	return nil
}
