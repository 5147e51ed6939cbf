//go:build mode_correctness

// File: mode_correctness.go
// Role: correctness build — for each input signature, re-encode the
// triangulation from every (simplex, permutation) start and check that
// every relabelled copy canonicalises back to one single string. Names
// that fail are written to the output file.

package main

import (
	"fmt"
	"io"

	"github.com/kevinjzhang/triangulations/isosig"
	"github.com/kevinjzhang/triangulations/triangulation"
)

func runMode(dim triangulation.Dimension, number int, in io.Reader, out io.Writer) error {
	d := int(dim)
	for x := 0; x < number; x++ {
		var name string
		if _, err := fmt.Fscan(in, &name); err != nil {
			return fmt.Errorf("reading signature %d: %w", x, err)
		}
		t, err := isosig.FromSignature(dim, name)
		if err != nil {
			return err
		}
		canonical, err := isosig.Canonicalize(t)
		if err != nil {
			return err
		}

		distinct := map[string]struct{}{canonical: {}}
		for simp := 0; simp < t.Size(); simp++ {
			for perm := 0; perm < triangulation.NumPerms(d+1); perm++ {
				cur, _, err := isosig.EncodeFrom(t, simp, triangulation.PermAtIndex(d+1, perm), false)
				if err != nil {
					return err
				}
				relabelled, err := isosig.FromSignature(dim, cur)
				if err != nil {
					return err
				}
				check, err := isosig.Canonicalize(relabelled)
				if err != nil {
					return err
				}
				distinct[check] = struct{}{}
			}
		}
		if len(distinct) != 1 {
			fmt.Fprintln(out, name)
		}
	}
	return nil
}
