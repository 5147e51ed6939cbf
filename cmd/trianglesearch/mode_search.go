//go:build !mode_stat && !mode_correctness && !mode_timing

// File: mode_search.go
// Role: the default build — exhaustive single-process search. Reads the
// maxHeight ceiling and the seed list, canonicalises every seed, runs
// the sharded BFS on an in-process mesh, and writes the reached
// signatures.

package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"runtime"

	"github.com/kevinjzhang/triangulations/builder"
	"github.com/kevinjzhang/triangulations/isosig"
	"github.com/kevinjzhang/triangulations/search"
	"github.com/kevinjzhang/triangulations/search/transport"
	"github.com/kevinjzhang/triangulations/triangulation"
)

func runMode(dim triangulation.Dimension, number int, in io.Reader, out io.Writer) error {
	var maxHeight int
	if _, err := fmt.Fscan(in, &maxHeight); err != nil {
		return fmt.Errorf("reading maxHeight: %w", err)
	}

	seeds := make([]string, 0, number)
	for x := 0; x < number; x++ {
		var name string
		if _, err := fmt.Fscan(in, &name); err != nil {
			return fmt.Errorf("reading seed %d: %w", x, err)
		}
		sig, err := resolveSeed(dim, name)
		if err != nil {
			return err
		}
		seeds = append(seeds, sig)
	}

	mesh := transport.NewLocalMesh(1)
	node, err := search.NewNode(mesh[0], dim, maxHeight,
		search.WithWorkers(runtime.NumCPU()),
		search.WithLogger(log.New(os.Stderr, "", log.LstdFlags)))
	if err != nil {
		return err
	}
	if err := node.Run(seeds); err != nil {
		return err
	}

	results := node.Seen()
	fmt.Fprintf(out, "%d\n", len(results))
	for _, sig := range results {
		fmt.Fprintln(out, sig)
	}
	return nil
}

// resolveSeed accepts either a signature string or a builder seed name
// and returns the canonical signature.
func resolveSeed(dim triangulation.Dimension, name string) (string, error) {
	t, err := isosig.FromSignature(dim, name)
	if err != nil {
		t, err = builder.Seed(name)
		if err != nil {
			return "", fmt.Errorf("seed %q is neither a signature nor a known name: %w", name, err)
		}
		if t.Dim() != dim {
			return "", fmt.Errorf("seed %q: %w", name, triangulation.ErrBadDimension)
		}
	}
	return isosig.Canonicalize(t)
}
