// Command trianglesearch drives the signature and search cores from a
// seed file: `trianglesearch [-dim N] <in-file> <out-file>`.
//
// The input begins with a decimal count; the active mode (chosen at
// build time with one of the mode_stat / mode_correctness / mode_timing
// build tags, defaulting to search) decides how the rest is read. The
// search mode expects a maxHeight simplex-count ceiling followed by
// that many seed signatures (or builder seed names) separated by
// whitespace.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/kevinjzhang/triangulations/triangulation"
)

func main() {
	dimFlag := flag.Int("dim", 3, "triangulation dimension (3 or 4)")
	flag.Parse()
	if flag.NArg() != 2 {
		log.Fatalf("usage: %s [-dim N] <in-file> <out-file>", os.Args[0])
	}
	dim := triangulation.Dimension(*dimFlag)
	if !dim.Valid() {
		log.Fatalf("trianglesearch: %v", triangulation.ErrBadDimension)
	}

	in, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatalf("trianglesearch: %v", err)
	}
	defer in.Close()
	out, err := os.Create(flag.Arg(1))
	if err != nil {
		log.Fatalf("trianglesearch: %v", err)
	}
	defer out.Close()

	reader := bufio.NewReader(in)
	writer := bufio.NewWriter(out)
	defer writer.Flush()

	var number int
	if _, err := fmt.Fscan(reader, &number); err != nil {
		log.Fatalf("trianglesearch: reading count: %v", err)
	}

	if err := runMode(dim, number, reader, writer); err != nil {
		log.Fatalf("trianglesearch: %v", err)
	}
}
