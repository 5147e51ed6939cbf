package search_test

import (
	"fmt"
	"log"

	"github.com/kevinjzhang/triangulations/builder"
	"github.com/kevinjzhang/triangulations/isosig"
	"github.com/kevinjzhang/triangulations/search"
	"github.com/kevinjzhang/triangulations/search/transport"
	"github.com/kevinjzhang/triangulations/triangulation"
)

// ExampleNode_Run explores everything reachable from the minimal
// 3-sphere without ever exceeding two tetrahedra: nothing is, so the
// search terminates with just the seed.
func ExampleNode_Run() {
	tri, err := builder.MinimalSphere3()
	if err != nil {
		log.Fatal(err)
	}
	seed, err := isosig.Canonicalize(tri)
	if err != nil {
		log.Fatal(err)
	}

	mesh := transport.NewLocalMesh(1)
	node, err := search.NewNode(mesh[0], triangulation.Dim3, 2)
	if err != nil {
		log.Fatal(err)
	}
	if err := node.Run([]string{seed}); err != nil {
		log.Fatal(err)
	}

	fmt.Println(node.SeenCount())
	// Output: 1
}
