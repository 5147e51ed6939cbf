// File: encoder.go
// Role: the canonical breadth-first relabelling encoder: walk simplices
// in image order, assigning each newly-discovered neighbour the next
// free image, and emit one of three facet actions per canonical facet
// (boundary, first discovery, or join-back).

package isosig

import (
	"fmt"

	"github.com/kevinjzhang/triangulations/triangulation"
)

// facetAction values emitted per canonical facet.
const (
	actionBoundary = 0
	actionNew      = 1
	actionJoin     = 2
)

// EncodeFrom runs the canonical BFS relabelling starting at simplex
// start with initial vertex permutation pi (pi(i) is the local vertex of
// start placed at canonical slot i), and returns the signature
// string for the connected component reachable from start. If wantIso
// is true, the induced relabelling isomorphism is also returned.
func EncodeFrom(t *triangulation.Triangulation, start int, pi triangulation.Perm, wantIso bool) (string, *Isomorphism, error) {
	n := t.Size()
	d := int(t.Dim())
	if n == 0 {
		return "", nil, fmt.Errorf("EncodeFrom: %w", ErrEmptyTriangulation)
	}
	if start < 0 || start >= n {
		return "", nil, fmt.Errorf("EncodeFrom: %w", triangulation.ErrSimplexOutOfRange)
	}

	image := make([]int, n)
	preImage := make([]int, n)
	vertexMap := make([]triangulation.Perm, n)
	for i := range image {
		image[i] = -1
		preImage[i] = -1
	}

	image[start] = 0
	vertexMap[start] = pi.Inverse()
	preImage[0] = start

	var facetActions []int
	var joinDest []int
	var joinGluing []int
	nextUnused := 1

	simpImg := 0
	for ; simpImg < n && preImage[simpImg] >= 0; simpImg++ {
		simpSrc := preImage[simpImg]
		invMap := vertexMap[simpSrc].Inverse()

		for facetImg := 0; facetImg <= d; facetImg++ {
			facetSrc := invMap.Apply(facetImg)

			g, err := t.Facet(simpSrc, facetSrc)
			if err != nil {
				return "", nil, fmt.Errorf("EncodeFrom: %w", err)
			}
			if g.IsBoundary() {
				facetActions = append(facetActions, actionBoundary)
				continue
			}

			dest := g.Neighbour
			if image[dest] >= 0 {
				skip := image[dest] < image[simpSrc]
				if !skip && dest == simpSrc {
					a := vertexMap[simpSrc].Apply(g.Perm.Apply(facetSrc))
					b := vertexMap[simpSrc].Apply(facetSrc)
					skip = a < b
				}
				if skip {
					continue
				}
			}

			if image[dest] < 0 {
				image[dest] = nextUnused
				nextUnused++
				preImage[image[dest]] = dest
				vertexMap[dest] = vertexMap[simpSrc].Mul(g.Perm.Inverse())
				facetActions = append(facetActions, actionNew)
				continue
			}

			gluingPerm := vertexMap[dest].Mul(g.Perm).Mul(vertexMap[simpSrc].Inverse())
			joinDest = append(joinDest, image[dest])
			joinGluing = append(joinGluing, gluingPerm.Index())
			facetActions = append(facetActions, actionJoin)
		}
	}

	sig := renderSignature(d, simpImg, facetActions, joinDest, joinGluing)

	var iso *Isomorphism
	if wantIso {
		iso = &Isomorphism{SimpImage: image, VertexMap: vertexMap}
	}
	return sig, iso, nil
}

// renderSignature packs the component size, facet-action trit stream,
// join destinations, and join gluings into the signature string layout.
func renderSignature(dim, nCompSimp int, facetActions, joinDest, joinGluing []int) string {
	nChars := 1
	var buf []byte
	if nCompSimp < sentinelIndex {
		buf = appendInt(buf, nCompSimp, 1)
	} else {
		tmp := nCompSimp
		nChars = 0
		for tmp > 0 {
			tmp >>= 6
			nChars++
		}
		buf = append(buf, schar(sentinelIndex))
		buf = append(buf, schar(nChars))
		buf = appendInt(buf, nCompSimp, nChars)
	}

	for i := 0; i < len(facetActions); i += 3 {
		end := i + 3
		if end > len(facetActions) {
			end = len(facetActions)
		}
		buf = appendTrits(buf, facetActions[i:end])
	}

	for _, dest := range joinDest {
		buf = appendInt(buf, dest, nChars)
	}

	permChars := charsPerPerm(triangulation.NumPerms(dim + 1))
	for _, g := range joinGluing {
		buf = appendInt(buf, g, permChars)
	}

	return string(buf)
}
