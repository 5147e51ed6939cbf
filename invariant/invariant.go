// File: invariant.go

package invariant

import (
	"fmt"
	"sort"

	"github.com/kevinjzhang/triangulations/triangulation"
)

// SimplexInvariant is the isomorphism-stable pre-ranking value of one
// simplex, computed from the degrees of its incident faces.
type SimplexInvariant struct {
	VertexDegrees       []int   // local vertex order, length D+1
	VertexDegreesSorted []int   // ascending copy
	EdgeCombLabel       []int   // ascending, 3 values at D=3, 10 at D=4
	IncidentEdgeDegrees [][]int // per local vertex, ascending
}

// edgeLayout precomputes the combinatorial bookkeeping shared by every
// simplex of a given dimension: the lexicographic edge list and, for
// D=3, the opposite-edge pairing; for D=4, the opposite-triangle lookup.
type edgeLayout struct {
	edges       [][]int // size-2 combinations of {0..D}, lex order
	edgeIndex   map[[2]int]int
	oppositeD3  [3][2]int // D3 only: index pairs (0,5),(1,4),(2,3)
	triangles   [][]int   // D4 only: size-3 combinations
	triIndex    map[[3]int]int
	triOfEdgeD4 []int // D4 only: edge index -> opposite triangle's index
}

func buildLayout(dim triangulation.Dimension) edgeLayout {
	d := int(dim)
	edges := combinations(d+1, 2)
	edgeIndex := make(map[[2]int]int, len(edges))
	for i, e := range edges {
		edgeIndex[[2]int{e[0], e[1]}] = i
	}
	layout := edgeLayout{edges: edges, edgeIndex: edgeIndex}
	if dim == triangulation.Dim3 {
		layout.oppositeD3 = [3][2]int{{0, 5}, {1, 4}, {2, 3}}
		return layout
	}
	triangles := combinations(d+1, 3)
	triIndex := make(map[[3]int]int, len(triangles))
	for i, tr := range triangles {
		triIndex[[3]int{tr[0], tr[1], tr[2]}] = i
	}
	triOfEdge := make([]int, len(edges))
	full := (1 << uint(d+1)) - 1
	for i, e := range edges {
		mask := 1<<uint(e[0]) | 1<<uint(e[1])
		compMask := full &^ mask
		var comp [3]int
		pos := 0
		for v := 0; v <= d; v++ {
			if compMask&(1<<uint(v)) != 0 {
				comp[pos] = v
				pos++
			}
		}
		triOfEdge[i] = triIndex[comp]
	}
	layout.triangles = triangles
	layout.triIndex = triIndex
	layout.triOfEdgeD4 = triOfEdge
	return layout
}

// combinations mirrors triangulation's unexported helper of the same
// name; duplicated here since invariant only depends on the public
// triangulation API.
func combinations(n, r int) [][]int {
	if r == 0 {
		return [][]int{{}}
	}
	if r > n {
		return nil
	}
	var out [][]int
	idx := make([]int, r)
	for i := range idx {
		idx[i] = i
	}
	for {
		combo := make([]int, r)
		copy(combo, idx)
		out = append(out, combo)
		i := r - 1
		for i >= 0 && idx[i] == n-r+i {
			i--
		}
		if i < 0 {
			break
		}
		idx[i]++
		for j := i + 1; j < r; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
	return out
}

// ComputeAll builds the SimplexInvariant of every simplex in t in one
// pass, amortising the face-degree table construction.
func ComputeAll(t *triangulation.Triangulation) ([]SimplexInvariant, error) {
	n := t.Size()
	dim := t.Dim()
	layout := buildLayout(dim)

	vertexFaces := triangulation.EnumerateFaces(t, 0)
	vertexDeg := make([]map[int]int, n) // simplex -> local vertex -> degree
	for i := range vertexDeg {
		vertexDeg[i] = make(map[int]int)
	}
	for _, fr := range vertexFaces {
		d := fr.Degree()
		for _, inc := range fr.Incidences {
			vertexDeg[inc.Simplex][inc.Vertices[0]] = d
		}
	}

	edgeDeg := triangulation.EdgeDegreeTable(t)

	var triDeg []map[[3]int]int
	if dim == triangulation.Dim4 {
		triDeg = triangulation.TriangleDegreeTable(t)
	}

	out := make([]SimplexInvariant, n)
	for s := 0; s < n; s++ {
		out[s] = computeOne(layout, dim, n, vertexDeg[s], edgeDeg[s], triDegAt(triDeg, s))
	}
	return out, nil
}

func triDegAt(triDeg []map[[3]int]int, s int) map[[3]int]int {
	if triDeg == nil {
		return nil
	}
	return triDeg[s]
}

func computeOne(layout edgeLayout, dim triangulation.Dimension, size int, vdeg map[int]int, edeg map[[2]int]int, trideg map[[3]int]int) SimplexInvariant {
	d := int(dim)
	vertexDegrees := make([]int, d+1)
	for v := 0; v <= d; v++ {
		vertexDegrees[v] = vdeg[v]
	}
	vertexDegreesSorted := append([]int(nil), vertexDegrees...)
	sort.Ints(vertexDegreesSorted)

	edgeDegrees := make([]int, len(layout.edges))
	for i, e := range layout.edges {
		edgeDegrees[i] = edeg[[2]int{e[0], e[1]}]
	}

	var edgeCombLabel []int

	if dim == triangulation.Dim3 {
		edgeCombLabel = make([]int, 0, 3)
		for _, pair := range layout.oppositeD3 {
			di, dj := edgeDegrees[pair[0]], edgeDegrees[pair[1]]
			lo, hi := di, dj
			if lo > hi {
				lo, hi = hi, lo
			}
			edgeCombLabel = append(edgeCombLabel, combineLabel(lo, hi, size))
		}
	} else {
		edgeCombLabel = make([]int, len(layout.edges))
		for i := range layout.edges {
			triIdx := layout.triOfEdgeD4[i]
			tri := layout.triangles[triIdx]
			td := trideg[[3]int{tri[0], tri[1], tri[2]}]
			edgeCombLabel[i] = combineLabel(edgeDegrees[i], td, size)
		}
	}
	sort.Ints(edgeCombLabel)

	incident := make([][]int, d+1)
	for v := 0; v <= d; v++ {
		var vals []int
		for i, e := range layout.edges {
			if e[0] != v && e[1] != v {
				continue
			}
			if dim == triangulation.Dim3 {
				vals = append(vals, edgeDegrees[i])
			} else {
				triIdx := layout.triOfEdgeD4[i]
				tri := layout.triangles[triIdx]
				td := trideg[[3]int{tri[0], tri[1], tri[2]}]
				vals = append(vals, combineLabel(edgeDegrees[i], td, size))
			}
		}
		sort.Ints(vals)
		incident[v] = vals
	}

	return SimplexInvariant{
		VertexDegrees:       vertexDegrees,
		VertexDegreesSorted: vertexDegreesSorted,
		EdgeCombLabel:       edgeCombLabel,
		IncidentEdgeDegrees: incident,
	}
}

// String renders the invariant's fields for debugging.
func (inv SimplexInvariant) String() string {
	return fmt.Sprintf("vertexDeg=%v sorted=%v edgeComb=%v incident=%v",
		inv.VertexDegrees, inv.VertexDegreesSorted, inv.EdgeCombLabel, inv.IncidentEdgeDegrees)
}

// combineLabel packs two degree values as a*size+b, exactly the
// lo*size+hi / d(edge)*size+d(face) formula (size is |T|; the
// |T|^2 < 2^31 bound checked by Validate keeps this in int32 range).
func combineLabel(a, b, size int) int {
	return a*size + b
}
