// File: faces.go
// Role: derive k-dimensional face lattices by crossing facet gluings.
//
// A k-face of one simplex is identified by a size-(k+1) subset of its
// D+1 local vertex labels, listed in standard lexicographic combination
// order (for k=0 this is just the vertex index; for k=1 on a
// tetrahedron it reproduces the (0,1),(0,2),(0,3),(1,2),(1,3),(2,3)
// edge-labelling convention that pairs opposite edges as (0,5),(1,4),
// (2,3)). The same global face appears as one subset per incident
// simplex; EnumerateFaces unions those appearances across gluings with
// a union-find so degree and incidence can be read off each class.

package triangulation

// combinations returns every size-r subset of {0,...,n-1}, each as a
// sorted slice of ints, in standard lexicographic order.
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
		// advance to next combination
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

func bitmaskOf(combo []int) int {
	m := 0
	for _, v := range combo {
		m |= 1 << uint(v)
	}
	return m
}

// SimplexFace is one simplex's local appearance of a k-face: its vertex
// subset, in ascending local-label order.
type SimplexFace struct {
	Simplex  int
	Vertices []int
}

// FaceRef is a global k-face: every simplex/subset pair identified with
// it by crossing gluings, and its degree (= number of such appearances,
// counted with multiplicity when a simplex is glued to itself across
// the face).
type FaceRef struct {
	Incidences []SimplexFace
}

// Degree is the number of incident top-dimensional simplex appearances.
func (f FaceRef) Degree() int { return len(f.Incidences) }

type unionFind struct{ parent []int }

func newUnionFind(n int) *unionFind {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return &unionFind{parent: p}
}

func (u *unionFind) find(x int) int {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}
	return x
}

func (u *unionFind) union(a, b int) {
	ra, rb := u.find(a), u.find(b)
	if ra != rb {
		u.parent[ra] = rb
	}
}

// EnumerateFaces returns every k-dimensional face of t, 0 <= k <= Dim,
// in no particular order (k = Dim yields one face per simplex, which is
// what lets the 1-to-(D+2) move enumerate its candidate sites through
// the same interface). Faces are derived purely by crossing facet
// gluings — no global vertex identity is ever consulted.
func EnumerateFaces(t *Triangulation, k int) []FaceRef {
	d := int(t.dim)
	n := t.Size()
	combos := combinations(d+1, k+1)
	comboIndex := make(map[int]int, len(combos))
	for i, c := range combos {
		comboIndex[bitmaskOf(c)] = i
	}
	numCombos := len(combos)
	uf := newUnionFind(n * numCombos)
	nodeID := func(s, ci int) int { return s*numCombos + ci }

	for s := 0; s < n; s++ {
		for ci, combo := range combos {
			m := bitmaskOf(combo)
			for f := 0; f <= d; f++ {
				if m&(1<<uint(f)) != 0 {
					continue // facet f must not contain vertices outside itself
				}
				g := t.simplices[s].Gluings[f]
				if g.IsBoundary() {
					continue
				}
				im := 0
				for v := 0; v <= d; v++ {
					if m&(1<<uint(v)) != 0 {
						im |= 1 << uint(g.Perm.Apply(v))
					}
				}
				nci, ok := comboIndex[im]
				if !ok {
					continue
				}
				uf.union(nodeID(s, ci), nodeID(g.Neighbour, nci))
			}
		}
	}

	groups := make(map[int][]SimplexFace)
	order := make([]int, 0, n*numCombos)
	for s := 0; s < n; s++ {
		for ci, combo := range combos {
			id := nodeID(s, ci)
			root := uf.find(id)
			if _, ok := groups[root]; !ok {
				order = append(order, root)
			}
			verts := make([]int, len(combo))
			copy(verts, combo)
			groups[root] = append(groups[root], SimplexFace{Simplex: s, Vertices: verts})
		}
	}

	out := make([]FaceRef, 0, len(order))
	for _, root := range order {
		out = append(out, FaceRef{Incidences: groups[root]})
	}
	return out
}

// VertexDegrees returns, for simplex s, the degree of each of its D+1
// vertices as a 0-face of t, indexed by local vertex label.
func VertexDegrees(t *Triangulation, s int) []int {
	faces := EnumerateFaces(t, 0)
	deg := make([]int, int(t.dim)+1)
	for _, fr := range faces {
		d := fr.Degree()
		for _, inc := range fr.Incidences {
			if inc.Simplex == s {
				deg[inc.Vertices[0]] = d
			}
		}
	}
	return deg
}

// EdgeDegreeTable returns, for every simplex, a map from an edge's
// 2-vertex local subset (as a sorted [2]int) to that edge's global
// degree — the building block for SimplexInvariant.edgeCombLabel.
func EdgeDegreeTable(t *Triangulation) []map[[2]int]int {
	faces := EnumerateFaces(t, 1)
	tables := make([]map[[2]int]int, t.Size())
	for i := range tables {
		tables[i] = make(map[[2]int]int)
	}
	for _, fr := range faces {
		d := fr.Degree()
		for _, inc := range fr.Incidences {
			tables[inc.Simplex][[2]int{inc.Vertices[0], inc.Vertices[1]}] = d
		}
	}
	return tables
}

// TriangleDegreeTable is EdgeDegreeTable's analogue for 2-faces
// (triangles), used by the D=4 edgeCombLabel construction (each edge is
// paired with its opposite triangle).
func TriangleDegreeTable(t *Triangulation) []map[[3]int]int {
	faces := EnumerateFaces(t, 2)
	tables := make([]map[[3]int]int, t.Size())
	for i := range tables {
		tables[i] = make(map[[3]int]int)
	}
	for _, fr := range faces {
		d := fr.Degree()
		for _, inc := range fr.Incidences {
			tables[inc.Simplex][[3]int{inc.Vertices[0], inc.Vertices[1], inc.Vertices[2]}] = d
		}
	}
	return tables
}
