// File: pachner_move.go
// Role: a single, dimension-generic Pachner (bistellar) move engine.
//
// Every named move, D=3's 2-3/3-2 and D=4's 1-5/2-4/3-3/4-2/5-1,
// — is the same construction at a different index i: pick a (D-i)-face
// F shared by exactly a = i+1 top simplices; those a simplices are
// combinatorially the a facets of a (D+1)-simplex on D+2 abstract
// vertices split into a set A (size a, one per old simplex) and a set B
// (size b = D+1-i, the shared face F); the move deletes them and
// installs the b = D+1-i "other" facets of that same (D+1)-simplex,
// which share the complementary face on A.
//
// FaceDimensionForMove reports which face dimension a given move index
// acts on; pachner.Neighbours drives this engine by enumerating those
// faces and calling PachnerDryRun/PachnerCommit.

package triangulation

import "fmt"

// FaceDimensionForMove returns D-i, the dimension of the shared face a
// move of index i acts on.
func FaceDimensionForMove(dim Dimension, moveIndex int) int { return int(dim) - moveIndex }

type pachnerPartner struct {
	groupIdx    int // index into the group slice, 0..a-1
	otherVertex int // the connecting vertex on the partner's side
}

type pachnerMember struct {
	index        int         // simplex index in the current triangulation
	bSet         int         // bitmask of local vertices forming the shared B-face
	slotOfVertex map[int]int // B-local-vertex -> abstract B-slot 0..b-1
	partner      map[int]pachnerPartner // non-B local vertex -> partner info
	reverse      map[int]int            // groupIdx -> connecting local vertex (inverse of partner)
}

// pachnerPlan is the fully-resolved, ready-to-apply description of one
// legal move.
type pachnerPlan struct {
	a, b          int
	groupOrig     []int // original simplex indices being removed, length a
	newSimplices  []Simplex
	externalFixes []externalFix
}

type externalFix struct {
	extOrigIndex int
	extFacet     int
	newLocalM    int
	backPerm     Perm
}

func bitsAscending(mask int) []int {
	var out []int
	for v := 0; v < 32; v++ {
		if mask&(1<<uint(v)) != 0 {
			out = append(out, v)
		}
	}
	return out
}

// planPachner validates and fully resolves a move of index moveIndex at
// the given (D-moveIndex)-face, or returns a non-nil error (always
// ErrMoveIllegal-derived) if the move cannot be applied there.
func (t *Triangulation) planPachner(moveIndex int, face FaceRef) (*pachnerPlan, error) {
	d := int(t.dim)
	if moveIndex < 0 || moveIndex > d {
		return nil, fmt.Errorf("planPachner: %w", ErrMoveIllegal)
	}
	a := moveIndex + 1
	b := d + 1 - moveIndex
	full := (1 << uint(d+1)) - 1

	if len(face.Incidences) != a {
		return nil, fmt.Errorf("planPachner: %w", ErrMoveIllegal)
	}

	members := make([]*pachnerMember, a)
	groupIndexOf := make(map[int]int, a)
	for j, inc := range face.Incidences {
		if _, dup := groupIndexOf[inc.Simplex]; dup {
			return nil, fmt.Errorf("planPachner: %w", ErrMoveIllegal)
		}
		groupIndexOf[inc.Simplex] = j
		bset := 0
		for _, v := range inc.Vertices {
			bset |= 1 << uint(v)
		}
		members[j] = &pachnerMember{
			index:        inc.Simplex,
			bSet:         bset,
			slotOfVertex: make(map[int]int),
			partner:      make(map[int]pachnerPartner),
			reverse:      make(map[int]int),
		}
	}

	// Discover and validate the connector structure: every non-B local
	// vertex of every member must point, via a direct facet gluing, to a
	// distinct other member, together forming a bijection onto the rest
	// of the group.
	for j, m := range members {
		wSet := full &^ m.bSet
		for _, w := range bitsAscending(wSet) {
			g := t.simplices[m.index].Gluings[w]
			if g.IsBoundary() {
				return nil, fmt.Errorf("planPachner: %w", ErrMoveIllegal)
			}
			k, ok := groupIndexOf[g.Neighbour]
			if !ok || k == j {
				return nil, fmt.Errorf("planPachner: %w", ErrMoveIllegal)
			}
			wk := g.Perm.Apply(w)
			m.partner[w] = pachnerPartner{groupIdx: k, otherVertex: wk}
		}
		if len(m.partner) != a-1 {
			return nil, fmt.Errorf("planPachner: %w", ErrMoveIllegal)
		}
		seenK := make(map[int]bool, a-1)
		for _, p := range m.partner {
			if seenK[p.groupIdx] {
				return nil, fmt.Errorf("planPachner: %w", ErrMoveIllegal)
			}
			seenK[p.groupIdx] = true
		}
		if len(seenK) != a-1 {
			return nil, fmt.Errorf("planPachner: %w", ErrMoveIllegal)
		}
	}
	for j, m := range members {
		for _, p := range m.partner {
			members[p.groupIdx].reverse[j] = p.otherVertex
		}
	}

	// Assign consistent abstract B-slot labels 0..b-1 across the group:
	// member 0 fixes the labelling, propagated through its direct
	// connector gluings (the group forms a complete graph, so one hop
	// from member 0 reaches everyone).
	v0bits := bitsAscending(members[0].bSet)
	if len(v0bits) != b {
		return nil, fmt.Errorf("planPachner: %w", ErrMoveIllegal)
	}
	for slot, v := range v0bits {
		members[0].slotOfVertex[v] = slot
	}
	if a > 1 {
		m0 := members[0]
		for w, p := range m0.partner {
			g0 := t.simplices[m0.index].Gluings[w]
			target := members[p.groupIdx]
			for _, v := range v0bits {
				target.slotOfVertex[g0.Perm.Apply(v)] = m0.slotOfVertex[v]
			}
		}
	}
	for _, m := range members {
		if len(m.slotOfVertex) != b {
			return nil, fmt.Errorf("planPachner: %w", ErrMoveIllegal)
		}
	}

	localVertexOfSlot := make([][]int, a) // [j][slot] -> local vertex
	for j, m := range members {
		localVertexOfSlot[j] = make([]int, b)
		for v, slot := range m.slotOfVertex {
			localVertexOfSlot[j][slot] = v
		}
	}

	slotOrderExcluding := func(m int) []int {
		out := make([]int, 0, b-1)
		for s := 0; s < b; s++ {
			if s != m {
				out = append(out, s)
			}
		}
		return out
	}
	newLocalOfBSlot := func(home, other int) int {
		for pos, s := range slotOrderExcluding(home) {
			if s == other {
				return a + pos
			}
		}
		panic("triangulation: inconsistent pachner slot bookkeeping")
	}

	newSimplices := make([]Simplex, b)
	var fixes []externalFix

	for m := 0; m < b; m++ {
		var ns Simplex
		order := slotOrderExcluding(m)

		// Facets opposite an A-slot (index j): inherited external gluing
		// from old member j's facet opposite its B-slot-m vertex.
		for j := 0; j < a; j++ {
			v := localVertexOfSlot[j][m]
			oldGluing := t.simplices[members[j].index].Gluings[v]
			if oldGluing.IsBoundary() {
				ns.Gluings[j] = Gluing{Neighbour: boundaryNeighbour}
				continue
			}
			images := make([]int, d+1)
			for v2 := 0; v2 <= d; v2++ {
				if v2 == j {
					continue
				}
				var u int
				if v2 < a {
					u = members[j].reverse[v2]
				} else {
					mPrime := order[v2-a]
					u = localVertexOfSlot[j][mPrime]
				}
				images[v2] = oldGluing.Perm.Apply(u)
			}
			images[j] = oldGluing.Perm.Apply(v)
			// The partner facet belongs to a removed simplex too: glue to
			// the new simplex that inherits it, translating its old labels.
			if k, inGroup := groupIndexOf[oldGluing.Neighbour]; inGroup {
				m2 := members[k].slotOfVertex[images[j]]
				for v2, x := range images {
					if s, isB := members[k].slotOfVertex[x]; !isB {
						images[v2] = members[k].partner[x].groupIdx
					} else if s == m2 {
						images[v2] = k
					} else {
						images[v2] = newLocalOfBSlot(m2, s)
					}
				}
				ns.Gluings[j] = Gluing{Neighbour: -2 - m2, Perm: NewPermFromImages(images)}
				continue
			}
			perm := NewPermFromImages(images)
			ns.Gluings[j] = Gluing{Neighbour: oldGluing.Neighbour, Perm: perm}
			fixes = append(fixes, externalFix{
				extOrigIndex: oldGluing.Neighbour,
				extFacet:     oldGluing.Perm.Apply(v),
				newLocalM:    m,
				backPerm:     perm.Inverse(),
			})
		}

		// Facets opposite a B-slot (index a+pos): glued to the other new
		// simplex for that slot.
		for pos, mPrime := range order {
			ell := a + pos
			target := newLocalOfBSlot(mPrime, m)
			images := make([]int, d+1)
			for v2 := 0; v2 <= d; v2++ {
				if v2 == ell {
					continue
				}
				if v2 < a {
					images[v2] = v2
				} else {
					mOther := order[v2-a]
					images[v2] = newLocalOfBSlot(mPrime, mOther)
				}
			}
			images[ell] = target
			// Neighbour uses the reserved sentinel range (<= -2) to mean
			// "new simplex mPrime", resolved to an absolute index by
			// applyPachnerPlan once baseNew is known.
			ns.Gluings[ell] = Gluing{Neighbour: -2 - mPrime, Perm: NewPermFromImages(images)}
		}
		newSimplices[m] = ns
	}

	groupOrig := make([]int, a)
	for j, m := range members {
		groupOrig[j] = m.index
	}

	return &pachnerPlan{
		a:             a,
		b:             b,
		groupOrig:     groupOrig,
		newSimplices:  newSimplices,
		externalFixes: fixes,
	}, nil
}

// applyPachnerPlan mutates t in place to realise plan: the a group
// simplices are removed and the b new simplices installed, with every
// surviving gluing remapped to account for the index shift.
func (t *Triangulation) applyPachnerPlan(plan *pachnerPlan) {
	n := len(t.simplices)
	groupSet := make(map[int]bool, plan.a)
	for _, idx := range plan.groupOrig {
		groupSet[idx] = true
	}
	remap := make([]int, n)
	next := 0
	for i := 0; i < n; i++ {
		if groupSet[i] {
			remap[i] = -1
			continue
		}
		remap[i] = next
		next++
	}
	baseNew := next

	kept := make([]Simplex, next)
	for i := 0; i < n; i++ {
		ri := remap[i]
		if ri < 0 {
			continue
		}
		s := t.simplices[i]
		for f := range s.Gluings[:int(t.dim)+1] {
			g := &s.Gluings[f]
			if g.IsBoundary() {
				continue
			}
			if groupSet[g.Neighbour] {
				// Will be overwritten by an externalFix below; leave as
				// boundary in the meantime so no stale index lingers.
				*g = Gluing{Neighbour: boundaryNeighbour}
				continue
			}
			g.Neighbour = remap[g.Neighbour]
		}
		kept[ri] = s
	}

	for _, fix := range plan.externalFixes {
		ri := remap[fix.extOrigIndex]
		if ri < 0 {
			continue
		}
		kept[ri].Gluings[fix.extFacet] = Gluing{
			Neighbour: baseNew + fix.newLocalM,
			Perm:      fix.backPerm,
		}
	}

	for m := range plan.newSimplices {
		ns := plan.newSimplices[m]
		for f := range ns.Gluings[:int(t.dim)+1] {
			g := &ns.Gluings[f]
			if g.IsBoundary() {
				continue
			}
			if g.Neighbour <= -2 {
				g.Neighbour = baseNew + (-2 - g.Neighbour)
			} else {
				g.Neighbour = remap[g.Neighbour]
			}
		}
		kept = append(kept, ns)
	}

	t.simplices = kept
}

// PachnerDryRun reports whether a move of index moveIndex is legal at
// face (a (Dim-moveIndex)-face obtained from EnumerateFaces), without
// mutating t.
func (t *Triangulation) PachnerDryRun(moveIndex int, face FaceRef) bool {
	_, err := t.planPachner(moveIndex, face)
	return err == nil
}

// PachnerCommit applies the move in place. Callers that have not already
// confirmed legality via PachnerDryRun get ErrMoveIllegal back instead of
// a mutation.
func (t *Triangulation) PachnerCommit(moveIndex int, face FaceRef) error {
	plan, err := t.planPachner(moveIndex, face)
	if err != nil {
		return err
	}
	t.applyPachnerPlan(plan)
	return nil
}
