// File: perm.go
// Role: permutations of a simplex's D+1 local vertex labels.
//
// A Perm is identified by its rank in the lexicographic order of the
// (D+1)! permutations, viewed as tuples of images — this is the
// "permutation index" used throughout the wire format (see
// charsPerPerm in package isosig) and matches the convention of the triangulation
// library this package stands in for.

package triangulation

// Perm is a permutation of {0, ..., N-1} for N = Dim+1.
type Perm struct {
	n      int
	images [5]int // only images[:n] is meaningful; N <= 5 for Dim <= 4
}

// Identity returns the identity permutation on n elements.
func Identity(n int) Perm {
	p := Perm{n: n}
	for i := 0; i < n; i++ {
		p.images[i] = i
	}
	return p
}

// NewPermFromImages builds a Perm from a slice of length n holding a
// bijection of {0,...,n-1}. Callers own the correctness of the bijection;
// Valid reports whether it actually is one.
func NewPermFromImages(images []int) Perm {
	p := Perm{n: len(images)}
	copy(p.images[:], images)
	return p
}

// N returns the number of elements this permutation acts on (Dim+1).
func (p Perm) N() int { return p.n }

// Apply returns the image of i under p.
func (p Perm) Apply(i int) int { return p.images[i] }

// Images returns the defining tuple of images, length N().
func (p Perm) Images() []int {
	out := make([]int, p.n)
	copy(out, p.images[:p.n])
	return out
}

// Valid reports whether p's images form a bijection of {0,...,n-1}.
func (p Perm) Valid() bool {
	seen := [5]bool{}
	for i := 0; i < p.n; i++ {
		img := p.images[i]
		if img < 0 || img >= p.n || seen[img] {
			return false
		}
		seen[img] = true
	}
	return true
}

// Inverse returns p^-1.
func (p Perm) Inverse() Perm {
	inv := Perm{n: p.n}
	for i := 0; i < p.n; i++ {
		inv.images[p.images[i]] = i
	}
	return inv
}

// Mul returns the composite permutation p*q defined by (p*q)(x) = p(q(x)),
// i.e. q is applied first. This matches the usual convention for
// composing gluing permutations: vertexMap[dest] = vertexMap[src] * g^-1.
func (p Perm) Mul(q Perm) Perm {
	r := Perm{n: p.n}
	for i := 0; i < p.n; i++ {
		r.images[i] = p.images[q.images[i]]
	}
	return r
}

// Equal reports whether p and q act identically.
func (p Perm) Equal(q Perm) bool {
	if p.n != q.n {
		return false
	}
	for i := 0; i < p.n; i++ {
		if p.images[i] != q.images[i] {
			return false
		}
	}
	return true
}

// Less reports whether p precedes q in the image-tuple lexicographic order.
func (p Perm) Less(q Perm) bool {
	for i := 0; i < p.n; i++ {
		if p.images[i] != q.images[i] {
			return p.images[i] < q.images[i]
		}
	}
	return false
}

// factorial returns n! for small n (n <= 12, ample headroom for n <= 5).
func factorial(n int) int {
	f := 1
	for i := 2; i <= n; i++ {
		f *= i
	}
	return f
}

// NumPerms returns (n)! — the number of permutations of n elements.
func NumPerms(n int) int { return factorial(n) }

// Index returns p's rank in the lexicographic order of all n! permutations
// of {0,...,n-1}, computed via the factorial number system (Lehmer code).
func (p Perm) Index() int {
	used := [5]bool{}
	rank := 0
	for i := 0; i < p.n; i++ {
		// count how many unused values are smaller than images[i]
		lower := 0
		for v := 0; v < p.images[i]; v++ {
			if !used[v] {
				lower++
			}
		}
		used[p.images[i]] = true
		rank = rank*(p.n-i) + lower
	}
	return rank
}

// PermAtIndex reconstructs the permutation of n elements with the given
// lexicographic rank — the inverse of Perm.Index.
func PermAtIndex(n, index int) Perm {
	avail := make([]int, n)
	for i := range avail {
		avail[i] = i
	}
	images := make([]int, n)
	remaining := index
	for i := 0; i < n; i++ {
		f := factorial(n - 1 - i)
		sel := remaining / f
		remaining = remaining % f
		images[i] = avail[sel]
		avail = append(avail[:sel], avail[sel+1:]...)
	}
	return NewPermFromImages(images)
}

// AllPermIndices returns {0, ..., n!-1} in order — the natural enumeration
// order used by SimplexInvariant.AdmissiblePermutations.
func AllPermIndices(n int) []int {
	total := factorial(n)
	out := make([]int, total)
	for i := range out {
		out[i] = i
	}
	return out
}
