package dsu

// Forest is a disjoint-set forest stored as a parent-index arena.
// parent[i] == i marks i as the root of its set.
type Forest struct {
	parent []int
	sets   int
}

// New returns a Forest holding n singleton sets, elements 0..n-1.
// A negative n is treated as zero.
func New(n int) *Forest {
	if n < 0 {
		n = 0
	}
	f := &Forest{
		parent: make([]int, n),
		sets:   n,
	}
	for i := range f.parent {
		f.parent[i] = i
	}

	return f
}

// MakeSet appends a new singleton element and returns its index.
func (f *Forest) MakeSet() int {
	e := len(f.parent)
	f.parent = append(f.parent, e)
	f.sets++

	return e
}

// Find returns the representative of e's set.
// Every visited node is repointed to its grandparent on the way up.
func (f *Forest) Find(e int) int {
	for f.parent[e] != e {
		f.parent[e] = f.parent[f.parent[e]]
		e = f.parent[e]
	}

	return e
}

// Union merges the sets of a and b by making Find(b) a child of Find(a).
// It reports false, and changes nothing, when a and b are already connected.
func (f *Forest) Union(a, b int) bool {
	ra, rb := f.Find(a), f.Find(b)
	if ra == rb {
		return false
	}
	f.parent[rb] = ra
	f.sets--

	return true
}

// Connected reports whether a and b share a root.
func (f *Forest) Connected(a, b int) bool {
	return f.Find(a) == f.Find(b)
}

// Len returns the number of elements.
func (f *Forest) Len() int {
	return len(f.parent)
}

// Sets returns the number of disjoint sets currently in the forest.
func (f *Forest) Sets() int {
	return f.sets
}
