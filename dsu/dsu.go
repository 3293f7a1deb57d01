// Package dsu implements a Disjoint-Set Forest (union-find) over dense
// element indices 0..n-1, with path compression and union by rank.
//
// A Forest is scoped to one algorithm invocation: Kruskal, k-clustering and
// Hamming clustering each allocate their own and drop it on return. It is not
// safe for concurrent use.
//
// Invariant: Count starts at n and only ever decreases, by exactly one per
// successful Union, toward 1.
//
// Complexity: Find and Union run in O(α(n)) amortized time; memory is O(n).
package dsu

// Forest is a disjoint-set forest over n elements.
type Forest struct {
	parent []int
	rank   []uint8 // rank ≤ log2(n), so a byte is plenty
	count  int     // number of disjoint sets remaining
}

// New builds a forest of n singleton sets.
func New(n int) *Forest {
	f := &Forest{
		parent: make([]int, n),
		rank:   make([]uint8, n),
		count:  n,
	}
	for i := range f.parent {
		f.parent[i] = i
	}

	return f
}

// Len returns the number of elements.
func (f *Forest) Len() int { return len(f.parent) }

// Count returns the number of disjoint sets.
func (f *Forest) Count() int { return f.count }

// Find returns the root of the set containing i and compresses the path so
// every visited element points directly at that root.
// i must lie in [0, Len()).
func (f *Forest) Find(i int) int {
	// 1. Walk up to the root
	root := i
	for f.parent[root] != root {
		root = f.parent[root]
	}
	// 2. Second pass: repoint the whole path at root (iterative, no recursion)
	for f.parent[i] != root {
		next := f.parent[i]
		f.parent[i] = root
		i = next
	}

	return root
}

// Union merges the sets containing i and j, attaching the lower-rank root
// under the higher-rank one. It reports whether a merge happened.
func (f *Forest) Union(i, j int) bool {
	ri, rj := f.Find(i), f.Find(j)
	if ri == rj {
		return false
	}
	switch {
	case f.rank[ri] < f.rank[rj]:
		f.parent[ri] = rj
	case f.rank[ri] > f.rank[rj]:
		f.parent[rj] = ri
	default:
		f.parent[rj] = ri
		f.rank[ri]++
	}
	f.count--

	return true
}

// Same reports whether i and j belong to the same set.
func (f *Forest) Same(i, j int) bool { return f.Find(i) == f.Find(j) }

// Labels returns a compact component label for every element: labels run
// 0..Count()-1 and are assigned in order of first appearance by index, so
// element 0 always carries label 0.
// Complexity: O(n α(n))
func (f *Forest) Labels() []int {
	labels := make([]int, len(f.parent))
	byRoot := make(map[int]int, f.count)
	for i := range f.parent {
		r := f.Find(i)
		l, ok := byRoot[r]
		if !ok {
			l = len(byRoot)
			byRoot[r] = l
		}
		labels[i] = l
	}

	return labels
}

// Sizes returns the size of every set, indexed by the labels of Labels().
func (f *Forest) Sizes() []int {
	sizes := make([]int, f.count)
	for _, l := range f.Labels() {
		sizes[l]++
	}

	return sizes
}
