package unionfind

import "errors"

// ErrBadSize indicates that a negative universe size was passed to New.
var ErrBadSize = errors.New("unionfind: universe size must be non-negative")

// Forest is a disjoint-set forest over {0..n-1} with path compression and
// union by rank. The zero value is an empty forest over zero elements;
// use New to build a forest over a non-trivial universe.
type Forest struct {
	parent []int // parent[i] is i's parent; roots satisfy parent[i] == i
	rank   []int // rank[i] upper-bounds the height of the tree rooted at i
	count  int   // number of disjoint sets currently in the forest
}

// New returns a Forest in which each element of {0..n-1} forms its own
// singleton set. Returns ErrBadSize when n < 0.
//
// Complexity: O(n) time, O(n) space.
func New(n int) (*Forest, error) {
	if n < 0 {
		return nil, ErrBadSize
	}
	f := &Forest{
		parent: make([]int, n),
		rank:   make([]int, n),
		count:  n,
	}
	var i int
	for i = 0; i < n; i++ {
		f.parent[i] = i // each element starts as its own root
	}

	return f, nil
}

// Find returns the representative (root) of the set containing i.
// It compresses the path by repointing every visited node to its
// grandparent, so repeated queries approach O(1) amortized.
//
// Contract: 0 ≤ i < n (unchecked).
func (f *Forest) Find(i int) int {
	for f.parent[i] != i {
		f.parent[i] = f.parent[f.parent[i]] // halve the path
		i = f.parent[i]
	}

	return i
}

// Union merges the sets containing i and j using union by rank.
// It reports whether a merge happened (false if i and j were already in
// the same set).
//
// Contract: 0 ≤ i, j < n (unchecked).
func (f *Forest) Union(i, j int) bool {
	rootI := f.Find(i)
	rootJ := f.Find(j)
	if rootI == rootJ {
		// Already connected; no structural change.
		return false
	}

	// Attach the smaller-rank root under the larger-rank root.
	if f.rank[rootI] < f.rank[rootJ] {
		f.parent[rootI] = rootJ
	} else {
		f.parent[rootJ] = rootI
		// Equal ranks: the surviving root grows one level.
		if f.rank[rootI] == f.rank[rootJ] {
			f.rank[rootI]++
		}
	}
	f.count--

	return true
}

// Connected reports whether i and j currently belong to the same set.
//
// Contract: 0 ≤ i, j < n (unchecked).
func (f *Forest) Connected(i, j int) bool {
	return f.Find(i) == f.Find(j)
}

// Count returns the number of disjoint sets currently in the forest.
//
// Complexity: O(1).
func (f *Forest) Count() int {
	return f.count
}

// Len returns the size of the universe the forest was built over.
//
// Complexity: O(1).
func (f *Forest) Len() int {
	return len(f.parent)
}
