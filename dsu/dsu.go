// SPDX-License-Identifier: MIT

package dsu

// DSU is a disjoint-set forest with path compression and union by rank.
type DSU struct {
	parent []int
	rank   []int
	sets   int
}

// New returns a forest of n singleton sets {0}, {1}, ..., {n-1}.
// Complexity: O(n).
func New(n int) *DSU {
	if n < 0 {
		n = 0
	}
	d := &DSU{
		parent: make([]int, n),
		rank:   make([]int, n),
		sets:   n,
	}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d
}

// Len returns the number of elements the forest was built with.
func (d *DSU) Len() int { return len(d.parent) }

// Count returns the current number of disjoint sets.
func (d *DSU) Count() int { return d.sets }

// Find returns the representative of v's set.
// Iterative two-pass compression: locate the root, then point every node on
// the walked path straight at it.
func (d *DSU) Find(v int) int {
	root := v
	for d.parent[root] != root {
		root = d.parent[root]
	}
	for d.parent[v] != root {
		next := d.parent[v]
		d.parent[v] = root
		v = next
	}

	return root
}

// Union merges the sets containing x and y and reports whether a merge took
// place. The root of smaller rank is attached under the larger one; on equal
// ranks x's root wins and its rank grows by one.
func (d *DSU) Union(x, y int) bool {
	if x == y {
		return false
	}
	rootX, rootY := d.Find(x), d.Find(y)
	if rootX == rootY {
		return false
	}
	switch {
	case d.rank[rootX] < d.rank[rootY]:
		d.parent[rootX] = rootY
	case d.rank[rootX] > d.rank[rootY]:
		d.parent[rootY] = rootX
	default:
		d.parent[rootY] = rootX
		d.rank[rootX]++
	}
	d.sets--

	return true
}

// Connected reports whether x and y belong to the same set.
func (d *DSU) Connected(x, y int) bool {
	return d.Find(x) == d.Find(y)
}
