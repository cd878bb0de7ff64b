package dataeval

// UnionFind is a disjoint-set forest with path compression and union by
// size. It holds 2*n - 1 elements: original samples 0..n-1 and the merged
// linkage ids n..2n-2 that Linkage hands out.
type UnionFind struct {
	parent []int
	size   []int
	// nextLabel is the id given to the next linkage merge, starting at n.
	nextLabel int
}

// NewUnionFind creates a UnionFind for n samples.
func NewUnionFind(n int) *UnionFind {
	total := max(2*n-1, 1)
	parent := make([]int, total)
	size := make([]int, total)
	for i := range parent {
		parent[i] = -1 // root
	}
	for i := 0; i < n; i++ {
		size[i] = 1
	}
	return &UnionFind{
		parent:    parent,
		size:      size,
		nextLabel: n,
	}
}

// Find returns the root of the set containing x, with path compression.
func (uf *UnionFind) Find(x int) int {
	root := x
	for uf.parent[root] != -1 {
		root = uf.parent[root]
	}
	for uf.parent[x] != -1 {
		x, uf.parent[x] = uf.parent[x], root
	}
	return root
}

// Union merges the sets containing x and y by attaching the smaller tree
// under the larger. Returns the new root.
func (uf *UnionFind) Union(x, y int) int {
	rootX := uf.Find(x)
	rootY := uf.Find(y)
	if rootX == rootY {
		return rootX
	}

	if uf.size[rootX] < uf.size[rootY] {
		rootX, rootY = rootY, rootX
	}
	uf.parent[rootY] = rootX
	uf.size[rootX] += uf.size[rootY]
	return rootX
}

// Relabel merges the roots a and b under a fresh linkage id and returns
// that id together with the merged size. a and b must be distinct roots.
func (uf *UnionFind) Relabel(a, b int) (id, size int) {
	id = uf.nextLabel
	size = uf.size[a] + uf.size[b]
	uf.size[id] = size
	uf.parent[a] = id
	uf.parent[b] = id
	uf.nextLabel++
	return id, size
}
