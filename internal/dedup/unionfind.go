// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dedup

// unionFind maintains the connected components that duplicate matches form
// over article ids. Each union either creates a group, extends one, or
// merges two. The merge order is data-dependent, so this stage runs
// single-threaded after pair scoring.
type unionFind struct {
	parent map[int]int
	rank   map[int]int
	// order remembers first appearance of each id so group listings are
	// stable with respect to input order.
	order []int
}

func newUnionFind() *unionFind {
	return &unionFind{
		parent: make(map[int]int),
		rank:   make(map[int]int),
	}
}

func (u *unionFind) find(x int) int {
	if _, ok := u.parent[x]; !ok {
		u.parent[x] = x
		u.order = append(u.order, x)
		return x
	}
	root := x
	for u.parent[root] != root {
		root = u.parent[root]
	}
	// Path compression.
	for u.parent[x] != root {
		u.parent[x], x = root, u.parent[x]
	}
	return root
}

func (u *unionFind) union(a, b int) {
	ra, rb := u.find(a), u.find(b)
	if ra == rb {
		return
	}
	if u.rank[ra] < u.rank[rb] {
		ra, rb = rb, ra
	}
	u.parent[rb] = ra
	if u.rank[ra] == u.rank[rb] {
		u.rank[ra]++
	}
}

// groups returns the connected components with at least two members. Member
// order inside each group, and group order, follow first appearance.
func (u *unionFind) groups() [][]int {
	members := make(map[int][]int)
	var roots []int
	for _, id := range u.order {
		root := u.find(id)
		if _, ok := members[root]; !ok {
			roots = append(roots, root)
		}
		members[root] = append(members[root], id)
	}

	var out [][]int
	for _, root := range roots {
		if g := members[root]; len(g) > 1 {
			out = append(out, g)
		}
	}
	return out
}
