// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dedup

import "testing"

func TestUnionFindGroups(t *testing.T) {
	uf := newUnionFind()
	uf.union(1, 2)
	uf.union(3, 4)
	uf.union(2, 3) // merges the two groups
	uf.union(7, 8)

	groups := uf.groups()
	if len(groups) != 2 {
		t.Fatalf("groups = %d, want 2", len(groups))
	}
	if len(groups[0]) != 4 {
		t.Errorf("merged group size = %d, want 4", len(groups[0]))
	}
	if len(groups[1]) != 2 {
		t.Errorf("second group size = %d, want 2", len(groups[1]))
	}
}

func TestUnionFindDisjointGroupsShareNoID(t *testing.T) {
	uf := newUnionFind()
	uf.union(0, 1)
	uf.union(2, 3)
	uf.union(4, 5)

	seen := make(map[int]int)
	for gi, group := range uf.groups() {
		for _, id := range group {
			if prev, ok := seen[id]; ok {
				t.Errorf("id %d appears in groups %d and %d", id, prev, gi)
			}
			seen[id] = gi
		}
	}
}

func TestUnionFindSelfUnionNoGroup(t *testing.T) {
	uf := newUnionFind()
	uf.union(5, 5)
	if groups := uf.groups(); len(groups) != 0 {
		t.Errorf("groups = %v, want none for self-union", groups)
	}
}

func TestUnionFindMemberOrderFollowsFirstAppearance(t *testing.T) {
	uf := newUnionFind()
	uf.union(9, 4)
	uf.union(4, 2)

	groups := uf.groups()
	if len(groups) != 1 {
		t.Fatalf("groups = %d, want 1", len(groups))
	}
	want := []int{9, 4, 2}
	for i, id := range groups[0] {
		if id != want[i] {
			t.Errorf("member[%d] = %d, want %d", i, id, want[i])
		}
	}
}
