package btree

import (
	"cmp"
	"fmt"
	"math/rand"
	"testing"
)

// checkInvariants walks tr and fails t if any B-tree shape invariant
// is violated: equal leaf depth, key counts within [minKeys, maxKeys]
// (root excepted), strictly increasing keys within a node, and every
// internal node having exactly n.n+1 children.
func checkInvariants[K cmp.Ordered](t *testing.T, tr *Tree[K]) {
	t.Helper()
	if tr.root == nil {
		return
	}
	leafDepths := map[int]bool{}
	var walk func(n *node[K], depth int, isRoot bool)
	walk = func(n *node[K], depth int, isRoot bool) {
		if n.n > tr.maxKeys() {
			t.Fatalf("node at depth %d has %d keys, exceeds max %d", depth, n.n, tr.maxKeys())
		}
		if !isRoot && n.n < tr.minKeys() {
			t.Fatalf("non-root node at depth %d has %d keys, below min %d", depth, n.n, tr.minKeys())
		}
		if isRoot && n.n == 0 && !n.leaf {
			t.Fatalf("root has 0 keys but is not a leaf")
		}
		for i := 1; i < n.n; i++ {
			if !cmpLess(n.keys[i-1], n.keys[i]) {
				t.Fatalf("keys not strictly increasing at depth %d: %v, %v", depth, n.keys[i-1], n.keys[i])
			}
		}
		if n.leaf {
			leafDepths[depth] = true
			return
		}
		childCount := 0
		for i := 0; i <= n.n; i++ {
			if n.children[i] != nil {
				childCount++
			}
		}
		if childCount != n.n+1 {
			t.Fatalf("internal node at depth %d has %d children, want %d", depth, childCount, n.n+1)
		}
		for i := 0; i <= n.n; i++ {
			walk(n.children[i], depth+1, false)
		}
	}
	walk(tr.root, 0, true)
	if len(leafDepths) > 1 {
		t.Fatalf("leaves at unequal depths: %v", leafDepths)
	}
}

func cmpLess[K cmp.Ordered](a, b K) bool { return a < b }

// TestPropertyRandomSequence exercises randomized insert/delete
// streams against a shadow map across a handful of orders, checking
// every Delete result against the map as it goes and, once the stream
// ends, shape invariants, search results and traversal order.
func TestPropertyRandomSequence(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, order := range []int{3, 4, 5, 6, 8, 16} {
		t.Run(fmt.Sprintf("order=%d", order), func(t *testing.T) {
			tr := New[int](order)
			present := map[int][]byte{}
			const universe = 300
			for i := 0; i < 4000; i++ {
				key := rng.Intn(universe)
				if rng.Intn(3) == 0 {
					wasPresent := present[key] != nil
					got := tr.Delete(key)
					if got != wasPresent {
						t.Fatalf("Delete(%d) = %v, want %v", key, got, wasPresent)
					}
					delete(present, key)
				} else {
					value := []byte(fmt.Sprintf("v%d-%d", key, i))
					tr.Insert(key, value)
					present[key] = value
				}
			}
			checkInvariants(t, tr)

			for key := 0; key < universe; key++ {
				want, wantOK := present[key]
				got, gotOK := tr.Search(key)
				if gotOK != wantOK {
					t.Fatalf("Search(%d) ok=%v, want %v", key, gotOK, wantOK)
				}
				if gotOK && string(got) != string(want) {
					t.Fatalf("Search(%d) = %q, want %q", key, got, want)
				}
			}

			prevKey, hasPrev := 0, false
			count := 0
			tr.Traverse(func(k int, v []byte) bool {
				if hasPrev && k <= prevKey {
					t.Fatalf("traversal out of order: %d after %d", k, prevKey)
				}
				prevKey, hasPrev = k, true
				count++
				return true
			})
			if count != len(present) {
				t.Fatalf("traversal yielded %d keys, want %d", count, len(present))
			}
		})
	}
}

func TestTraverseEarlyStop(t *testing.T) {
	tr := New[int](4)
	for i := 0; i < 20; i++ {
		tr.Insert(i, []byte(fmt.Sprint(i)))
	}
	var seen []int
	tr.Traverse(func(k int, _ []byte) bool {
		seen = append(seen, k)
		return k < 5
	})
	if len(seen) != 7 {
		t.Fatalf("early-stop traversal visited %d keys, want 7 (0..6)", len(seen))
	}
}
