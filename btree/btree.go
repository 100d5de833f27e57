// Package btree implements an in-memory ordered key/value index backed
// by a balanced B-tree of configurable order.
//
// A Tree supports point lookup, insertion, deletion and in-order
// traversal; balance (split on insert, borrow/merge on delete) is
// maintained automatically so that every leaf stays at the same depth.
// A Tree is not safe for concurrent use: all mutating and reading
// operations must be serialized by the caller.
package btree

import "cmp"

// Tree is an ordered index mapping keys of type K to owned byte
// payloads. The zero Tree is not usable; construct one with New.
type Tree[K cmp.Ordered] struct {
	root  *node[K]
	order int // M: maximum children per node
}

// New returns an empty Tree of the given order. Order is the maximum
// number of children a node may have (so at most order-1 keys per
// node). Orders below 4 are rounded up to 4: splitting a full node of
// an order-3 tree (two keys) would promote one key and leave the other
// half empty.
func New[K cmp.Ordered](order int) *Tree[K] {
	if order < 4 {
		order = 4
	}
	return &Tree[K]{order: order}
}

// Order returns the configured maximum number of children per node.
func (t *Tree[K]) Order() int {
	return t.order
}

// minDegree returns the minimum number of children a non-root node
// may have, and so the threshold used when deciding whether a child
// needs filling before a delete descends into it.
//
// The split point used by Insert promotes key index ceil(order/2)-1,
// giving the two resulting halves ceil(order/2)-1 and
// order-1-ceil(order/2) keys respectively; for an odd order those two
// counts differ by one, so the smaller (floor(order/2)-1) is the true
// worst case a node can hold right after a split. Using order/2
// (integer, i.e. floor) here - rather than the ceil(order/2) spec
// text would suggest in isolation - keeps the fill threshold and the
// merge result within node capacity for every order, not only even
// ones.
func (t *Tree[K]) minDegree() int {
	return t.order / 2
}

// maxKeys returns the maximum number of keys a node may hold: order-1.
func (t *Tree[K]) maxKeys() int {
	return t.order - 1
}

// minKeys returns the minimum number of keys a non-root node may hold:
// minDegree-1.
func (t *Tree[K]) minKeys() int {
	return t.minDegree() - 1
}

// IsEmpty reports whether the tree holds no keys.
func (t *Tree[K]) IsEmpty() bool {
	return t.root == nil
}

// Len returns the total number of keys stored in the tree. O(n).
func (t *Tree[K]) Len() int {
	return countKeys(t.root)
}

func countKeys[K cmp.Ordered](n *node[K]) int {
	if n == nil {
		return 0
	}
	total := n.n
	if !n.leaf {
		for _, c := range n.children {
			total += countKeys(c)
		}
	}
	return total
}

// Height returns the number of levels in the tree (0 for an empty
// tree, 1 for a tree with only a leaf root).
func (t *Tree[K]) Height() int {
	h := 0
	for n := t.root; n != nil; {
		h++
		if n.leaf {
			break
		}
		n = n.children[0]
	}
	return h
}

// Search looks up key and reports whether it is present, returning a
// view onto its stored value if so. The returned slice aliases the
// tree's internal storage; callers must not mutate it.
func (t *Tree[K]) Search(key K) (value []byte, ok bool) {
	return search(t.root, key)
}

// Destroy releases every node and payload in the tree. The Tree is
// empty and reusable afterwards; Destroy need not be called before a
// Tree is garbage collected, but it mirrors the teardown step the
// original C implementation required explicitly.
func (t *Tree[K]) Destroy() {
	t.root = nil
}
