package btree

import "cmp"

// node is a single B-tree node: up to order-1 (key, value) slots in
// keys[0:n]/values[0:n], and for an internal node exactly n+1 children.
// Subtree children[i] holds keys strictly less than keys[i]; children[n]
// holds keys strictly greater than keys[n-1].
type node[K cmp.Ordered] struct {
	leaf     bool
	n        int
	keys     []K
	values   [][]byte
	children []*node[K]
}

func newNode[K cmp.Ordered](order int, leaf bool) *node[K] {
	nd := &node[K]{
		leaf:   leaf,
		keys:   make([]K, order-1),
		values: make([][]byte, order-1),
	}
	if !leaf {
		nd.children = make([]*node[K], order)
	}
	return nd
}

// search returns the first index i in [0, n.n] such that key <= n.keys[i],
// or n.n if key is greater than every key in the node.
func (n *node[K]) search(key K) int {
	i := 0
	for i < n.n && cmp.Less(n.keys[i], key) {
		i++
	}
	return i
}

// search descends from start, returning the stored value for key if present.
func search[K cmp.Ordered](start *node[K], key K) ([]byte, bool) {
	n := start
	for n != nil {
		i := n.search(key)
		if i < n.n && n.keys[i] == key {
			return n.values[i], true
		}
		if n.leaf {
			return nil, false
		}
		n = n.children[i]
	}
	return nil, false
}

// full reports whether n already holds the maximum number of keys for
// the tree's order, and so must be split before a new key descends
// through it.
func (t *Tree[K]) full(n *node[K]) bool {
	return n.n == t.maxKeys()
}

// insertKeyAt shifts keys/values right to make room at index i and
// stores (key, value) there. Callers must ensure there is spare
// capacity (n.n < len(n.keys)).
func (n *node[K]) insertKeyAt(i int, key K, value []byte) {
	copy(n.keys[i+1:n.n+1], n.keys[i:n.n])
	copy(n.values[i+1:n.n+1], n.values[i:n.n])
	n.keys[i] = key
	n.values[i] = value
	n.n++
}

// removeKeyAt removes the key/value at index i, shifting subsequent
// slots left, and clears the vacated tail slot.
func (n *node[K]) removeKeyAt(i int) (key K, value []byte) {
	key, value = n.keys[i], n.values[i]
	copy(n.keys[i:n.n-1], n.keys[i+1:n.n])
	copy(n.values[i:n.n-1], n.values[i+1:n.n])
	n.n--
	var zeroK K
	n.keys[n.n] = zeroK
	n.values[n.n] = nil
	return key, value
}

// insertChildAt shifts children right to make room at index i for c.
func (n *node[K]) insertChildAt(i int, c *node[K]) {
	copy(n.children[i+1:n.n+2], n.children[i:n.n+1])
	n.children[i] = c
}

// removeChildAt removes the child at index i, shifting subsequent
// children left, and clears the vacated tail slot.
func (n *node[K]) removeChildAt(i int) *node[K] {
	c := n.children[i]
	copy(n.children[i:n.n+1], n.children[i+1:n.n+2])
	n.children[n.n+1] = nil
	return c
}
