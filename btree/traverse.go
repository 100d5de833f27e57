package btree

import (
	"cmp"
	"fmt"
	"io"
	"strings"
)

// Traverse visits every (key, value) pair in ascending key order,
// calling visit for each. Traverse stops early if visit returns
// false.
func (t *Tree[K]) Traverse(visit func(key K, value []byte) bool) {
	traverseNode(t.root, visit)
}

func traverseNode[K cmp.Ordered](n *node[K], visit func(K, []byte) bool) bool {
	if n == nil {
		return true
	}
	for i := 0; i < n.n; i++ {
		if !n.leaf {
			if !traverseNode(n.children[i], visit) {
				return false
			}
		}
		if !visit(n.keys[i], n.values[i]) {
			return false
		}
	}
	if !n.leaf {
		if !traverseNode(n.children[n.n], visit) {
			return false
		}
	}
	return true
}

// All returns an iterator over every (key, value) pair in ascending
// key order, for use with range-over-func:
//
//	for k, v := range t.All() {
//	    ...
//	}
func (t *Tree[K]) All() func(yield func(K, []byte) bool) {
	return func(yield func(K, []byte) bool) {
		t.Traverse(yield)
	}
}

// Dump writes a depth-annotated rendering of the tree to w, marking
// each node as a leaf or internal node. It exists strictly for
// debugging and tests; its output format is not a stable API.
func (t *Tree[K]) Dump(w io.Writer) {
	if t.root == nil {
		fmt.Fprintln(w, "(empty tree)")
		return
	}
	dumpNode(w, t.root, 0)
}

func dumpNode[K cmp.Ordered](w io.Writer, n *node[K], depth int) {
	indent := strings.Repeat("  ", depth)
	kind := "internal"
	if n.leaf {
		kind = "leaf"
	}
	keys := make([]string, n.n)
	for i := 0; i < n.n; i++ {
		keys[i] = fmt.Sprint(n.keys[i])
	}
	fmt.Fprintf(w, "%sdepth=%d %s [%s]\n", indent, depth, kind, strings.Join(keys, " "))
	if !n.leaf {
		for i := 0; i <= n.n; i++ {
			dumpNode(w, n.children[i], depth+1)
		}
	}
}
