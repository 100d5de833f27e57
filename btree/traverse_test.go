package btree

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
)

func TestDump(t *testing.T) {
	tr := New[int](5)
	for _, k := range []int{10, 20, 5, 6, 12, 30, 7, 17} {
		tr.Insert(k, []byte(fmt.Sprint(k)))
	}
	var buf bytes.Buffer
	tr.Dump(&buf)
	out := buf.String()
	if !strings.Contains(out, "depth=0 internal") {
		t.Fatalf("Dump did not describe the root as internal:\n%s", out)
	}
	if strings.Count(out, "leaf") == 0 {
		t.Fatalf("Dump did not mark any leaves:\n%s", out)
	}
}

func TestDumpEmpty(t *testing.T) {
	tr := New[int](5)
	var buf bytes.Buffer
	tr.Dump(&buf)
	if got := buf.String(); got != "(empty tree)\n" {
		t.Fatalf("Dump of empty tree = %q", got)
	}
}

// TestDestroyReleasesAllPayloads confirms that after Destroy, the tree
// is empty and every key is unreachable.
func TestDestroyReleasesAllPayloads(t *testing.T) {
	tr := New[int](4)
	for i := 0; i < 100; i++ {
		tr.Insert(i, []byte(fmt.Sprint(i)))
	}
	tr.Destroy()
	if !tr.IsEmpty() {
		t.Fatal("tree not empty after Destroy")
	}
	if n := tr.Len(); n != 0 {
		t.Fatalf("Len() = %d after Destroy, want 0", n)
	}
	if _, ok := tr.Search(0); ok {
		t.Fatal("Search found a key after Destroy")
	}
}
