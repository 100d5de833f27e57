package mapreduce

import (
	"math/bits"
	"sort"
)

const (
	maxKeyLen      = 128
	maxValueLen    = 1024
	initialListCap = 64
)

// KV is a single key/value pair, as produced by ingestion, a map
// callback's emit, or a reduce callback's emit. Keys and values are
// truncated to maxKeyLen/maxValueLen on insertion into a KVList.
type KV struct {
	Key   string
	Value string
}

// KVList is an append-only list of KV pairs whose backing storage
// grows by doubling, the same way ring.Buffer grows its backing
// slice. Order is insertion order until SortByKey is called.
//
// The zero KVList is ready to use.
type KVList struct {
	items []KV
}

// Len returns the number of pairs in the list.
func (l *KVList) Len() int { return len(l.items) }

// At returns the i'th pair. It panics if i is out of range.
func (l *KVList) At(i int) KV { return l.items[i] }

// Pairs returns the list's pairs as a slice. The caller must not
// retain it across a subsequent add.
func (l *KVList) Pairs() []KV { return l.items }

// add appends a (key, value) pair, truncating each to its bounded
// maximum length.
func (l *KVList) add(key, value string) {
	if len(key) > maxKeyLen {
		key = key[:maxKeyLen]
	}
	if len(value) > maxValueLen {
		value = value[:maxValueLen]
	}
	l.ensureCap(len(l.items) + 1)
	l.items = append(l.items, KV{Key: key, Value: value})
}

// SortByKey sorts the list in ascending lexicographic key order. The
// sort is not guaranteed stable, matching the reference qsort.
func (l *KVList) SortByKey() {
	sort.Slice(l.items, func(i, j int) bool { return l.items[i].Key < l.items[j].Key })
}

func (l *KVList) reset() { l.items = l.items[:0] }

func (l *KVList) ensureCap(n int) {
	if n <= cap(l.items) {
		return
	}
	newCap := initialListCap
	if n > newCap {
		newCap = 1 << bits.Len(uint(n-1))
	}
	buf := make([]KV, len(l.items), newCap)
	copy(buf, l.items)
	l.items = buf
}
