package mapreduce

import "sync"

// partitionCount is the number of hash-selected buckets intermediate
// pairs are routed into. It is fixed rather than configurable, and it
// equals WMax, so at the largest worker count each worker reduces a
// single partition.
const partitionCount = 16

// partition holds one shard of the intermediate results, guarded by
// its own lock. Map-phase workers append under the lock; once the
// sort barrier has passed, the list is read-only for the reduce
// phase and the lock is no longer needed.
type partition struct {
	mu   sync.Mutex
	list KVList
}
