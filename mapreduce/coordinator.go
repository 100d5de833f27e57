package mapreduce

import (
	"bufio"
	"io"
	"strconv"
	"sync"

	"github.com/go-coretools/btmr/gatomic"
	"golang.org/x/xerrors"
)

// Phase values reported by Coordinator.Phase, in the order a job
// passes through them. The reference prints a progress line at each
// of these transitions ("Map phase started", "Map phase completed",
// and so on); Phase exposes the same transitions as a value a caller
// can poll instead.
const (
	PhaseIdle int32 = iota
	PhaseMapping
	PhaseSorting
	PhaseReducing
	PhaseDone
)

// WMax is the largest worker count Configure accepts.
const WMax = 16

// scannerMaxToken bounds how long a single line IngestLines will
// accept before KVList.add truncates it to maxValueLen anyway.
const scannerMaxToken = 1 << 20

// Emit is the capability a map or reduce callback uses to append a
// (key, value) pair to the current phase's output.
type Emit func(key, value string)

// MapFunc transforms one input pair into zero or more intermediate
// pairs via emit.
type MapFunc func(key, value string, emit Emit)

// ReduceFunc receives a key and the values grouped under it and emits
// zero or more output pairs via emit. The values are not in any
// defined order: partitions are sorted by key with an unstable sort.
type ReduceFunc func(key string, values []string, emit Emit)

// Coordinator drives a single MapReduce job: it owns the input and
// output lists, the hash-partitioned intermediate storage, and the
// worker pool that executes the user's map and reduce callbacks. A
// Coordinator runs at most one job; construct a new one per job.
type Coordinator struct {
	input    KVList
	output   KVList
	outputMu sync.Mutex

	partitions [partitionCount]partition

	w        int
	mapFn    MapFunc
	reduceFn ReduceFunc
	barrier  *barrier

	ran   bool
	phase int32
	stats *Stats
}

// New returns an unconfigured Coordinator. Call Configure before
// Ingest or Run.
func New() *Coordinator {
	return &Coordinator{}
}

// Configure binds the worker count and the user callbacks, and
// allocates the phase barrier (the partitions and their locks are
// part of the Coordinator value itself). w
// must satisfy 1 <= w <= WMax; mapFn and reduceFn must be non-nil.
// Configure must be called exactly once, before Ingest or Run.
func (c *Coordinator) Configure(w int, mapFn MapFunc, reduceFn ReduceFunc) error {
	switch {
	case w < 1 || w > WMax:
		return &ConfigurationError{Reason: "worker count out of range [1, " + strconv.Itoa(WMax) + "]"}
	case mapFn == nil:
		return &ConfigurationError{Reason: "map function is nil"}
	case reduceFn == nil:
		return &ConfigurationError{Reason: "reduce function is nil"}
	}
	c.w = w
	c.mapFn = mapFn
	c.reduceFn = reduceFn
	c.barrier = newBarrier(w + 1)
	return nil
}

// Ingest appends one (key, value) pair to the job's input list.
// Ingest must be called before Run.
func (c *Coordinator) Ingest(key, value string) {
	c.input.add(key, value)
}

// IngestLines reads r line by line, ingesting each line as a pair
// keyed by its decimal line index starting from 0, with the value
// being the line's contents (without its trailing newline).
func (c *Coordinator) IngestLines(r io.Reader) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), scannerMaxToken)
	for i := 0; sc.Scan(); i++ {
		c.Ingest(strconv.Itoa(i), sc.Text())
	}
	if err := sc.Err(); err != nil {
		return xerrors.Errorf("mapreduce: reading input lines: %w", err)
	}
	return nil
}

// Run executes the configured job to completion, blocking until the
// output list is complete. Run may be called at most once per
// Coordinator. If no input has been ingested, Run returns
// ErrEmptyInput without spawning any worker.
func (c *Coordinator) Run() error {
	if c.ran {
		return xerrors.New("mapreduce: Run called more than once")
	}
	c.ran = true
	if c.barrier == nil {
		return &ConfigurationError{Reason: "Run called before Configure"}
	}
	if c.input.Len() == 0 {
		return ErrEmptyInput
	}

	var wg sync.WaitGroup
	wg.Add(c.w)
	for id := 0; id < c.w; id++ {
		id := id
		go func() {
			defer wg.Done()
			c.runWorker(id)
		}()
	}

	gatomic.StoreInt32(&c.phase, PhaseMapping)
	c.barrier.wait() // release workers into the map phase
	c.barrier.wait() // wait for the map phase to complete

	gatomic.StoreInt32(&c.phase, PhaseSorting)
	c.snapshotStats()
	for i := range c.partitions {
		c.partitions[i].list.SortByKey()
	}

	gatomic.StoreInt32(&c.phase, PhaseReducing)
	c.barrier.wait() // release workers into the reduce phase
	c.barrier.wait() // wait for the reduce phase to complete

	wg.Wait()
	gatomic.StoreInt32(&c.phase, PhaseDone)
	c.snapshotStats()
	return nil
}

// Phase reports which step of the job is currently executing. It is
// safe to call concurrently with Run.
func (c *Coordinator) Phase() int32 {
	return gatomic.LoadInt32(&c.phase)
}

// LiveStats returns the most recent Stats snapshot taken during Run,
// or nil until the map phase has completed (the first snapshot is
// taken on entering PhaseSorting). It is
// safe to call concurrently with Run, for progress reporting from
// another goroutine.
func (c *Coordinator) LiveStats() *Stats {
	return gatomic.LoadPointer(&c.stats)
}

func (c *Coordinator) snapshotStats() {
	s := c.Stats()
	gatomic.StorePointer(&c.stats, &s)
}

// runWorker is the body of one worker goroutine: it rendezvouses at
// the barrier four times, once per coordination step described in
// Run, executing its share of the map phase between the first pair
// and its share of the reduce phase between the second pair.
func (c *Coordinator) runWorker(id int) {
	c.barrier.wait()
	c.runMapPhase(id)
	c.barrier.wait()
	c.barrier.wait()
	c.runReducePhase(id)
	c.barrier.wait()
}

// TakeOutput returns a copy of the job's output pairs. It is only
// meaningful after Run has returned nil.
func (c *Coordinator) TakeOutput() []KV {
	return append([]KV(nil), c.output.items...)
}

// Stats summarizes a completed (or in-progress) job: how many pairs
// were ingested, how many were produced, and how the intermediate
// results spread across partitions.
type Stats struct {
	InputCount     int
	OutputCount    int
	PartitionSizes [partitionCount]int
}

// Stats reports the Coordinator's current counters. Safe to call
// after Run returns; calling it concurrently with Run is racy on the
// output count, since the reduce phase is still appending.
func (c *Coordinator) Stats() Stats {
	var s Stats
	s.InputCount = c.input.Len()
	s.OutputCount = c.output.Len()
	for i := range c.partitions {
		s.PartitionSizes[i] = c.partitions[i].list.Len()
	}
	return s
}
