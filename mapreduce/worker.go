package mapreduce

// runMapPhase processes this worker's contiguous slice of the input
// list: worker id owns [id*perWorker, (id+1)*perWorker), with the
// last worker absorbing any remainder. Each input pair is run through
// mapFn into a small per-pair buffer, then every emitted pair is
// routed to partitions[hash(key)%partitionCount] under that
// partition's lock.
func (c *Coordinator) runMapPhase(id int) {
	n := c.input.Len()
	start, end := workerSlice(id, c.w, n)

	var local KVList
	emit := func(key, value string) { local.add(key, value) }

	for i := start; i < end; i++ {
		in := c.input.items[i]
		local.reset()
		c.mapFn(in.Key, in.Value, emit)
		for _, out := range local.items {
			p := hashString(out.Key) % partitionCount
			part := &c.partitions[p]
			part.mu.Lock()
			part.list.add(out.Key, out.Value)
			part.mu.Unlock()
		}
	}
}

// runReducePhase processes this worker's contiguous slab of
// partitions: worker id owns [id*perWorker, (id+1)*perWorker), with
// the last worker absorbing any remainder. Each partition has
// already been sorted by key (by the coordinator, between the map
// and reduce barriers), so equal keys form contiguous runs; each run
// is packaged into a values slice and passed to reduceFn once.
func (c *Coordinator) runReducePhase(id int) {
	start, end := workerSlice(id, c.w, partitionCount)

	var local KVList
	emit := func(key, value string) { local.add(key, value) }

	for pi := start; pi < end; pi++ {
		list := &c.partitions[pi].list
		items := list.items
		for i := 0; i < len(items); {
			key := items[i].Key
			j := i
			var values []string
			for j < len(items) && items[j].Key == key {
				values = append(values, items[j].Value)
				j++
			}

			local.reset()
			c.reduceFn(key, values, emit)

			c.outputMu.Lock()
			for _, out := range local.items {
				c.output.add(out.Key, out.Value)
			}
			c.outputMu.Unlock()

			i = j
		}
	}
}

// workerSlice divides n items among numWorkers contiguous workers,
// returning the [start, end) half-open range owned by worker id. The
// last worker absorbs any remainder from integer division.
func workerSlice(id, numWorkers, n int) (start, end int) {
	perWorker := n / numWorkers
	start = id * perWorker
	end = start + perWorker
	if id == numWorkers-1 {
		end = n
	}
	return start, end
}
