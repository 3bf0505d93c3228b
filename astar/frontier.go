package astar

// entry is one frontier record. A word may have several entries; only the
// one whose cost matches state.cost is live, the rest are skipped on pop.
type entry struct {
	word     string
	cost     int // cost-so-far when pushed
	priority int // cost + heuristic
}

// frontier is a min-heap of *entry ordered by priority, then word.
type frontier []*entry

// Len returns the number of entries in the heap.
func (f frontier) Len() int { return len(f) }

// Less orders by lower priority first; equal priorities fall back to the
// lexicographically smaller word so that pops are deterministic.
func (f frontier) Less(i, j int) bool {
	if f[i].priority != f[j].priority {
		return f[i].priority < f[j].priority
	}

	return f[i].word < f[j].word
}

// Swap swaps two elements in the heap.
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push is called by heap.Push; x must be *entry.
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(*entry)) }

// Pop is called by heap.Pop.
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]

	return item
}
