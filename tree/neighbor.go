package tree

// neighbor describes a candidate record surfaced by a kNN search.
type neighbor struct {
	record   *Record
	distance float32
}

// neighbors implements heap.Interface sorted by descending distance
// (max-heap), so the top is always the current k-th best candidate.
type neighbors []neighbor

func (h neighbors) Len() int           { return len(h) }
func (h neighbors) Less(i, j int) bool { return h[i].distance > h[j].distance }
func (h neighbors) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *neighbors) Push(x interface{}) {
	*h = append(*h, x.(neighbor))
}

func (h *neighbors) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// nodeItem pairs a node with its minDist lower bound for the search queue.
type nodeItem struct {
	node  *Node
	bound float32
}

// nodeQueue implements heap.Interface sorted by ascending lower bound
// (min-heap); the top is the most promising unexplored subtree.
type nodeQueue []nodeItem

func (q nodeQueue) Len() int            { return len(q) }
func (q nodeQueue) Less(i, j int) bool  { return q[i].bound < q[j].bound }
func (q nodeQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *nodeQueue) Push(x interface{}) { *q = append(*q, x.(nodeItem)) }
func (q *nodeQueue) Pop() interface{} {
	old := *q
	n := len(old)
	x := old[n-1]
	*q = old[:n-1]
	return x
}
