package tree

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// split partitions an overfull node into two siblings along the axis of
// maximum coordinate variance, cutting at the index that minimizes the sum
// of the two partitions' variances. Both siblings share the original's leaf
// flag and come back with fresh envelopes.
func (n *Node) split() (*Node, *Node) {
	dim := n.directionOfMaxVariance()
	splitIndex := n.findSplitIndex(dim)

	left := newNode(n.centroid.Clone(), n.leaf, n.maxEntries)
	right := newNode(n.centroid.Clone(), n.leaf, n.maxEntries)

	if n.leaf {
		left.records = append([]*Record(nil), n.records[:splitIndex]...)
		right.records = append([]*Record(nil), n.records[splitIndex:]...)
	} else {
		left.children = append([]*Node(nil), n.children[:splitIndex]...)
		right.children = append([]*Node(nil), n.children[splitIndex:]...)
	}

	left.updateEnvelope()
	right.updateEnvelope()
	return left, right
}

// directionOfMaxVariance returns the dimension along which the entry
// centroids have the highest population variance; ties keep the smallest
// index.
func (n *Node) directionOfMaxVariance() int {
	centroids := n.entriesCentroids()
	dims := len(centroids[0])
	values := make([]float64, len(centroids))

	direction := 0
	highest := 0.0
	for dim := 0; dim < dims; dim++ {
		for i, c := range centroids {
			values[i] = float64(c[dim])
		}
		if v := stat.PopVariance(values, nil); v > highest {
			highest = v
			direction = dim
		}
	}
	return direction
}

// findSplitIndex orders the entries ascending by the chosen coordinate and
// returns the minimum-variance cut index. The sort mutates the entry order,
// which is what lets split slice the partitions directly.
func (n *Node) findSplitIndex(dim int) int {
	var values []float64
	if n.leaf {
		sort.Slice(n.records, func(i, j int) bool {
			return n.records[i].Embedding[dim] < n.records[j].Embedding[dim]
		})
		values = make([]float64, len(n.records))
		for i, r := range n.records {
			values[i] = float64(r.Embedding[dim])
		}
	} else {
		sort.Slice(n.children, func(i, j int) bool {
			return n.children[i].centroid[dim] < n.children[j].centroid[dim]
		})
		values = make([]float64, len(n.children))
		for i, c := range n.children {
			values[i] = float64(c.centroid[dim])
		}
	}
	return n.minVarianceSplit(values)
}

// minVarianceSplit returns the index i minimizing
// var(values[:i]) + var(values[i:]) over candidates [m, M-m] with minimum
// occupancy m = 1, clipped to [1, len(values)-1]; ties keep the smallest i.
func (n *Node) minVarianceSplit(values []float64) int {
	lo, hi := 1, n.maxEntries-1
	if last := len(values) - 1; last < hi {
		hi = last
	}

	best := lo
	minSum := math.MaxFloat64
	for i := lo; i <= hi; i++ {
		sum := stat.PopVariance(values[:i], nil) + stat.PopVariance(values[i:], nil)
		if sum < minSum {
			minSum = sum
			best = i
		}
	}
	return best
}
