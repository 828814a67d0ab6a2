package tree

import (
	"container/heap"
	"fmt"

	"github.com/viant/sstree/vector"
)

// KNN returns the min(k, Len()) records nearest to query, ascending by
// Euclidean distance. An empty tree or k <= 0 yields an empty result. The
// traversal is best-first branch-and-bound: subtrees are visited in order
// of their minDist lower bound and pruned once they cannot improve a full
// result set.
func (t *Tree) KNN(query vector.Vector, k int) ([]*Record, error) {
	if t.root == nil || k <= 0 {
		return nil, nil
	}
	if query.Dim() != t.dims {
		return nil, fmt.Errorf("tree: knn %w: %d vs %d", vector.ErrDimensionMismatch, query.Dim(), t.dims)
	}

	pending := &nodeQueue{}
	heap.Init(pending)
	heap.Push(pending, nodeItem{node: t.root, bound: t.root.minDist(query)})

	nearest := &neighbors{}
	heap.Init(nearest)

	for pending.Len() > 0 {
		item := heap.Pop(pending).(nodeItem)
		if nearest.Len() == k && item.bound > (*nearest)[0].distance {
			// The queue minimum cannot improve the result, so nothing
			// behind it can either.
			break
		}
		node := item.node
		if node.leaf {
			for _, r := range node.records {
				d := vector.Euclidean(query, r.Embedding)
				if nearest.Len() < k {
					heap.Push(nearest, neighbor{record: r, distance: d})
				} else if d < (*nearest)[0].distance {
					heap.Pop(nearest)
					heap.Push(nearest, neighbor{record: r, distance: d})
				}
			}
			continue
		}
		for _, child := range node.children {
			bound := child.minDist(query)
			if nearest.Len() == k && bound > (*nearest)[0].distance {
				continue
			}
			heap.Push(pending, nodeItem{node: child, bound: bound})
		}
	}

	result := make([]*Record, nearest.Len())
	for i := len(result) - 1; i >= 0; i-- {
		result[i] = heap.Pop(nearest).(neighbor).record
	}
	return result, nil
}
