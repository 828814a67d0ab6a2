package tree

import "github.com/viant/sstree/vector"

// Node is a single SS-tree node: a bounding sphere (centroid, radius) over
// either records (leaf) or child nodes (internal). Entry counts never exceed
// the tree's branching factor between operations.
type Node struct {
	centroid   vector.Vector
	radius     float32
	leaf       bool
	records    []*Record
	children   []*Node
	maxEntries int
}

func newNode(centroid vector.Vector, leaf bool, maxEntries int) *Node {
	return &Node{centroid: centroid, leaf: leaf, maxEntries: maxEntries}
}

// IsLeaf reports whether the node stores records rather than children.
func (n *Node) IsLeaf() bool { return n.leaf }

// Centroid returns the center of the node's bounding sphere.
func (n *Node) Centroid() vector.Vector { return n.centroid }

// Radius returns the radius of the node's bounding sphere.
func (n *Node) Radius() float32 { return n.radius }

// Children returns the child nodes of an internal node; nil for leaves.
func (n *Node) Children() []*Node { return n.children }

// Records returns the records held by a leaf; nil for internal nodes.
func (n *Node) Records() []*Record { return n.records }

// intersects reports whether the point lies inside the bounding sphere.
func (n *Node) intersects(point vector.Vector) bool {
	return vector.Euclidean(n.centroid, point) <= n.radius
}

// minDist returns a lower bound on the distance from query to any point
// enclosed by the node's sphere: max(0, dist(query, centroid) - radius).
func (n *Node) minDist(query vector.Vector) float32 {
	d := vector.Euclidean(query, n.centroid) - n.radius
	if d < 0 {
		return 0
	}
	return d
}

// entriesCentroids returns the centroids of the node's entries: record
// embeddings for leaves, child centroids for internal nodes.
func (n *Node) entriesCentroids() []vector.Vector {
	if n.leaf {
		out := make([]vector.Vector, len(n.records))
		for i, r := range n.records {
			out[i] = r.Embedding
		}
		return out
	}
	out := make([]vector.Vector, len(n.children))
	for i, c := range n.children {
		out[i] = c.centroid
	}
	return out
}

// updateEnvelope recomputes the centroid and radius from the current entry
// set. The centroid is the mean of the entry centroids; the radius is the
// tightest value covering every record (leaf) or child sphere (internal).
// It must be re-run on every ancestor of a mutated leaf, bottom-up.
func (n *Node) updateEnvelope() {
	centroids := n.entriesCentroids()
	if len(centroids) == 0 {
		return
	}
	mean, err := vector.Mean(centroids)
	if err != nil {
		// Entries of one node always share the tree's dimensionality.
		panic("tree: " + err.Error())
	}
	n.centroid = mean

	var maxRadius float32
	if n.leaf {
		for _, r := range n.records {
			if d := vector.Euclidean(n.centroid, r.Embedding); d > maxRadius {
				maxRadius = d
			}
		}
	} else {
		for _, c := range n.children {
			if d := vector.Euclidean(n.centroid, c.centroid) + c.radius; d > maxRadius {
				maxRadius = d
			}
		}
	}
	n.radius = maxRadius
}

// findClosestChild returns the child whose centroid is closest to target;
// ties keep the earliest child.
func (n *Node) findClosestChild(target vector.Vector) *Node {
	var closest *Node
	best := float32(0)
	for _, c := range n.children {
		d := vector.Euclidean(c.centroid, target)
		if closest == nil || d < best {
			closest = c
			best = d
		}
	}
	return closest
}
