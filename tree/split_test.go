package tree

import (
	"testing"

	"github.com/viant/sstree/vector"
)

func leafWith(maxEntries int, embeddings ...vector.Vector) *Node {
	n := newNode(embeddings[0].Clone(), true, maxEntries)
	for i, e := range embeddings {
		n.records = append(n.records, NewRecord(e, string(rune('a'+i))))
	}
	n.updateEnvelope()
	return n
}

func TestDirectionOfMaxVariance(t *testing.T) {
	// Spread along dimension 1 dominates.
	n := leafWith(4,
		vector.Vector{0, 0},
		vector.Vector{0.1, 5},
		vector.Vector{0.2, 10},
	)
	if dim := n.directionOfMaxVariance(); dim != 1 {
		t.Fatalf("directionOfMaxVariance = %d, want 1", dim)
	}
}

func TestDirectionOfMaxVariance_TieKeepsSmallest(t *testing.T) {
	n := leafWith(4,
		vector.Vector{0, 0},
		vector.Vector{1, 1},
	)
	if dim := n.directionOfMaxVariance(); dim != 0 {
		t.Fatalf("equal variances should keep dimension 0, got %d", dim)
	}
}

func TestMinVarianceSplit(t *testing.T) {
	n := newNode(vector.Vector{0}, true, 4)
	// Two tight clusters: the cheapest cut separates them.
	values := []float64{0, 0.1, 9.9, 10, 10.1}
	if idx := n.minVarianceSplit(values); idx != 2 {
		t.Fatalf("minVarianceSplit = %d, want 2", idx)
	}
}

func TestMinVarianceSplit_ClippedCandidates(t *testing.T) {
	n := newNode(vector.Vector{0}, true, 10)
	// Only three values: candidates clip to [1, 2] even though M-1 = 9.
	values := []float64{0, 5, 10}
	idx := n.minVarianceSplit(values)
	if idx < 1 || idx > 2 {
		t.Fatalf("minVarianceSplit = %d, want within [1, 2]", idx)
	}
}

func TestSplit_Leaf(t *testing.T) {
	n := leafWith(4,
		vector.Vector{0, 0},
		vector.Vector{0, 1},
		vector.Vector{10, 0},
		vector.Vector{10, 1},
		vector.Vector{0, 0.5},
	)
	left, right := n.split()

	if !left.IsLeaf() || !right.IsLeaf() {
		t.Fatalf("leaf split should produce leaves")
	}
	total := len(left.Records()) + len(right.Records())
	if total != 5 {
		t.Fatalf("split lost records: %d + %d != 5", len(left.Records()), len(right.Records()))
	}
	if len(left.Records()) == 0 || len(right.Records()) == 0 {
		t.Fatalf("split produced an empty sibling")
	}
	for _, sibling := range []*Node{left, right} {
		for _, r := range sibling.Records() {
			if d := vector.Euclidean(sibling.Centroid(), r.Embedding); d > sibling.Radius()+tolerance {
				t.Fatalf("sibling sphere does not cover its records: %v > %v", d, sibling.Radius())
			}
		}
	}
	// The x-axis gap dominates, so the clusters must not be mixed.
	for _, r := range left.Records() {
		for _, s := range right.Records() {
			if r.Embedding[0] == s.Embedding[0] {
				t.Fatalf("cluster straddles the split: %v in both siblings", r.Embedding[0])
			}
		}
	}
}

func TestSplit_Internal(t *testing.T) {
	// With M = 2 the inserts overflow leaves and then an internal node,
	// so internal splits run; verify the resulting tree's invariants.
	tr := mustTree(t, 2)
	records := []*Record{
		NewRecord(vector.Vector{0, 0}, "a"),
		NewRecord(vector.Vector{1, 0}, "b"),
		NewRecord(vector.Vector{10, 0}, "c"),
		NewRecord(vector.Vector{11, 0}, "d"),
		NewRecord(vector.Vector{20, 0}, "e"),
	}
	insertAll(t, tr, records)
	root := tr.Root()
	if root.IsLeaf() {
		t.Fatalf("root should be internal")
	}
	checkInvariants(t, tr, records)
}

func TestUpdateEnvelope_Idempotent(t *testing.T) {
	n := leafWith(4, vector.Vector{0, 0}, vector.Vector{2, 2})
	c1 := n.Centroid().Clone()
	r1 := n.Radius()
	n.updateEnvelope()
	if d := vector.Euclidean(c1, n.Centroid()); d != 0 || n.Radius() != r1 {
		t.Fatalf("updateEnvelope not idempotent: moved %v, radius %v -> %v", d, r1, n.Radius())
	}
}
