package sstree

import (
	"fmt"
	"time"

	"github.com/viant/sstree/index/bruteforce"
	"github.com/viant/sstree/metrics"
	"github.com/viant/sstree/tree"
	"github.com/viant/sstree/vector"
)

const metricsLabel = "sstree"

// Index answers kNN queries through an SS-tree built from (id, embedding)
// pairs.
type Index struct {
	maxEntries int
	tree       *tree.Tree
	ids        []string
	vecs       []vector.Vector
}

// Option mutates index construction parameters.
type Option func(*Index)

// WithMaxEntries overrides the tree's branching factor.
func WithMaxEntries(maxEntries int) Option {
	return func(i *Index) { i.maxEntries = maxEntries }
}

// New constructs an empty index; Build populates it.
func New(options ...Option) *Index {
	result := &Index{maxEntries: tree.DefaultMaxEntries}
	for _, option := range options {
		option(result)
	}
	return result
}

// Build constructs the SS-tree from the given ids and vectors. Duplicate
// ids collapse to their first occurrence, matching tree insert semantics.
func (i *Index) Build(ids []string, vectors [][]float32) error {
	if len(ids) != len(vectors) {
		return fmt.Errorf("sstree: ids and vectors length mismatch: %d != %d", len(ids), len(vectors))
	}
	t, err := tree.New(i.maxEntries)
	if err != nil {
		return fmt.Errorf("sstree: %w", err)
	}
	dim := 0
	if len(vectors) > 0 {
		dim = len(vectors[0])
	}
	keptIDs := make([]string, 0, len(ids))
	keptVecs := make([]vector.Vector, 0, len(vectors))
	for j := range ids {
		v, err := vector.New(dim, vectors[j])
		if err != nil {
			return fmt.Errorf("sstree: vector %d: %w", j, err)
		}
		before := t.Len()
		started := time.Now()
		if err := t.Insert(tree.NewRecord(v, ids[j])); err != nil {
			return fmt.Errorf("sstree: insert %q: %w", ids[j], err)
		}
		metrics.InsertDuration.WithLabelValues(metricsLabel).Observe(time.Since(started).Seconds())
		if t.Len() > before {
			metrics.InsertsTotal.WithLabelValues(metricsLabel).Inc()
			keptIDs = append(keptIDs, ids[j])
			keptVecs = append(keptVecs, v)
		}
	}
	i.tree = t
	i.ids = keptIDs
	i.vecs = keptVecs
	metrics.SplitsTotal.WithLabelValues(metricsLabel).Add(float64(t.Splits()))
	metrics.TotalVectors.WithLabelValues(metricsLabel).Set(float64(t.Len()))
	return nil
}

// Tree exposes the underlying tree for structural inspection.
func (i *Index) Tree() *tree.Tree { return i.tree }

// Query returns up to k ids ascending by Euclidean distance to query.
func (i *Index) Query(query []float32, k int) ([]string, []float64, error) {
	if i.tree == nil || i.tree.Len() == 0 {
		return nil, nil, nil
	}
	started := time.Now()
	records, err := i.tree.KNN(vector.Vector(query), k)
	if err != nil {
		return nil, nil, fmt.Errorf("sstree: %w", err)
	}
	metrics.QueryDuration.WithLabelValues(metricsLabel).Observe(time.Since(started).Seconds())
	metrics.QueriesTotal.WithLabelValues(metricsLabel).Inc()
	ids := make([]string, len(records))
	distances := make([]float64, len(records))
	for j, r := range records {
		ids[j] = r.Key
		distances[j] = float64(vector.Euclidean(vector.Vector(query), r.Embedding))
	}
	return ids, distances, nil
}

// MarshalBinary uses the brute-force format for serialization.
func (i *Index) MarshalBinary() ([]byte, error) {
	return bruteforce.Encode(i.ids, i.vecs)
}

// UnmarshalBinary loads the brute-force format and rebuilds the tree.
func (i *Index) UnmarshalBinary(data []byte) error {
	ids, vecs, err := bruteforce.Decode(data)
	if err != nil {
		return err
	}
	raw := make([][]float32, len(vecs))
	for j := range vecs {
		raw[j] = vecs[j]
	}
	return i.Build(ids, raw)
}
