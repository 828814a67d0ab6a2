package tree

import (
	"errors"
	"math/rand"
	"sort"
	"testing"

	"github.com/viant/sstree/vector"
)

// bruteKNN is the exact oracle: a linear scan sorted by distance.
func bruteKNN(records []*Record, query vector.Vector, k int) []float32 {
	dists := make([]float32, len(records))
	for i, r := range records {
		dists[i] = vector.Euclidean(query, r.Embedding)
	}
	sort.Slice(dists, func(i, j int) bool { return dists[i] < dists[j] })
	if k > len(dists) {
		k = len(dists)
	}
	return dists[:k]
}

func TestKNN_EmptyTree(t *testing.T) {
	tr := mustTree(t, 4)
	got, err := tr.KNN(vector.Vector{1, 2}, 3)
	if err != nil {
		t.Fatalf("KNN on empty tree failed: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("KNN on empty tree = %d results, want 0", len(got))
	}
}

func TestKNN_SingleRecord(t *testing.T) {
	tr := mustTree(t, 4)
	r := NewRecord(vector.Vector{1, 2}, "only")
	insertAll(t, tr, []*Record{r})
	got, err := tr.KNN(vector.Vector{9, 9}, 1)
	if err != nil || len(got) != 1 || got[0] != r {
		t.Fatalf("KNN single = %v, %v; want the only record", got, err)
	}
}

func TestKNN_KLargerThanSize(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	records := randomRecords(rng, 25, 2)
	tr := mustTree(t, 4)
	insertAll(t, tr, records)

	query := vector.Vector{0.5, 0.5}
	got, err := tr.KNN(query, 100)
	if err != nil {
		t.Fatalf("KNN failed: %v", err)
	}
	if len(got) != len(records) {
		t.Fatalf("KNN k>size = %d results, want %d", len(got), len(records))
	}
	prev := float32(-1)
	for _, r := range got {
		d := vector.Euclidean(query, r.Embedding)
		if d < prev {
			t.Fatalf("results not ascending: %v after %v", d, prev)
		}
		prev = d
	}
}

func TestKNN_NonPositiveK(t *testing.T) {
	tr := mustTree(t, 4)
	insertAll(t, tr, []*Record{NewRecord(vector.Vector{1, 2}, "a")})
	if got, err := tr.KNN(vector.Vector{1, 2}, 0); err != nil || len(got) != 0 {
		t.Fatalf("KNN k=0 = %v, %v; want empty", got, err)
	}
}

func TestKNN_DimensionMismatch(t *testing.T) {
	tr := mustTree(t, 4)
	insertAll(t, tr, []*Record{NewRecord(vector.Vector{1, 2}, "a")})
	if _, err := tr.KNN(vector.Vector{1}, 1); !errors.Is(err, vector.ErrDimensionMismatch) {
		t.Fatalf("KNN wrong-dim error = %v, want ErrDimensionMismatch", err)
	}
}

func TestKNN_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	records := randomRecords(rng, 1000, 2)
	tr := mustTree(t, 4)
	insertAll(t, tr, records)

	for q := 0; q < 10; q++ {
		query := vector.RandomSource(rng, 2, 0, 1)
		for _, k := range []int{1, 5, 17} {
			got, err := tr.KNN(query, k)
			if err != nil {
				t.Fatalf("KNN failed: %v", err)
			}
			want := bruteKNN(records, query, k)
			if len(got) != len(want) {
				t.Fatalf("KNN k=%d returned %d results, want %d", k, len(got), len(want))
			}
			for i, r := range got {
				d := vector.Euclidean(query, r.Embedding)
				if diff := d - want[i]; diff > tolerance || diff < -tolerance {
					t.Fatalf("query %d k=%d rank %d: distance %v, brute force %v", q, k, i, d, want[i])
				}
			}
		}
	}
}

func TestKNN_HighDimensional(t *testing.T) {
	rng := rand.New(rand.NewSource(31))
	records := randomRecords(rng, 300, 64)
	tr := mustTree(t, 20)
	insertAll(t, tr, records)

	for q := 0; q < 5; q++ {
		query := vector.RandomSource(rng, 64, 0, 1)
		got, err := tr.KNN(query, 1)
		if err != nil || len(got) != 1 {
			t.Fatalf("KNN failed: %v (results %d)", err, len(got))
		}
		want := bruteKNN(records, query, 1)
		d := vector.Euclidean(query, got[0].Embedding)
		if diff := d - want[0]; diff > tolerance || diff < -tolerance {
			t.Fatalf("nearest distance %v, brute force %v", d, want[0])
		}
	}
}
