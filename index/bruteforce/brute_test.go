package bruteforce

import "testing"

func TestQuery_Ordering(t *testing.T) {
	idx := &Index{}
	ids := []string{"far", "near", "mid"}
	vecs := [][]float32{{10, 0}, {1, 0}, {5, 0}}
	if err := idx.Build(ids, vecs); err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	gotIDs, gotDists, err := idx.Query([]float32{0, 0}, 2)
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if len(gotIDs) != 2 || gotIDs[0] != "near" || gotIDs[1] != "mid" {
		t.Fatalf("Query ids = %v, want [near mid]", gotIDs)
	}
	if gotDists[0] != 1 || gotDists[1] != 5 {
		t.Fatalf("Query distances = %v, want [1 5]", gotDists)
	}
}

func TestQuery_KBounds(t *testing.T) {
	idx := &Index{}
	if err := idx.Build([]string{"a"}, [][]float32{{1, 1}}); err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	ids, _, err := idx.Query([]float32{0, 0}, 10)
	if err != nil || len(ids) != 1 {
		t.Fatalf("Query k>n = %v, %v; want single result", ids, err)
	}
}

func TestBuild_Validation(t *testing.T) {
	idx := &Index{}
	if err := idx.Build([]string{"a"}, nil); err == nil {
		t.Fatalf("Build with mismatched lengths should fail")
	}
	if err := idx.Build([]string{"a", "b"}, [][]float32{{1, 2}, {1}}); err == nil {
		t.Fatalf("Build with inconsistent dims should fail")
	}
}

func TestQuery_DimMismatch(t *testing.T) {
	idx := &Index{}
	if err := idx.Build([]string{"a"}, [][]float32{{1, 2}}); err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if _, _, err := idx.Query([]float32{1}, 1); err == nil {
		t.Fatalf("Query with wrong dims should fail")
	}
}

func TestMarshalUnmarshal_RoundTrip(t *testing.T) {
	idx := &Index{}
	ids := []string{"a", "b"}
	vecs := [][]float32{{1.5, -2}, {0, 3.25}}
	if err := idx.Build(ids, vecs); err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	data, err := idx.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary failed: %v", err)
	}

	restored := &Index{}
	if err := restored.UnmarshalBinary(data); err != nil {
		t.Fatalf("UnmarshalBinary failed: %v", err)
	}
	gotIDs, gotDists, err := restored.Query([]float32{1.5, -2}, 1)
	if err != nil || len(gotIDs) != 1 || gotIDs[0] != "a" || gotDists[0] != 0 {
		t.Fatalf("restored Query = %v, %v, %v; want a at distance 0", gotIDs, gotDists, err)
	}
}

func TestUnmarshal_Truncated(t *testing.T) {
	if err := (&Index{}).UnmarshalBinary([]byte{1, 2, 3}); err == nil {
		t.Fatalf("UnmarshalBinary on short data should fail")
	}
}
