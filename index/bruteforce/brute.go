package bruteforce

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sort"

	"github.com/viant/sstree/vector"
)

// Index is a brute-force vector index ranking by Euclidean distance.
type Index struct {
	ids  []string
	vecs []vector.Vector
	dim  int
}

// Build loads ids and vectors and validates dimensional uniformity.
func (i *Index) Build(ids []string, vectors [][]float32) error {
	if len(ids) != len(vectors) {
		return fmt.Errorf("bruteforce: ids and vectors length mismatch: %d != %d", len(ids), len(vectors))
	}
	if len(ids) == 0 {
		i.ids, i.vecs, i.dim = nil, nil, 0
		return nil
	}
	dim := len(vectors[0])
	vecs := make([]vector.Vector, len(vectors))
	for j := range vectors {
		v, err := vector.New(dim, vectors[j])
		if err != nil {
			return fmt.Errorf("bruteforce: vector %d: %w", j, err)
		}
		vecs[j] = v
	}
	i.ids = append([]string(nil), ids...)
	i.vecs = vecs
	i.dim = dim
	return nil
}

// Query returns the k nearest ids, ascending by Euclidean distance.
func (i *Index) Query(query []float32, k int) ([]string, []float64, error) {
	if i.dim == 0 || len(i.vecs) == 0 {
		return nil, nil, nil
	}
	if len(query) != i.dim {
		return nil, nil, fmt.Errorf("bruteforce: query dim %d != index dim %d", len(query), i.dim)
	}
	type scored struct {
		idx  int
		dist float64
	}
	scoreds := make([]scored, len(i.vecs))
	for j := range i.vecs {
		scoreds[j] = scored{idx: j, dist: float64(vector.Euclidean(query, i.vecs[j]))}
	}
	sort.Slice(scoreds, func(a, b int) bool { return scoreds[a].dist < scoreds[b].dist })
	if k <= 0 {
		return nil, nil, nil
	}
	if k > len(scoreds) {
		k = len(scoreds)
	}
	outIDs := make([]string, k)
	outDists := make([]float64, k)
	for n := 0; n < k; n++ {
		outIDs[n] = i.ids[scoreds[n].idx]
		outDists[n] = scoreds[n].dist
	}
	return outIDs, outDists, nil
}

// MarshalBinary stores: dim(uint32), n(uint32), then for each item:
// idLen(uint32), id bytes, vec(float32[dim]).
func (i *Index) MarshalBinary() ([]byte, error) {
	return Encode(i.ids, i.vecs)
}

// UnmarshalBinary restores the index from bytes.
func (i *Index) UnmarshalBinary(data []byte) error {
	ids, vecs, err := Decode(data)
	if err != nil {
		return err
	}
	raw := make([][]float32, len(vecs))
	for j := range vecs {
		raw[j] = vecs[j]
	}
	return i.Build(ids, raw)
}

// Encode serializes (id, vector) pairs into the shared binary format.
func Encode(ids []string, vecs []vector.Vector) ([]byte, error) {
	if len(ids) != len(vecs) {
		return nil, fmt.Errorf("bruteforce: ids and vectors length mismatch: %d != %d", len(ids), len(vecs))
	}
	if len(ids) == 0 {
		buf := make([]byte, 8)
		return buf, nil
	}
	dim := len(vecs[0])
	size := 8
	for _, id := range ids {
		size += 4 + len(id) + 4*dim
	}
	out := make([]byte, 0, size)
	putU32 := func(v uint32) {
		b := make([]byte, 4)
		binary.LittleEndian.PutUint32(b, v)
		out = append(out, b...)
	}
	putU32(uint32(dim))
	putU32(uint32(len(ids)))
	for idx, id := range ids {
		if len(vecs[idx]) != dim {
			return nil, fmt.Errorf("bruteforce: inconsistent vector dims %d vs %d", len(vecs[idx]), dim)
		}
		putU32(uint32(len(id)))
		out = append(out, []byte(id)...)
		blob, err := vector.EncodeEmbedding(vecs[idx])
		if err != nil {
			return nil, err
		}
		out = append(out, blob...)
	}
	return out, nil
}

// Decode parses the shared binary format back into (id, vector) pairs.
func Decode(data []byte) ([]string, []vector.Vector, error) {
	if len(data) < 8 {
		return nil, nil, errors.New("bruteforce: invalid data")
	}
	off := 0
	getU32 := func() uint32 {
		v := binary.LittleEndian.Uint32(data[off : off+4])
		off += 4
		return v
	}
	dim := int(getU32())
	n := int(getU32())
	ids := make([]string, n)
	vecs := make([]vector.Vector, n)
	for idx := 0; idx < n; idx++ {
		if off+4 > len(data) {
			return nil, nil, errors.New("bruteforce: truncated")
		}
		idlen := int(getU32())
		if off+idlen > len(data) {
			return nil, nil, errors.New("bruteforce: truncated id")
		}
		ids[idx] = string(data[off : off+idlen])
		off += idlen
		if off+4*dim > len(data) {
			return nil, nil, errors.New("bruteforce: truncated vec")
		}
		vec, err := vector.DecodeEmbedding(data[off : off+4*dim])
		if err != nil {
			return nil, nil, err
		}
		off += 4 * dim
		vecs[idx] = vec
	}
	return ids, vecs, nil
}
