package tree

import "github.com/viant/sstree/vector"

// Record pairs an embedding with the opaque key that identifies it. Records
// are created by the caller and shared with the tree's leaves; the tree
// never mutates them. Two records are considered the same entry when their
// keys are equal, regardless of embedding.
type Record struct {
	Embedding vector.Vector
	Key       string
}

// NewRecord constructs a record for the given embedding and key.
func NewRecord(embedding vector.Vector, key string) *Record {
	return &Record{Embedding: embedding, Key: key}
}

// Equal reports whether both records carry the same key.
func (r *Record) Equal(other *Record) bool {
	return other != nil && r.Key == other.Key
}
