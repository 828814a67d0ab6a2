// Package index defines a minimal abstraction for vector indexes that can be
// built from embeddings, queried for kNN under Euclidean distance, and
// serialized to a compact in-memory binary form. Implementations in this
// module include a brute-force baseline and the SS-tree.
package index
