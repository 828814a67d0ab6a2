// Package tree implements an in-memory similarity search tree (SS-tree): a
// height-balanced index over fixed-dimensional embeddings supporting point
// insertion, exact-identity lookup, and k-nearest-neighbor queries under
// Euclidean distance. Every node maintains a bounding hypersphere over its
// entries; splits follow the direction of maximum coordinate variance and
// kNN queries traverse best-first, pruning subtrees whose spheres cannot
// improve the current result set.
package tree
