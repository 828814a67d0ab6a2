// Package bruteforce provides a simple vector index that answers kNN queries
// by scanning all vectors and ranking by Euclidean distance. It doubles as
// the exact oracle for validating tree-based indexes and defines the compact
// binary format shared by the other implementations.
package bruteforce
