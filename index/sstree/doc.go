// Package sstree adapts the SS-tree engine to the generic index API. It
// preserves the brute-force binary format for serialization so indexes can
// be exchanged between implementations; deserialization rebuilds the tree.
package sstree
