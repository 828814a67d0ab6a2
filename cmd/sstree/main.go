// Package main provides the sstree driver CLI.
//
// Usage:
//
//	sstree [flags] <command>
//
// Commands:
//
//	check - build a random tree and verify its structural invariants
//	bench - time bulk insertion and kNN batches
//	knn   - run a single kNN query and print the neighbors
//
// Configuration:
//
//	All commands read an optional YAML config (see --config); flags
//	override file values. Randomness is seeded for reproducibility.
package main

import (
	"fmt"
	"os"

	"github.com/viant/sstree/cmd/sstree/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
