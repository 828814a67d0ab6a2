package commands

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/viant/sstree/index/bruteforce"
	"github.com/viant/sstree/tree"
	"github.com/viant/sstree/vector"
)

// coverageTolerance absorbs float32 accumulation error in the sphere and
// centroid checks.
const coverageTolerance = 1e-4

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Build a random tree and verify its structural invariants",
	Long: `Build a tree from uniform-random records and verify:

  - completeness: every inserted record is reachable through exactly one leaf
  - uniform depth: all root-to-leaf paths have equal length
  - capacity: no node holds more than max_entries entries
  - sphere coverage: leaf spheres cover their records, parent spheres cover
    child spheres
  - centroid correctness: each centroid is the mean of its entry centroids
  - kNN correctness: tree kNN matches a brute-force scan for random queries

Exits non-zero when any check fails.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig()
		if err != nil {
			return err
		}
		rng := rand.New(rand.NewSource(cfg.Seed))
		printVerbose("generating %d records (dims=%d, M=%d)", cfg.Points, cfg.Dims, cfg.MaxEntries)
		records := generateRecords(cfg, rng)
		t, err := buildTree(cfg, records)
		if err != nil {
			return err
		}

		failures := 0
		report := func(name string, ok bool, detail string) {
			status := "PASS"
			if !ok {
				status = "FAIL"
				failures++
			}
			if detail != "" {
				fmt.Printf("%s  %s (%s)\n", status, name, detail)
				return
			}
			fmt.Printf("%s  %s\n", status, name)
		}

		report("completeness", allRecordsPresent(t, records), fmt.Sprintf("%d records", len(records)))
		report("uniform leaf depth", leavesAtSameDepth(t.Root()), fmt.Sprintf("height %d", t.Height()))
		report("node capacity", capacityRespected(t.Root(), cfg.MaxEntries), fmt.Sprintf("M=%d", cfg.MaxEntries))
		report("leaf sphere coverage", leafSpheresCover(t.Root()), "")
		report("internal sphere coverage", internalSpheresCover(t.Root()), "")
		report("centroid correctness", centroidsCorrect(t.Root()), "")

		ok, detail := knnMatchesBruteForce(cfg, t, records, rng)
		report("kNN vs brute force", ok, detail)

		if failures > 0 {
			return fmt.Errorf("%d invariant check(s) failed", failures)
		}
		return nil
	},
}

// allRecordsPresent walks the leaves and compares the reachable key multiset
// against the inserted records.
func allRecordsPresent(t *tree.Tree, records []*tree.Record) bool {
	seen := map[string]int{}
	var walk func(n *tree.Node)
	walk = func(n *tree.Node) {
		if n.IsLeaf() {
			for _, r := range n.Records() {
				seen[r.Key]++
			}
			return
		}
		for _, c := range n.Children() {
			walk(c)
		}
	}
	if t.Root() != nil {
		walk(t.Root())
	}
	if len(seen) != len(records) {
		return false
	}
	for _, r := range records {
		if seen[r.Key] != 1 {
			return false
		}
	}
	return true
}

func leavesAtSameDepth(root *tree.Node) bool {
	if root == nil {
		return true
	}
	leafDepth := -1
	var walk func(n *tree.Node, depth int) bool
	walk = func(n *tree.Node, depth int) bool {
		if n.IsLeaf() {
			if leafDepth == -1 {
				leafDepth = depth
			}
			return leafDepth == depth
		}
		for _, c := range n.Children() {
			if !walk(c, depth+1) {
				return false
			}
		}
		return true
	}
	return walk(root, 0)
}

func capacityRespected(root *tree.Node, maxEntries int) bool {
	if root == nil {
		return true
	}
	if root.IsLeaf() {
		return len(root.Records()) <= maxEntries
	}
	if len(root.Children()) > maxEntries {
		return false
	}
	for _, c := range root.Children() {
		if !capacityRespected(c, maxEntries) {
			return false
		}
	}
	return true
}

func leafSpheresCover(root *tree.Node) bool {
	if root == nil {
		return true
	}
	if root.IsLeaf() {
		for _, r := range root.Records() {
			if vector.Euclidean(root.Centroid(), r.Embedding) > root.Radius()+coverageTolerance {
				return false
			}
		}
		return true
	}
	for _, c := range root.Children() {
		if !leafSpheresCover(c) {
			return false
		}
	}
	return true
}

func internalSpheresCover(root *tree.Node) bool {
	if root == nil || root.IsLeaf() {
		return true
	}
	for _, c := range root.Children() {
		if vector.Euclidean(root.Centroid(), c.Centroid())+c.Radius() > root.Radius()+coverageTolerance {
			return false
		}
		if !internalSpheresCover(c) {
			return false
		}
	}
	return true
}

func centroidsCorrect(root *tree.Node) bool {
	if root == nil {
		return true
	}
	var centroids []vector.Vector
	if root.IsLeaf() {
		for _, r := range root.Records() {
			centroids = append(centroids, r.Embedding)
		}
	} else {
		for _, c := range root.Children() {
			centroids = append(centroids, c.Centroid())
			if !centroidsCorrect(c) {
				return false
			}
		}
	}
	mean, err := vector.Mean(centroids)
	if err != nil {
		return false
	}
	return vector.Euclidean(mean, root.Centroid()) <= coverageTolerance
}

// knnMatchesBruteForce compares tree kNN distances against an exact linear
// scan for cfg.Queries random query points.
func knnMatchesBruteForce(cfg Config, t *tree.Tree, records []*tree.Record, rng *rand.Rand) (bool, string) {
	if cfg.Queries == 0 || len(records) == 0 {
		return true, "skipped"
	}
	oracle := &bruteforce.Index{}
	ids := make([]string, len(records))
	vecs := make([][]float32, len(records))
	for i, r := range records {
		ids[i] = r.Key
		vecs[i] = r.Embedding
	}
	if err := oracle.Build(ids, vecs); err != nil {
		return false, err.Error()
	}
	for q := 0; q < cfg.Queries; q++ {
		query := vector.RandomSource(rng, cfg.Dims, cfg.Min, cfg.Max)
		got, err := t.KNN(query, cfg.K)
		if err != nil {
			return false, err.Error()
		}
		_, wantDists, err := oracle.Query(query, cfg.K)
		if err != nil {
			return false, err.Error()
		}
		if len(got) != len(wantDists) {
			return false, fmt.Sprintf("query %d: got %d results, want %d", q, len(got), len(wantDists))
		}
		for i, r := range got {
			d := float64(vector.Euclidean(query, r.Embedding))
			if diff := d - wantDists[i]; diff > coverageTolerance || diff < -coverageTolerance {
				return false, fmt.Sprintf("query %d, rank %d: distance %v vs %v", q, i, d, wantDists[i])
			}
		}
	}
	return true, fmt.Sprintf("%d queries, k=%d", cfg.Queries, cfg.K)
}
