package commands

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/viant/sstree/vector"
)

var knnQuery string

var knnCmd = &cobra.Command{
	Use:   "knn",
	Short: "Run a single kNN query against a random tree",
	Long: `Build a tree from the configured random workload and run one kNN
query. The query point is random unless --query provides comma-separated
coordinates matching the configured dimensionality.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig()
		if err != nil {
			return err
		}
		rng := rand.New(rand.NewSource(cfg.Seed))
		records := generateRecords(cfg, rng)
		t, err := buildTree(cfg, records)
		if err != nil {
			return err
		}

		var query vector.Vector
		if knnQuery != "" {
			query, err = parseQuery(knnQuery, cfg.Dims)
			if err != nil {
				return err
			}
		} else {
			query = vector.RandomSource(rng, cfg.Dims, cfg.Min, cfg.Max)
		}

		neighbors, err := t.KNN(query, cfg.K)
		if err != nil {
			return err
		}
		for rank, r := range neighbors {
			fmt.Printf("%2d  %s  dist=%v\n", rank+1, r.Key, vector.Euclidean(query, r.Embedding))
		}
		return nil
	},
}

func init() {
	knnCmd.Flags().StringVarP(&knnQuery, "query", "q", "", "comma-separated query coordinates")
}

func parseQuery(s string, dims int) (vector.Vector, error) {
	parts := strings.Split(s, ",")
	coords := make([]float32, 0, len(parts))
	for _, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return nil, fmt.Errorf("query: %w", err)
		}
		coords = append(coords, float32(f))
	}
	return vector.New(dims, coords)
}
