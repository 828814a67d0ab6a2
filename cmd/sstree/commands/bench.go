package commands

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	idx "github.com/viant/sstree/index/sstree"
	"github.com/viant/sstree/vector"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Time bulk insertion and kNN batches",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig()
		if err != nil {
			return err
		}
		rng := rand.New(rand.NewSource(cfg.Seed))
		records := generateRecords(cfg, rng)
		ids := make([]string, len(records))
		vecs := make([][]float32, len(records))
		for i, r := range records {
			ids[i] = r.Key
			vecs[i] = r.Embedding
		}

		index := idx.New(idx.WithMaxEntries(cfg.MaxEntries))
		started := time.Now()
		if err := index.Build(ids, vecs); err != nil {
			return err
		}
		buildElapsed := time.Since(started)
		fmt.Printf("insert: %d records in %v (%.1f rec/ms)\n",
			len(records), buildElapsed, float64(len(records))/float64(buildElapsed.Milliseconds()+1))
		fmt.Printf("tree:   height %d, dims %d, M %d\n",
			index.Tree().Height(), index.Tree().Dims(), cfg.MaxEntries)

		queries := make([]vector.Vector, cfg.Queries)
		for i := range queries {
			queries[i] = vector.RandomSource(rng, cfg.Dims, cfg.Min, cfg.Max)
		}
		started = time.Now()
		for _, q := range queries {
			if _, _, err := index.Query(q, cfg.K); err != nil {
				return err
			}
		}
		queryElapsed := time.Since(started)
		if cfg.Queries > 0 {
			fmt.Printf("knn:    %d queries (k=%d) in %v (avg %v)\n",
				cfg.Queries, cfg.K, queryElapsed, queryElapsed/time.Duration(cfg.Queries))
		}
		return nil
	},
}
