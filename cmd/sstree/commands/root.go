package commands

import (
	"log"
	"math/rand"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/viant/sstree/tree"
	"github.com/viant/sstree/vector"
)

var (
	configPath string
	verbose    bool

	overrideDims       int
	overridePoints     int
	overrideK          int
	overrideSeed       int64
	overrideMaxEntries int
)

var rootCmd = &cobra.Command{
	Use:          "sstree",
	Short:        "SS-tree driver: invariant checks, benchmarks, kNN queries",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
	rootCmd.PersistentFlags().IntVar(&overrideDims, "dims", 0, "override vector dimensionality")
	rootCmd.PersistentFlags().IntVar(&overridePoints, "points", 0, "override number of random records")
	rootCmd.PersistentFlags().IntVar(&overrideK, "k", 0, "override neighbors per query")
	rootCmd.PersistentFlags().Int64Var(&overrideSeed, "seed", 0, "override random seed")
	rootCmd.PersistentFlags().IntVar(&overrideMaxEntries, "max-entries", 0, "override branching factor")

	rootCmd.AddCommand(checkCmd, benchCmd, knnCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// resolveConfig loads the config file and applies flag overrides.
func resolveConfig() (Config, error) {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return cfg, err
	}
	if overrideDims > 0 {
		cfg.Dims = overrideDims
	}
	if overridePoints > 0 {
		cfg.Points = overridePoints
	}
	if overrideK > 0 {
		cfg.K = overrideK
	}
	if overrideSeed != 0 {
		cfg.Seed = overrideSeed
	}
	if overrideMaxEntries > 0 {
		cfg.MaxEntries = overrideMaxEntries
	}
	return cfg, cfg.validate()
}

func printVerbose(format string, args ...any) {
	if verbose {
		log.Printf(format, args...)
	}
}

// generateRecords draws cfg.Points uniform-random embeddings keyed by UUIDs;
// both come from rng, so a seed reproduces the same records.
func generateRecords(cfg Config, rng *rand.Rand) []*tree.Record {
	records := make([]*tree.Record, cfg.Points)
	for i := range records {
		embedding := vector.RandomSource(rng, cfg.Dims, cfg.Min, cfg.Max)
		records[i] = tree.NewRecord(embedding, uuid.Must(uuid.NewRandomFromReader(rng)).String())
	}
	return records
}

// buildTree inserts all records into a fresh tree.
func buildTree(cfg Config, records []*tree.Record) (*tree.Tree, error) {
	t, err := tree.New(cfg.MaxEntries)
	if err != nil {
		return nil, err
	}
	for _, r := range records {
		if err := t.Insert(r); err != nil {
			return nil, err
		}
	}
	return t, nil
}
