package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/corey/phylo/internal/adapters/bbolt"
	"github.com/corey/phylo/internal/app"
)

var rootCmd = &cobra.Command{
	Use:   "phylo",
	Short: "phylo — phylogenetic tree toolkit",
	Long:  "Parse Newick trees with inline [&...] annotations, inspect them, and run the numeric helpers used by sequence-simulation pipelines.",
}

// projectRoot returns the project root (cwd by default).
func projectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	return dir
}

// openStore opens (creating if needed) the project tree cache.
func openStore() (*bbolt.Store, error) {
	paths := app.NewPaths(projectRoot())
	if err := os.MkdirAll(paths.Root, 0755); err != nil {
		return nil, err
	}
	return bbolt.NewStore(paths.DB)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(demogCmd)
	rootCmd.AddCommand(evolveCmd)
	rootCmd.AddCommand(mindistCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(wipeCmd)
	rootCmd.AddCommand(configCmd)
}
