package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/corey/phylo/internal/app"
	"github.com/corey/phylo/internal/domain/newick"
)

var (
	parseIndent        bool
	parseAllowTrailing bool
	parseNoCache       bool
)

var parseCmd = &cobra.Command{
	Use:   "parse <file-or-tree>",
	Short: "Parse a Newick tree and print its node table",
	Long: "Parses the argument as a tree file if one exists at that path, otherwise\n" +
		"as a literal Newick string. Prints the flattened node sequence, or an\n" +
		"indented tree view with --indent. File parses go through the project cache.",
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().BoolVar(&parseIndent, "indent", false, "print an indented tree view instead of the node table")
	parseCmd.Flags().BoolVar(&parseAllowTrailing, "allow-trailing", false, "ignore trailing characters after a complete tree")
	parseCmd.Flags().BoolVar(&parseNoCache, "no-cache", false, "bypass the project tree cache")
}

// loadNodes parses the argument as a file when one exists, otherwise as a
// literal tree string. Returns the nodes and whether the cache served them.
func loadNodes(arg string) ([]newick.Node, bool, error) {
	opts := newick.Opts{AllowTrailing: parseAllowTrailing}

	if _, err := os.Stat(arg); err == nil {
		if parseNoCache {
			return app.New(nil, nil, opts).ParseFile(arg)
		}
		store, err := openStore()
		if err != nil {
			return nil, false, err
		}
		defer store.Close()
		return app.New(store, nil, opts).ParseFile(arg)
	}

	nodes, err := newick.ParseWith(arg, opts)
	return nodes, false, err
}

func runParse(cmd *cobra.Command, args []string) error {
	nodes, hit, err := loadNodes(args[0])
	if err != nil {
		return err
	}

	if parseIndent {
		fmt.Print(formatIndent(nodes))
	} else {
		fmt.Print(formatNodeTable(nodes))
	}
	if hit {
		fmt.Println("(served from cache)")
	}
	return nil
}
