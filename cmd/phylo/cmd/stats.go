package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/corey/phylo/internal/domain/tree"
)

var statsCmd = &cobra.Command{
	Use:   "stats <file-or-tree>",
	Short: "Show node counts, height, and depth for a tree",
	Args:  cobra.ExactArgs(1),
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	nodes, _, err := loadNodes(args[0])
	if err != nil {
		return err
	}
	if err := tree.Validate(nodes); err != nil {
		return fmt.Errorf("invalid tree: %w", err)
	}

	s := tree.Summarize(nodes)
	fmt.Printf("nodes:     %d\n", s.Nodes)
	fmt.Printf("leaves:    %d\n", s.Leaves)
	fmt.Printf("internal:  %d\n", s.Internal)
	fmt.Printf("height:    %g\n", s.Height)
	fmt.Printf("max depth: %d\n", s.MaxDepth)
	return nil
}
