package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/corey/phylo/internal/domain/seq"
)

var mindistCmd = &cobra.Command{
	Use:   "mindist <fileA> <fileB>",
	Short: "Minimum pairwise Hamming distance between two sequence sets",
	Long: "Each file holds one sequence per line; all sequences must have the\n" +
		"same length. Prints the minimum count of differing positions over\n" +
		"all cross pairs.",
	Args: cobra.ExactArgs(2),
	RunE: runMindist,
}

// readSequences loads one-sequence-per-line files, skipping blank lines.
func readSequences(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out, nil
}

func runMindist(cmd *cobra.Command, args []string) error {
	a, err := readSequences(args[0])
	if err != nil {
		return err
	}
	b, err := readSequences(args[1])
	if err != nil {
		return err
	}

	d, err := seq.MinDiff(a, b)
	if err != nil {
		return err
	}
	fmt.Println(d)
	return nil
}
