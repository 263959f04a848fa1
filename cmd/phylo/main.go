// phylo is a phylogenetic-tree toolkit: a Newick parser with inline
// annotation support, tree inspection, and the numeric helpers used by
// sequence-simulation pipelines.
package main

import (
	"os"

	"github.com/corey/phylo/cmd/phylo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
