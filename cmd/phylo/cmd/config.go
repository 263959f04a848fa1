package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/corey/phylo/internal/app"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show configuration",
	Long:  "Shows the project root, cache DB path, and cache status.",
	RunE:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	root := projectRoot()
	paths := app.NewPaths(root)

	cache := "absent"
	if info, err := os.Stat(paths.DB); err == nil {
		cache = fmt.Sprintf("%d bytes", info.Size())
	}

	fmt.Printf("phylo config\n")
	fmt.Printf("  Project:  %s\n", filepath.Base(root))
	fmt.Printf("  Root:     %s\n", root)
	fmt.Printf("  DB:       %s\n", paths.DB)
	fmt.Printf("  Cache:    %s\n", cache)
	return nil
}
