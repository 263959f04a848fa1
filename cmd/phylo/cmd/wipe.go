package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var wipeCmd = &cobra.Command{
	Use:   "wipe",
	Short: "Delete every cached tree for this project",
	RunE:  runWipe,
}

func runWipe(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Wipe(); err != nil {
		return err
	}
	fmt.Println("tree cache wiped")
	return nil
}
