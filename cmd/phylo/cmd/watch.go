package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/corey/phylo/internal/adapters/fsnotify"
	"github.com/corey/phylo/internal/app"
	"github.com/corey/phylo/internal/domain/newick"
)

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Watch tree files and keep the cache warm",
	Long:  "Re-parses every changed .nwk/.newick/.tree/.trees file under dir (default: cwd) and stores the result in the project cache. Ctrl-C stops.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	dir := projectRoot()
	if len(args) == 1 {
		dir = args[0]
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	logger := log.New(os.Stderr, "phylo: ", log.LstdFlags)
	a := app.New(store, logger, newick.Opts{})

	stop := make(chan struct{})
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		close(stop)
	}()

	logger.Printf("watching %s", dir)
	return a.Watch(w, dir, stop)
}
