// Package app wires the newick parser to the tree cache and the file
// watcher. The domain packages stay pure; everything that touches disk or
// logs goes through here.
package app

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"os"

	"github.com/corey/phylo/internal/domain/newick"
	"github.com/corey/phylo/internal/ports"
)

// App orchestrates parsing, caching, and watching for one project.
type App struct {
	store  ports.TreeStore
	logger *log.Logger
	opts   newick.Opts
}

// New builds an App. store may be nil (caching disabled); logger may be nil
// (logging disabled).
func New(store ports.TreeStore, logger *log.Logger, opts newick.Opts) *App {
	return &App{store: store, logger: logger, opts: opts}
}

// ContentKey returns the cache key for raw tree text: its hex-encoded
// SHA-256. Identical text always maps to the same stored tree.
func ContentKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// ParseText parses tree text with the app's options, bypassing the cache.
func (a *App) ParseText(text string) ([]newick.Node, error) {
	return newick.ParseWith(text, a.opts)
}

// ParseFile reads and parses a tree file. When a store is configured, a
// content-hash hit skips the parse entirely; a miss parses and stores the
// result. The second return reports whether the cache served the tree.
func (a *App) ParseFile(path string) ([]newick.Node, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false, fmt.Errorf("read tree file: %w", err)
	}
	text := string(data)

	if a.store == nil {
		nodes, err := a.ParseText(text)
		return nodes, false, err
	}

	key := ContentKey(text)
	if cached, err := a.store.LoadTree(key); err != nil {
		// A broken cache read is not fatal — fall through to a fresh parse.
		a.logf("cache read failed for %s: %v", path, err)
	} else if cached != nil {
		return cached, true, nil
	}

	nodes, err := a.ParseText(text)
	if err != nil {
		return nil, false, err
	}
	if err := a.store.SaveTree(key, nodes); err != nil {
		a.logf("cache write failed for %s: %v", path, err)
	}
	return nodes, false, nil
}

// Watch monitors dir for tree-file changes and re-parses each changed file,
// keeping the cache warm. Blocks until stop is closed.
func (a *App) Watch(w ports.Watcher, dir string, stop <-chan struct{}) error {
	err := w.Watch(dir, func(path string) {
		nodes, hit, err := a.ParseFile(path)
		switch {
		case err != nil:
			a.logf("parse %s: %v", path, err)
		case hit:
			a.logf("parse %s: %d nodes (cached)", path, len(nodes))
		default:
			a.logf("parse %s: %d nodes", path, len(nodes))
		}
	})
	if err != nil {
		return err
	}
	<-stop
	return w.Stop()
}

func (a *App) logf(format string, v ...any) {
	if a.logger != nil {
		a.logger.Printf(format, v...)
	}
}
