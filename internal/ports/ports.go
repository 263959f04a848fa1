// Package ports defines the interfaces (contracts) that adapters must
// implement. Domain logic depends only on these interfaces, never on
// concrete implementations.
package ports

import "github.com/corey/phylo/internal/domain/newick"

// TreeStore persists parsed trees keyed by the content hash of their source
// text, so a re-parse of unchanged input is a cache hit.
//
// Crash safety: SaveTree must be transactional. A crash mid-write must not
// corrupt previously committed trees.
type TreeStore interface {
	// SaveTree persists a parsed node sequence under key.
	// Overwrites any prior entry for this key.
	SaveTree(key string, nodes []newick.Node) error

	// LoadTree retrieves a parsed node sequence by key.
	// Returns nil, nil if no entry exists (cache miss).
	LoadTree(key string) ([]newick.Node, error)

	// Wipe removes every stored tree. Idempotent.
	Wipe() error

	// Close releases the underlying store.
	Close() error
}

// Watcher monitors a directory for tree-file changes. The adapter filters
// to recognized tree-file extensions before invoking onChange. Only one
// Watch call should be active at a time.
type Watcher interface {
	// Watch starts monitoring dir recursively. onChange is called with the
	// absolute path of each changed tree file, possibly from another
	// goroutine. Returns an error if the directory doesn't exist or
	// permissions are insufficient.
	Watch(dir string, onChange func(path string)) error

	// Stop ends monitoring and releases all resources. After Stop returns,
	// no further onChange calls will fire. Safe to call multiple times.
	Stop() error
}
