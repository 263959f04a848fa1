// Package bbolt implements the ports.TreeStore interface using bbolt
// (embedded B+ tree). Parsed trees live in a single bucket as JSON blobs
// keyed by source-content hash. Writes are transactional — a crash
// mid-write cannot corrupt previously committed trees.
package bbolt

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/corey/phylo/internal/domain/newick"
	bolt "go.etcd.io/bbolt"
)

var bucketTrees = []byte("trees")

// Store implements ports.TreeStore backed by bbolt.
type Store struct {
	db *bolt.DB
}

// NewStore opens (or creates) a bbolt database at the given path.
func NewStore(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("bbolt open: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying bbolt database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveTree persists a parsed node sequence under key.
func (s *Store) SaveTree(key string, nodes []newick.Node) error {
	if len(nodes) == 0 {
		return fmt.Errorf("empty node sequence")
	}
	data, err := json.Marshal(nodes)
	if err != nil {
		return fmt.Errorf("marshal tree: %w", err)
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bucketTrees)
		if err != nil {
			return err
		}
		return b.Put([]byte(key), data)
	})
}

// LoadTree retrieves a parsed node sequence by key.
// Returns nil, nil if no entry exists (cache miss).
func (s *Store) LoadTree(key string) ([]newick.Node, error) {
	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketTrees)
		if b == nil {
			return nil
		}
		// Copy bytes out of the transaction (bbolt slices are only valid within tx)
		if v := b.Get([]byte(key)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var nodes []newick.Node
	if err := json.Unmarshal(data, &nodes); err != nil {
		return nil, fmt.Errorf("unmarshal tree: %w", err)
	}
	return nodes, nil
}

// Wipe removes every stored tree. Idempotent.
func (s *Store) Wipe() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket(bucketTrees); err == bolt.ErrBucketNotFound {
			return nil // idempotent
		} else {
			return err
		}
	})
}
