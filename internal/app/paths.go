package app

import "path/filepath"

// Paths holds the resolved filesystem paths for the .phylo/ project
// directory. All fields are pre-computed strings.
type Paths struct {
	Root string // .phylo/
	DB   string // .phylo/phylo.db
}

// NewPaths constructs all resolved paths from a project root directory.
func NewPaths(projectRoot string) *Paths {
	root := filepath.Join(projectRoot, ".phylo")
	return &Paths{
		Root: root,
		DB:   filepath.Join(root, "phylo.db"),
	}
}
