// Package storage defines the rooted file-system abstraction used by the
// site pipeline for its input and output directories.
package storage

import "github.com/starford/dagaz/internal/models"

// Provider is the interface for directory-rooted file operations.
// All paths are relative to the provider's root; anything that resolves
// outside the root is rejected.
type Provider interface {
	// List returns every regular file in the root directory (one level,
	// no recursion) whose name ends with suffix, sorted by file name.
	// An empty suffix matches every entry.
	List(suffix string) ([]models.SourceFile, error)
	// Read returns the raw bytes of the file at name.
	Read(name string) ([]byte, error)
	// Write atomically writes content to name, overwriting any existing file.
	Write(name string, content []byte) error
	// Root returns the absolute root directory.
	Root() string
}
