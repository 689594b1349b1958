// Package storage defines the output-directory file abstraction.
package storage

import "time"

// FileInfo describes one generated markdown file.
type FileInfo struct {
	Path      string
	UpdatedAt time.Time
}

// Provider is the interface for output-directory file operations.
type Provider interface {
	// List returns every .md file under the output root.
	List() ([]FileInfo, error)
	// Read returns the raw bytes of the file at path (relative to the root).
	Read(path string) ([]byte, error)
	// Write atomically writes content to path (relative to the root).
	Write(path string, content []byte) error
	// Exists reports whether a file already exists at path.
	Exists(path string) bool
}
