// Package storage abstracts the object store that holds uploaded CV documents.
// The analyzer only needs to download a file and list a directory; callers
// inject whichever implementation matches their deployment.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FileInfo describes one stored object.
type FileInfo struct {
	Name string
}

// Client is the storage capability injected into the analyzer.
type Client interface {
	// Download returns the raw bytes of the object at path.
	Download(path string) ([]byte, error)
	// List returns the objects directly under dir.
	List(dir string) ([]FileInfo, error)
}

// LocalClient serves files from a directory on disk. It is the default
// implementation for the CLI and for tests.
type LocalClient struct {
	root string
}

// NewLocalClient creates a client rooted at dir.
func NewLocalClient(dir string) *LocalClient {
	return &LocalClient{root: dir}
}

// Download reads the file at path relative to the client root.
// Absolute paths and parent traversal are rejected.
func (c *LocalClient) Download(path string) ([]byte, error) {
	full, err := c.resolve(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(full)
	if err != nil {
		return nil, fmt.Errorf("failed to download %s: %w", path, err)
	}
	return data, nil
}

// List returns the regular files directly under dir, sorted by name.
func (c *LocalClient) List(dir string) ([]FileInfo, error) {
	full, err := c.resolve(dir)
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(full)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}
	files := make([]FileInfo, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		files = append(files, FileInfo{Name: e.Name()})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files, nil
}

func (c *LocalClient) resolve(path string) (string, error) {
	cleaned := filepath.Clean(path)
	if filepath.IsAbs(cleaned) || strings.HasPrefix(cleaned, "..") {
		return "", fmt.Errorf("invalid storage path: %s", path)
	}
	if c.root == "" {
		return cleaned, nil
	}
	return filepath.Join(c.root, cleaned), nil
}
