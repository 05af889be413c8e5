// Package filestore persists uploaded report files under a provider-scoped
// namespace before they are parsed, so the raw source can always be
// re-read or re-ingested later.
package filestore

import (
	"fmt"
	"os"
	"path/filepath"
)

type Store struct {
	baseDir string
}

// New creates a store rooted at baseDir; files land under
// <baseDir>/uploads/bi/<provider>/.
func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// Save writes the raw bytes under the provider's namespace and returns the
// full path. The file name is stripped to its base so uploads cannot
// escape the namespace.
func (s *Store) Save(provider, name string, data []byte) (string, error) {
	dir := filepath.Join(s.baseDir, "uploads", "bi", provider)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	path := filepath.Join(dir, filepath.Base(name))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write upload %s: %w", name, err)
	}
	return path, nil
}

// Read returns the persisted bytes of a previously saved file.
func (s *Store) Read(provider, name string) ([]byte, error) {
	path := filepath.Join(s.baseDir, "uploads", "bi", provider, filepath.Base(name))
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read upload %s: %w", name, err)
	}
	return data, nil
}
