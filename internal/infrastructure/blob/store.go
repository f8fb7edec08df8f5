package blob

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store keeps uploaded files on local disk under root/<application>/<doc>.
// Paths returned are relative to root so the root can move between hosts.
type Store struct {
	root string
}

func NewStore(root string) (*Store, error) {
	if root == "" {
		return nil, fmt.Errorf("blob: empty root dir")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("blob: create root: %w", err)
	}
	return &Store{root: root}, nil
}

func (s *Store) Save(applicationID, documentID, filename string, data []byte) (string, error) {
	rel := filepath.Join(applicationID, documentID+ext(filename))
	full := filepath.Join(s.root, rel)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("blob: mkdir: %w", err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return "", fmt.Errorf("blob: write: %w", err)
	}
	return rel, nil
}

func (s *Store) Load(rel string) ([]byte, error) {
	b, err := os.ReadFile(filepath.Join(s.root, rel))
	if err != nil {
		return nil, fmt.Errorf("blob: read %s: %w", rel, err)
	}
	return b, nil
}

func (s *Store) Remove(rel string) error {
	err := os.Remove(filepath.Join(s.root, rel))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("blob: remove %s: %w", rel, err)
	}
	return nil
}

// ext keeps the original extension, lowercased; anything else about the
// client-supplied filename is discarded.
func ext(filename string) string {
	e := strings.ToLower(filepath.Ext(filename))
	if len(e) > 8 {
		return ""
	}
	return e
}
