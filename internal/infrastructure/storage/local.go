package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LocalStore writes uploads under a base directory and serves them from
// /uploads. The storage id is the path relative to the base directory.
type LocalStore struct {
	baseDir string
}

func NewLocalStore(baseDir string) (*LocalStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir %q: %w", baseDir, err)
	}
	return &LocalStore{baseDir: baseDir}, nil
}

func (s *LocalStore) Put(ctx context.Context, key string, contentType string, data []byte) (*StoredFile, error) {
	rel := sanitizeKey(key)
	dst := filepath.Join(s.baseDir, rel)
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return nil, err
	}
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return nil, err
	}
	return &StoredFile{
		URL:       "/uploads/" + filepath.ToSlash(rel),
		StorageID: filepath.ToSlash(rel),
	}, nil
}

func (s *LocalStore) Delete(ctx context.Context, storageID string) error {
	rel := sanitizeKey(storageID)
	if rel == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.baseDir, rel))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// sanitizeKey strips path traversal from caller-supplied keys.
func sanitizeKey(key string) string {
	key = strings.TrimLeft(filepath.ToSlash(key), "/")
	parts := strings.Split(key, "/")
	clean := parts[:0]
	for _, p := range parts {
		if p == "" || p == "." || p == ".." {
			continue
		}
		clean = append(clean, p)
	}
	return filepath.Join(clean...)
}
