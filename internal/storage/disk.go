package storage

import (
	"context"
	"io"
	"os"
	"path"
	"path/filepath"
)

// DiskStore writes uploads to the local filesystem under a root directory.
// The stored path is relative and prefixed with "uploads" so it maps directly
// onto the static /uploads route regardless of where root actually lives.
// Names are random UUIDs generated by the caller, so concurrent saves never
// collide.
type DiskStore struct {
	root string
}

func NewDiskStore(root string) *DiskStore {
	return &DiskStore{root: root}
}

func (s *DiskStore) Save(ctx context.Context, dir, name string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	full := filepath.Join(s.root, dir)
	if err := os.MkdirAll(full, 0o755); err != nil {
		return "", err
	}

	dst := filepath.Join(full, name)
	f, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(dst)
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}

	return path.Join("uploads", dir, name), nil
}
