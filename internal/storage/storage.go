package storage

import (
	"context"
	"io"
)

// Saver persists one uploaded file under a per-entity subfolder and returns
// the relative path recorded on the owning row (e.g. "uploads/candidates/x.pdf").
type Saver interface {
	Save(ctx context.Context, dir, name string, r io.Reader) (relPath string, err error)
}
