package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrOutsideArchive means the requested path resolved outside the
// archive root. The path is caller-supplied input, so this is a guard,
// not a convenience check.
var ErrOutsideArchive = errors.New("path escapes archive root")

// Resolver maps archive-relative asset paths (e.g.
// "creators/{id}/Music/Singles/{folder}/{file}") to file contents.
type Resolver struct {
	root string // absolute archive root
}

func NewResolver(root string) (*Resolver, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve archive root: %w", err)
	}
	return &Resolver{root: abs}, nil
}

// Resolve returns the asset bytes and a content type derived from the
// file extension. os.ErrNotExist when the resolved path is absent,
// ErrOutsideArchive when it escapes the root.
func (r *Resolver) Resolve(rel string) ([]byte, string, error) {
	full := filepath.Join(r.root, filepath.FromSlash(rel))
	if full != r.root && !strings.HasPrefix(full, r.root+string(filepath.Separator)) {
		return nil, "", ErrOutsideArchive
	}

	b, err := os.ReadFile(full)
	if err != nil {
		return nil, "", err
	}
	return b, ContentTypeFor(full), nil
}

func ContentTypeFor(p string) string {
	switch strings.ToLower(filepath.Ext(p)) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	default:
		return "application/octet-stream"
	}
}
