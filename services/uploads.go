package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ImageStore persists an uploaded image under a generated collision-free
// name and returns the public path it will be served from. The caller has
// already validated the extension.
type ImageStore interface {
	Save(ctx context.Context, data []byte, originalFilename string) (string, error)
}

// LocalImageStore writes images as flat files into the uploads directory
// that Fiber serves statically.
type LocalImageStore struct {
	dir        string
	publicPath string
}

func NewLocalImageStore(dir, publicPath string) (*LocalImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory: %w", err)
	}
	return &LocalImageStore{
		dir:        dir,
		publicPath: strings.TrimSuffix(publicPath, "/"),
	}, nil
}

func (s *LocalImageStore) Save(_ context.Context, data []byte, originalFilename string) (string, error) {
	name := newImageName(originalFilename)
	dest := filepath.Join(s.dir, name)

	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to save image: %w", err)
	}
	return s.publicPath + "/" + name, nil
}

// newImageName builds <token><ext> from a random token and the original
// filename's extension. Tokens are unique by construction, so names never
// collide and files are never overwritten.
func newImageName(originalFilename string) string {
	token := strings.ReplaceAll(uuid.NewString(), "-", "")
	ext := strings.ToLower(filepath.Ext(originalFilename))
	return token + ext
}
