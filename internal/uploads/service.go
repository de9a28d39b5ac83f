// Package uploads stores client-submitted files under the static uploads
// directory and hands back the path they will be served from.
package uploads

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// URLPrefix is the public path prefix uploaded files are served under.
const URLPrefix = "/uploads/"

// Service writes uploaded files to a fixed directory.
type Service struct {
	dir string
}

// NewService ensures the upload directory exists and returns a Service.
func NewService(dir string) (*Service, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("uploads: create dir: %w", err)
	}
	return &Service{dir: dir}, nil
}

// Store writes the file under a millisecond-timestamp name keeping the
// original extension, and returns the public path. The naming scheme avoids
// collisions in practice without locking; it is not a hard guarantee.
func (s *Service) Store(src io.Reader, originalName string) (string, error) {
	name := strconv.FormatInt(time.Now().UnixMilli(), 10) + filepath.Ext(originalName)
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("uploads: create file: %w", err)
	}
	defer func() {
		_ = dst.Close()
	}()
	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("uploads: write file: %w", err)
	}
	return URLPrefix + name, nil
}
