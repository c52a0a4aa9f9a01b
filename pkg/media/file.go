package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// FileStore keeps files in a local directory.
type FileStore struct {
	root    string
	baseURL string
}

var _ Store = (*FileStore)(nil)

// NewFileStore creates a FileStore rooted at root. URLs are built by joining
// baseURL (e.g. "/media") and the file path.
func NewFileStore(root, baseURL string) *FileStore {
	return &FileStore{
		root:    root,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// IsValidPath reports whether name is a relative path that stays below the
// media root.
func IsValidPath(name string) bool {
	clean := path.Clean(name)

	return clean != "." && filepath.IsLocal(filepath.FromSlash(clean))
}

func (s *FileStore) filename(name string) (string, error) {
	if !IsValidPath(name) {
		return "", fmt.Errorf("invalid media path %q", name)
	}

	return filepath.Join(s.root, filepath.FromSlash(path.Clean(name))), nil
}

// Save writes the file through a temporary file in the same directory so
// readers never observe a partial write.
func (s *FileStore) Save(_ context.Context, name string, r io.Reader, _ string) error {
	dst, err := s.filename(name)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("could not create media directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(dst), ".upload-*")
	if err != nil {
		return fmt.Errorf("could not create temp file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := io.Copy(tmp, r); err != nil {
		_ = tmp.Close()

		return fmt.Errorf("could not write media file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not close media file: %w", err)
	}
	if err := os.Rename(tmp.Name(), dst); err != nil {
		return fmt.Errorf("could not move media file: %w", err)
	}

	return nil
}

func (s *FileStore) Delete(_ context.Context, name string) error {
	dst, err := s.filename(name)
	if err != nil {
		return err
	}
	if err := os.Remove(dst); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("could not delete media file: %w", err)
	}

	return nil
}

func (s *FileStore) URL(name string) string {
	return s.baseURL + "/" + strings.TrimPrefix(name, "/")
}

// Handler serves the stored files. Mount it with http.StripPrefix.
func (s *FileStore) Handler() http.Handler {
	return http.FileServer(http.Dir(s.root))
}
