package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Store persists uploaded files under a media directory and builds the
// absolute URLs clients use to fetch them back.
type Store struct {
	dir     string
	baseURL string
}

func NewStore(dir, baseURL string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create media dir: %w", err)
	}
	return &Store{dir: dir, baseURL: strings.TrimSuffix(baseURL, "/")}, nil
}

// Dir is the root the HTTP layer serves under /media.
func (s *Store) Dir() string {
	return s.dir
}

// Save writes an uploaded file under subdir with a uuid-derived name and
// returns its path relative to the media dir.
func (s *Store) Save(fh *multipart.FileHeader, subdir string) (string, error) {
	ext := filepath.Ext(fh.Filename)
	rel := path.Join(subdir, uuid.New().String()+ext)

	dst := filepath.Join(s.dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", err
	}

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		return "", err
	}
	return rel, nil
}

// ReadFile returns the contents of a stored file.
func (s *Store) ReadFile(rel string) ([]byte, error) {
	return os.ReadFile(filepath.Join(s.dir, filepath.FromSlash(rel)))
}

// URL returns the absolute URL for a stored path, or "" when unset.
func (s *Store) URL(rel string) string {
	if rel == "" {
		return ""
	}
	return s.baseURL + "/media/" + rel
}
