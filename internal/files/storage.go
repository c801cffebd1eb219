package files

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("file not found")

// Storage writes uploads to a local directory under generated names so
// a caller-supplied filename can never address an existing file.
type Storage struct {
	dir string
}

func NewStorage(dir string) (*Storage, error) {
	if dir == "" {
		return nil, errors.New("upload dir is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Storage{dir: dir}, nil
}

// StoredFile describes a saved upload.
type StoredFile struct {
	Filename     string `json:"filename"`
	OriginalName string `json:"originalName"`
	URL          string `json:"url"`
	Size         int64  `json:"size"`
	ContentType  string `json:"type"`
}

// Save streams the upload to disk under a uuid name, keeping the
// original extension so downloads get a sensible content hint.
func (s *Storage) Save(originalName, contentType string, r io.Reader) (StoredFile, error) {
	ext := filepath.Ext(filepath.Base(originalName))
	name := uuid.NewString() + ext

	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return StoredFile{}, fmt.Errorf("create file: %w", err)
	}
	defer f.Close()

	size, err := io.Copy(f, r)
	if err != nil {
		_ = os.Remove(f.Name())
		return StoredFile{}, fmt.Errorf("write file: %w", err)
	}

	return StoredFile{
		Filename:     name,
		OriginalName: filepath.Base(originalName),
		URL:          "/api/files/download/" + name,
		Size:         size,
		ContentType:  contentType,
	}, nil
}

// Path resolves a stored name to its on-disk path, rejecting anything
// that could escape the upload directory.
func (s *Storage) Path(filename string) (string, error) {
	if filename == "" || filename != filepath.Base(filename) || strings.HasPrefix(filename, ".") {
		return "", ErrNotFound
	}
	p := filepath.Join(s.dir, filename)
	info, err := os.Stat(p)
	if err != nil || info.IsDir() {
		return "", ErrNotFound
	}
	return p, nil
}
