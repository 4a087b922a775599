package filestore

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const materialsDir = "materials"

var ErrInvalidName = errors.New("invalid stored file name")

type StoredFile struct {
	// Name is the generated file name inside the store.
	Name string
	// URL is the public path the file is served under.
	URL  string
	Size int64
}

type Store interface {
	Save(file *multipart.FileHeader) (*StoredFile, error)
	Remove(name string) error
}

// LocalStore keeps uploads in a directory on disk which the HTTP layer serves
// under PublicPrefix.
type LocalStore struct {
	root         string
	publicPrefix string
}

func NewLocalStore(root, publicPrefix string) (*LocalStore, error) {
	if err := os.MkdirAll(filepath.Join(root, materialsDir), 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{
		root:         root,
		publicPrefix: strings.TrimRight(publicPrefix, "/"),
	}, nil
}

func (s *LocalStore) Save(file *multipart.FileHeader) (*StoredFile, error) {
	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name := uuid.NewString() + safeExt(file.Filename)
	dst, err := os.OpenFile(filepath.Join(s.root, materialsDir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return nil, fmt.Errorf("create file: %w", err)
	}

	size, err := io.Copy(dst, src)
	if closeErr := dst.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(dst.Name())
		return nil, fmt.Errorf("write file: %w", err)
	}

	return &StoredFile{
		Name: name,
		URL:  path.Join(s.publicPrefix, materialsDir, name),
		Size: size,
	}, nil
}

func (s *LocalStore) Remove(name string) error {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return os.Remove(filepath.Join(s.root, materialsDir, name))
}

// safeExt keeps the original extension only when it is short and alphanumeric.
func safeExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(filename)))
	if len(ext) < 2 || len(ext) > 10 {
		return ""
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}
