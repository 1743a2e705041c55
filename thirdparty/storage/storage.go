package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var ErrInvalidName = errors.New("invalid file name")

// Disk keeps uploaded files in a single directory under generated names.
type Disk struct {
	dir string
}

// NewDisk creates dir when it does not exist.
func NewDisk(dir string) (*Disk, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Disk{dir: dir}, nil
}

// Save copies r into a new file named by a random uuid plus the extension of
// originalName, and returns the stored name.
func (d *Disk) Save(originalName string, r io.Reader) (string, error) {
	name := uuid.NewString() + strings.ToLower(filepath.Ext(originalName))

	f, err := os.OpenFile(filepath.Join(d.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return name, nil
}

// Path resolves a stored name to its file path. Names that would leave the
// upload directory are rejected.
func (d *Disk) Path(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return "", ErrInvalidName
	}
	return filepath.Join(d.dir, name), nil
}
