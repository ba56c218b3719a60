package storage

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Store is the blob store notes are written to. The filesystem is the only
// backend today; the interface keeps an S3-style swap possible.
type Store interface {
	Save(name string, data io.Reader) (relPath string, size int64, err error)
	AbsPath(relPath string) (string, error)
	Delete(relPath string) error
}

// FileSystemStore keeps uploads on local disk under
// <base>/notes/<year>/<month>/<day>/.
type FileSystemStore struct {
	basePath string
	now      func() time.Time
}

func NewFileSystemStore(basePath string) *FileSystemStore {
	return &FileSystemStore{basePath: basePath, now: time.Now}
}

// Save streams data to disk and returns the relative path the note row
// records. The stored name gets a UUID prefix so two uploads with the same
// name on the same day cannot collide.
func (fs *FileSystemStore) Save(name string, data io.Reader) (string, int64, error) {
	t := fs.now()
	relDir := path.Join("notes",
		fmt.Sprintf("%04d", t.Year()),
		fmt.Sprintf("%02d", int(t.Month())),
		fmt.Sprintf("%02d", t.Day()),
	)

	if err := os.MkdirAll(filepath.Join(fs.basePath, filepath.FromSlash(relDir)), 0o755); err != nil {
		return "", 0, fmt.Errorf("failed to create upload directory: %w", err)
	}

	relPath := path.Join(relDir, uuid.NewString()+"_"+sanitizeName(name))
	fullPath := filepath.Join(fs.basePath, filepath.FromSlash(relPath))

	file, err := os.Create(fullPath)
	if err != nil {
		return "", 0, fmt.Errorf("failed to create file %s: %w", fullPath, err)
	}
	defer file.Close()

	n, err := io.Copy(file, data)
	if err != nil {
		// Clean up partial file on error
		os.Remove(fullPath)
		return "", 0, fmt.Errorf("failed to write file: %w", err)
	}

	return relPath, n, nil
}

// AbsPath resolves a stored relative path, erroring if the file is gone.
func (fs *FileSystemStore) AbsPath(relPath string) (string, error) {
	fullPath := filepath.Join(fs.basePath, filepath.FromSlash(relPath))

	if _, err := os.Stat(fullPath); err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("file not found at %s", relPath)
		}
		return "", fmt.Errorf("failed to stat file: %w", err)
	}

	return fullPath, nil
}

// Delete removes a stored file. Missing files are not an error.
func (fs *FileSystemStore) Delete(relPath string) error {
	fullPath := filepath.Join(fs.basePath, filepath.FromSlash(relPath))
	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file %s: %w", fullPath, err)
	}
	return nil
}

func sanitizeName(name string) string {
	name = filepath.Base(strings.TrimSpace(name))
	if name == "." || name == string(filepath.Separator) || name == "" {
		return "upload"
	}
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
