package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// webPrefix is the URL path under which stored files are served.
const webPrefix = "/media/"

// LocalStorage persists uploaded files on the local filesystem and maps
// them to web paths under /media/.
type LocalStorage struct {
	dir    string
	logger zerolog.Logger
}

// NewLocalStorage creates the upload directory if needed and returns a
// storage backed by it.
func NewLocalStorage(dir string, logger zerolog.Logger) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStorage{dir: dir, logger: logger}, nil
}

// Store writes the content under a random name that keeps the original
// extension and returns the web path for retrieval.
func (s *LocalStorage) Store(filename string, content io.Reader) (string, error) {
	name := uuid.NewString() + sanitizeExt(filename)
	dst := filepath.Join(s.dir, name)

	f, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		_ = os.Remove(dst)
		return "", fmt.Errorf("write file: %w", err)
	}

	s.logger.Debug().Str("file", name).Msg("stored upload")
	return webPrefix + name, nil
}

// Delete removes the file behind a web path previously returned by Store.
// Unknown paths are ignored so callers can treat deletion as idempotent.
func (s *LocalStorage) Delete(webPath string) error {
	name, ok := strings.CutPrefix(webPath, webPrefix)
	if !ok || name == "" {
		return nil
	}
	// Reject traversal attempts, the stored names never contain separators.
	if strings.ContainsAny(name, "/\\") {
		return nil
	}

	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove file: %w", err)
	}
	return nil
}

func sanitizeExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if len(ext) > 10 {
		return ""
	}
	for _, r := range ext {
		if r != '.' && (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}
