// Package media stores uploaded images on local disk and maps them to URLs
// served by the router.
package media

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// Upload subdirectories per entity kind.
const (
	KindAirport      = "airports"
	KindManufacturer = "manufacturers"
	KindAirplane     = "airplanes"
)

// Storage writes uploads under a base directory and builds their public
// URLs under a base URL path.
type Storage struct {
	baseDir string
	baseURL string
}

// NewStorage creates a media storage rooted at baseDir.
func NewStorage(baseDir, baseURL string) *Storage {
	return &Storage{baseDir: baseDir, baseURL: strings.TrimRight(baseURL, "/")}
}

// Dir returns the directory the storage serves files from.
func (s *Storage) Dir() string {
	return s.baseDir
}

// Save writes an upload for the named entity and returns its URL path. The
// filename is the slugified entity name plus a random suffix, so repeated
// uploads never collide.
func (s *Storage) Save(kind, entityName, originalFilename string, data io.Reader) (string, error) {
	filename := fmt.Sprintf("%s-%s%s", Slugify(entityName), uuid.New(), strings.ToLower(filepath.Ext(originalFilename)))
	relative := path.Join("uploads", kind, filename)

	fullPath := filepath.Join(s.baseDir, filepath.FromSlash(relative))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, data); err != nil {
		os.Remove(fullPath)
		return "", fmt.Errorf("failed to write upload: %w", err)
	}

	return s.baseURL + "/" + relative, nil
}

// Slugify lowercases a name and replaces runs of non-alphanumeric characters
// with single hyphens.
func Slugify(name string) string {
	var b strings.Builder
	lastHyphen := true

	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastHyphen = false
		case !lastHyphen:
			b.WriteByte('-')
			lastHyphen = true
		}
	}

	return strings.Trim(b.String(), "-")
}
