// Package storage writes collection photo evidence to local disk. The
// wider static-file hosting is an external concern; this only covers
// the blocking write that must succeed before a collection record is
// committed.
package storage

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// The media type comes straight from the caller; anything that is not
// a plain short extension must never reach the filesystem.
var safeExtension = regexp.MustCompile(`^[a-zA-Z0-9]{1,8}$`)

type PhotoStore struct {
	dir string
}

func NewPhotoStore(dir string) (*PhotoStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create photo dir: %w", err)
	}
	return &PhotoStore{dir: dir}, nil
}

// Save decodes a "data:image/<ext>;base64,<payload>" data URI and
// writes it under a fresh UUID name, returning the stored path.
func (s *PhotoStore) Save(photoData string) (string, error) {
	header, payload, found := strings.Cut(photoData, ";base64,")
	if !found {
		return "", fmt.Errorf("photo data is not a base64 data URI")
	}

	ext := "jpg"
	if _, mediaType, ok := strings.Cut(header, "image/"); ok && safeExtension.MatchString(mediaType) {
		ext = mediaType
	}

	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("decode photo data: %w", err)
	}
	if len(decoded) == 0 {
		return "", fmt.Errorf("photo data is empty")
	}

	fileName := fmt.Sprintf("%s.%s", uuid.New(), ext)
	path := filepath.Join(s.dir, fileName)
	if err := os.WriteFile(path, decoded, 0o644); err != nil {
		return "", fmt.Errorf("write photo file: %w", err)
	}
	return path, nil
}

func (s *PhotoStore) Remove(path string) error {
	if path == "" {
		return nil
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
