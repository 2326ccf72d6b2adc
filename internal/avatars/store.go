// Package avatars stores user avatar files in a local directory.
package avatars

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Store keeps one avatar file per user under a single directory.
type Store struct {
	dir string
}

// NewStore creates the avatar directory if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create avatars dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Save writes the avatar for a user and returns the stored file path.
// The write goes through a temp file in the same directory so a failed
// upload never leaves a partial avatar behind.
func (s *Store) Save(userID uint, avatar io.Reader) (string, error) {
	path := filepath.Join(s.dir, fmt.Sprintf("%d.jpg", userID))

	tmpFile, err := os.CreateTemp(s.dir, "avatar_tmp_")
	if err != nil {
		return "", err
	}
	tmpPath := tmpFile.Name()

	if _, err := io.Copy(tmpFile, avatar); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return "", err
	}
	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpPath)
		return "", err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return "", err
	}
	return path, nil
}

// Remove deletes a stored avatar file. The error from os.Remove is returned
// as-is so callers can distinguish a missing file.
func (s *Store) Remove(path string) error {
	return os.Remove(path)
}
