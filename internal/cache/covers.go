// Package cache keeps downloaded cover images on disk so the browser can
// render them inline without refetching on every load.
package cache

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Manager handles the local cover cache.
// Layout: <baseDir>/covers/<key>.jpg
type Manager struct {
	baseDir string
}

// New creates a cache Manager rooted at baseDir.
func New(baseDir string) *Manager {
	return &Manager{baseDir: baseDir}
}

// CoverPath returns the path where a book's cover image is stored.
func (m *Manager) CoverPath(key string) string {
	return filepath.Join(m.baseDir, "covers", safeName(key)+".jpg")
}

// HasCover checks whether a cover image is cached for the given book key.
func (m *Manager) HasCover(key string) bool {
	_, err := os.Stat(m.CoverPath(key))
	return err == nil
}

// StoreCover writes r to the cover path for key, via a temp file so a
// partial download never becomes visible. Returns the final path.
func (m *Manager) StoreCover(key string, r io.Reader) (string, error) {
	destPath := m.CoverPath(key)
	if err := os.MkdirAll(filepath.Dir(destPath), 0750); err != nil {
		return "", fmt.Errorf("create cache dir: %w", err)
	}

	tmpPath := destPath + ".tmp"
	f, err := os.Create(tmpPath)
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("writing cover: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, destPath); err != nil {
		_ = os.Remove(tmpPath)
		return "", err
	}
	return destPath, nil
}

// RemoveCover deletes a cached cover if it exists.
func (m *Manager) RemoveCover(key string) error {
	err := os.Remove(m.CoverPath(key))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Clear removes the whole cover cache.
func (m *Manager) Clear() error {
	return os.RemoveAll(filepath.Join(m.baseDir, "covers"))
}

// safeName flattens a book key into a filesystem-safe file name.
func safeName(key string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, key)
}
