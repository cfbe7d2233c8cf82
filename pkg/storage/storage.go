// Package storage holds uploaded files behind a minimal interface so the
// backing store stays swappable.
package storage

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

type Store interface {
	// Save writes the content under key and returns a public URL for it.
	Save(key string, r io.Reader) (string, error)
}

// DiskStore writes files under a base directory served at a public base URL.
type DiskStore struct {
	BasePath string
	BaseURL  string
}

func NewDiskStore(basePath, baseURL string) *DiskStore {
	return &DiskStore{BasePath: basePath, BaseURL: baseURL}
}

func (s *DiskStore) Save(key string, r io.Reader) (string, error) {
	key = sanitizeKey(key)

	if err := os.MkdirAll(s.BasePath, 0o755); err != nil {
		return "", fmt.Errorf("unable to create storage directory: %w", err)
	}

	path := filepath.Join(s.BasePath, key)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("unable to create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("unable to write file: %w", err)
	}

	return strings.TrimRight(s.BaseURL, "/") + "/" + key, nil
}

func sanitizeKey(key string) string {
	key = filepath.Base(key)
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '-' || r == '_':
			return r
		default:
			return '_'
		}
	}, key)
}

// StripQuery removes any query string from a stored file URL before it is
// persisted, so presigned or cache-busting parameters never leak into records.
func StripQuery(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		if i := strings.IndexByte(rawURL, '?'); i >= 0 {
			return rawURL[:i]
		}
		return rawURL
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u.String()
}
