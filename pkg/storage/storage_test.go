package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskStoreSave(t *testing.T) {
	dir := t.TempDir()
	store := NewDiskStore(dir, "http://localhost:8000/uploads/")

	url, err := store.Save("+51987654321_photo.jpg", strings.NewReader("content"))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000/uploads/_51987654321_photo.jpg", url)

	data, err := os.ReadFile(filepath.Join(dir, "_51987654321_photo.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))
}

func TestDiskStoreSaveRejectsPathTraversal(t *testing.T) {
	dir := t.TempDir()
	store := NewDiskStore(dir, "http://localhost:8000/uploads")

	_, err := store.Save("../../etc/passwd", strings.NewReader("x"))
	require.NoError(t, err)

	// the key collapses to its base name inside the store directory
	_, statErr := os.Stat(filepath.Join(dir, "passwd"))
	assert.NoError(t, statErr)
}

func TestStripQuery(t *testing.T) {
	cases := map[string]string{
		"http://cdn.example.com/a.jpg?X-Amz-Signature=abc&X-Amz-Expires=300": "http://cdn.example.com/a.jpg",
		"http://cdn.example.com/a.jpg":                                       "http://cdn.example.com/a.jpg",
		"http://cdn.example.com/a.jpg?":                                      "http://cdn.example.com/a.jpg",
		"http://cdn.example.com/a.jpg#frag":                                  "http://cdn.example.com/a.jpg",
		"http://cdn.example.com/dir/b.png?v":                                 "http://cdn.example.com/dir/b.png",
	}

	for in, want := range cases {
		assert.Equal(t, want, StripQuery(in), in)
	}
}
