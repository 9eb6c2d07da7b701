package storage

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// FileStore keeps one file per key inside a state directory. All I/O errors
// degrade gracefully: reads report absent, writes and removes are best-effort.
type FileStore struct {
	mu  sync.Mutex
	dir string
}

// NewFileStore returns a store rooted at dir. The directory is created lazily
// on first write.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Get reads the bytes stored under key.
func (f *FileStore) Get(key string) ([]byte, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	raw, err := os.ReadFile(f.path(key))
	if err != nil {
		return nil, false
	}
	return raw, true
}

// Set writes value under key, creating the state directory as needed.
func (f *FileStore) Set(key string, value []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return
	}
	_ = os.WriteFile(f.path(key), value, 0o644)
}

// Remove deletes the value stored under key.
func (f *FileStore) Remove(key string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	_ = os.Remove(f.path(key))
}

func (f *FileStore) path(key string) string {
	return filepath.Join(f.dir, sanitizeKey(key)+".json")
}

// sanitizeKey maps a store key to a safe file name.
func sanitizeKey(key string) string {
	var b strings.Builder
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
