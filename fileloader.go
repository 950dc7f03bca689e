// SPDX-License-Identifier: EPL-2.0

package foxaudio

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
)

// FileLoader reads whole files relative to a root. With FS set, paths are
// resolved inside FS instead of the host file system.
type FileLoader struct {
	Root string
	FS   fs.FS

	mu    sync.Mutex
	cache *cache.Cache
}

func NewFileLoader(root string) *FileLoader {
	return &FileLoader{Root: root}
}

// EnableCache keeps loaded files in memory for ttl. Every Load still
// returns a private copy. Expired entries are dropped by Load, so the cache
// runs no janitor goroutine.
func (f *FileLoader) EnableCache(ttl time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.cache = cache.New(ttl, 0)
}

// Purge empties the cache.
func (f *FileLoader) Purge() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.cache != nil {
		f.cache.Flush()
	}
}

// Load reads the file at p relative to the root.
func (f *FileLoader) Load(p string) ([]byte, error) {
	key := path.Clean(filepath.ToSlash(p))

	f.mu.Lock()
	c := f.cache
	f.mu.Unlock()

	if c != nil {
		if v, ok := c.Get(key); ok {
			return clone(v.([]byte)), nil
		}
	}

	data, err := f.read(key)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", p, err)
	}

	if c != nil {
		c.DeleteExpired()
		c.SetDefault(key, clone(data))
	}

	return data, nil
}

func (f *FileLoader) read(key string) ([]byte, error) {
	if f.FS != nil {
		return fs.ReadFile(f.FS, key)
	}

	return os.ReadFile(filepath.Join(f.Root, filepath.FromSlash(key)))
}

// LoadReader reads r to the end.
func (f *FileLoader) LoadReader(r io.Reader) ([]byte, error) {
	return readAll(r)
}

func readAll(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	return data, nil
}

func clone(b []byte) []byte {
	return append([]byte(nil), b...)
}

func (m *Manager) readFile(p string) ([]byte, error) {
	if _, _, err := m.systems(); err != nil {
		return nil, err
	}

	f := m.FileLoader()
	if f == nil {
		return nil, ErrNoFileLoader
	}

	return f.Load(p)
}
