// Package assets resolves mesh asset references for robot descriptions.
package assets

import (
	"os"
	"path/filepath"
	"sync"
)

// Resolver locates mesh files referenced by robot descriptions. The
// description's own directory is searched first, then any configured
// extra directories. Lookups are cached, so repeated references to the
// same mesh cost one stat call.
//
// Resolver implements the urdf.FileResolver interface.
type Resolver struct {
	searchDirs []string
	cache      *Cache
	mu         sync.RWMutex

	// stat is swappable for tests.
	stat func(path string) bool
}

// NewResolver creates a resolver with the given extra search directories.
func NewResolver(searchDirs ...string) *Resolver {
	return &Resolver{
		searchDirs: searchDirs,
		cache:      NewCache(),
		stat:       fileExists,
	}
}

// AddSearchDir appends an extra mesh search directory.
func (r *Resolver) AddSearchDir(dir string) {
	r.mu.Lock()
	r.searchDirs = append(r.searchDirs, dir)
	r.mu.Unlock()
}

// Resolve joins filename against the document directory and each search
// directory in order, returning the first path that exists.
func (r *Resolver) Resolve(dir, filename string) (string, bool) {
	key := dir + "\x00" + filename
	if path, ok := r.cache.Get(key); ok {
		return path, path != ""
	}

	r.mu.RLock()
	dirs := append([]string{dir}, r.searchDirs...)
	r.mu.RUnlock()

	for _, d := range dirs {
		path := filepath.Join(d, filename)
		if r.stat(path) {
			r.cache.Set(key, path)
			return path, true
		}
	}

	// Negative results are cached as an empty path.
	r.cache.Set(key, "")
	return "", false
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Cache is a simple in-memory cache for resolved asset paths.
type Cache struct {
	data map[string]string
	mu   sync.RWMutex

	// Stats
	hits   int
	misses int
}

// NewCache creates a new cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string]string),
	}
}

// Get retrieves a resolved path from cache.
func (c *Cache) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	path, ok := c.data[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return path, ok
}

// Set stores a resolved path in cache.
func (c *Cache) Set(key, path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = path
}

// Clear clears the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string]string)
	c.hits = 0
	c.misses = 0
}

// Stats returns cache statistics.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}
