package assets

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveDocumentDirFirst(t *testing.T) {
	docDir := t.TempDir()
	extraDir := t.TempDir()

	// Same filename in both; the document directory wins.
	if err := os.WriteFile(filepath.Join(docDir, "arm.obj"), []byte("doc"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(extraDir, "arm.obj"), []byte("extra"), 0644); err != nil {
		t.Fatal(err)
	}

	r := NewResolver(extraDir)
	path, ok := r.Resolve(docDir, "arm.obj")
	if !ok {
		t.Fatal("expected arm.obj to resolve")
	}
	if path != filepath.Join(docDir, "arm.obj") {
		t.Errorf("expected document dir to win, got %s", path)
	}
}

func TestResolveSearchDirFallback(t *testing.T) {
	docDir := t.TempDir()
	extraDir := t.TempDir()

	if err := os.WriteFile(filepath.Join(extraDir, "wheel.stl"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	r := NewResolver(extraDir)
	path, ok := r.Resolve(docDir, "wheel.stl")
	if !ok {
		t.Fatal("expected wheel.stl to resolve via search dir")
	}
	if path != filepath.Join(extraDir, "wheel.stl") {
		t.Errorf("unexpected resolved path %s", path)
	}
}

func TestResolveMissing(t *testing.T) {
	r := NewResolver()
	if _, ok := r.Resolve(t.TempDir(), "missing.obj"); ok {
		t.Error("expected missing file to fail resolution")
	}
}

func TestResolveCachesStatCalls(t *testing.T) {
	calls := 0
	r := NewResolver()
	r.stat = func(path string) bool {
		calls++
		return true
	}

	for i := 0; i < 5; i++ {
		if _, ok := r.Resolve("dir", "mesh.obj"); !ok {
			t.Fatal("expected resolve to succeed")
		}
	}
	if calls != 1 {
		t.Errorf("expected 1 stat call, got %d", calls)
	}
}

func TestResolveCachesNegativeResults(t *testing.T) {
	calls := 0
	r := NewResolver()
	r.stat = func(path string) bool {
		calls++
		return false
	}

	r.Resolve("dir", "gone.obj")
	r.Resolve("dir", "gone.obj")
	if calls != 1 {
		t.Errorf("expected 1 stat call for a cached miss, got %d", calls)
	}
}

func TestCacheStats(t *testing.T) {
	c := NewCache()

	if _, ok := c.Get("a"); ok {
		t.Error("expected miss for empty cache")
	}
	c.Set("a", "path/a")
	if _, ok := c.Get("a"); !ok {
		t.Error("expected hit after Set")
	}

	hits, misses := c.Stats()
	if hits != 1 || misses != 1 {
		t.Errorf("expected 1 hit and 1 miss, got %d/%d", hits, misses)
	}

	c.Clear()
	hits, misses = c.Stats()
	if hits != 0 || misses != 0 {
		t.Errorf("expected stats reset after Clear, got %d/%d", hits, misses)
	}
}
