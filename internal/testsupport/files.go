package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFile creates path with exactly size bytes. Large files are sparse so
// multi-megabyte fixtures stay cheap. A size <= 0 writes a single byte.
func WriteFile(t testing.TB, path string, size int64) string {
	t.Helper()

	if size <= 0 {
		size = 1
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()

	// A non-zero first byte keeps the file from looking empty to readers
	// that sniff headers.
	if _, err := f.Write([]byte{0x42}); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	if err := f.Truncate(size); err != nil {
		t.Fatalf("size %s: %v", path, err)
	}
	return path
}
