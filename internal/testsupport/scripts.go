package testsupport

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// Canned ffmpeg stand-ins. Each receives the real argument contract; the
// output path is always the last argument.
const (
	// FFmpegWritesLastArg writes a 1 MiB artifact regardless of CRF.
	FFmpegWritesLastArg = "#!/bin/sh\nfor last; do :; done\nhead -c 1048576 /dev/zero > \"$last\"\n"
	// FFmpegFails prints a decoder error and exits 1 without output.
	FFmpegFails = "#!/bin/sh\necho \"Invalid data found when processing input\" >&2\nexit 1\n"
	// NoopScript exits successfully.
	NoopScript = "#!/bin/sh\nexit 0\n"
)

// RequireShell skips t on platforms without /bin/sh.
func RequireShell(t testing.TB) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell stubs require a POSIX shell")
	}
}

// WriteScript writes an executable shell script at path and returns path.
func WriteScript(t testing.TB, path, body string) string {
	t.Helper()
	RequireShell(t)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(body), 0o755); err != nil {
		t.Fatalf("write script %s: %v", path, err)
	}
	return path
}
