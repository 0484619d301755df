package deps

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"vidcompress/internal/testsupport"
)

func writeStub(t *testing.T, path string) {
	t.Helper()
	testsupport.WriteScript(t, path, testsupport.NoopScript)
}

// isolate clears PATH and points the running-executable lookup somewhere empty.
func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv("PATH", "")
	selfDir := t.TempDir()
	prev := executablePath
	executablePath = func() (string, error) { return filepath.Join(selfDir, "vidcompress"), nil }
	t.Cleanup(func() { executablePath = prev })
	return selfDir
}

func TestLocateFFmpegPrefersToolsDirOverPath(t *testing.T) {
	isolate(t)
	toolsDir := t.TempDir()
	want := filepath.Join(toolsDir, "ffmpeg")
	writeStub(t, want)
	binDir := t.TempDir()
	writeStub(t, filepath.Join(binDir, "ffmpeg"))
	t.Setenv("PATH", binDir)

	status := LocateFFmpeg("", toolsDir)
	if status.Command != want || status.Source != SourceToolsDir {
		t.Fatalf("expected tools dir to win, got %#v", status)
	}
	if status.Name != "FFmpeg" || status.Description == "" || status.Optional {
		t.Fatalf("unexpected descriptive fields: %#v", status)
	}
}

func TestLocateFFmpegConfiguredBareName(t *testing.T) {
	isolate(t)
	binDir := t.TempDir()
	want := filepath.Join(binDir, "ffmpeg-7")
	writeStub(t, want)
	t.Setenv("PATH", binDir)

	status := LocateFFmpeg("ffmpeg-7", "")
	if !status.Available || status.Command != want || status.Source != SourceConfigured {
		t.Fatalf("unexpected status: %#v", status)
	}
}

func TestLocateFFmpegConfiguredPath(t *testing.T) {
	isolate(t)
	configured := filepath.Join(t.TempDir(), "custom-ffmpeg")
	writeStub(t, configured)

	status := LocateFFmpeg(configured, "")
	if !status.Available || status.Command != configured || status.Source != SourceConfigured {
		t.Fatalf("unexpected status: %#v", status)
	}
}

func TestLocateFFmpegConfiguredMissingDoesNotFallBack(t *testing.T) {
	isolate(t)
	toolsDir := t.TempDir()
	writeStub(t, filepath.Join(toolsDir, "ffmpeg"))

	status := LocateFFmpeg(filepath.Join(t.TempDir(), "nope"), toolsDir)
	if status.Available {
		t.Fatalf("expected configured path to be authoritative, got %#v", status)
	}
	if status.Detail == "" {
		t.Fatal("expected detail for missing configured binary")
	}
}

func TestLocateFFmpegConfiguredNotExecutable(t *testing.T) {
	isolate(t)
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not enforced on windows")
	}
	path := filepath.Join(t.TempDir(), "ffmpeg")
	if err := os.WriteFile(path, []byte("data"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if status := LocateFFmpeg(path, ""); status.Available {
		t.Fatalf("expected non-executable file to be unavailable: %#v", status)
	}
}

func TestLocateFFmpegToolsDir(t *testing.T) {
	isolate(t)
	toolsDir := t.TempDir()
	want := filepath.Join(toolsDir, "ffmpeg")
	writeStub(t, want)

	status := LocateFFmpeg("", toolsDir)
	if !status.Available || status.Command != want || status.Source != SourceToolsDir {
		t.Fatalf("unexpected status: %#v", status)
	}
}

func TestLocateFFmpegSibling(t *testing.T) {
	selfDir := isolate(t)
	want := filepath.Join(selfDir, "ffmpeg")
	writeStub(t, want)

	status := LocateFFmpeg("", filepath.Join(t.TempDir(), "empty"))
	if !status.Available || status.Command != want || status.Source != SourceSibling {
		t.Fatalf("unexpected status: %#v", status)
	}
}

func TestLocateFFmpegPathFallback(t *testing.T) {
	isolate(t)
	binDir := t.TempDir()
	want := filepath.Join(binDir, "ffmpeg")
	writeStub(t, want)
	t.Setenv("PATH", binDir)

	status := LocateFFmpeg("", "")
	if !status.Available || status.Command != want || status.Source != SourcePath {
		t.Fatalf("unexpected status: %#v", status)
	}
}

func TestLocateFFmpegNotFound(t *testing.T) {
	isolate(t)
	status := LocateFFmpeg("", t.TempDir())
	if status.Available {
		t.Fatal("expected ffmpeg resolution to fail")
	}
	if status.Detail == "" {
		t.Fatal("expected detail message when ffmpeg is unavailable")
	}
}

func TestLocateIgnoresUnreadableExecutableLookup(t *testing.T) {
	t.Setenv("PATH", "")
	prev := executablePath
	executablePath = func() (string, error) { return "", errors.New("unsupported") }
	t.Cleanup(func() { executablePath = prev })

	if status := LocateFFprobe("", ""); status.Available || !status.Optional {
		t.Fatalf("unexpected ffprobe status: %#v", status)
	}
}
