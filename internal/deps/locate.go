package deps

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Where a located binary came from.
const (
	SourceConfigured = "configured"
	SourceToolsDir   = "tools_dir"
	SourceSibling    = "sibling"
	SourcePath       = "PATH"
)

// executablePath is swapped in tests.
var executablePath = os.Executable

// LocateFFmpeg finds the ffmpeg binary used for encoding.
//
// An explicitly configured path is authoritative: if it is not executable the
// result is unavailable rather than silently falling back. Otherwise the
// lookup order is <toolsDir>/ffmpeg, an ffmpeg next to the running
// executable, then PATH.
func LocateFFmpeg(configured, toolsDir string) Status {
	return locate(tool{
		name:        "FFmpeg",
		command:     "ffmpeg",
		description: "Encodes every attempt",
	}, configured, toolsDir)
}

// LocateFFprobe finds ffprobe, used only to describe the finished file.
func LocateFFprobe(configured, toolsDir string) Status {
	return locate(tool{
		name:        "FFprobe",
		command:     "ffprobe",
		description: "Describes the final artifact",
		optional:    true,
	}, configured, toolsDir)
}

func locate(t tool, configured, toolsDir string) Status {
	status := t.status()

	if configured = strings.TrimSpace(configured); configured != "" {
		status.Source = SourceConfigured
		resolved, err := resolveConfigured(configured)
		if err != nil {
			status.Command = configured
			status.Detail = err.Error()
			return status
		}
		status.Command = resolved
		status.Available = true
		return status
	}

	name := executableName(t.command)
	for _, c := range searchOrder(toolsDir) {
		if found := c.lookup(name); found != "" {
			status.Command = found
			status.Source = c.source
			status.Available = true
			return status
		}
	}

	status.Detail = fmt.Sprintf("binary %q not found in tools dir, next to vidcompress, or on PATH", t.command)
	return status
}

func searchOrder(toolsDir string) []candidate {
	return []candidate{
		{source: SourceToolsDir, lookup: func(name string) string {
			dir := strings.TrimSpace(toolsDir)
			if dir == "" {
				return ""
			}
			return executableIn(dir, name)
		}},
		{source: SourceSibling, lookup: func(name string) string {
			self, err := executablePath()
			if err != nil || self == "" {
				return ""
			}
			return executableIn(filepath.Dir(self), name)
		}},
		{source: SourcePath, lookup: func(name string) string {
			resolved, err := exec.LookPath(name)
			if err != nil {
				return ""
			}
			return resolved
		}},
	}
}

func executableIn(dir, name string) string {
	path := filepath.Join(dir, name)
	if !isExecutableFile(path) {
		return ""
	}
	return path
}

// resolveConfigured accepts either a path or a bare command name.
func resolveConfigured(value string) (string, error) {
	if !strings.ContainsAny(value, `/\`) {
		resolved, err := exec.LookPath(value)
		if err != nil {
			return "", fmt.Errorf("configured binary %q not found on PATH", value)
		}
		return resolved, nil
	}
	info, err := os.Stat(value)
	if err != nil {
		return "", fmt.Errorf("configured binary %q: %w", value, err)
	}
	if !isExecutable(info) {
		return "", fmt.Errorf("configured binary %q is not executable", value)
	}
	return value, nil
}

func isExecutableFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && isExecutable(info)
}

func isExecutable(info os.FileInfo) bool {
	if info == nil {
		return false
	}
	if info.IsDir() {
		return false
	}
	if runtime.GOOS == "windows" {
		return true
	}
	return info.Mode().Perm()&0o111 != 0
}

func executableName(base string) string {
	if runtime.GOOS == "windows" {
		return base + ".exe"
	}
	return base
}
