package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"vidcompress/internal/compress"
	"vidcompress/internal/config"
	"vidcompress/internal/testsupport"
)

// sizedFFmpeg writes 12 MiB at CRF 28 and 1 MiB at every other level.
const sizedFFmpeg = `#!/bin/sh
for last; do :; done
case "$*" in
*"-crf 28 "*) size=12582912 ;;
*) size=1048576 ;;
esac
head -c "$size" /dev/zero > "$last"
`

const oversizedFFmpeg = `#!/bin/sh
for last; do :; done
head -c 11534336 /dev/zero > "$last"
`

const stubFFprobe = `#!/bin/sh
cat <<'JSON'
{"streams":[{"codec_type":"video","codec_name":"h264","width":640,"height":360},{"codec_type":"audio","codec_name":"aac"}],
 "format":{"duration":"12.0","bit_rate":"699050"}}
JSON
`

type cliTestEnv struct {
	cfg        *config.Config
	dir        string
	configPath string
}

func setupCLITestEnv(t *testing.T, ffmpegScript string) *cliTestEnv {
	t.Helper()
	cfg := testsupport.NewConfig(t,
		testsupport.WithFFmpegScript(ffmpegScript),
		testsupport.WithFFprobeScript(stubFFprobe),
		testsupport.WithMetricsTextfile(),
	)
	dir := testsupport.BaseDir(cfg)
	env := &cliTestEnv{cfg: cfg, dir: dir, configPath: filepath.Join(dir, "vidcompress.toml")}
	env.writeConfig(t)
	return env
}

func (e *cliTestEnv) writeConfig(t *testing.T) {
	t.Helper()
	testsupport.WriteConfig(t, e.configPath, e.cfg)
}

func (e *cliTestEnv) input(t *testing.T, name string) string {
	t.Helper()
	return testsupport.WriteFile(t, filepath.Join(e.dir, "videos", name), 64<<10)
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func TestCompressSucceedsAfterRaisingCRF(t *testing.T) {
	env := setupCLITestEnv(t, sizedFFmpeg)
	input := env.input(t, "clip.mov")

	out, _, err := runCLI(t, []string{input}, env.configPath)
	if err != nil {
		t.Fatalf("compress: %v\n%s", err, out)
	}
	requireContains(t, out, "fits at CRF 30 after 2 attempts")
	requireContains(t, out, "12 MiB")
	requireContains(t, out, "h264 640x360")

	info, err := os.Stat(filepath.Join(env.dir, "videos", "clip_discord.mp4"))
	if err != nil {
		t.Fatalf("expected output file: %v", err)
	}
	if info.Size() != 1<<20 {
		t.Fatalf("unexpected output size %d", info.Size())
	}

	metrics, err := os.ReadFile(env.cfg.Metrics.Textfile)
	if err != nil {
		t.Fatalf("expected metrics textfile: %v", err)
	}
	requireContains(t, string(metrics), `vidcompress_runs_total{state="succeeded"} 1`)
	requireContains(t, string(metrics), `vidcompress_attempts_total{outcome="over_budget"} 1`)
}

func TestCompressToolFailure(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.FFmpegFails)
	input := env.input(t, "broken.mp4")

	out, _, err := runCLI(t, []string{input}, env.configPath)
	if !errors.Is(err, compress.ErrToolFailed) {
		t.Fatalf("expected ErrToolFailed, got %v", err)
	}
	requireContains(t, err.Error(), "Invalid data found when processing input")
	requireContains(t, out, "ffmpeg failed after 1 attempt")
}

func TestCompressExhausted(t *testing.T) {
	env := setupCLITestEnv(t, oversizedFFmpeg)
	input := env.input(t, "long.mp4")

	out, _, err := runCLI(t, []string{input}, env.configPath)
	if !errors.Is(err, compress.ErrExhausted) {
		t.Fatalf("expected ErrExhausted, got %v", err)
	}
	requireContains(t, out, "file kept")
	if _, err := os.Stat(filepath.Join(env.dir, "videos", "long_discord.mp4")); err != nil {
		t.Fatalf("expected oversized output kept: %v", err)
	}
}

func TestCompressMissingInput(t *testing.T) {
	env := setupCLITestEnv(t, sizedFFmpeg)

	out, _, err := runCLI(t, []string{filepath.Join(env.dir, "nope.mp4")}, env.configPath)
	if !errors.Is(err, compress.ErrMissingInput) {
		t.Fatalf("expected ErrMissingInput, got %v", err)
	}
	requireContains(t, out, "input missing or unreadable")
	if _, err := os.Stat(filepath.Join(env.dir, "nope_discord.mp4")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected no output, stat err = %v", err)
	}
}

func TestCompressMissingEncoderIsLaunchFailure(t *testing.T) {
	env := setupCLITestEnv(t, sizedFFmpeg)
	env.cfg.Encoder.FFmpegPath = filepath.Join(env.dir, "missing", "ffmpeg")
	env.writeConfig(t)
	input := env.input(t, "clip.mp4")

	_, _, err := runCLI(t, []string{input}, env.configPath)
	if !errors.Is(err, compress.ErrLaunchFailed) {
		t.Fatalf("expected ErrLaunchFailed, got %v", err)
	}
}

func TestRootRequiresExactlyOneArgument(t *testing.T) {
	env := setupCLITestEnv(t, sizedFFmpeg)
	if _, _, err := runCLI(t, nil, env.configPath); err == nil {
		t.Fatal("expected error without input")
	}
	if _, _, err := runCLI(t, []string{"a.mp4", "b.mp4"}, env.configPath); err == nil {
		t.Fatal("expected error with two inputs")
	}
}

func TestCheckCommand(t *testing.T) {
	env := setupCLITestEnv(t, sizedFFmpeg)

	out, _, err := runCLI(t, []string{"check"}, env.configPath)
	if err != nil {
		t.Fatalf("check: %v\n%s", err, out)
	}
	requireContains(t, out, "FFmpeg")
	requireContains(t, out, "configured")
	requireContains(t, out, "[OK]")
}

func TestCheckCommandReportsMissingFFmpeg(t *testing.T) {
	env := setupCLITestEnv(t, sizedFFmpeg)
	env.cfg.Encoder.FFmpegPath = filepath.Join(env.dir, "missing", "ffmpeg")
	env.writeConfig(t)

	out, _, err := runCLI(t, []string{"check"}, env.configPath)
	if err == nil {
		t.Fatalf("expected check to fail\n%s", out)
	}
	requireContains(t, out, "[ERROR]")
}

func TestConfigInitAndValidate(t *testing.T) {
	env := setupCLITestEnv(t, sizedFFmpeg)

	out, _, err := runCLI(t, []string{"config", "validate"}, env.configPath)
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Configuration valid")
	requireContains(t, out, env.configPath)
	requireContains(t, out, "== Configuration ==")
	requireContains(t, out, "FFmpeg:")

	target := filepath.Join(t.TempDir(), "config.toml")
	out, _, err = runCLI(t, []string{"config", "init", "--path", target}, "")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	if _, _, err := runCLI(t, []string{"config", "init", "--path", target}, ""); err == nil {
		t.Fatal("expected init to refuse overwriting without --overwrite")
	}
	if _, _, err := runCLI(t, []string{"config", "init", "--path", target, "--overwrite"}, ""); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}
}

func TestConfigValidateRejectsBadConfig(t *testing.T) {
	env := setupCLITestEnv(t, sizedFFmpeg)
	if err := os.WriteFile(env.configPath, []byte("[logging]\nformat = \"xml\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, err := runCLI(t, []string{"config", "validate"}, env.configPath); err == nil {
		t.Fatal("expected validation error")
	}
}
