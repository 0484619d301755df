package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"vidcompress/internal/config"
)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// ConfigOption customizes the generated test configuration.
type ConfigOption func(*configBuilder)

// NewConfig returns a configuration rooted in a temp directory with quiet
// logging and a private tools dir. HOME is pointed at the temp directory so
// no real user configuration leaks in.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	t.Setenv("HOME", filepath.Join(base, "home"))
	t.Setenv(config.FFmpegEnv, "")

	cfg := config.Default()
	cfg.Encoder.ToolsDir = filepath.Join(base, "tools")
	cfg.Logging.Level = "error"

	builder := &configBuilder{t: t, baseDir: base, cfg: &cfg}
	for _, opt := range opts {
		opt(builder)
	}
	return builder.cfg
}

// WithFFmpegScript installs body as the configured ffmpeg.
func WithFFmpegScript(body string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Encoder.FFmpegPath = WriteScript(b.t, filepath.Join(b.baseDir, "bin", "ffmpeg"), body)
	}
}

// WithFFprobeScript installs body as the configured ffprobe.
func WithFFprobeScript(body string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Encoder.FFprobePath = WriteScript(b.t, filepath.Join(b.baseDir, "bin", "ffprobe"), body)
	}
}

// WithMetricsTextfile enables the Prometheus textfile export.
func WithMetricsTextfile() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Metrics.Textfile = filepath.Join(b.baseDir, "vidcompress.prom")
	}
}

// WriteConfig serializes cfg as TOML at path.
func WriteConfig(t testing.TB, path string, cfg *config.Config) string {
	t.Helper()
	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir config dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

// BaseDir returns the temp directory backing cfg.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Encoder.ToolsDir)
}
