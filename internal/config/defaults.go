package config

const (
	defaultConfigPath = "~/.config/vidcompress/config.toml"
	projectConfigName = "vidcompress.toml"
	defaultToolsDir   = "~/.local/share/vidcompress/bin"
	defaultLogFormat  = "console"
	defaultLogLevel   = "info"

	// FFmpegEnv overrides encoder.ffmpeg_path when the file leaves it empty.
	FFmpegEnv = "VIDCOMPRESS_FFMPEG"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Encoder: Encoder{
			ToolsDir: defaultToolsDir,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
