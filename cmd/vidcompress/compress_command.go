package main

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"vidcompress/internal/compress"
	"vidcompress/internal/deps"
	"vidcompress/internal/encoder"
	"vidcompress/internal/logging"
	"vidcompress/internal/media/ffprobe"
	"vidcompress/internal/metrics"
)

func runCompress(cmd *cobra.Command, ctx *commandContext, input string) error {
	cfg := ctx.configValue()
	logger, err := ctx.logger(uuid.NewString())
	if err != nil {
		return err
	}
	logger = logging.NewComponentLogger(logger, "cli")
	if ctx.configExists {
		logger.Debug("configuration loaded", logging.String("config_path", ctx.configPath))
	}

	ffmpeg := deps.LocateFFmpeg(cfg.Encoder.FFmpegPath, cfg.Encoder.ToolsDir)
	binary := ""
	if ffmpeg.Available {
		binary = ffmpeg.Command
		logger.Debug("ffmpeg located",
			logging.String("command", ffmpeg.Command),
			logging.String("source", ffmpeg.Source),
		)
	} else {
		logging.WarnWithContext(logger, "ffmpeg not located", "ffmpeg_missing",
			logging.String("detail", ffmpeg.Detail),
			logging.String(logging.FieldErrorHint, "install ffmpeg or set encoder.ffmpeg_path; run 'vidcompress check'"),
			logging.String(logging.FieldImpact, "encoding cannot start"),
		)
	}

	recorder := metrics.NewRecorder()
	policy := compress.NewPolicy(encoder.NewFFmpeg(binary), logger, compress.WithRecorder(recorder))
	result, runErr := policy.Run(cmd.Context(), compress.NewJob(input))

	if path := cfg.Metrics.Textfile; path != "" {
		if err := recorder.WriteTextfile(path); err != nil {
			logger.Warn("metrics export failed", logging.String("textfile", path), logging.Error(err))
		}
	}

	var details *ffprobe.Summary
	if runErr == nil {
		details = describeArtifact(cmd, cfg.Encoder.FFprobePath, cfg.Encoder.ToolsDir, result.OutputPath, logger)
	}

	out := cmd.OutOrStdout()
	renderRunSummary(out, result, details, runErr, shouldColorize(out))
	return runErr
}
