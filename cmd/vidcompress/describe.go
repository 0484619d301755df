package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"vidcompress/internal/deps"
	"vidcompress/internal/logging"
	"vidcompress/internal/media/ffprobe"
)

// describeArtifact probes the final file for the summary. Failures only
// cost the details line.
func describeArtifact(cmd *cobra.Command, configured, toolsDir, path string, logger *slog.Logger) *ffprobe.Summary {
	probe := deps.LocateFFprobe(configured, toolsDir)
	if !probe.Available {
		logger.Debug("ffprobe not located; skipping artifact details", logging.String("detail", probe.Detail))
		return nil
	}
	summary, err := ffprobe.Describe(cmd.Context(), probe.Command, path)
	if err != nil {
		logger.Debug("ffprobe failed; skipping artifact details", logging.Error(err))
		return nil
	}
	return &summary
}
