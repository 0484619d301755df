package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"vidcompress/internal/deps"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Report whether ffmpeg and ffprobe can be found",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.configValue()
			statuses := []deps.Status{
				deps.LocateFFmpeg(cfg.Encoder.FFmpegPath, cfg.Encoder.ToolsDir),
				deps.LocateFFprobe(cfg.Encoder.FFprobePath, cfg.Encoder.ToolsDir),
			}

			out := cmd.OutOrStdout()
			r := newReportWriter(out, shouldColorize(out))
			r.header("Dependencies")

			rows := make([][]string, 0, len(statuses))
			for _, st := range statuses {
				location := st.Command
				if !st.Available {
					location = st.Detail
				}
				rows = append(rows, []string{st.Name, yesNo(st.Available), st.Source, location})
			}
			r.block(renderTable([]string{"Binary", "Found", "Source", "Location"}, rows, nil))

			var missing error
			for _, st := range statuses {
				kind := statusOK
				message := st.Description
				switch {
				case st.Available:
				case st.Optional:
					kind = statusWarn
					message = "optional; " + st.Detail
				default:
					kind = statusError
					message = st.Detail
					if missing == nil {
						missing = fmt.Errorf("%s not available: %s", st.Name, st.Detail)
					}
				}
				r.status(st.Name, kind, message)
			}
			return missing
		},
	}
}
