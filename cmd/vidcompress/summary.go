package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"vidcompress/internal/compress"
	"vidcompress/internal/media/ffprobe"
)

func renderRunSummary(w io.Writer, result compress.Result, details *ffprobe.Summary, runErr error, colorize bool) {
	r := newReportWriter(w, colorize)
	r.header("vidcompress")
	if len(result.Attempts) > 0 {
		r.block(attemptsTable(result))
	}

	switch {
	case result.InputSize > 0:
		r.field("Input", fmt.Sprintf("%s (%s)", result.InputPath, formatSize(result.InputSize)))
	case result.InputPath != "":
		r.field("Input", result.InputPath)
	}
	if result.FinalSize > 0 {
		r.field("Output", fmt.Sprintf("%s (%s)", result.OutputPath, formatSize(result.FinalSize)))
	}
	r.field("Budget", formatSize(result.Budget))

	kind, message := resultStatus(result, runErr)
	r.status("Result", kind, message)

	if details != nil {
		if line := describeDetails(*details); line != "" {
			r.field("Details", line)
		}
	}
}

func attemptsTable(result compress.Result) string {
	rows := make([][]string, 0, len(result.Attempts))
	for _, a := range result.Attempts {
		size := "-"
		fits := a.Status.String()
		if a.Measured {
			size = formatSize(a.Size)
			fits = yesNo(a.Fits)
		}
		rows = append(rows, []string{
			strconv.Itoa(a.Ordinal()),
			strconv.Itoa(a.Level),
			size,
			fits,
			a.Duration.Round(100 * time.Millisecond).String(),
		})
	}
	return renderTable(
		[]string{"#", "CRF", "Size", "Fits", "Took"},
		rows,
		[]columnAlignment{alignRight, alignRight, alignRight, alignLeft, alignRight},
	)
}

func resultStatus(result compress.Result, runErr error) (statusKind, string) {
	attempts := pluralize(len(result.Attempts), "attempt")
	switch {
	case runErr == nil && result.State == compress.StateSucceeded:
		msg := fmt.Sprintf("fits at CRF %d after %s", result.FinalLevel, attempts)
		if ratio := result.ReductionRatio(); ratio > 0 {
			msg += fmt.Sprintf(" (%.1f%% smaller)", ratio*100)
		}
		return statusOK, msg
	case errors.Is(runErr, compress.ErrExhausted):
		return statusWarn, fmt.Sprintf("still %s over budget at CRF %d; file kept", formatSize(result.FinalSize-result.Budget), result.FinalLevel)
	case errors.Is(runErr, compress.ErrMissingInput):
		return statusError, "input missing or unreadable"
	case errors.Is(runErr, compress.ErrLaunchFailed):
		return statusError, "ffmpeg could not be started"
	case errors.Is(runErr, compress.ErrToolFailed):
		return statusError, fmt.Sprintf("ffmpeg failed after %s", attempts)
	case errors.Is(runErr, compress.ErrMeasurementFailed):
		return statusError, "encoded file could not be measured"
	case errors.Is(runErr, compress.ErrOutputLocked):
		return statusError, "output is being written by another vidcompress"
	case runErr != nil:
		return statusError, runErr.Error()
	default:
		return statusInfo, result.State.String()
	}
}

func describeDetails(s ffprobe.Summary) string {
	parts := make([]string, 0, 4)
	if s.VideoCodec != "" {
		video := s.VideoCodec
		if res := s.Resolution(); res != "" {
			video += " " + res
		}
		parts = append(parts, video)
	}
	if s.AudioCodec != "" {
		parts = append(parts, s.AudioCodec)
	}
	if s.Duration > 0 {
		parts = append(parts, s.Duration.Round(time.Second).String())
	}
	if s.BitRate > 0 {
		parts = append(parts, humanize.SIWithDigits(float64(s.BitRate), 1, "bit/s"))
	}
	return strings.Join(parts, ", ")
}

func formatSize(n int64) string {
	if n < 0 {
		return "0 B"
	}
	return humanize.IBytes(uint64(n))
}

func pluralize(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return strconv.Itoa(n) + " " + word + "s"
}
