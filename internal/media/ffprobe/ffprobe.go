package ffprobe

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

type probeOutput struct {
	Streams []stream `json:"streams"`
	Format  format   `json:"format"`
}

type stream struct {
	CodecName string `json:"codec_name"`
	CodecType string `json:"codec_type"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
}

type format struct {
	Duration   string `json:"duration"`
	BitRate    string `json:"bit_rate"`
	FormatName string `json:"format_name"`
}

// Summary is the subset of ffprobe output shown after a run.
type Summary struct {
	Duration   time.Duration
	BitRate    int64
	Container  string
	VideoCodec string
	Width      int
	Height     int
	AudioCodec string
}

// Resolution renders WxH, or "" when no video stream was found.
func (s Summary) Resolution() string {
	if s.Width <= 0 || s.Height <= 0 {
		return ""
	}
	return strconv.Itoa(s.Width) + "x" + strconv.Itoa(s.Height)
}

// Describe executes ffprobe against path and summarizes the result.
func Describe(ctx context.Context, binary, path string) (Summary, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		return Summary{}, errors.New("ffprobe describe: binary not available")
	}
	if strings.TrimSpace(path) == "" {
		return Summary{}, errors.New("ffprobe describe: empty path")
	}

	cmd := exec.CommandContext(ctx, binary, "-v", "error", "-hide_banner", "-show_format", "-show_streams", "-of", "json", "--", path)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return Summary{}, fmt.Errorf("ffprobe describe: %w: %s", err, strings.TrimSpace(stderr.String()))
	}
	return Parse(stdout.Bytes())
}

// Parse reduces raw ffprobe JSON to a Summary. Unparseable numeric fields
// are left at zero.
func Parse(data []byte) (Summary, error) {
	var out probeOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return Summary{}, fmt.Errorf("ffprobe parse: %w", err)
	}

	summary := Summary{Container: out.Format.FormatName}
	if seconds := parseFloat(out.Format.Duration); seconds > 0 {
		summary.Duration = time.Duration(seconds * float64(time.Second))
	}
	if rate := parseFloat(out.Format.BitRate); rate > 0 {
		summary.BitRate = int64(rate)
	}
	for _, s := range out.Streams {
		switch strings.ToLower(s.CodecType) {
		case "video":
			if summary.VideoCodec == "" {
				summary.VideoCodec = s.CodecName
				summary.Width, summary.Height = s.Width, s.Height
			}
		case "audio":
			if summary.AudioCodec == "" {
				summary.AudioCodec = s.CodecName
			}
		}
	}
	return summary, nil
}

func parseFloat(value string) float64 {
	parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return 0
	}
	return parsed
}
