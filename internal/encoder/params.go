package encoder

import (
	"path/filepath"
	"strconv"
	"strings"
)

const (
	defaultVideoCodec   = "libx264"
	defaultPreset       = "fast"
	defaultAudioCodec   = "aac"
	defaultAudioBitrate = "128k"
	defaultMovFlags     = "+faststart"
)

// Params is the fully-resolved parameter set for one encode.
type Params struct {
	VideoCodec   string
	CRF          int
	Preset       string
	AudioCodec   string
	AudioBitrate string
	MovFlags     string
}

// DefaultParams returns the fixed encode parameters with the given CRF.
func DefaultParams(crf int) Params {
	return Params{
		VideoCodec:   defaultVideoCodec,
		CRF:          crf,
		Preset:       defaultPreset,
		AudioCodec:   defaultAudioCodec,
		AudioBitrate: defaultAudioBitrate,
		MovFlags:     defaultMovFlags,
	}
}

// Request describes one encode: where to read, where to write, and how.
type Request struct {
	InputPath  string
	OutputPath string
	Params     Params
}

// BuildArgs constructs the ffmpeg argument slice (without the binary) for a
// request. The preamble silences banner and progress chatter and forces
// overwrite of an existing output.
func BuildArgs(req Request) []string {
	p := req.Params
	args := make([]string, 0, 24)

	// --- Preamble ---
	args = append(args, "-hide_banner", "-nostdin", "-loglevel", "error", "-y")

	// --- Input ---
	args = append(args, "-i", fileArg(req.InputPath))

	// --- Video ---
	args = append(args,
		"-c:v", p.VideoCodec,
		"-crf", strconv.Itoa(p.CRF),
		"-preset", p.Preset,
	)

	// --- Audio ---
	args = append(args, "-c:a", p.AudioCodec, "-b:a", p.AudioBitrate)

	// --- Container ---
	if p.MovFlags != "" {
		args = append(args, "-movflags", p.MovFlags)
	}

	// --- Output ---
	args = append(args, fileArg(req.OutputPath))
	return args
}

// fileArg keeps ffmpeg from reading a relative path such as "-clip.mp4" as an
// option, or a bare "-" as a pipe.
func fileArg(path string) string {
	if strings.HasPrefix(path, "-") {
		return "." + string(filepath.Separator) + path
	}
	return path
}
