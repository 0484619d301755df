// Package ffprobe describes a finished artifact with ffprobe.
//
// Describe runs ffprobe once and reduces its JSON output to a Summary with
// the container duration, average bitrate, and primary video/audio codecs.
// The result is informational only; callers never change a compression
// outcome based on it.
package ffprobe
