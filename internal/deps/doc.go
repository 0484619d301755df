// Package deps locates the external ffmpeg and ffprobe binaries and reports
// their availability for the check command.
package deps
