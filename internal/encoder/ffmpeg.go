package encoder

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	// stderrTailLimit bounds how much ffmpeg stderr is retained for diagnostics.
	stderrTailLimit = 2048
	// killWaitDelay caps how long Wait blocks on inherited pipes after a kill.
	killWaitDelay = 2 * time.Second
)

// FFmpeg invokes an ffmpeg binary located by the caller.
type FFmpeg struct {
	binary string
}

// NewFFmpeg returns an invoker that executes binary. An empty binary makes
// every invocation report LaunchFailed.
func NewFFmpeg(binary string) *FFmpeg {
	return &FFmpeg{binary: strings.TrimSpace(binary)}
}

// Encode runs ffmpeg synchronously for the request. Cancelling ctx kills the
// child process; that is reported as ToolFailed.
func (f *FFmpeg) Encode(ctx context.Context, req Request) Outcome {
	if f.binary == "" {
		return Outcome{Status: LaunchFailed, ExitCode: -1, Err: errors.New("ffmpeg binary not available")}
	}

	// Stdout stays nil so exec attaches the null device.
	cmd := exec.CommandContext(ctx, f.binary, BuildArgs(req)...)
	var stderrBuf bytes.Buffer
	cmd.Stderr = &stderrBuf
	cmd.WaitDelay = killWaitDelay

	if err := cmd.Start(); err != nil {
		if ctx.Err() != nil {
			return Outcome{Status: ToolFailed, ExitCode: -1, Err: err}
		}
		return Outcome{Status: LaunchFailed, ExitCode: -1, Err: err}
	}

	err := cmd.Wait()
	stderr := tail(stderrBuf.String(), stderrTailLimit)
	if err == nil {
		return Outcome{Status: Completed, Stderr: stderr}
	}

	out := Outcome{Status: ToolFailed, ExitCode: -1, Stderr: stderr, Err: err}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		out.ExitCode = exitErr.ExitCode()
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		out.Err = errors.Join(ctxErr, err)
	}
	return out
}

func tail(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 || len(value) <= limit {
		return value
	}
	cut := len(value) - limit
	for cut < len(value) && !utf8.RuneStart(value[cut]) {
		cut++
	}
	return "…" + value[cut:]
}
