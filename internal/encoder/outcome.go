package encoder

import (
	"fmt"
	"strings"
)

// Status classifies how an invocation ended.
type Status int

const (
	// Completed means ffmpeg exited with status zero.
	Completed Status = iota
	// ToolFailed means ffmpeg ran but exited non-zero or was killed.
	ToolFailed
	// LaunchFailed means ffmpeg could not be started at all.
	LaunchFailed
)

func (s Status) String() string {
	switch s {
	case Completed:
		return "completed"
	case ToolFailed:
		return "tool_failed"
	case LaunchFailed:
		return "launch_failed"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Outcome is the structured result of one invocation. ExitCode is -1 when
// the process never exited normally (launch failure or signal).
type Outcome struct {
	Status   Status
	ExitCode int
	Stderr   string
	Err      error
}

// OK reports whether the invocation completed.
func (o Outcome) OK() bool {
	return o.Status == Completed
}

// Detail renders a short human-readable explanation of a failed outcome.
func (o Outcome) Detail() string {
	switch o.Status {
	case Completed:
		return "completed"
	case LaunchFailed:
		if o.Err != nil {
			return o.Err.Error()
		}
		return "encoder could not be started"
	default:
		parts := make([]string, 0, 2)
		if o.ExitCode >= 0 {
			parts = append(parts, fmt.Sprintf("exit status %d", o.ExitCode))
		} else if o.Err != nil {
			parts = append(parts, o.Err.Error())
		}
		if msg := strings.TrimSpace(o.Stderr); msg != "" {
			parts = append(parts, msg)
		}
		if len(parts) == 0 {
			return "encoder failed"
		}
		return strings.Join(parts, ": ")
	}
}
