package compress

import (
	"errors"
	"fmt"
	"strings"
)

// Markers for errors.Is classification of a failed job.
var (
	ErrMissingInput      = errors.New("missing input")
	ErrLaunchFailed      = errors.New("encoder launch failed")
	ErrToolFailed        = errors.New("encoder failed")
	ErrMeasurementFailed = errors.New("artifact measurement failed")
	ErrExhausted         = errors.New("quality levels exhausted")
	ErrInvalidJob        = errors.New("invalid job")
	ErrOutputLocked      = errors.New("output locked")
)

// wrap tags err with marker and an operation/message detail so callers can
// classify with errors.Is while the message stays readable.
func wrap(marker error, operation, message string, err error) error {
	detail := buildDetail(operation, message)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

func buildDetail(operation, message string) string {
	parts := make([]string, 0, 2)
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "compression failure"
	}
	return strings.Join(parts, ": ")
}
