package compress

import (
	"time"

	"vidcompress/internal/encoder"
)

// Attempt records one encode at one quality level. Size is only meaningful
// when Measured is true.
type Attempt struct {
	Index    int
	Level    int
	Status   encoder.Status
	Size     int64
	Measured bool
	Fits     bool
	Duration time.Duration
}

// Ordinal is the 1-based attempt number used in reports.
func (a Attempt) Ordinal() int {
	return a.Index + 1
}

// Result summarizes a finished job.
type Result struct {
	State      State
	InputPath  string
	OutputPath string
	Budget     int64
	InputSize  int64
	FinalSize  int64
	FinalLevel int
	Attempts   []Attempt
}

// LastAttempt returns the most recent attempt, if any.
func (r Result) LastAttempt() (Attempt, bool) {
	if len(r.Attempts) == 0 {
		return Attempt{}, false
	}
	return r.Attempts[len(r.Attempts)-1], true
}

// ReductionRatio is the fraction of the input size saved by the final
// artifact (0.8 means the output is 20% of the input). Zero when either
// size is unknown.
func (r Result) ReductionRatio() float64 {
	if r.InputSize <= 0 || r.FinalSize <= 0 {
		return 0
	}
	return 1 - float64(r.FinalSize)/float64(r.InputSize)
}
