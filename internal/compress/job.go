package compress

import (
	"fmt"
	"path/filepath"
	"strings"
)

// DefaultBudget is the Discord upload limit (10 MiB).
const DefaultBudget int64 = 10 << 20

// Schedule generates the CRF levels a job walks through: Start, Start+Step,
// ... up to and including Max.
type Schedule struct {
	Start int
	Step  int
	Max   int
}

// DefaultSchedule yields 28, 30, 32, 34, 36, 38, 40.
var DefaultSchedule = Schedule{Start: 28, Step: 2, Max: 40}

// Levels expands the schedule. A non-positive step yields only Start so the
// sequence is always finite.
func (s Schedule) Levels() []int {
	if s.Start > s.Max {
		return nil
	}
	if s.Step <= 0 {
		return []int{s.Start}
	}
	// Counted rather than stepped so a Max near math.MaxInt cannot overflow.
	count := (uint64(s.Max)-uint64(s.Start))/uint64(s.Step) + 1
	levels := make([]int, 0, min(count, 64))
	for i := uint64(0); i < count; i++ {
		levels = append(levels, s.Start+int(i)*s.Step)
	}
	return levels
}

// Job is one compression request. It is owned by a single Policy.Run call.
type Job struct {
	InputPath  string
	OutputPath string
	Budget     int64
	Levels     []int
}

// NewJob builds a job for input with the deterministic output path, the
// default budget, and the default schedule.
func NewJob(input string) Job {
	return Job{
		InputPath:  input,
		OutputPath: OutputPath(input),
		Budget:     DefaultBudget,
		Levels:     DefaultSchedule.Levels(),
	}
}

// Validate checks the job shape. It does not touch the filesystem beyond
// path cleaning.
func (j Job) Validate() error {
	if strings.TrimSpace(j.InputPath) == "" {
		return wrap(ErrMissingInput, "validate job", "input path is empty", nil)
	}
	if strings.TrimSpace(j.OutputPath) == "" {
		return wrap(ErrInvalidJob, "validate job", "output path is empty", nil)
	}
	if samePath(j.InputPath, j.OutputPath) {
		return wrap(ErrInvalidJob, "validate job", fmt.Sprintf("output path %s would overwrite the input", j.OutputPath), nil)
	}
	if j.Budget <= 0 {
		return wrap(ErrInvalidJob, "validate job", fmt.Sprintf("budget must be positive, got %d", j.Budget), nil)
	}
	if len(j.Levels) == 0 {
		return wrap(ErrInvalidJob, "validate job", "no quality levels to try", nil)
	}
	for i := 1; i < len(j.Levels); i++ {
		if j.Levels[i] <= j.Levels[i-1] {
			return wrap(ErrInvalidJob, "validate job", fmt.Sprintf("quality levels must be strictly increasing: %v", j.Levels), nil)
		}
	}
	return nil
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}
