package compress

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"vidcompress/internal/encoder"
	"vidcompress/internal/logging"
)

// Invoker performs exactly one encode and reports how it ended.
type Invoker interface {
	Encode(ctx context.Context, req encoder.Request) encoder.Outcome
}

// Recorder observes attempts and results, e.g. for metrics export.
type Recorder interface {
	RecordAttempt(Attempt)
	RecordResult(Result)
}

type nopRecorder struct{}

func (nopRecorder) RecordAttempt(Attempt) {}
func (nopRecorder) RecordResult(Result)   {}

// Option customizes a Policy.
type Option func(*Policy)

// WithRecorder attaches an observer for attempts and results.
func WithRecorder(r Recorder) Option {
	return func(p *Policy) {
		if r != nil {
			p.recorder = r
		}
	}
}

// WithClock overrides the time source used for attempt durations.
func WithClock(now func() time.Time) Option {
	return func(p *Policy) {
		if now != nil {
			p.now = now
		}
	}
}

// Policy is the size-constrained re-encoding loop.
type Policy struct {
	invoker  Invoker
	logger   *slog.Logger
	recorder Recorder
	now      func() time.Time
	params   func(level int) encoder.Params
}

// NewPolicy returns a policy that encodes through invoker.
func NewPolicy(invoker Invoker, logger *slog.Logger, opts ...Option) *Policy {
	p := &Policy{
		invoker:  invoker,
		logger:   logging.NewComponentLogger(logger, "compress"),
		recorder: nopRecorder{},
		now:      time.Now,
		params:   encoder.DefaultParams,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run executes job to a terminal state. It returns a nil error only when the
// artifact fits the budget; every other terminal state comes with an error
// carrying one of the package markers. The Result is populated in all cases
// with whatever attempts were made.
func (p *Policy) Run(ctx context.Context, job Job) (Result, error) {
	result := Result{
		State:      StatePending,
		InputPath:  job.InputPath,
		OutputPath: job.OutputPath,
		Budget:     job.Budget,
	}
	logger := p.logger.With(logging.String("input_path", job.InputPath))

	if err := job.Validate(); err != nil {
		return p.fail(logger, result, err)
	}
	inputSize, err := inspectInput(job.InputPath)
	if err != nil {
		return p.fail(logger, result, err)
	}
	result.InputSize = inputSize

	lock, err := acquireOutputLock(job.OutputPath)
	if err != nil {
		return p.fail(logger, result, err)
	}
	defer lock.release(logger)

	logger.Info("compression started",
		logging.String("output_path", job.OutputPath),
		logging.Int64("input_bytes", inputSize),
		logging.Int64("budget_bytes", job.Budget),
		logging.Int("max_attempts", len(job.Levels)),
	)

	for idx, level := range job.Levels {
		result.State = StateAttempting
		attempt := Attempt{Index: idx, Level: level}
		logger.Info("encoding attempt",
			logging.Int("attempt", attempt.Ordinal()),
			logging.Int("max_attempts", len(job.Levels)),
			logging.Int("crf", level),
		)

		started := p.now()
		outcome := p.invoker.Encode(ctx, encoder.Request{
			InputPath:  job.InputPath,
			OutputPath: job.OutputPath,
			Params:     p.params(level),
		})
		attempt.Duration = p.now().Sub(started)
		attempt.Status = outcome.Status

		switch outcome.Status {
		case encoder.Completed:
		case encoder.LaunchFailed:
			p.record(&result, attempt)
			return p.fail(logger, result, wrap(ErrLaunchFailed, attemptLabel(attempt), outcome.Detail(), outcome.Err))
		default:
			p.record(&result, attempt)
			return p.fail(logger, result, wrap(ErrToolFailed, attemptLabel(attempt), outcome.Detail(), outcome.Err))
		}

		result.State = StateMeasuring
		size, err := measureSize(job.OutputPath)
		if err != nil {
			p.record(&result, attempt)
			return p.fail(logger, result, wrap(ErrMeasurementFailed, attemptLabel(attempt), job.OutputPath, err))
		}
		attempt.Size = size
		attempt.Measured = true
		attempt.Fits = size <= job.Budget
		p.record(&result, attempt)

		logger.Info("attempt finished",
			logging.Int("attempt", attempt.Ordinal()),
			logging.Int("crf", level),
			logging.Int64("output_bytes", size),
			logging.Int64("budget_bytes", job.Budget),
			logging.Bool("fits", attempt.Fits),
			logging.Duration("attempt_duration", attempt.Duration),
		)

		result.FinalSize = size
		result.FinalLevel = level
		if attempt.Fits {
			result.State = StateSucceeded
			logger.Info("compression succeeded",
				logging.Int("crf", level),
				logging.Int("attempts", len(result.Attempts)),
				logging.Int64("input_bytes", result.InputSize),
				logging.Int64("output_bytes", size),
				logging.Float64("reduction_percent", result.ReductionRatio()*100),
			)
			p.recorder.RecordResult(result)
			return result, nil
		}
		if idx < len(job.Levels)-1 {
			logger.Info("artifact over budget; raising crf",
				logging.Int("crf", level),
				logging.Int("next_crf", job.Levels[idx+1]),
				logging.Int64("over_bytes", size-job.Budget),
			)
		}
	}

	result.State = StateExhausted
	last, _ := result.LastAttempt()
	err = wrap(ErrExhausted, "compress",
		fmt.Sprintf("%d attempts up to crf %d still exceed the budget; last artifact kept at %s",
			len(result.Attempts), last.Level, job.OutputPath), nil)
	logging.WarnWithContext(logger, "compression exhausted quality levels", "compress_exhausted",
		logging.Int("attempts", len(result.Attempts)),
		logging.Int("crf", last.Level),
		logging.Int64("output_bytes", last.Size),
		logging.Int64("budget_bytes", job.Budget),
		logging.String(logging.FieldImpact, "output is larger than the budget"),
		logging.String(logging.FieldErrorHint, "trim or downscale the source and retry"),
	)
	p.recorder.RecordResult(result)
	return result, err
}

func (p *Policy) record(result *Result, attempt Attempt) {
	result.Attempts = append(result.Attempts, attempt)
	p.recorder.RecordAttempt(attempt)
}

func (p *Policy) fail(logger *slog.Logger, result Result, err error) (Result, error) {
	result.State = StateFailed
	logging.ErrorWithContext(logger, "compression failed", "compress_failed",
		logging.Int("attempts", len(result.Attempts)),
		logging.Error(err),
	)
	p.recorder.RecordResult(result)
	return result, err
}

func attemptLabel(a Attempt) string {
	return fmt.Sprintf("attempt %d (crf %d)", a.Ordinal(), a.Level)
}
