// Package logging assembles structured slog loggers for vidcompress.
//
// It owns the console and JSON handlers, level parsing, and output fan-out
// (stdout plus an optional log file), and exposes attribute helpers so call
// sites emit the same keys everywhere. The console handler renders byte
// sizes and durations for humans; the JSON handler keeps raw values for
// machines. A no-op logger is provided for tests and optional wiring.
package logging
