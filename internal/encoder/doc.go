// Package encoder runs a single ffmpeg encode and reports its outcome.
//
// An Invocation is deliberately dumb: it builds the fixed H.264/AAC argument
// list for the requested CRF, runs ffmpeg to completion with its console
// output captured, and classifies the exit as Completed, ToolFailed, or
// LaunchFailed. It never retries and never looks at the produced file; the
// compress package owns those decisions.
package encoder
