// Package compress drives ffmpeg until a video fits under a size budget.
//
// A Job names the input, the output artifact path, the byte budget, and the
// ordered CRF levels to try. Policy.Run walks those levels strictly in
// order: it encodes at the current level, measures the artifact, and either
// accepts it, moves to the next (more aggressive) level, or stops. Launch
// and tool failures abort the job immediately because a different CRF will
// not fix a missing binary or a corrupt input. When every level has been
// tried and the artifact is still too large the job ends Exhausted and the
// last artifact is left on disk for inspection.
//
// The only side-effecting collaborator is the Invoker interface, so the
// stopping rule is unit tested with scripted fakes.
package compress
