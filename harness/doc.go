// Package harness times repeated sweep evaluations and reports
// wall-clock statistics per execution policy.
//
// What:
//
//   - Run invokes sweep.Evaluate a fixed number of trials and reports
//     min/mean/max/total durations plus a rolling mean over the most
//     recent trials (a bounded FIFO window).
//   - Compare runs the same configuration under the Sequential and
//     Parallel policies and reports the speedup ratio.
//
// Why:
//
//   - Tuning: pick lane widths and worker counts for a target machine.
//   - Regression tracking: a checksum of total iterations rides along
//     with every report, so timing runs double as correctness smoke
//     tests across policies.
//
// The harness is a pure caller of sweep.Evaluate: it imposes no budget
// on the evaluation itself and never alters results. Reports are plain
// values; the harness does no printing or logging of its own.
//
// Errors:
//
//   - ErrTrials: trial count is not positive.
//   - ErrWindow: rolling window size is not positive.
//   - sweep.ErrInvalidConfig: propagated unchanged from the first trial.
package harness
