// Package flowlog provides the engine's structured-logging adapter: a
// nil-safe wrapper over log/slog with one debug event per solver phase, so
// callers can opt into visibility without the engine taking a hard logging
// dependency. flowengine.ComputeFlow emits the prune, reduce, extract,
// simplify and completion events; DinicIteration and NoAugmentingPath are
// not called by dinic.Run, so Dinic's rounds are not logged.
//
// Grounded on Hola-to-network_logistics_problem/pkg/logger's slog usage
// (level mapping, handler construction), scaled down to a single
// synchronous library call: this package does not own process-wide log
// configuration, a log file, or rotation the way that service's logger
// does, because flowengine has no persistent log file to rotate (see
// DESIGN.md).
package flowlog

import (
	"log/slog"

	"github.com/circlesnet/flowengine/address"
	"github.com/circlesnet/flowengine/amount"
)

// Logger wraps a *slog.Logger that may be nil; every method is a no-op
// when the underlying logger is absent, so callers of flowengine.ComputeFlow
// that never set flowconfig.Options.Logger pay nothing for these calls.
type Logger struct {
	inner *slog.Logger
}

// New wraps inner. A nil inner produces a Logger whose methods are no-ops.
func New(inner *slog.Logger) Logger {
	return Logger{inner: inner}
}

func (l Logger) enabled() bool { return l.inner != nil }

// DinicIteration logs one BFS-level-graph-plus-blocking-flow round.
func (l Logger) DinicIteration(round int, pushed amount.U256, runningTotal amount.U256) {
	if !l.enabled() {
		return
	}
	l.inner.Debug("dinic: blocking flow round",
		slog.Int("round", round),
		slog.String("pushed", pushed.String()),
		slog.String("running_total", runningTotal.String()),
	)
}

// NoAugmentingPath logs that BFS found the sink unreachable, ending Dinic's
// outer loop.
func (l Logger) NoAugmentingPath(round int) {
	if !l.enabled() {
		return
	}
	l.inner.Debug("dinic: no augmenting path, stopping", slog.Int("round", round))
}

// Pruned logs the outcome of prune-to-requested.
func (l Logger) Pruned(requested, achieved, residualExcess amount.U256) {
	if !l.enabled() {
		return
	}
	l.inner.Debug("postflow: pruned to requested",
		slog.String("requested", requested.String()),
		slog.String("achieved", achieved.String()),
		slog.String("residual_excess", residualExcess.String()),
	)
}

// Reduced logs how much flow was shaved by the transfer-count cap.
func (l Logger) Reduced(maxLiftedEdges uint64, lost amount.U256) {
	if !l.enabled() {
		return
	}
	l.inner.Debug("postflow: reduced transfer count",
		slog.Uint64("max_lifted_edges", maxLiftedEdges),
		slog.String("lost", lost.String()),
	)
}

// Extracted logs the size of the extracted transfer list, before
// simplification.
func (l Logger) Extracted(count int) {
	if !l.enabled() {
		return
	}
	l.inner.Debug("postflow: extracted transfers", slog.Int("count", count))
}

// Simplified logs the transfer count before and after collapsing chains.
func (l Logger) Simplified(before, after int) {
	if !l.enabled() {
		return
	}
	l.inner.Debug("postflow: simplified transfers",
		slog.Int("before", before),
		slog.Int("after", after),
	)
}

// Completed logs the final outcome of a ComputeFlow call.
func (l Logger) Completed(source, sink address.Address, achieved amount.U256, transferCount int) {
	if !l.enabled() {
		return
	}
	l.inner.Debug("flowengine: compute_flow completed",
		slog.String("source", source.Short()),
		slog.String("sink", sink.Short()),
		slog.String("achieved", achieved.String()),
		slog.Int("transfer_count", transferCount),
	)
}
