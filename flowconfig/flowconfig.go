// Package flowconfig defines the engine's run configuration: the optional
// knobs compute_flow's signature groups in spec.md §6 (max_distance,
// max_transfers) plus the structured logger, collected into one validated
// struct the way the corpus's FlowOptions-style configs do.
package flowconfig

import (
	"fmt"
	"log/slog"
)

// ErrZeroMaxTransfers is returned by Validate when MaxTransfers is set to
// zero: a transfer-count cap of zero can never be satisfied by any
// nonempty flow, so it is rejected up front rather than silently shaving
// every computation down to (0, nil).
var ErrZeroMaxTransfers = fmt.Errorf("flowconfig: %w", errZeroMaxTransfers)
var errZeroMaxTransfers = fmt.Errorf("max transfers must be nonzero when set")

// Options configures one ComputeFlow call.
//   - MaxDistance: caps the lifted-graph BFS depth. Three lifted hops
//     correspond to one underlying transfer, so a cap of 6 permits
//     two-hop transfers. Nil means unbounded.
//   - MaxTransfers: caps the transfer count after extraction; flow is
//     shaved to meet it. Nil means unbounded.
//   - Logger: optional structured-logging sink. Nil disables logging
//     entirely at no cost (flowlog.Logger is nil-safe).
type Options struct {
	MaxDistance  *uint64
	MaxTransfers *uint64
	Logger       *slog.Logger
}

// Validate reports whether o is internally consistent.
func (o Options) Validate() error {
	if o.MaxTransfers != nil && *o.MaxTransfers == 0 {
		return ErrZeroMaxTransfers
	}
	return nil
}
