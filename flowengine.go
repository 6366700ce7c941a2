package flowengine

import (
	"context"
	"fmt"

	"github.com/circlesnet/flowengine/address"
	"github.com/circlesnet/flowengine/adjacency"
	"github.com/circlesnet/flowengine/amount"
	"github.com/circlesnet/flowengine/dinic"
	"github.com/circlesnet/flowengine/edgedb"
	"github.com/circlesnet/flowengine/flowconfig"
	"github.com/circlesnet/flowengine/flowlog"
	"github.com/circlesnet/flowengine/flownode"
	"github.com/circlesnet/flowengine/postflow"
	"github.com/circlesnet/flowengine/transfer"
)

// ComputeFlow is the engine's sole entry point (spec §6): it lifts edges
// into the Balance/Trust flow network, runs Dinic from source to sink,
// then prunes, shaves, extracts, simplifies, and sorts the result into an
// ordered transfer plan.
//
// requestedFlow == amount.Max256() means "give me the true maximum".
// opts.MaxDistance caps the lifted-graph BFS depth; opts.MaxTransfers
// caps the transfer count after extraction, shaving flow as needed.
//
// Returns the achieved flow (≤ requestedFlow) and the sorted transfer
// list whose capacities sum to it. A source unable to reach sink, a
// requestedFlow above the true maximum, and an unsatisfiable
// opts.MaxTransfers are none of them errors (spec §7) — they surface as
// (0, nil, nil), (trueMax, transfers, nil), and a silently reduced
// achieved flow respectively. Only ErrInvariantViolation (wrapping a
// recovered panic or a broken extraction invariant) and an invalid opts
// are returned as errors.
func ComputeFlow(
	source, sink address.Address,
	edges *edgedb.EdgeDB,
	requestedFlow amount.U256,
	opts flowconfig.Options,
) (achieved amount.U256, transfers []transfer.Edge, err error) {
	if verr := opts.Validate(); verr != nil {
		return amount.Zero(), nil, verr
	}

	log := flowlog.New(opts.Logger)

	defer func() {
		if r := recover(); r != nil {
			achieved = amount.Zero()
			transfers = nil
			err = fmt.Errorf("flowengine: %w: %v", ErrInvariantViolation, r)
		}
	}()

	sourceNode := flownode.Plain(source)
	sinkNode := flownode.Plain(sink)
	adj := adjacency.New(edges)

	maxFlow, flowDist, dinicErr := dinic.Run(context.Background(), adj, sourceNode, sinkNode, opts.MaxDistance)
	if dinicErr != nil {
		return amount.Zero(), nil, dinicErr
	}

	achieved = maxFlow.Min(requestedFlow)
	used := flowDist.Clone()

	if achieved.Less(maxFlow) {
		excess := maxFlow.Sub(achieved)
		residual := postflow.PruneToRequested(sourceNode, sinkNode, excess, used)
		log.Pruned(requestedFlow, achieved, residual)
	}

	if opts.MaxTransfers != nil {
		maxLiftedEdges := *opts.MaxTransfers * 3
		lost := postflow.ReduceTransfers(maxLiftedEdges, used)
		achieved = achieved.Sub(lost)
		log.Reduced(maxLiftedEdges, lost)
	}

	if achieved.IsZero() {
		log.Completed(source, sink, achieved, 0)
		return achieved, nil, nil
	}

	extracted, extractErr := postflow.ExtractTransfers(source, sink, achieved, used)
	if extractErr != nil {
		return amount.Zero(), nil, fmt.Errorf("flowengine: %w", extractErr)
	}
	log.Extracted(len(extracted))

	simplified := postflow.Simplify(extracted)
	log.Simplified(len(extracted), len(simplified))

	sorted := postflow.Sort(simplified)
	log.Completed(source, sink, achieved, len(sorted))

	return achieved, sorted, nil
}
