// Package dinic implements the Dinic max-flow driver (spec §4.4): repeated
// BFS level-graph construction and DFS blocking-flow augmentation over an
// adjacency.Adjacencies view, until no augmenting path remains.
//
// Grounded on the teacher's flow.Dinic outer loop (level-graph-then-
// repeated-blocking-flow, with a context.Context cancellation check before
// each BFS phase) but delegating the level/DFS mechanics to the adjacency
// package instead of inlining them, since this spec assigns BFS/DFS to the
// Adjacencies component, not the driver.
package dinic

import (
	"context"

	"github.com/circlesnet/flowengine/adjacency"
	"github.com/circlesnet/flowengine/amount"
	"github.com/circlesnet/flowengine/flowdist"
	"github.com/circlesnet/flowengine/flownode"
)

// Run computes the maximum flow from source to sink over adj, optionally
// bounded to maxDistance lifted-graph hops, and returns the achieved flow
// together with the flow distribution Dinic produced.
//
// If ctx is canceled between BFS phases, Run returns the partial flow
// computed so far and the context's error, per spec §5's "implementors
// should honor any caller-supplied deadline."
func Run(
	ctx context.Context,
	adj *adjacency.Adjacencies,
	source, sink flownode.LiftedNode,
	maxDistance *uint64,
) (amount.U256, flowdist.FlowDistribution, error) {
	maxFlow := amount.Zero()
	flowDist := flowdist.New()

	for {
		if err := ctx.Err(); err != nil {
			return maxFlow, flowDist, err
		}

		levels, reachable := adj.BFSLevelGraph(source, sink, maxDistance)
		if !reachable {
			break
		}

		for {
			if err := ctx.Err(); err != nil {
				return maxFlow, flowDist, err
			}
			pushed := adj.DFSBlocking(source, sink, levels, amount.Max256(), flowDist)
			if pushed.IsZero() {
				break
			}
			maxFlow = maxFlow.Add(pushed)
		}
	}

	return maxFlow, flowDist, nil
}
