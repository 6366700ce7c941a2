// Package postflow implements the flow post-processing pipeline that turns
// a raw Dinic flow distribution into a delivery plan (spec §4.5–§4.9):
// pruning excess flow back to the requested amount, shaving the lifted-edge
// count to a transfer budget, extracting an ordered transfer list, merging
// adjacent same-token-same-amount hops, and topologically sorting the
// result so every sender has already received before it dispatches.
//
// Grounded on original_source's graph/flow.rs, kept close to a
// line-for-line port of its prune_flow / reduce_transfers /
// extract_transfers / simplify_transfers / sort_transfers functions.
package postflow

import (
	"github.com/circlesnet/flowengine/flowdist"
	"github.com/circlesnet/flowengine/flownode"
)

// neighborsOf returns n's outgoing (reversed == false) or incoming
// (reversed == true) neighbors in used.
func neighborsOf(n flownode.LiftedNode, used flowdist.FlowDistribution, reversed bool) []flownode.LiftedNode {
	if !reversed {
		row := used[n]
		out := make([]flownode.LiftedNode, 0, len(row))
		for to := range row {
			out = append(out, to)
		}
		return out
	}

	var out []flownode.LiftedNode
	for from, row := range used {
		if _, ok := row[n]; ok {
			out = append(out, from)
		}
	}
	return out
}

// distancesFrom returns the BFS hop-distance from start to every node
// reachable by following used's forward (reversed == false) or reversed
// edges — the from_source and to_sink tables of spec §4.5 step 1.
func distancesFrom(start flownode.LiftedNode, used flowdist.FlowDistribution, reversed bool) map[flownode.LiftedNode]int {
	dist := map[flownode.LiftedNode]int{start: 0}
	queue := []flownode.LiftedNode{start}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for _, nb := range neighborsOf(n, used, reversed) {
			if _, seen := dist[nb]; !seen {
				dist[nb] = dist[n] + 1
				queue = append(queue, nb)
			}
		}
	}
	return dist
}
