package postflow

import (
	"github.com/circlesnet/flowengine/amount"
	"github.com/circlesnet/flowengine/flowdist"
	"github.com/circlesnet/flowengine/flownode"
)

// ReduceTransfers prunes used (mutated in place) until its distinct lifted
// edge count no longer exceeds maxLiftedEdges, each step discarding the
// globally smallest-capacity edge (tie-broken by endpoint order). It
// returns the total flow lost this way, which the caller subtracts from
// the achieved flow (spec §4.6).
//
// This is the heuristic the spec flags as open: the 3× lifted-edge-per-
// transfer factor that turns a transfer budget into maxLiftedEdges is the
// caller's job, not this function's (see flowengine.ComputeFlow).
func ReduceTransfers(maxLiftedEdges uint64, used flowdist.FlowDistribution) amount.U256 {
	lost := amount.Zero()
	for uint64(used.EdgeCount()) > maxLiftedEdges {
		from, to, ok := globalSmallestEdge(used)
		if !ok {
			break
		}
		cap := used.Get(from, to)
		lost = lost.Add(cap)
		pruneEdge(used, from, to, cap)
	}
	return lost
}

func globalSmallestEdge(used flowdist.FlowDistribution) (flownode.LiftedNode, flownode.LiftedNode, bool) {
	var bestFrom, bestTo flownode.LiftedNode
	var bestCap amount.U256
	found := false
	for from, row := range used {
		for to, cap := range row {
			if !found || cap.Less(bestCap) ||
				(cap.Equal(bestCap) && edgeKeyLess(edgeKey{From: from, To: to}, edgeKey{From: bestFrom, To: bestTo})) {
				bestFrom, bestTo, bestCap, found = from, to, cap, true
			}
		}
	}
	return bestFrom, bestTo, found
}
