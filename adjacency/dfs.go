package adjacency

import (
	"github.com/circlesnet/flowengine/amount"
	"github.com/circlesnet/flowengine/flowdist"
	"github.com/circlesnet/flowengine/flownode"
)

// DFSBlocking searches the level graph (as built by BFSLevelGraph) for one
// augmenting path from current to sink, pushing up to bottleneck units of
// flow, and returns the amount actually pushed (spec §4.3).
//
// Each call finds exactly one augmenting path; Dinic's driver calls this
// repeatedly against the same levels map until it returns zero, at which
// point the level graph is saturated (a blocking flow has been found).
// Neighbors are visited in OutgoingSortedByCapacity's deterministic
// (descending capacity, ascending neighbor) order — the tie-break rule
// this algorithm must reproduce bit-identically (spec §4.3).
func (a *Adjacencies) DFSBlocking(
	current, sink flownode.LiftedNode,
	levels map[flownode.LiftedNode]int,
	bottleneck amount.U256,
	flowDist flowdist.FlowDistribution,
) amount.U256 {
	if current == sink {
		return bottleneck
	}

	currentLevel, ok := levels[current]
	if !ok {
		return amount.Zero()
	}

	for _, nc := range a.OutgoingSortedByCapacity(current) {
		nextLevel, ok := levels[nc.Node]
		if !ok || nextLevel != currentLevel+1 {
			continue
		}
		newBottleneck := bottleneck.Min(nc.Cap)
		if newBottleneck.IsZero() {
			continue
		}
		pushed := a.DFSBlocking(nc.Node, sink, levels, newBottleneck, flowDist)
		if pushed.IsZero() {
			continue
		}
		a.adjustCapacity(current, nc.Node, negDelta(pushed))
		a.adjustCapacity(nc.Node, current, posDelta(pushed))
		flowDist.Add(current, nc.Node, pushed)
		return pushed
	}

	return amount.Zero()
}
