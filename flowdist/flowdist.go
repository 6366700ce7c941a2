// Package flowdist defines FlowDistribution (spec §3): the record of how
// much flow Dinic pushed across each directed lifted edge. It is produced
// by adjacency's DFS, consumed and mutated by dinic's driver loop, cloned
// and trimmed by postflow's pruning/reduction passes, and finally walked by
// postflow's extraction pass.
package flowdist

import (
	"github.com/circlesnet/flowengine/amount"
	"github.com/circlesnet/flowengine/flownode"
)

// FlowDistribution maps LiftedNode → LiftedNode → U256, the amount of flow
// carried on that directed lifted edge.
type FlowDistribution map[flownode.LiftedNode]map[flownode.LiftedNode]amount.U256

// New returns an empty FlowDistribution.
func New() FlowDistribution {
	return make(FlowDistribution)
}

// Add increases the recorded flow on from→to by delta, creating the row if
// absent.
func (fd FlowDistribution) Add(from, to flownode.LiftedNode, delta amount.U256) {
	row, ok := fd[from]
	if !ok {
		row = make(map[flownode.LiftedNode]amount.U256)
		fd[from] = row
	}
	row[to] = row[to].Add(delta)
}

// Get returns the flow recorded on from→to, or the zero value if absent.
func (fd FlowDistribution) Get(from, to flownode.LiftedNode) amount.U256 {
	row, ok := fd[from]
	if !ok {
		return amount.Zero()
	}
	return row[to]
}

// Clone returns a deep copy, used before pruning/reduction so the original
// Dinic residual distribution is never mutated in place (spec §4.5/§9).
func (fd FlowDistribution) Clone() FlowDistribution {
	out := make(FlowDistribution, len(fd))
	for from, row := range fd {
		newRow := make(map[flownode.LiftedNode]amount.U256, len(row))
		for to, v := range row {
			newRow[to] = v
		}
		out[from] = newRow
	}
	return out
}

// EdgeCount returns the total number of distinct directed lifted edges
// carrying nonzero flow.
func (fd FlowDistribution) EdgeCount() int {
	n := 0
	for _, row := range fd {
		n += len(row)
	}
	return n
}

// RemoveEdge deletes the from→to entry entirely (used by prune_edge once an
// edge's flow has been fully consumed).
func (fd FlowDistribution) RemoveEdge(from, to flownode.LiftedNode) {
	row, ok := fd[from]
	if !ok {
		return
	}
	delete(row, to)
	if len(row) == 0 {
		delete(fd, from)
	}
}

// SetEdge sets the from→to flow to exactly v, removing the entry if v is
// zero.
func (fd FlowDistribution) SetEdge(from, to flownode.LiftedNode, v amount.U256) {
	if v.IsZero() {
		fd.RemoveEdge(from, to)
		return
	}
	row, ok := fd[from]
	if !ok {
		row = make(map[flownode.LiftedNode]amount.U256)
		fd[from] = row
	}
	row[to] = v
}

// HasEdge reports whether from→to carries a recorded (necessarily nonzero)
// flow.
func (fd FlowDistribution) HasEdge(from, to flownode.LiftedNode) bool {
	row, ok := fd[from]
	if !ok {
		return false
	}
	_, ok = row[to]
	return ok
}

// Nodes returns every node that appears as the source of at least one
// recorded edge, in no particular order.
func (fd FlowDistribution) Nodes() []flownode.LiftedNode {
	out := make([]flownode.LiftedNode, 0, len(fd))
	for n := range fd {
		out = append(out, n)
	}
	return out
}
