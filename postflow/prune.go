package postflow

import (
	"sort"

	"github.com/circlesnet/flowengine/amount"
	"github.com/circlesnet/flowengine/flowdist"
	"github.com/circlesnet/flowengine/flownode"
)

// edgeKey identifies one directed lifted edge, used as a set element when
// bucketing edges by path length.
type edgeKey struct {
	From, To flownode.LiftedNode
}

func edgeKeyLess(a, b edgeKey) bool {
	if c := a.From.Compare(b.From); c != 0 {
		return c < 0
	}
	return a.To.Compare(b.To) < 0
}

// PruneToRequested removes exactly excess units of flow from used (mutated
// in place), preferring to eliminate the longest source→sink paths first,
// since they contribute the most transfer hops per unit of flow (spec
// §4.5). It returns the residual excess that could not be removed — zero
// except in degenerate graphs.
func PruneToRequested(source, sink flownode.LiftedNode, excess amount.U256, used flowdist.FlowDistribution) amount.U256 {
	if excess.IsZero() {
		return excess
	}

	fromSource := distancesFrom(source, used, false)
	toSink := distancesFrom(sink, used, true)
	buckets, order := edgesByPathLength(used, fromSource, toSink)

	// Pass 1: only fully remove edges whose capacity does not exceed the
	// remaining excess — never split an edge here.
	for _, key := range order {
		bucket := buckets[key]
		for excess.Greater(amount.Zero()) && len(bucket) > 0 {
			idx, ek, ok := smallestEdgeInSet(used, bucket)
			if !ok {
				break
			}
			cap := used.Get(ek.From, ek.To)
			if cap.Greater(excess) {
				break
			}
			excess = pruneEdge(used, ek.From, ek.To, excess)
			bucket = removeAt(bucket, idx)
		}
		buckets[key] = bucket
		if excess.IsZero() {
			break
		}
	}

	// Pass 2: excess remains — prune greedily, now accepting partial
	// removal of an edge's capacity.
	for _, key := range order {
		bucket := buckets[key]
		for excess.Greater(amount.Zero()) && len(bucket) > 0 {
			idx, ek, ok := smallestEdgeInSet(used, bucket)
			if !ok {
				break
			}
			excess = pruneEdge(used, ek.From, ek.To, excess)
			bucket = removeAt(bucket, idx)
		}
		buckets[key] = bucket
		if excess.IsZero() {
			break
		}
	}

	return excess
}

// edgesByPathLength groups used's edges by negative source→sink path
// length (−(from_source[s] + 1 + to_sink[t])), returning the buckets and
// their keys in ascending order so the longest paths are visited first.
func edgesByPathLength(
	used flowdist.FlowDistribution,
	fromSource, toSink map[flownode.LiftedNode]int,
) (map[int][]edgeKey, []int) {
	buckets := make(map[int][]edgeKey)
	for from, row := range used {
		sd, ok := fromSource[from]
		if !ok {
			continue
		}
		for to := range row {
			td, ok := toSink[to]
			if !ok {
				continue
			}
			length := -(sd + 1 + td)
			buckets[length] = append(buckets[length], edgeKey{From: from, To: to})
		}
	}

	keys := make([]int, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return buckets, keys
}

// smallestEdgeInSet returns the edge within bucket whose current capacity
// in used is smallest, tie-broken by endpoint order.
func smallestEdgeInSet(used flowdist.FlowDistribution, bucket []edgeKey) (int, edgeKey, bool) {
	if len(bucket) == 0 {
		return 0, edgeKey{}, false
	}
	best := 0
	bestCap := used.Get(bucket[0].From, bucket[0].To)
	for i := 1; i < len(bucket); i++ {
		cap := used.Get(bucket[i].From, bucket[i].To)
		if cap.Less(bestCap) || (cap.Equal(bestCap) && edgeKeyLess(bucket[i], bucket[best])) {
			best, bestCap = i, cap
		}
	}
	return best, bucket[best], true
}

func removeAt(bucket []edgeKey, idx int) []edgeKey {
	return append(bucket[:idx], bucket[idx+1:]...)
}

// direction governs which end of a pruned edge prunePath walks outward
// from.
type direction int

const (
	forwards direction = iota
	backwards
)

// pruneEdge removes up to excess units of flow from the a→b edge and
// propagates the reduction along both endpoints to preserve conservation,
// returning the residual excess (spec §4.5's prune_edge).
func pruneEdge(used flowdist.FlowDistribution, a, b flownode.LiftedNode, excess amount.U256) amount.U256 {
	cap := used.Get(a, b)
	take := excess.Min(cap)
	reduceCapacity(used, a, b, take)
	prunePath(used, b, take, forwards)
	prunePath(used, a, take, backwards)
	return excess.Sub(take)
}

func reduceCapacity(used flowdist.FlowDistribution, a, b flownode.LiftedNode, reduction amount.U256) {
	used.SetEdge(a, b, used.Get(a, b).Sub(reduction))
}

// prunePath repeatedly reduces the smallest-capacity outgoing (forwards)
// or incoming (backwards) edge at n, recursing on the other endpoint,
// until amt is exhausted or no such edge remains (spec §4.5's prune_path).
func prunePath(used flowdist.FlowDistribution, n flownode.LiftedNode, amt amount.U256, dir direction) {
	for amt.Greater(amount.Zero()) {
		var next flownode.LiftedNode
		var cap amount.U256
		var ok bool
		if dir == forwards {
			next, cap, ok = smallestEdgeFrom(used, n)
		} else {
			next, cap, ok = smallestEdgeTo(used, n)
		}
		if !ok {
			return
		}

		take := amt.Min(cap)
		if dir == forwards {
			reduceCapacity(used, n, next, take)
		} else {
			reduceCapacity(used, next, n, take)
		}
		prunePath(used, next, take, dir)
		amt = amt.Sub(take)
	}
}

func smallestEdgeFrom(used flowdist.FlowDistribution, n flownode.LiftedNode) (flownode.LiftedNode, amount.U256, bool) {
	row, ok := used[n]
	if !ok || len(row) == 0 {
		return flownode.LiftedNode{}, amount.Zero(), false
	}
	var best flownode.LiftedNode
	var bestCap amount.U256
	first := true
	for to, cap := range row {
		if first || cap.Less(bestCap) || (cap.Equal(bestCap) && to.Less(best)) {
			best, bestCap, first = to, cap, false
		}
	}
	return best, bestCap, true
}

func smallestEdgeTo(used flowdist.FlowDistribution, n flownode.LiftedNode) (flownode.LiftedNode, amount.U256, bool) {
	var best flownode.LiftedNode
	var bestCap amount.U256
	first := true
	for from, row := range used {
		cap, ok := row[n]
		if !ok {
			continue
		}
		if first || cap.Less(bestCap) || (cap.Equal(bestCap) && from.Less(best)) {
			best, bestCap, first = from, cap, false
		}
	}
	if first {
		return flownode.LiftedNode{}, amount.Zero(), false
	}
	return best, bestCap, true
}
