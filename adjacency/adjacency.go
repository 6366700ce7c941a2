// Package adjacency implements the lazy, overlay-adjusted view of the
// lifted flow network (spec §4.3): the component that turns EdgeDB's
// capacity-network rows into the Plain/Balance/Trust graph Dinic runs over,
// materializing each node's outgoing edges only when first visited and
// caching the result, with a signed residual overlay layered on top for
// DFS's forward/reverse capacity adjustments.
//
// Grounded on the teacher's flow.Dinic / buildCapMap (capacity-map-of-maps,
// level-map BFS, iterator-pointer DFS) but generalized from an eagerly
// built flat capacity map to on-demand per-node caching plus a separate
// signed overlay, because this spec requires the nominal lifted capacities
// to stay immutable and re-derivable from EdgeDB rather than mutated in
// place.
package adjacency

import (
	"sort"

	"github.com/circlesnet/flowengine/amount"
	"github.com/circlesnet/flowengine/edgedb"
	"github.com/circlesnet/flowengine/flownode"
)

// signedDelta is a signed residual-capacity adjustment: value = -mag if
// negative, +mag otherwise. U256 itself is unsigned, so DFS's reverse-edge
// bookkeeping (which both adds and subtracts capacity on the same lifted
// edge across augmentations) needs this small sign+magnitude wrapper
// rather than amount.U256's saturating-at-zero Sub.
type signedDelta struct {
	negative bool
	mag      amount.U256
}

func negDelta(v amount.U256) signedDelta { return signedDelta{negative: true, mag: v} }
func posDelta(v amount.U256) signedDelta { return signedDelta{negative: false, mag: v} }

func (d signedDelta) plus(o signedDelta) signedDelta {
	if d.negative == o.negative {
		return signedDelta{negative: d.negative, mag: d.mag.Add(o.mag)}
	}
	if d.mag.Cmp(o.mag) >= 0 {
		return signedDelta{negative: d.negative, mag: d.mag.Sub(o.mag)}
	}
	return signedDelta{negative: o.negative, mag: o.mag.Sub(d.mag)}
}

// applyTo returns nominal adjusted by d, saturating at zero.
func (d signedDelta) applyTo(nominal amount.U256) amount.U256 {
	if d.negative {
		return nominal.Sub(d.mag)
	}
	return nominal.Add(d.mag)
}

// Adjacencies is a lazy, cached view over an EdgeDB of the lifted flow
// network's outgoing edges, with a residual overlay for DFS adjustments.
type Adjacencies struct {
	db      *edgedb.EdgeDB
	lazy    map[flownode.LiftedNode]map[flownode.LiftedNode]amount.U256
	overlay map[flownode.LiftedNode]map[flownode.LiftedNode]signedDelta
}

// New constructs an Adjacencies view over db. db is read-only for the
// lifetime of the Adjacencies; all mutation happens in the overlay.
func New(db *edgedb.EdgeDB) *Adjacencies {
	return &Adjacencies{
		db:      db,
		lazy:    make(map[flownode.LiftedNode]map[flownode.LiftedNode]amount.U256),
		overlay: make(map[flownode.LiftedNode]map[flownode.LiftedNode]signedDelta),
	}
}

// Neighbors returns the effective (nominal + overlay) outgoing capacities
// of node, materializing and caching the nominal lazy row on first access
// per the lifting rule (spec §3). The returned map is a fresh copy safe for
// the caller to range over while the Adjacencies continues to mutate its
// overlay.
func (a *Adjacencies) Neighbors(node flownode.LiftedNode) map[flownode.LiftedNode]amount.U256 {
	nominal := a.lazyRow(node)
	result := make(map[flownode.LiftedNode]amount.U256, len(nominal))
	for n, cap := range nominal {
		result[n] = cap
	}
	for n, d := range a.overlay[node] {
		result[n] = d.applyTo(result[n])
	}
	return result
}

// lazyRow returns the cached nominal row for node, computing it on first
// access and never recomputing it afterward.
func (a *Adjacencies) lazyRow(node flownode.LiftedNode) map[flownode.LiftedNode]amount.U256 {
	if row, ok := a.lazy[node]; ok {
		return row
	}
	row := a.materialize(node)
	a.lazy[node] = row
	return row
}

// materialize computes node's nominal outgoing row per the lifting rule
// (spec §3): Plain→Balance edges carry the sender's balance (max over
// per-recipient capacities), Balance→Trust edges carry the specific send
// limit, Trust→Plain edges carry the trust limit (sum for send-to-owner,
// max otherwise).
func (a *Adjacencies) materialize(node flownode.LiftedNode) map[flownode.LiftedNode]amount.U256 {
	row := make(map[flownode.LiftedNode]amount.U256)
	switch node.Kind {
	case flownode.KindPlain:
		for _, e := range a.db.Outgoing(node.Address()) {
			key := flownode.Balance(e.From, e.Token)
			if cur, ok := row[key]; !ok || e.Capacity.Greater(cur) {
				row[key] = e.Capacity
			}
		}
	case flownode.KindBalance:
		owner, token := node.Address(), node.Token()
		for _, e := range a.db.Outgoing(owner) {
			if e.Token == token {
				row[flownode.Trust(e.To, e.Token)] = e.Capacity
			}
		}
	case flownode.KindTrust:
		holder, token := node.Address(), node.Token()
		isReturnToOwner := holder == token
		total := amount.Zero()
		any := false
		for _, e := range a.db.Incoming(holder) {
			if e.Token != token {
				continue
			}
			any = true
			if isReturnToOwner {
				sum, overflow := total.AddChecked(e.Capacity)
				if overflow {
					panic("adjacency: send-to-owner trust capacity overflowed 256 bits")
				}
				total = sum
			} else if e.Capacity.Greater(total) {
				total = e.Capacity
			}
		}
		if any {
			row[flownode.Plain(holder)] = total
		}
	}
	return row
}

// adjustCapacity adds a signed delta (positive or saturating-negative) to
// the overlay entry for the lifted edge from→to. Used by DFS to subtract
// forward capacity and add reverse capacity on each augmentation.
func (a *Adjacencies) adjustCapacity(from, to flownode.LiftedNode, delta signedDelta) {
	row, ok := a.overlay[from]
	if !ok {
		row = make(map[flownode.LiftedNode]signedDelta)
		a.overlay[from] = row
	}
	row[to] = row[to].plus(delta)
}

// NeighborCap is a (neighbor, effective capacity) pair used for the
// deterministic tie-break order.
type NeighborCap struct {
	Node flownode.LiftedNode
	Cap  amount.U256
}

// OutgoingSortedByCapacity returns node's effective neighbors with nonzero
// capacity, ordered by descending capacity then ascending neighbor — the
// deterministic total order the algorithm's tie-break rule (spec §4.3)
// requires implementations to reproduce bit-identically.
func (a *Adjacencies) OutgoingSortedByCapacity(node flownode.LiftedNode) []NeighborCap {
	neighbors := a.Neighbors(node)
	out := make([]NeighborCap, 0, len(neighbors))
	for n, cap := range neighbors {
		if !cap.IsZero() {
			out = append(out, NeighborCap{Node: n, Cap: cap})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Cap.Equal(out[j].Cap) {
			return out[i].Cap.Greater(out[j].Cap)
		}
		return out[i].Node.Less(out[j].Node)
	})
	return out
}
