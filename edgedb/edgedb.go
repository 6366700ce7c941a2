// Package edgedb implements an indexed, immutable-after-construction store
// of capacity-network edges (spec §3/§4.1): "from is permitted to send up
// to capacity units of token to to." Construction from chain/database state
// is out of scope for this module; EdgeDB only stores and indexes rows it
// is handed.
package edgedb

import (
	"github.com/circlesnet/flowengine/address"
	"github.com/circlesnet/flowengine/amount"
)

// CapacityEdge is one row of EdgeDB.
type CapacityEdge struct {
	From     address.Address
	To       address.Address
	Token    address.Address
	Capacity amount.U256
}

// key identifies a row for the "at most one row per (from,to,token)"
// invariant (spec §3).
type key struct {
	From, To, Token address.Address
}

// EdgeDB is a dual-indexed, append-or-replace store of CapacityEdge rows.
//
// outgoing[addr] / incoming[addr] hold indices into edges of rows where
// addr is the From / To endpoint respectively, including zero-capacity
// rows; Outgoing/Incoming filter those out at lookup time, per spec §4.1.
type EdgeDB struct {
	edges    []CapacityEdge
	index    map[key]int
	outgoing map[address.Address][]int
	incoming map[address.Address][]int
}

// New constructs an EdgeDB from a finite sequence of capacity edges. Later
// rows sharing a (from,to,token) triple replace earlier ones' capacity,
// exactly as a sequence of Update calls would (spec §4.1's "at most one
// row" invariant holds from the first row onward, not just after the fact).
func New(edges []CapacityEdge) *EdgeDB {
	db := &EdgeDB{
		index:    make(map[key]int, len(edges)),
		outgoing: make(map[address.Address][]int),
		incoming: make(map[address.Address][]int),
	}
	for _, e := range edges {
		db.Update(e)
	}
	return db
}

// Update inserts e, or replaces the capacity of the existing row sharing
// e's (From,To,Token) triple.
func (db *EdgeDB) Update(e CapacityEdge) {
	k := key{e.From, e.To, e.Token}
	if i, ok := db.index[k]; ok {
		db.edges[i].Capacity = e.Capacity
		return
	}
	i := len(db.edges)
	db.edges = append(db.edges, e)
	db.index[k] = i
	db.outgoing[e.From] = append(db.outgoing[e.From], i)
	db.incoming[e.To] = append(db.incoming[e.To], i)
}

// Iter returns all rows in insertion order, including zero-capacity rows.
func (db *EdgeDB) Iter() []CapacityEdge {
	return db.edges
}

// EdgeCount returns the total number of distinct (from,to,token) rows.
func (db *EdgeDB) EdgeCount() int {
	return len(db.edges)
}

// Outgoing returns the rows with From == from and nonzero capacity.
func (db *EdgeDB) Outgoing(from address.Address) []CapacityEdge {
	return db.filtered(db.outgoing[from])
}

// Incoming returns the rows with To == to and nonzero capacity.
func (db *EdgeDB) Incoming(to address.Address) []CapacityEdge {
	return db.filtered(db.incoming[to])
}

func (db *EdgeDB) filtered(idx []int) []CapacityEdge {
	if len(idx) == 0 {
		return nil
	}
	out := make([]CapacityEdge, 0, len(idx))
	for _, i := range idx {
		if e := db.edges[i]; !e.Capacity.IsZero() {
			out = append(out, e)
		}
	}
	return out
}
