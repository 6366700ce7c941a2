package postflow

import (
	"github.com/circlesnet/flowengine/address"
	"github.com/circlesnet/flowengine/transfer"
)

// Sort topologically orders transfers under the rule that a sender may
// only dispatch after receiving everything due to it: count
// waiting[to] += 1 per transfer, then FIFO-requeue any transfer whose
// from is still owed incoming transfers, emitting it once that count
// reaches zero (spec §4.9). Terminates because a transfer list extracted
// from a valid flow is acyclic.
func Sort(transfers []transfer.Edge) []transfer.Edge {
	waiting := make(map[address.Address]int, len(transfers))
	for _, e := range transfers {
		waiting[e.To]++
	}

	queue := append([]transfer.Edge(nil), transfers...)
	out := make([]transfer.Edge, 0, len(transfers))

	for len(queue) > 0 {
		e := queue[0]
		queue = queue[1:]
		if waiting[e.From] == 0 {
			out = append(out, e)
			waiting[e.To]--
		} else {
			queue = append(queue, e)
		}
	}

	return out
}
