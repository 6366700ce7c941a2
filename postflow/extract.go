package postflow

import (
	"sort"

	"github.com/circlesnet/flowengine/address"
	"github.com/circlesnet/flowengine/amount"
	"github.com/circlesnet/flowengine/flowdist"
	"github.com/circlesnet/flowengine/flownode"
	"github.com/circlesnet/flowengine/transfer"
)

// ExtractTransfers walks used (consumed destructively) into an ordered
// list of concrete transfers, via successive full-capacity
// Plain→Balance→Trust two-hop matches (spec §4.7). source starts holding
// the entire achieved flow as its account balance; extraction proceeds
// until every balance has drained into sink.
//
// Returns ErrInvariantViolation if used contains no account whose balance
// can fully discharge some trust edge while balances remain outstanding,
// or if the matched Balance→Trust entry is missing when removed — both
// indicate a flow distribution that violates conservation, a bug rather
// than a recoverable input error (spec §7).
func ExtractTransfers(source, sink address.Address, achieved amount.U256, used flowdist.FlowDistribution) ([]transfer.Edge, error) {
	balances := map[address.Address]amount.U256{source: achieved}
	var out []transfer.Edge

	for !balancesDrained(balances, sink) {
		e, ok := nextFullCapacityEdge(balances, used)
		if !ok {
			return nil, ErrInvariantViolation
		}

		newFrom := balances[e.From].Sub(e.Capacity)
		if newFrom.IsZero() {
			delete(balances, e.From)
		} else {
			balances[e.From] = newFrom
		}
		balances[e.To] = balances[e.To].Add(e.Capacity)

		balanceNode := flownode.Balance(e.From, e.Token)
		trustNode := flownode.Trust(e.To, e.Token)
		if !used.HasEdge(balanceNode, trustNode) {
			return nil, ErrInvariantViolation
		}
		used.RemoveEdge(balanceNode, trustNode)

		out = append(out, e)
	}

	return out, nil
}

func balancesDrained(balances map[address.Address]amount.U256, sink address.Address) bool {
	switch len(balances) {
	case 0:
		return true
	case 1:
		_, onlySink := balances[sink]
		return onlySink
	default:
		return false
	}
}

// nextFullCapacityEdge picks the minimum (under Edge's total order)
// candidate transfer whose sending account's balance is large enough to
// fully discharge the corresponding Balance→Trust lifted edge.
func nextFullCapacityEdge(balances map[address.Address]amount.U256, used flowdist.FlowDistribution) (transfer.Edge, bool) {
	accounts := make([]address.Address, 0, len(balances))
	for a := range balances {
		accounts = append(accounts, a)
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].Less(accounts[j]) })

	var best transfer.Edge
	found := false
	for _, account := range accounts {
		balance := balances[account]
		balanceRow, ok := used[flownode.Plain(account)]
		if !ok {
			continue
		}
		for balanceNode := range balanceRow {
			if !balanceNode.IsBalance() {
				continue
			}
			token := balanceNode.Token()
			trustRow, ok := used[balanceNode]
			if !ok {
				continue
			}
			for trustNode, cap := range trustRow {
				if !trustNode.IsTrust() || cap.Greater(balance) {
					continue
				}
				candidate := transfer.Edge{From: account, To: trustNode.Address(), Token: token, Capacity: cap}
				if !found || candidate.Less(best) {
					best, found = candidate, true
				}
			}
		}
	}
	return best, found
}
