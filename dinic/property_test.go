package dinic_test

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/circlesnet/flowengine/address"
	"github.com/circlesnet/flowengine/adjacency"
	"github.com/circlesnet/flowengine/amount"
	"github.com/circlesnet/flowengine/dinic"
	"github.com/circlesnet/flowengine/edgedb"
	"github.com/circlesnet/flowengine/flownode"
)

// rawEdge mirrors edgedb.CapacityEdge but keeps the capacity as a plain int,
// so the reference oracle below never has to convert a U256 back out — it
// is handed the same raw values the test used to build the U256 edge.
type rawEdge struct {
	from, to, token string
	cap             int
}

// referenceMaxFlow computes max flow via plain Edmonds-Karp (BFS augmenting
// path, int capacities) over the same lifted graph built independently of
// the adjacency/dinic packages, used as an oracle to cross-check
// dinic.Run's result (spec §8: "cross-check achieved_flow against a
// reference Ford-Fulkerson implementation on the lifted graph").
func referenceMaxFlow(edges []rawEdge, source, sink string) int {
	type key struct{ from, to string }
	cap := map[key]int{}
	nodes := map[string]bool{source: true, sink: true}

	balanceMax := map[key]int{} // Plain(from) -> Balance(from,token): max over recipients
	for _, e := range edges {
		k := key{e.from, "bal:" + e.from + ":" + e.token}
		if e.cap > balanceMax[k] {
			balanceMax[k] = e.cap
		}
	}
	for k, c := range balanceMax {
		cap[k] = c
		nodes[k.from], nodes[k.to] = true, true
	}

	trustSum := map[key]int{} // send-to-owner: sum over senders
	trustMax := map[key]int{} // otherwise: max over senders
	for _, e := range edges {
		bal := "bal:" + e.from + ":" + e.token
		trust := "trust:" + e.to + ":" + e.token
		k := key{bal, trust}
		cap[k] += e.cap // Balance -> Trust is exact edge capacity, additively merging duplicate rows
		nodes[bal], nodes[trust] = true, true

		tk := key{trust, e.to}
		if e.token == e.to {
			trustSum[tk] += e.cap
		} else if e.cap > trustMax[tk] {
			trustMax[tk] = e.cap
		}
		nodes[e.to] = true
	}
	for k, c := range trustSum {
		if c > cap[k] {
			cap[k] = c
		}
	}
	for k, c := range trustMax {
		if c > cap[k] {
			cap[k] = c
		}
	}

	residual := map[key]int{}
	for k, c := range cap {
		residual[k] = c
	}
	nodeList := make([]string, 0, len(nodes))
	for n := range nodes {
		nodeList = append(nodeList, n)
	}

	total := 0
	for {
		parent := map[string]string{source: source}
		queue := []string{source}
		for len(queue) > 0 && parent[sink] == "" {
			n := queue[0]
			queue = queue[1:]
			for _, to := range nodeList {
				if residual[key{n, to}] > 0 {
					if _, seen := parent[to]; !seen {
						parent[to] = n
						queue = append(queue, to)
					}
				}
			}
		}
		if parent[sink] == "" {
			break
		}

		bottleneck := int(^uint(0) >> 1)
		for v := sink; v != source; v = parent[v] {
			u := parent[v]
			if residual[key{u, v}] < bottleneck {
				bottleneck = residual[key{u, v}]
			}
		}
		for v := sink; v != source; v = parent[v] {
			u := parent[v]
			residual[key{u, v}] -= bottleneck
			residual[key{v, u}] += bottleneck
		}
		total += bottleneck
	}
	return total
}

// randomTinyNetwork builds both the U256 EdgeDB edges (for dinic.Run) and
// the parallel rawEdge list (for referenceMaxFlow) from the same draws, so
// the two solvers see identical capacities.
func randomTinyNetwork(rng *rand.Rand, numAddrs, numTokens, numEdges int) (addrs []address.Address, dbEdges []edgedb.CapacityEdge, raw []rawEdge) {
	addrs = make([]address.Address, numAddrs)
	for i := range addrs {
		addrs[i] = addrN(i + 1)
	}
	tokens := make([]address.Address, numTokens)
	for i := range tokens {
		tokens[i] = addrN(100 + i)
	}

	if maxTriples := numAddrs * (numAddrs - 1) * numTokens; numEdges > maxTriples {
		numEdges = maxTriples
	}

	// edgedb.New replaces (not merges) the capacity of a repeated
	// (from,to,token) triple, so dedupe draws the same way here: each
	// distinct triple contributes exactly one entry to both dbEdges and
	// raw, with whichever capacity was drawn last.
	seen := map[[3]address.Address]int{}
	for len(seen) < numEdges {
		from := addrs[rng.IntN(numAddrs)]
		to := addrs[rng.IntN(numAddrs)]
		if from == to {
			continue
		}
		tok := tokens[rng.IntN(numTokens)]
		c := 1 + rng.IntN(20)
		seen[[3]address.Address{from, to, tok}] = c
	}

	for triple, c := range seen {
		from, to, tok := triple[0], triple[1], triple[2]
		dbEdges = append(dbEdges, edgedb.CapacityEdge{From: from, To: to, Token: tok, Capacity: amount.FromUint64(uint64(c))})
		raw = append(raw, rawEdge{from: from.String(), to: to.String(), token: tok.String(), cap: c})
	}
	return addrs, dbEdges, raw
}

func TestRandomSmallNetworksMatchReferenceMaxFlow(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 7))

	for trial := 0; trial < 20; trial++ {
		numAddrs := 3 + rng.IntN(4) // 3..6
		numTokens := 1 + rng.IntN(2)
		numEdges := 3 + rng.IntN(8)
		addrs, dbEdges, raw := randomTinyNetwork(rng, numAddrs, numTokens, numEdges)

		db := edgedb.New(dbEdges)
		adj := adjacency.New(db)
		source, sink := addrs[0], addrs[len(addrs)-1]

		gotFlow, _, err := dinic.Run(context.Background(), adj, flownode.Plain(source), flownode.Plain(sink), nil)
		require.NoError(t, err)

		want := referenceMaxFlow(raw, source.String(), sink.String())

		require.Truef(t, gotFlow.Equal(amount.FromUint64(uint64(want))),
			"trial %d: got %s want %d (addrs=%d edges=%v)", trial, gotFlow.String(), want, numAddrs, raw)
	}
}
