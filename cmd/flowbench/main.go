// Command flowbench generates a random capacity network, runs
// flowengine.ComputeFlow over it, and prints a summary — a standalone CLI
// for manual exploration, mirroring the teacher's examples/ convention of
// small runnable main packages that exercise the library. Edges join
// randomly drawn address pairs, so the network may contain cycles; the
// dinic package's property test uses its own generator, not this one.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math/rand/v2"
	"os"

	flowengine "github.com/circlesnet/flowengine"
	"github.com/circlesnet/flowengine/address"
	"github.com/circlesnet/flowengine/amount"
	"github.com/circlesnet/flowengine/edgedb"
	"github.com/circlesnet/flowengine/flowconfig"
)

func main() {
	nodes := flag.Int("nodes", 8, "number of addresses in the random capacity network")
	tokens := flag.Int("tokens", 3, "number of distinct tokens")
	edgeCount := flag.Int("edges", 16, "number of random capacity edges")
	maxCap := flag.Uint64("max-cap", 100, "maximum per-edge capacity")
	seed := flag.Uint64("seed", 1, "PRNG seed, for reproducible networks")
	verbose := flag.Bool("verbose", false, "log each post-processing phase to stderr")
	flag.Parse()

	if *nodes < 2 {
		log.Fatal("flowbench: -nodes must be at least 2")
	}

	rng := rand.New(rand.NewPCG(*seed, *seed^0x9e3779b97f4a7c15))
	addrs := randomAddresses(rng, *nodes)
	dbEdges := randomEdges(rng, addrs, *tokens, *edgeCount, *maxCap)
	db := edgedb.New(dbEdges)

	source, sink := addrs[0], addrs[len(addrs)-1]

	opts := flowconfig.Options{}
	if *verbose {
		opts.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	achieved, transfers, err := flowengine.ComputeFlow(source, sink, db, amount.Max256(), opts)
	if err != nil {
		log.Fatalf("flowbench: compute_flow failed: %v", err)
	}

	fmt.Printf("nodes=%d edges=%d source=%s sink=%s\n", *nodes, len(dbEdges), source.Short(), sink.Short())
	fmt.Printf("achieved flow = %s over %d transfers\n", achieved.String(), len(transfers))
	for _, tr := range transfers {
		fmt.Printf("  %s -[%s]-> %s : %s\n", tr.From.Short(), tr.Token.Short(), tr.To.Short(), tr.Capacity.String())
	}
}

// randomAddress fills a fresh Address with bytes drawn from rng.Uint64,
// since math/rand/v2's Rand has no io.Reader-style Read method.
func randomAddress(rng *rand.Rand) address.Address {
	var a address.Address
	for i := 0; i < len(a); i += 8 {
		v := rng.Uint64()
		for j := 0; j < 8 && i+j < len(a); j++ {
			a[i+j] = byte(v >> (8 * j))
		}
	}
	return a
}

func randomAddresses(rng *rand.Rand, n int) []address.Address {
	out := make([]address.Address, n)
	for i := range out {
		out[i] = randomAddress(rng)
	}
	return out
}

func randomEdges(rng *rand.Rand, addrs []address.Address, tokenCount, count int, maxCap uint64) []edgedb.CapacityEdge {
	tokens := make([]address.Address, tokenCount)
	for i := range tokens {
		tokens[i] = randomAddress(rng)
	}

	edges := make([]edgedb.CapacityEdge, 0, count)
	for len(edges) < count {
		from := addrs[rng.IntN(len(addrs))]
		to := addrs[rng.IntN(len(addrs))]
		if from == to {
			continue
		}
		token := tokens[rng.IntN(len(tokens))]
		cap := amount.FromUint64(1 + rng.Uint64N(maxCap))
		edges = append(edges, edgedb.CapacityEdge{From: from, To: to, Token: token, Capacity: cap})
	}
	return edges
}
