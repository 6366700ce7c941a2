// Package flowengine computes maximum flow over a trust-based,
// multi-token transfer network (a Circles-style social-currency graph)
// and extracts a concrete, ordered plan of peer-to-peer transfers that
// realizes it.
//
// 🚀 What is flowengine?
//
//	A single-call, dependency-free-at-the-API-level library that:
//
//	  • Lifts a capacity network of (from, token, to, cap) edges into a
//	    flow network with explicit Balance/Trust intermediates, so
//	    shared-pool constraints (one sender's balance, one recipient's
//	    trust) become ordinary local edge capacities.
//	  • Runs Dinic's algorithm over that lifted graph to find the maximum
//	    achievable flow from a source to a sink address.
//	  • Post-processes the raw flow into a delivery plan: prunes excess
//	    flow back to a requested amount, shaves the transfer count to a
//	    caller-supplied budget, extracts an ordered list of transfers, and
//	    sorts it so no sender ever dispatches before it has received.
//
// ✨ Why choose flowengine?
//
//   - Deterministic    — every tie-break (bucket order, smallest-capacity
//     selection, candidate ordering) is total, so the same inputs always
//     produce the same transfer plan.
//   - Single-threaded  — one ComputeFlow call owns all its state and
//     drops it on return; no shared mutable state across calls.
//   - Pure Go          — no cgo; the only non-stdlib dependency is a
//     256-bit unsigned integer type for capacities.
//
// Under the hood:
//
//	address/    — the 20-byte account/token identifier
//	amount/     — U256 capacity arithmetic
//	edgedb/     — the input capacity network
//	flownode/   — the lifted graph's Plain/Balance/Trust node variants
//	flowdist/   — the flow-distribution map shared by the solver and post-processing
//	adjacency/  — lazy lifted-edge materialization + BFS/DFS
//	dinic/      — the max-flow driver
//	postflow/   — prune, reduce, extract, simplify, sort
//	transfer/   — the output Edge type and a debug Graphviz serializer
//	flowconfig/ — run options (distance/transfer caps, logger)
//	flowlog/    — structured, nil-safe debug logging
//	cmd/flowbench/ — a random-network CLI harness
//
//	go get github.com/circlesnet/flowengine
package flowengine
