// Package transfer defines the engine's output type — a concrete
// peer-to-peer token transfer — and the debug-only Graphviz serializer
// (spec §4.7/§4.10/§6).
package transfer

import (
	"strings"

	"github.com/circlesnet/flowengine/address"
	"github.com/circlesnet/flowengine/amount"
)

// Edge is one hop of the delivery plan: from sends capacity units of token
// to to.
type Edge struct {
	From     address.Address
	To       address.Address
	Token    address.Address
	Capacity amount.U256
}

// Compare gives Edge's total order: From, then To, then Token, then
// Capacity — matching the field order of the original's derived Ord,
// which next_full_capacity_edge's "minimum candidate" selection (spec
// §4.7) and test fixtures both rely on.
func (e Edge) Compare(o Edge) int {
	if c := e.From.Compare(o.From); c != 0 {
		return c
	}
	if c := e.To.Compare(o.To); c != 0 {
		return c
	}
	if c := e.Token.Compare(o.Token); c != 0 {
		return c
	}
	return e.Capacity.Cmp(o.Capacity)
}

// Less reports whether e sorts strictly before o.
func (e Edge) Less(o Edge) bool { return e.Compare(o) < 0 }

// ToDOT renders transfers as a Graphviz "digraph" string: nodes labeled by
// short-form address, edges labeled with capacity, followed by " (trust)"
// when the token is the sender's own, nothing more when the token is the
// recipient's, and the token's short form otherwise.
// Debug-only, never on the computation critical path (spec §6).
//
// Grounded on original_source's transfers_to_dot (a fmt::Write loop); kept
// on a plain strings.Builder rather than wiring a Graphviz library (see
// DESIGN.md) because the output is a fixed one-line-per-edge format, not
// a graph this process needs to traverse or mutate.
func ToDOT(transfers []Edge) string {
	var b strings.Builder
	b.WriteString("digraph transfers {\n")
	for _, e := range transfers {
		label := e.Capacity.String()
		switch {
		case e.Token == e.From:
			label += " (trust)"
		case e.Token == e.To:
			// send-to-owner: no extra annotation, matching the original.
		default:
			label += " (" + e.Token.Short() + ")"
		}
		b.WriteString("    \"")
		b.WriteString(e.From.Short())
		b.WriteString("\" -> \"")
		b.WriteString(e.To.Short())
		b.WriteString("\" [label=\"")
		b.WriteString(label)
		b.WriteString("\"];\n")
	}
	b.WriteString("}\n")
	return b.String()
}
