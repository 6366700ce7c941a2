package postflow

import "github.com/circlesnet/flowengine/transfer"

// Simplify repeatedly collapses any two transfers a, b with a.To == b.From,
// a.Token == b.Token and equal capacities into a single A→C transfer,
// until no such pair remains (spec §4.8). The search is the original's
// O(n³) pairwise scan, kept deliberately rather than rewritten index-based
// — see DESIGN.md's open-question note.
func Simplify(transfers []transfer.Edge) []transfer.Edge {
	out := append([]transfer.Edge(nil), transfers...)
	for {
		i, j, ok := findPairToSimplify(out)
		if !ok {
			return out
		}
		out[i].To = out[j].To
		out = append(out[:j], out[j+1:]...)
	}
}

func findPairToSimplify(transfers []transfer.Edge) (int, int, bool) {
	for i := range transfers {
		for j := range transfers {
			if i == j {
				continue
			}
			a, b := transfers[i], transfers[j]
			if a.To == b.From && a.Token == b.Token && a.Capacity.Equal(b.Capacity) {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}
