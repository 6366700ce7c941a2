package adjacency

import "github.com/circlesnet/flowengine/flownode"

// BFSLevelGraph assigns a BFS level to every node reachable from source in
// the current effective (nominal+overlay) graph, restricted to edges of
// positive effective capacity (spec §4.3). If maxDistance is non-nil, a
// node at that level does not have its neighbors enqueued — max_distance
// is measured in lifted-graph hops.
//
// It returns the level map and whether sink was reached; Dinic's driver
// terminates as soon as ok is false.
func (a *Adjacencies) BFSLevelGraph(source, sink flownode.LiftedNode, maxDistance *uint64) (map[flownode.LiftedNode]int, bool) {
	levels := map[flownode.LiftedNode]int{source: 0}
	queue := []flownode.LiftedNode{source}

	for i := 0; i < len(queue); i++ {
		current := queue[i]
		if maxDistance != nil && uint64(levels[current]) >= *maxDistance {
			continue
		}
		for neighbor, cap := range a.Neighbors(current) {
			if cap.IsZero() {
				continue
			}
			if _, seen := levels[neighbor]; seen {
				continue
			}
			levels[neighbor] = levels[current] + 1
			queue = append(queue, neighbor)
		}
	}

	_, reached := levels[sink]
	return levels, reached
}
