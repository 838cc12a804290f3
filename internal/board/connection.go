package board

import "github.com/rxtech-lab/argo-board/internal/types"

// CanConnect reports whether adding the proposed edge (source -> target)
// keeps the board acyclic.
//
// A connection with an empty target or to the node itself is always
// rejected. Otherwise a forward breadth-first traversal starts from target
// over the existing edges; if the traversal ever reaches source, committing
// the new edge would let target reach back to source and close a cycle, so
// the connection is rejected. O(V+E) per call; the traversal is recomputed
// against the edge set passed in, never a cached one, because deletions can
// change reachability between gesture start and release.
func CanConnect(source, target string, edges []types.Edge) bool {
	if target == "" || target == source {
		return false
	}

	// Forward adjacency over the current edge set.
	children := make(map[string][]string, len(edges))
	for _, e := range edges {
		children[e.Source] = append(children[e.Source], e.Target)
	}

	visited := map[string]bool{target: true}
	frontier := []string{target}

	for len(frontier) > 0 {
		var next []string

		for _, id := range frontier {
			for _, child := range children[id] {
				if child == source {
					return false
				}

				if !visited[child] {
					visited[child] = true
					next = append(next, child)
				}
			}
		}

		frontier = next
	}

	return true
}

// HasCycle reports whether the edge set, restricted to the given nodes,
// contains a directed cycle. Used by offline validation of loaded boards;
// live mutation relies on CanConnect instead.
func HasCycle(nodes []types.Node, edges []types.Edge) bool {
	children := make(map[string][]string, len(edges))
	indegree := make(map[string]int, len(nodes))

	for _, n := range nodes {
		indegree[n.ID] = 0
	}

	for _, e := range edges {
		children[e.Source] = append(children[e.Source], e.Target)
		indegree[e.Target]++
	}

	// Kahn's algorithm: a topological order exists iff there is no cycle.
	var queue []string

	for id, deg := range indegree {
		if deg == 0 {
			queue = append(queue, id)
		}
	}

	processed := 0

	for len(queue) > 0 {
		id := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		processed++

		for _, child := range children[id] {
			indegree[child]--
			if indegree[child] == 0 {
				queue = append(queue, child)
			}
		}
	}

	return processed != len(indegree)
}
