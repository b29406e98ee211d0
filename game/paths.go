package game

// ShortestPaths returns the hop count from source to every node, Unreachable
// for nodes without a path. Returns nil for an invalid source.
func ShortestPaths(connections [][]int, source int) []int {
	if source < 0 || source >= len(connections) {
		return nil
	}

	distances := make([]int, len(connections))
	for i := range distances {
		distances[i] = Unreachable
	}
	distances[source] = 0

	// Just BFS
	queue := []int{source}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, neighbor := range connections[current] {
			if distances[neighbor] == Unreachable {
				distances[neighbor] = distances[current] + 1
				queue = append(queue, neighbor)
			}
		}
	}
	return distances
}

// CalculatePipCounts annotates every node with its distance to the opponent's
// home of each player. Boards without both homes are left untouched.
func CalculatePipCounts(b *Board) {
	if b.Home1 == NoNode || b.Home2 == NoNode {
		return
	}

	toHome2 := ShortestPaths(b.Connections, b.Home2)
	toHome1 := ShortestPaths(b.Connections, b.Home1)
	for i, node := range b.Nodes {
		node.PipCount1 = toHome2[i]
		node.PipCount2 = toHome1[i]
	}
}
