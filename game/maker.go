package game

import (
	"cmp"

	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/spatial/r2"
)

// GenerateBoard builds a random board: non-overlapping nodes, a planar set of
// short connections, one home per player and the pip counts toward each home.
func GenerateBoard(rules *Rules, rng Random) *Board {
	board := NewBoard(GenerateNodes(rules, rng))
	board.Edges = BuildConnections(board.Nodes, rules.MaxEdgeDistance)
	for _, e := range board.Edges {
		board.AddConnection(e.From, e.To)
	}
	home1, home2 := FindHomes(board.Nodes, rules.GridSize)
	if home1 != NoNode {
		board.SetHome(Player1, home1)
		board.SetHome(Player2, home2)
	}
	CalculatePipCounts(board)
	return board
}

func randomIn(rng Random, lo, hi float64) float64 {
	return rng.Float64()*(hi-lo) + lo
}

// GenerateNodes places up to rules.NumCircles disks inside the grid. A node
// that cannot be placed within the attempt budget is skipped.
func GenerateNodes(rules *Rules, rng Random) []*Node {
	nodes := []*Node{}
	for i := 0; i < rules.NumCircles; i++ {
		for attempt := 0; attempt < rules.PlacementAttempts; attempt++ {
			radius := randomIn(rng, rules.MinRadius, rules.MaxRadius)
			x := randomIn(rng, radius, rules.GridSize-radius)
			y := randomIn(rng, radius, rules.GridSize-radius)

			node := NewNode(x, y, radius)
			if !overlapsAny(node, nodes, rules.MinGap) {
				nodes = append(nodes, node)
				break
			}
		}
	}
	return nodes
}

func overlapsAny(node *Node, existing []*Node, minGap float64) bool {
	for _, other := range existing {
		if node.Overlaps(other.Circle, minGap) {
			return true
		}
	}
	return false
}

// CandidateEdges returns an edge for every node pair no further apart than
// maxDistance, in (i, j) order with i < j.
func CandidateEdges(nodes []*Node, maxDistance float64) []Edge {
	edges := []Edge{}
	for i := 0; i < len(nodes); i++ {
		for j := i + 1; j < len(nodes); j++ {
			if nodes[i].Distance(nodes[j].Circle) <= maxDistance {
				edges = append(edges, NewEdge(i, j, nodes[i], nodes[j]))
			}
		}
	}
	return edges
}

// BuildConnections sweeps the candidate edges shortest first and keeps the
// ones that do not cross an already accepted, shorter edge.
func BuildConnections(nodes []*Node, maxDistance float64) []Edge {
	candidates := CandidateEdges(nodes, maxDistance)
	slices.SortStableFunc(candidates, func(a, b Edge) int {
		return cmp.Compare(a.Length, b.Length)
	})

	accepted := []Edge{}
	for _, edge := range candidates {
		shouldAdd, indexToRemove := checkIntersection(accepted, edge)
		if indexToRemove != -1 {
			accepted = slices.Delete(accepted, indexToRemove, indexToRemove+1)
		}
		if shouldAdd {
			accepted = append(accepted, edge)
		}
	}
	return accepted
}

// checkIntersection scans accepted edges in insertion order. A crossing edge
// longer than the candidate is remembered for removal (the last one found
// wins); any other crossing rejects the candidate and ends the scan.
func checkIntersection(accepted []Edge, edge Edge) (shouldAdd bool, indexToRemove int) {
	shouldAdd = true
	indexToRemove = -1
	for i, existing := range accepted {
		if !edge.Intersects(existing) {
			continue
		}
		if edge.Length < existing.Length {
			indexToRemove = i
		} else {
			shouldAdd = false
			break
		}
	}
	return shouldAdd, indexToRemove
}

// FindHomes picks the node closest to the top-left corner for player 1 and
// the one closest to the bottom-right corner for player 2.
func FindHomes(nodes []*Node, gridSize float64) (home1, home2 int) {
	if len(nodes) == 0 {
		return NoNode, NoNode
	}

	upperLeft := r2.Vec{X: 0, Y: 0}
	lowerRight := r2.Vec{X: gridSize, Y: gridSize}
	minToUpperLeft := largeDistance
	minToLowerRight := largeDistance
	for i, node := range nodes {
		if d := node.DistanceToPointSquared(upperLeft); d < minToUpperLeft {
			minToUpperLeft = d
			home1 = i
		}
		if d := node.DistanceToPointSquared(lowerRight); d < minToLowerRight {
			minToLowerRight = d
			home2 = i
		}
	}
	return home1, home2
}
