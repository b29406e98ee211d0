package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateBoardProperties(t *testing.T) {
	rules := NewStandardRules()

	for seed := uint64(1); seed <= 8; seed++ {
		b := GenerateBoard(rules, NewRandom(seed))

		t.Run("nodes stay inside the grid", func(t *testing.T) {
			require.NotEmpty(t, b.Nodes)
			require.LessOrEqual(t, len(b.Nodes), rules.NumCircles)
			for _, n := range b.Nodes {
				require.GreaterOrEqual(t, n.Radius, rules.MinRadius)
				require.LessOrEqual(t, n.Radius, rules.MaxRadius)
				require.GreaterOrEqual(t, n.Center.X, n.Radius)
				require.LessOrEqual(t, n.Center.X, rules.GridSize-n.Radius)
				require.GreaterOrEqual(t, n.Center.Y, n.Radius)
				require.LessOrEqual(t, n.Center.Y, rules.GridSize-n.Radius)
			}
		})

		t.Run("disks do not overlap", func(t *testing.T) {
			for i := range b.Nodes {
				for j := i + 1; j < len(b.Nodes); j++ {
					a, c := b.Nodes[i], b.Nodes[j]
					require.GreaterOrEqual(t, a.Distance(c.Circle), a.Radius+c.Radius+rules.MinGap,
						"seed %d: nodes %d and %d overlap", seed, i, j)
				}
			}
		})

		t.Run("edges are planar", func(t *testing.T) {
			for i := range b.Edges {
				for j := i + 1; j < len(b.Edges); j++ {
					require.False(t, b.Edges[i].Intersects(b.Edges[j]),
						"seed %d: edges %+v and %+v cross", seed, b.Edges[i], b.Edges[j])
				}
			}
		})

		t.Run("edges respect the maximum distance", func(t *testing.T) {
			for _, e := range b.Edges {
				require.LessOrEqual(t, e.Length, rules.MaxEdgeDistance)
			}
		})

		t.Run("adjacency is symmetric", func(t *testing.T) {
			for i, neighbors := range b.Connections {
				for _, j := range neighbors {
					require.True(t, b.AreAdjacent(j, i), "seed %d: %d -> %d has no way back", seed, i, j)
					require.NotEqual(t, i, j, "no self loops")
				}
			}
		})

		t.Run("exactly one home per player", func(t *testing.T) {
			home1, home2 := 0, 0
			for _, n := range b.Nodes {
				if n.IsHome1 {
					home1++
				}
				if n.IsHome2 {
					home2++
				}
			}
			require.Equal(t, 1, home1)
			require.Equal(t, 1, home2)
			require.True(t, b.Nodes[b.Home1].IsHome1)
			require.True(t, b.Nodes[b.Home2].IsHome2)
		})

		t.Run("pip counts match the distances to the homes", func(t *testing.T) {
			toHome2 := ShortestPaths(b.Connections, b.Home2)
			toHome1 := ShortestPaths(b.Connections, b.Home1)
			for i, n := range b.Nodes {
				require.Equal(t, toHome2[i], n.PipCount1)
				require.Equal(t, toHome1[i], n.PipCount2)
			}
			require.Equal(t, 0, b.Nodes[b.Home2].PipCount1)
			require.Equal(t, 0, b.Nodes[b.Home1].PipCount2)
		})
	}
}

func TestGenerateBoardIsReproducible(t *testing.T) {
	rules := NewStandardRules()
	b1 := GenerateBoard(rules, NewRandom(7))
	b2 := GenerateBoard(rules, NewRandom(7))

	require.Equal(t, b1.Nodes, b2.Nodes)
	require.Equal(t, b1.Connections, b2.Connections)
	require.Equal(t, b1.Home1, b2.Home1)
	require.Equal(t, b1.Home2, b2.Home2)
}

func TestGenerateNodesGivesUp(t *testing.T) {
	rules := NewStandardRules(WithCircles(3))
	rules.PlacementAttempts = 5

	// Every draw lands on the same spot, so only the first node fits.
	nodes := GenerateNodes(rules, fixedRandom{value: 0.5})

	require.Len(t, nodes, 1)
	require.Equal(t, 400.0, nodes[0].Center.X)
	require.Equal(t, 400.0, nodes[0].Center.Y)
	require.Equal(t, 110.0, nodes[0].Radius)
}

func TestGenerateBoardDegenerate(t *testing.T) {
	rules := NewStandardRules(WithCircles(3))
	rules.PlacementAttempts = 5

	b := GenerateBoard(rules, fixedRandom{value: 0.5})

	require.Len(t, b.Nodes, 1)
	require.Empty(t, b.Edges)
	require.Empty(t, b.Connections[0])
	require.Equal(t, 0, b.Home1)
	require.Equal(t, 0, b.Home2)
}

func TestGenerateNodesDraws(t *testing.T) {
	rules := NewStandardRules(WithCircles(2), WithRadii(10, 20))
	// radius, x, y for the first node then the second
	rng := &sequenceRandom{values: []float64{0, 0, 0, 1.0 / 2, 1.0 / 2, 1.0 / 2}}

	nodes := GenerateNodes(rules, rng)

	require.Len(t, nodes, 2)
	require.Equal(t, 10.0, nodes[0].Radius)
	require.Equal(t, 10.0, nodes[0].Center.X)
	require.Equal(t, 10.0, nodes[0].Center.Y)
	require.Equal(t, 15.0, nodes[1].Radius)
	require.Equal(t, 400.0, nodes[1].Center.X)
}

func TestBuildConnections(t *testing.T) {
	t.Run("square keeps one diagonal", func(t *testing.T) {
		nodes := []*Node{
			NewNode(0, 0, 1),
			NewNode(100, 0, 1),
			NewNode(100, 100, 1),
			NewNode(0, 100, 1),
		}

		edges := BuildConnections(nodes, 300)

		require.Len(t, edges, 5)
		// Four sides first (shortest), then the first diagonal generated.
		require.Equal(t, 0, edges[4].From)
		require.Equal(t, 2, edges[4].To)
		for _, e := range edges[:4] {
			require.InDelta(t, 100.0, e.Length, 1e-9)
		}
	})

	t.Run("pairs beyond the maximum distance are never connected", func(t *testing.T) {
		nodes := []*Node{NewNode(0, 0, 1), NewNode(100, 0, 1), NewNode(500, 0, 1)}

		edges := BuildConnections(nodes, 300)

		require.Len(t, edges, 1)
		require.Equal(t, 0, edges[0].From)
		require.Equal(t, 1, edges[0].To)
	})

	t.Run("stable order for equal lengths", func(t *testing.T) {
		nodes := []*Node{NewNode(0, 0, 1), NewNode(100, 0, 1), NewNode(200, 0, 1)}

		edges := BuildConnections(nodes, 150)

		require.Len(t, edges, 2)
		require.Equal(t, [2]int{0, 1}, [2]int{edges[0].From, edges[0].To})
		require.Equal(t, [2]int{1, 2}, [2]int{edges[1].From, edges[1].To})
	})
}

func TestCheckIntersection(t *testing.T) {
	nodes := []*Node{
		NewNode(0, 0, 1),     // 0
		NewNode(400, 400, 1), // 1
		NewNode(0, 100, 1),   // 2
		NewNode(100, 0, 1),   // 3
		NewNode(0, 300, 1),   // 4
		NewNode(300, 0, 1),   // 5
		NewNode(100, 100, 1), // 6
		NewNode(200, 200, 1), // 7
	}
	long := NewEdge(0, 1, nodes[0], nodes[1])  // long diagonal
	short := NewEdge(2, 3, nodes[2], nodes[3]) // crosses the diagonal near the corner
	mid := NewEdge(4, 5, nodes[4], nodes[5])   // crosses the diagonal further out
	stub := NewEdge(6, 7, nodes[6], nodes[7])  // lies on the diagonal, crosses mid only

	t.Run("no crossing", func(t *testing.T) {
		shouldAdd, indexToRemove := checkIntersection([]Edge{short}, NewEdge(0, 3, nodes[0], nodes[3]))
		require.True(t, shouldAdd)
		require.Equal(t, -1, indexToRemove)
	})

	t.Run("shorter candidate replaces a longer crossing edge", func(t *testing.T) {
		shouldAdd, indexToRemove := checkIntersection([]Edge{mid, long}, short)
		require.True(t, shouldAdd)
		require.Equal(t, 1, indexToRemove, "Last longer crossing edge is removed")
	})

	t.Run("shorter crossing edge rejects the candidate", func(t *testing.T) {
		shouldAdd, indexToRemove := checkIntersection([]Edge{short}, long)
		require.False(t, shouldAdd)
		require.Equal(t, -1, indexToRemove)
	})

	t.Run("scan stops at the first rejection", func(t *testing.T) {
		// long is found first and remembered, then stub ends the scan.
		shouldAdd, indexToRemove := checkIntersection([]Edge{long, stub}, mid)
		require.False(t, shouldAdd)
		require.Equal(t, 0, indexToRemove)
	})
}

func TestFindHomes(t *testing.T) {
	t.Run("closest nodes to the corners", func(t *testing.T) {
		nodes := []*Node{
			NewNode(400, 400, 10),
			NewNode(50, 60, 10),
			NewNode(700, 750, 10),
			NewNode(60, 50, 30),
		}

		home1, home2 := FindHomes(nodes, 800)

		require.Equal(t, 1, home1, "Ties keep the first node found")
		require.Equal(t, 2, home2)
	})

	t.Run("empty board", func(t *testing.T) {
		home1, home2 := FindHomes(nil, 800)
		require.Equal(t, NoNode, home1)
		require.Equal(t, NoNode, home2)
	})
}

func TestNodeAt(t *testing.T) {
	b := pathBoard()

	require.Equal(t, 1, b.NodeAt(155, 45, 20))
	require.Equal(t, NoNode, b.NodeAt(100, 50, 20), "Between two nodes")
	require.Equal(t, NoNode, b.NodeAt(-500, -500, 20))
}
