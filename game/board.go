package game

import (
	"circles/geometry"
	"circles/utils"

	"gonum.org/v1/gonum/spatial/r2"
)

// Node is a circle of the generated board graph.
type Node struct {
	geometry.Circle
	IsHome1    bool
	IsHome2    bool
	OccupiedBy int // index into GameState.Pieces, NoPiece if empty
	PipCount1  int // hops to home 2, Unreachable if no path
	PipCount2  int // hops to home 1, Unreachable if no path
}

func NewNode(x, y, radius float64) *Node {
	return &Node{
		Circle:     geometry.NewCircle(x, y, radius),
		OccupiedBy: NoPiece,
		PipCount1:  Unreachable,
		PipCount2:  Unreachable,
	}
}

// HomeOf returns the player whose home this node is, or NoPlayer.
func (n *Node) HomeOf() Player {
	if n.IsHome1 {
		return Player1
	}
	if n.IsHome2 {
		return Player2
	}
	return NoPlayer
}

// PipCount returns how far this node still is from p's goal.
func (n *Node) PipCount(p Player) int {
	if p == Player1 {
		return n.PipCount1
	}
	return n.PipCount2
}

// Edge is a connection candidate between two nodes, used during generation.
type Edge struct {
	From    int
	To      int
	Length  float64
	Segment geometry.Segment
}

func NewEdge(from, to int, fromNode, toNode *Node) Edge {
	return Edge{
		From:    from,
		To:      to,
		Length:  fromNode.Distance(toNode.Circle),
		Segment: geometry.NewSegment(fromNode.Center, toNode.Center),
	}
}

func (e Edge) SharesEndpoint(other Edge) bool {
	return e.From == other.From || e.From == other.To ||
		e.To == other.From || e.To == other.To
}

// Intersects reports a genuine crossing; edges meeting at a shared node do
// not intersect.
func (e Edge) Intersects(other Edge) bool {
	if e.SharesEndpoint(other) {
		return false
	}
	return e.Segment.Crosses(other.Segment)
}

// Board is the static part of a game: nodes, their connections and homes.
type Board struct {
	Nodes       []*Node
	Connections [][]int // symmetric adjacency, indexed by node
	Edges       []Edge  // accepted edges, pairwise non-crossing
	Home1       int
	Home2       int
}

// NewBoard creates a board without connections or homes.
func NewBoard(nodes []*Node) *Board {
	connections := make([][]int, len(nodes))
	for i := range connections {
		connections[i] = []int{}
	}
	return &Board{
		Nodes:       nodes,
		Connections: connections,
		Home1:       NoNode,
		Home2:       NoNode,
	}
}

// AddConnection adds a bidirectional connection between two nodes.
func (b *Board) AddConnection(i, j int) {
	if !utils.Contains(b.Connections[i], j) {
		b.Connections[i] = append(b.Connections[i], j)
	}
	if !utils.Contains(b.Connections[j], i) {
		b.Connections[j] = append(b.Connections[j], i)
	}
}

// SetHome marks node as p's home, clearing any previous home of p.
func (b *Board) SetHome(p Player, node int) {
	switch p {
	case Player1:
		if b.Home1 != NoNode {
			b.Nodes[b.Home1].IsHome1 = false
		}
		b.Home1 = node
		b.Nodes[node].IsHome1 = true
	case Player2:
		if b.Home2 != NoNode {
			b.Nodes[b.Home2].IsHome2 = false
		}
		b.Home2 = node
		b.Nodes[node].IsHome2 = true
	}
}

// HomeIndex returns p's home node, NoNode if there is none.
func (b *Board) HomeIndex(p Player) int {
	switch p {
	case Player1:
		return b.Home1
	case Player2:
		return b.Home2
	}
	return NoNode
}

func (b *Board) Valid(node int) bool {
	return node >= 0 && node < len(b.Nodes)
}

func (b *Board) Neighbors(node int) []int {
	if !b.Valid(node) {
		return nil
	}
	return b.Connections[node]
}

func (b *Board) AreAdjacent(i, j int) bool {
	return utils.Contains(b.Neighbors(i), j)
}

// NodeAt hit-tests a board point against the render circles and returns the
// first node containing it, or NoNode.
func (b *Board) NodeAt(x, y float64, renderRadius float64) int {
	p := r2.Vec{X: x, Y: y}
	return utils.FindIndexFunc(b.Nodes, func(n *Node) bool {
		return n.Contains(p, renderRadius)
	})
}

// Copy duplicates the mutable node annotations. Connections and edges never
// change after generation and are shared.
func (b *Board) Copy() *Board {
	nodes := make([]*Node, len(b.Nodes))
	for i, n := range b.Nodes {
		node := *n
		nodes[i] = &node
	}
	return &Board{
		Nodes:       nodes,
		Connections: b.Connections,
		Edges:       b.Edges,
		Home1:       b.Home1,
		Home2:       b.Home2,
	}
}
