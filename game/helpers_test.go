package game

// fixedRandom always returns the same draw.
type fixedRandom struct {
	value float64
}

func (f fixedRandom) Float64() float64 { return f.value }
func (f fixedRandom) Intn(n int) int   { return int(f.value * float64(n)) }

// sequenceRandom replays a fixed list of draws, cycling when exhausted.
type sequenceRandom struct {
	values []float64
	next   int
}

func (s *sequenceRandom) Float64() float64 {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

func (s *sequenceRandom) Intn(n int) int {
	return int(s.Float64() * float64(n))
}

// testBoard lays n nodes out on a row and connects them as given.
func testBoard(n int, connections [][2]int, home1, home2 int) *Board {
	nodes := make([]*Node, n)
	for i := range nodes {
		nodes[i] = NewNode(float64(100*i+50), 50, 20)
	}
	b := NewBoard(nodes)
	for _, c := range connections {
		b.AddConnection(c[0], c[1])
	}
	b.SetHome(Player1, home1)
	b.SetHome(Player2, home2)
	CalculatePipCounts(b)
	return b
}

// pathBoard is 0(home1) - 1 - 2 - 3(home2).
func pathBoard() *Board {
	return testBoard(4, [][2]int{{0, 1}, {1, 2}, {2, 3}}, 0, 3)
}

// triangleBoard connects both homes directly and through node 2.
func triangleBoard() *Board {
	return testBoard(3, [][2]int{{0, 1}, {1, 2}, {2, 0}}, 0, 1)
}

func newTestGame(b *Board, piecesPerPlayer int) *GameState {
	return NewGameState(b, NewStandardRules(WithPieces(piecesPerPlayer)))
}

// place puts a piece straight onto a node, bypassing the rules.
func place(gs *GameState, pieceIndex, node int) *Piece {
	piece := gs.Pieces[pieceIndex]
	piece.InHolding = false
	piece.Node = node
	gs.Board.Nodes[node].OccupiedBy = pieceIndex
	return piece
}
