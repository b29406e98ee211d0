package game

// Piece is a player's token. It starts in holding, walks the board, goes back
// to holding when captured and leaves the game once it reaches the
// opponent's home.
type Piece struct {
	Player    Player
	ID        int // per-player slot
	Index     int // position in GameState.Pieces
	Node      int // NoNode unless on the board
	InHolding bool
	Removed   bool
}

func (p *Piece) OnBoard() bool {
	return !p.Removed && !p.InHolding && p.Node != NoNode
}

// InitializePieces creates the holding pools, player 1's pieces first.
func InitializePieces(perPlayer int) []*Piece {
	pieces := make([]*Piece, 0, 2*perPlayer)
	for _, player := range []Player{Player1, Player2} {
		for i := 0; i < perPlayer; i++ {
			pieces = append(pieces, &Piece{
				Player:    player,
				ID:        i,
				Index:     len(pieces),
				Node:      NoNode,
				InHolding: true,
			})
		}
	}
	return pieces
}
