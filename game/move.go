package game

// Move sends a piece (by global piece index) to a target node.
type Move struct {
	Piece  int
	Target int
}

// MoveResult describes what an accepted move did to the board.
type MoveResult struct {
	Move
	Player   Player
	From     int  // NoNode when the piece entered from holding
	Captured int  // index of the captured piece, NoPiece if none
	Scored   bool // the piece reached the opponent's home and left the game
}
