package player

import (
	"circles/game"
)

// RandomAgent plays uniformly at random among the legal moves.
type RandomAgent struct {
	rng game.Random
}

func NewRandomAgent(rng game.Random) *RandomAgent {
	return &RandomAgent{rng: rng}
}

// FindMove picks one of the current player's legal moves. It reports false
// when there is nothing to play.
func (a *RandomAgent) FindMove(gs *game.GameState) (game.Move, bool) {
	moves := gs.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, false
	}
	return moves[a.rng.Intn(len(moves))], true
}
