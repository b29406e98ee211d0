package game

import (
	"encoding/binary"
	"hash/fnv"

	"github.com/rs/zerolog/log"
)

type StateHash uint64

// GameState is the whole game: the board, every piece, the score and whose
// turn it is. It is mutated in place by its rule methods; once Won is set no
// method changes it anymore.
type GameState struct {
	Board         *Board
	Pieces        []*Piece // player 1's pieces first, then player 2's
	Rules         *Rules
	CurrentPlayer Player
	Points        [3]int // indexed by Player
	Won           bool
	Winner        Player // the player who brought every piece home
}

// NewGameState sets up the holding pools on a generated board. Player 1
// moves first.
func NewGameState(b *Board, rules *Rules) *GameState {
	return &GameState{
		Board:         b,
		Pieces:        InitializePieces(rules.PiecesPerPlayer),
		Rules:         rules,
		CurrentPlayer: Player1,
	}
}

// NewGame generates a board and sets up a fresh game on it.
func NewGame(rules *Rules, rng Random) *GameState {
	return NewGameState(GenerateBoard(rules, rng), rules)
}

func (gs *GameState) Copy() *GameState {
	pieces := make([]*Piece, len(gs.Pieces))
	for i, p := range gs.Pieces {
		piece := *p
		pieces[i] = &piece
	}
	return &GameState{
		Board:         gs.Board.Copy(),
		Pieces:        pieces,
		Rules:         gs.Rules, // Rules are immutable
		CurrentPlayer: gs.CurrentPlayer,
		Points:        gs.Points,
		Won:           gs.Won,
		Winner:        gs.Winner,
	}
}

func (gs *GameState) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(gs.CurrentPlayer))
	for _, points := range gs.Points {
		binary.Write(hasher, binary.LittleEndian, int64(points))
	}
	for _, node := range gs.Board.Nodes {
		binary.Write(hasher, binary.LittleEndian, int64(node.OccupiedBy))
	}
	for _, p := range gs.Pieces {
		binary.Write(hasher, binary.LittleEndian, int64(p.Node))
		binary.Write(hasher, binary.LittleEndian, p.InHolding)
		binary.Write(hasher, binary.LittleEndian, p.Removed)
	}

	return StateHash(hasher.Sum64())
}

func (gs *GameState) NextPlayer() Player {
	return gs.CurrentPlayer.Opponent()
}

// SwitchPlayer hands the turn to the other player unless the game is over.
func (gs *GameState) SwitchPlayer() {
	if gs.Won {
		return
	}
	gs.CurrentPlayer = gs.NextPlayer()
}

func (gs *GameState) Score(p Player) int {
	if p != Player1 && p != Player2 {
		return 0
	}
	return gs.Points[p]
}

// Piece returns the piece with the given global index, nil if out of range.
func (gs *GameState) Piece(index int) *Piece {
	if index < 0 || index >= len(gs.Pieces) {
		return nil
	}
	return gs.Pieces[index]
}

// PieceAt returns the piece occupying node, nil if empty or invalid.
func (gs *GameState) PieceAt(node int) *Piece {
	if !gs.Board.Valid(node) {
		return nil
	}
	return gs.Piece(gs.Board.Nodes[node].OccupiedBy)
}

func (gs *GameState) HasPiecesInHolding(p Player) bool {
	return gs.HoldingPiece(p) != nil
}

// HoldingPiece returns the first of p's pieces still in holding.
func (gs *GameState) HoldingPiece(p Player) *Piece {
	for _, piece := range gs.Pieces {
		if piece.Player == p && piece.InHolding && !piece.Removed {
			return piece
		}
	}
	return nil
}

func (gs *GameState) RemainingPieces(p Player) int {
	count := 0
	for _, piece := range gs.Pieces {
		if piece.Player == p && !piece.Removed {
			count++
		}
	}
	return count
}

// CanMoveTo reports whether piece may move onto target. Pieces in holding
// enter next to their own home; pieces on the board step to a neighbor. No
// piece may land on its own side's home or on a friendly piece.
func (gs *GameState) CanMoveTo(piece *Piece, target int) bool {
	if gs.Won || piece == nil || piece.Removed || !gs.Board.Valid(target) {
		return false
	}

	if occupant := gs.PieceAt(target); occupant != nil && occupant.Player == piece.Player {
		return false
	}
	if gs.Board.Nodes[target].HomeOf() == piece.Player {
		return false
	}

	if piece.InHolding {
		home := gs.Board.HomeIndex(piece.Player)
		if home == NoNode {
			return false
		}
		return gs.Board.AreAdjacent(home, target)
	}

	if piece.Node == NoNode {
		return false
	}
	return gs.Board.AreAdjacent(piece.Node, target)
}

// MovePiece executes a move without checking legality. A piece on the target
// belonging to the opponent goes back to holding. Reaching the opponent's
// home removes the piece, scores a point and hands over the turn unless the
// game is won; in that case MovePiece returns true and the caller must not
// switch players again.
func (gs *GameState) MovePiece(piece *Piece, target int) (removed bool) {
	if gs.Won || piece.Removed || !gs.Board.Valid(target) {
		return false
	}

	log.Debug().
		Int("player1", gs.TotalPipCount(Player1)).
		Int("player2", gs.TotalPipCount(Player2)).
		Msg("pip count")

	targetNode := gs.Board.Nodes[target]
	if captured := gs.PieceAt(target); captured != nil && captured.Player != piece.Player {
		gs.sendToHolding(captured)
	}

	if targetNode.HomeOf() == piece.Player.Opponent() {
		gs.leaveNode(piece)
		piece.InHolding = false
		piece.Removed = true
		gs.Points[piece.Player]++

		gs.CheckWinCondition()
		if !gs.Won {
			gs.SwitchPlayer()
		}
		return true
	}

	gs.leaveNode(piece)
	piece.Node = target
	piece.InHolding = false
	targetNode.OccupiedBy = piece.Index
	return false
}

func (gs *GameState) leaveNode(piece *Piece) {
	if gs.Board.Valid(piece.Node) {
		gs.Board.Nodes[piece.Node].OccupiedBy = NoPiece
	}
	piece.Node = NoNode
}

func (gs *GameState) sendToHolding(piece *Piece) {
	gs.leaveNode(piece)
	piece.InHolding = true
}

// CheckWinCondition ends the game as soon as a player has no pieces left.
func (gs *GameState) CheckWinCondition() {
	for _, p := range []Player{Player1, Player2} {
		if gs.RemainingPieces(p) == 0 {
			gs.Won = true
			gs.Winner = p
			return
		}
	}
}

// Apply validates a move for the current player and executes it, switching
// turns for ordinary moves. Rejected moves leave the state untouched.
func (gs *GameState) Apply(move Move) (MoveResult, bool) {
	piece := gs.Piece(move.Piece)
	if piece == nil || piece.Player != gs.CurrentPlayer || !gs.CanMoveTo(piece, move.Target) {
		return MoveResult{}, false
	}

	result := MoveResult{
		Move:     move,
		Player:   piece.Player,
		From:     piece.Node,
		Captured: NoPiece,
	}
	if occupant := gs.PieceAt(move.Target); occupant != nil {
		result.Captured = occupant.Index
	}

	result.Scored = gs.MovePiece(piece, move.Target)
	if !result.Scored {
		gs.SwitchPlayer()
	}
	return result, true
}

// ValidMoves lists every legal move of p, in piece order then neighbor order.
func (gs *GameState) ValidMoves(p Player) []Move {
	moves := []Move{}
	for _, piece := range gs.Pieces {
		if piece.Player != p || piece.Removed {
			continue
		}

		from := piece.Node
		if piece.InHolding {
			from = gs.Board.HomeIndex(p)
		}
		for _, target := range gs.Board.Neighbors(from) {
			if gs.CanMoveTo(piece, target) {
				moves = append(moves, Move{Piece: piece.Index, Target: target})
			}
		}
	}
	return moves
}

// LegalMoves returns the current player's valid moves.
func (gs *GameState) LegalMoves() []Move {
	return gs.ValidMoves(gs.CurrentPlayer)
}

// TargetsFor returns the nodes the given piece may move to.
func (gs *GameState) TargetsFor(piece *Piece) []int {
	targets := []int{}
	for _, m := range gs.ValidMoves(piece.Player) {
		if m.Piece == piece.Index {
			targets = append(targets, m.Target)
		}
	}
	return targets
}

// HomeTargets lists the neighbors of a home node that its owner could enter
// from holding: empty nodes and nodes held by the opponent.
func (gs *GameState) HomeTargets(home int) []int {
	if !gs.Board.Valid(home) {
		return nil
	}
	owner := gs.Board.Nodes[home].HomeOf()
	if owner == NoPlayer {
		return nil
	}

	targets := []int{}
	for _, neighbor := range gs.Board.Neighbors(home) {
		occupant := gs.PieceAt(neighbor)
		if occupant == nil || occupant.Player != owner {
			targets = append(targets, neighbor)
		}
	}
	return targets
}

// TotalPipCount measures how far p is from winning: a fixed penalty per
// piece in holding plus the pip count of each node p occupies.
func (gs *GameState) TotalPipCount(p Player) int {
	total := 0
	for _, piece := range gs.Pieces {
		if piece.Player != p || piece.Removed {
			continue
		}
		if piece.InHolding {
			total += gs.Rules.HoldingPenalty
			continue
		}
		if !gs.Board.Valid(piece.Node) {
			continue
		}
		if pips := gs.Board.Nodes[piece.Node].PipCount(p); pips != Unreachable {
			total += pips
		}
	}
	return total
}
