package gamemaster

import (
	"sync"

	"circles/engine"
	"circles/game"
	"circles/meta"
	"circles/player"
	"circles/utils"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Snapshot is everything a presentation layer needs to draw the game.
type Snapshot struct {
	ID          uuid.UUID
	State       *game.GameState
	Selected    int   // piece index, NoPiece if nothing is selected
	Highlighted int   // highlighted home node, NoNode if none
	Targets     []int // where the selection or the highlighted home can go
}

// Session is a local game between an interactive player and a random
// automatic opponent. It turns resolved pointer input into moves.
type Session struct {
	ID     uuid.UUID
	Human  game.Player
	engine *engine.Engine

	mu          sync.Mutex
	selected    int
	highlighted int
	seen        int // engine turns when the selection was last valid
}

// NewSession starts a game on gs where player 1 is interactive and player 2
// plays randomly using rng. Engine options override the defaults.
func NewSession(gs *game.GameState, rng game.Random, options ...engine.Option) *Session {
	defaults := []engine.Option{
		engine.WithAgent(game.Player2, player.NewRandomAgent(rng)),
		engine.WithDelay(meta.AI_DELAY),
	}
	s := &Session{
		ID:          uuid.New(),
		Human:       game.Player1,
		engine:      engine.NewEngine(gs, append(defaults, options...)...),
		selected:    game.NoPiece,
		highlighted: game.NoNode,
	}
	log.Info().Str("session", s.ID.String()).Int("nodes", len(gs.Board.Nodes)).Msg("new session")
	return s
}

func (s *Session) Engine() *engine.Engine {
	return s.engine
}

// ClickAt resolves a board point to a node and clicks it.
func (s *Session) ClickAt(x, y float64) {
	gs := s.engine.State()
	s.Click(gs.Board.NodeAt(x, y, gs.Rules.RenderRadius))
}

// Deselect clears the selection and the highlighted home.
func (s *Session) Deselect() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clear()
}

// Click handles a click on node; NoNode is a click on empty space. Input is
// ignored once the game is won or while the opponent is to move.
func (s *Session) Click(node int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	gs := s.sync()
	if gs.Won || gs.CurrentPlayer != s.Human {
		return
	}
	if !gs.Board.Valid(node) {
		s.clear()
		return
	}

	if s.selected != game.NoPiece {
		s.clickWithSelection(gs, node)
		return
	}
	if gs.Board.Nodes[node].HomeOf() != game.NoPlayer {
		s.clickHome(gs, node)
		return
	}
	s.clickNode(gs, node)
}

// View returns a snapshot of the game and the selection state.
func (s *Session) View() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	gs := s.sync()
	targets := []int{}
	if piece := gs.Piece(s.selected); piece != nil {
		targets = gs.TargetsFor(piece)
	} else if s.highlighted != game.NoNode {
		targets = gs.HomeTargets(s.highlighted)
	}
	return Snapshot{
		ID:          s.ID,
		State:       gs,
		Selected:    s.selected,
		Highlighted: s.highlighted,
		Targets:     targets,
	}
}

// sync drops the selection if turns were played since it was made and
// returns the current state.
func (s *Session) sync() *game.GameState {
	gs, turns := s.engine.Snapshot()
	if turns != s.seen {
		s.clear()
		s.seen = turns
	}
	return gs
}

func (s *Session) clear() {
	s.selected = game.NoPiece
	s.highlighted = game.NoNode
}

func (s *Session) selectPiece(piece *game.Piece) {
	s.selected = piece.Index
	s.highlighted = game.NoNode
}

func (s *Session) clickHome(gs *game.GameState, node int) {
	owner := gs.Board.Nodes[node].HomeOf()
	if owner != gs.CurrentPlayer {
		s.highlighted = game.NoNode
		return
	}

	if occupant := gs.PieceAt(node); occupant != nil {
		if occupant.Player == gs.CurrentPlayer {
			s.selectPiece(occupant)
		}
		return
	}

	if !gs.HasPiecesInHolding(owner) {
		s.highlighted = game.NoNode
		return
	}

	if s.highlighted == node {
		s.highlighted = game.NoNode
	} else {
		s.highlighted = node
	}
}

func (s *Session) clickNode(gs *game.GameState, node int) {
	if s.highlighted != game.NoNode {
		home := s.highlighted
		s.highlighted = game.NoNode
		if !utils.Contains(gs.HomeTargets(home), node) {
			return
		}
		if piece := gs.HoldingPiece(gs.Board.Nodes[home].HomeOf()); piece != nil {
			s.play(game.Move{Piece: piece.Index, Target: node})
		}
		return
	}

	if occupant := gs.PieceAt(node); occupant != nil {
		if occupant.Player == gs.CurrentPlayer {
			s.selectPiece(occupant)
		}
		return
	}
	s.highlighted = game.NoNode
}

func (s *Session) clickWithSelection(gs *game.GameState, node int) {
	if occupant := gs.PieceAt(node); occupant != nil {
		if occupant.Index == s.selected {
			s.clear()
			return
		}
		if occupant.Player == gs.CurrentPlayer {
			s.selectPiece(occupant)
			return
		}
	}

	if gs.CanMoveTo(gs.Piece(s.selected), node) {
		s.play(game.Move{Piece: s.selected, Target: node})
	}
}

// play submits a move and resets the selection. Rejected moves change
// nothing.
func (s *Session) play(move game.Move) {
	if err := s.engine.Play(move); err != nil {
		log.Debug().Err(err).Msgf("move %+v rejected", move)
		return
	}
	s.clear()
	s.seen = s.engine.Turns()
}
