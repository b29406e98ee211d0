package engine

import (
	"context"
	"errors"
	"sync"
	"time"

	"circles/experiments/metrics"
	"circles/game"
	"circles/meta"

	"github.com/rs/zerolog/log"
)

var (
	ErrGameOver    = errors.New("game is over - no moves allowed")
	ErrNotYourTurn = errors.New("not your turn")
	ErrIllegalMove = errors.New("illegal move")
)

// Agent chooses moves for an automatic player.
type Agent interface {
	FindMove(gs *game.GameState) (game.Move, bool)
}

// Scheduler runs fn after delay. The default is time.AfterFunc.
type Scheduler func(delay time.Duration, fn func())

// Update is one step of the game: an applied move or a pass.
type Update struct {
	Step   int
	Player game.Player
	Passed bool
	Result game.MoveResult
	Hash   game.StateHash
}

// Engine owns a game and alternates turns between an interactive player and
// automatic players. Automatic moves are delayed and run on the scheduler.
type Engine struct {
	mu        sync.Mutex
	state     *game.GameState
	agents    [3]Agent // indexed by Player
	delay     time.Duration
	schedule  Scheduler
	collector metrics.Collector
	updates   []Update
}

type Option func(*Engine)

func WithAgent(p game.Player, agent Agent) Option {
	return func(e *Engine) {
		if p == game.Player1 || p == game.Player2 {
			e.agents[p] = agent
		}
	}
}

func WithDelay(d time.Duration) Option {
	return func(e *Engine) {
		e.delay = d
	}
}

func WithScheduler(s Scheduler) Option {
	return func(e *Engine) {
		e.schedule = s
	}
}

func WithCollector(c metrics.Collector) Option {
	return func(e *Engine) {
		e.collector = c
	}
}

func NewEngine(state *game.GameState, options ...Option) *Engine {
	e := &Engine{
		state: state,
		delay: meta.AI_DELAY,
		schedule: func(delay time.Duration, fn func()) {
			time.AfterFunc(delay, fn)
		},
		collector: metrics.NewDummyCollector(),
		updates:   []Update{},
	}
	for _, option := range options {
		option(e)
	}
	e.collector.Start(int(state.CurrentPlayer))
	return e
}

// State returns a copy of the current game state.
func (e *Engine) State() *game.GameState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Copy()
}

// Snapshot returns a copy of the state together with the number of steps
// that produced it.
func (e *Engine) Snapshot() (*game.GameState, int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Copy(), len(e.updates)
}

// Turns returns the number of steps played so far, passes included.
func (e *Engine) Turns() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.updates)
}

func (e *Engine) Updates() []Update {
	e.mu.Lock()
	defer e.mu.Unlock()
	updates := make([]Update, len(e.updates))
	copy(updates, e.updates)
	return updates
}

// IsAutomatic reports whether p's moves are chosen by an agent.
func (e *Engine) IsAutomatic(p game.Player) bool {
	return (p == game.Player1 || p == game.Player2) && e.agents[p] != nil
}

// Play applies a move for the interactive player whose turn it is.
func (e *Engine) Play(move game.Move) error {
	e.mu.Lock()
	if err := e.check(); err != nil {
		e.mu.Unlock()
		return err
	}
	piece := e.state.Piece(move.Piece)
	if piece == nil {
		e.mu.Unlock()
		return ErrIllegalMove
	}
	if piece.Player != e.state.CurrentPlayer {
		e.mu.Unlock()
		return ErrNotYourTurn
	}
	result, ok := e.state.Apply(move)
	if !ok {
		e.mu.Unlock()
		return ErrIllegalMove
	}
	e.record(result, false)
	step, auto := len(e.updates), e.autoTurn()
	e.mu.Unlock()

	if auto {
		e.scheduleAutoMove(step)
	}
	return nil
}

// Pass hands the turn over without moving, for an interactive player stuck
// without legal moves.
func (e *Engine) Pass() error {
	e.mu.Lock()
	if err := e.check(); err != nil {
		e.mu.Unlock()
		return err
	}
	e.pass("passes")
	step, auto := len(e.updates), e.autoTurn()
	e.mu.Unlock()

	if auto {
		e.scheduleAutoMove(step)
	}
	return nil
}

func (e *Engine) check() error {
	if e.state.Won {
		return ErrGameOver
	}
	if e.IsAutomatic(e.state.CurrentPlayer) {
		return ErrNotYourTurn
	}
	return nil
}

func (e *Engine) autoTurn() bool {
	return !e.state.Won && e.IsAutomatic(e.state.CurrentPlayer)
}

func (e *Engine) scheduleAutoMove(step int) {
	e.schedule(e.delay, func() {
		e.autoMove(step)
	})
}

// autoMove plays for the automatic player if nothing happened since it was
// scheduled at step.
func (e *Engine) autoMove(step int) {
	e.mu.Lock()
	if e.state.Won || len(e.updates) != step || !e.autoTurn() {
		e.mu.Unlock()
		return
	}
	e.step()
	next, auto := len(e.updates), e.autoTurn()
	e.mu.Unlock()

	if auto {
		e.scheduleAutoMove(next)
	}
}

// step lets the current automatic player act once. Callers hold e.mu.
func (e *Engine) step() {
	player := e.state.CurrentPlayer
	move, ok := e.agents[player].FindMove(e.state)
	if !ok {
		e.pass("has no legal moves and passes")
		return
	}

	result, ok := e.state.Apply(move)
	if !ok {
		log.Warn().Msgf("%s's agent chose illegal move %+v", player, move)
		e.pass("passes instead")
		return
	}
	e.record(result, false)
}

// pass hands the turn over and logs why. Callers hold e.mu.
func (e *Engine) pass(reason string) {
	player := e.state.CurrentPlayer
	e.state.SwitchPlayer()
	e.record(game.MoveResult{Player: player, Move: game.Move{Piece: game.NoPiece, Target: game.NoNode}, From: game.NoNode, Captured: game.NoPiece}, true)
	log.Debug().Msgf("%s %s", player, reason)
}

func (e *Engine) record(result game.MoveResult, passed bool) {
	u := Update{
		Step:   len(e.updates) + 1,
		Player: result.Player,
		Passed: passed,
		Result: result,
		Hash:   e.state.Hash(),
	}
	e.updates = append(e.updates, u)

	e.collector.AddMove(metrics.MoveMetric{
		Step:      u.Step,
		Player:    int(u.Player),
		Piece:     result.Piece,
		From:      result.From,
		To:        result.Target,
		Captured:  result.Captured != game.NoPiece,
		Scored:    result.Scored,
		Passed:    passed,
		PipCount1: e.state.TotalPipCount(game.Player1),
		PipCount2: e.state.TotalPipCount(game.Player2),
	})

	if result.Scored {
		log.Info().Msgf("%s scored, points %d:%d", result.Player, e.state.Score(game.Player1), e.state.Score(game.Player2))
	}
	if e.state.Won {
		log.Info().Msgf("%s wins after %d turns", e.state.Winner, u.Step)
	}
}

// Run plays an all-automatic game until there's a winner, meta.MAX_TURNS
// steps were played or ctx is done.
func (e *Engine) Run(ctx context.Context) (game.Player, metrics.GameMetric, []metrics.MoveMetric) {
	log.Info().Msgf("%s is starting", e.State().CurrentPlayer)

	for {
		if err := ctx.Err(); err != nil {
			log.Warn().Err(err).Msg("game interrupted")
			break
		}

		e.mu.Lock()
		if e.state.Won || len(e.updates) >= meta.MAX_TURNS {
			e.mu.Unlock()
			break
		}
		if !e.IsAutomatic(e.state.CurrentPlayer) {
			log.Error().Msgf("%s has no agent, stopping", e.state.CurrentPlayer)
			e.mu.Unlock()
			break
		}
		e.step()
		e.mu.Unlock()
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.state.Won {
		log.Info().Msgf("stopped after %d turns (no winner yet)", len(e.updates))
	}
	gameMetric, moveMetrics := e.collector.Complete(
		e.state.Winner.String(),
		e.state.Score(game.Player1),
		e.state.Score(game.Player2),
	)
	return e.state.Winner, gameMetric, moveMetrics
}
