package experiments

import (
	"context"
	"fmt"
	"sync"

	"circles/engine"
	"circles/experiments/metrics"
	"circles/game"
	"circles/meta"
	"circles/player"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Games      int
	Seed       uint64 // game i is played on the board of seed Seed+i
	Goroutines int
	Rules      *game.Rules
	OutDir     string // CSV output root, nothing is written when empty
}

type Result struct {
	Games []metrics.GameRecord
	Moves []metrics.MoveRecord
	Wins  [3]int // indexed by Player, NoPlayer counts games stopped at the turn cap
	Dir   string // where the CSV files went
}

// RunSelfPlay plays random-vs-random games on freshly generated boards.
func RunSelfPlay(ctx context.Context, cfg Config) (Result, error) {
	if cfg.Rules == nil {
		cfg.Rules = game.NewStandardRules()
	}
	if cfg.Games <= 0 {
		cfg.Games = meta.SELF_PLAY_GAMES
	}
	if cfg.Goroutines <= 0 {
		cfg.Goroutines = meta.GO_ROUTINES
	}

	log.Info().Msgf("starting self-play of %d games from seed %d...", cfg.Games, cfg.Seed)

	task := make(chan int, cfg.Games)
	for i := 0; i < cfg.Games; i++ {
		task <- i
	}
	close(task)

	records := make([]metrics.GameRecord, cfg.Games)
	moves := make([][]metrics.MoveMetric, cfg.Games)
	var wg sync.WaitGroup
	for i := 0; i < cfg.Goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for i := range task {
				if ctx.Err() != nil {
					continue
				}
				records[i], moves[i] = runGame(ctx, cfg.Rules, cfg.Seed+uint64(i))
				log.Info().Msgf("completed game %d of %d with winner: %s", i+1, cfg.Games, records[i].Winner)
			}
		}()
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return Result{}, fmt.Errorf("self-play interrupted: %w", err)
	}

	result := Result{Games: records, Moves: []metrics.MoveRecord{}}
	for i, record := range records {
		switch record.Winner {
		case game.Player1.String():
			result.Wins[game.Player1]++
		case game.Player2.String():
			result.Wins[game.Player2]++
		default:
			result.Wins[game.NoPlayer]++
		}
		for _, mm := range moves[i] {
			result.Moves = append(result.Moves, metrics.MoveRecord{
				Game:       record.ID,
				MoveMetric: mm,
			})
		}
	}

	log.Info().Msgf("completed self-play: player1 %d, player2 %d, unfinished %d",
		result.Wins[game.Player1], result.Wins[game.Player2], result.Wins[game.NoPlayer])

	if cfg.OutDir == "" {
		return result, nil
	}
	dir, err := store(cfg, result)
	if err != nil {
		return Result{}, err
	}
	result.Dir = dir
	return result, nil
}

// runGame plays a single game on the board of seed and returns its records.
func runGame(ctx context.Context, rules *game.Rules, seed uint64) (metrics.GameRecord, []metrics.MoveMetric) {
	rng := game.NewRandom(seed)
	gs := game.NewGame(rules, rng)
	e := engine.NewEngine(gs,
		engine.WithAgent(game.Player1, player.NewRandomAgent(rng)),
		engine.WithAgent(game.Player2, player.NewRandomAgent(rng)),
		engine.WithCollector(metrics.NewCollector()),
	)

	_, gameMetric, moveMetrics := e.Run(ctx)

	return metrics.GameRecord{
		ID:         uuid.NewString(),
		Seed:       seed,
		Nodes:      len(gs.Board.Nodes),
		Edges:      len(gs.Board.Edges),
		GameMetric: gameMetric,
	}, moveMetrics
}

func store(cfg Config, result Result) (string, error) {
	writer, err := metrics.NewWriter(cfg.OutDir, "self_play")
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteRunConfig(metrics.RunConfig{
		Games:      cfg.Games,
		Seed:       cfg.Seed,
		Circles:    cfg.Rules.NumCircles,
		Pieces:     cfg.Rules.PiecesPerPlayer,
		MaxTurns:   meta.MAX_TURNS,
		EdgeLength: cfg.Rules.MaxEdgeDistance,
	})
	if err != nil {
		return "", fmt.Errorf("failed to store run config: %w", err)
	}
	log.Info().Msg("stored run config")

	// Store experiment results
	err = writer.WriteGameRecords(result.Games)
	if err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(result.Moves)
	if err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}
