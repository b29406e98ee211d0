package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"time"

	"circles/experiments"
	"circles/game"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	games := flag.Int("games", 10, "Number of self-play games")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Seed of the first board")
	circles := flag.Int("circles", 30, "Circles per board")
	pieces := flag.Int("pieces", 5, "Pieces per player")
	goroutines := flag.Int("goroutines", 0, "Games played in parallel (0 for the default)")
	out := flag.String("out", "", "Directory for CSV records, none when empty")
	debug := flag.Bool("debug", false, "Log every move")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	result, err := experiments.RunSelfPlay(ctx, experiments.Config{
		Games:      *games,
		Seed:       *seed,
		Goroutines: *goroutines,
		Rules:      game.NewStandardRules(game.WithCircles(*circles), game.WithPieces(*pieces)),
		OutDir:     *out,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("self-play failed")
	}

	log.Info().
		Int("player1", result.Wins[game.Player1]).
		Int("player2", result.Wins[game.Player2]).
		Int("unfinished", result.Wins[game.NoPlayer]).
		Str("dir", result.Dir).
		Msg("wins")
}
