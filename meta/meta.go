// meta/meta.go
package meta

import "time"

// GO_ROUTINES defines the number of games played in parallel.
const GO_ROUTINES = 8

// MAX_TURNS bounds self-play games, counting passes.
const MAX_TURNS = 1000

// AI_DELAY is the pause before the automatic player answers a human move.
const AI_DELAY = 500 * time.Millisecond

// SELF_PLAY_GAMES is the default number of games per self-play run.
const SELF_PLAY_GAMES = 30
