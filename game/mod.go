package game

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// Player identifies one of the two sides. The zero value means "nobody".
type Player int

const (
	NoPlayer Player = iota
	Player1
	Player2
)

const (
	NoNode      = -1 // node index sentinel ("no such node")
	NoPiece     = -1 // occupancy sentinel for an empty node
	Unreachable = -1 // pip count of a node with no path to the home
)

func (p Player) Opponent() Player {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	}
	return NoPlayer
}

func (p Player) String() string {
	if p == NoPlayer {
		return "nobody"
	}
	return fmt.Sprintf("Player%d", int(p))
}

// Random is the source of randomness for board generation and automatic
// movers. *rand.Rand satisfies it; tests can supply fixed sequences.
type Random interface {
	Float64() float64
	Intn(n int) int
}

// NewRandom returns a seeded generator, so boards and games can be replayed.
func NewRandom(seed uint64) Random {
	return rand.New(rand.NewSource(seed))
}
