package metrics

import (
	"sync"
	"sync/atomic"
	"time"
)

type MoveMetric struct {
	Step      int
	Player    int // Player ID
	Piece     int
	From      int
	To        int
	Captured  bool
	Scored    bool
	Passed    bool
	PipCount1 int
	PipCount2 int
}

type GameMetric struct {
	StartingPlayer int    // Player ID
	Winner         string // Player name, "nobody" when the turn cap was hit
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	Captures       int
	Passes         int
	Points1        int
	Points2        int
}

type Collector interface {
	Start(startingPlayer int)
	AddMove(move MoveMetric)
	Complete(winner string, points1, points2 int) (GameMetric, []MoveMetric)
}

type collector struct {
	startingPlayer int
	startTime      time.Time
	captures       atomic.Int32
	passes         atomic.Int32

	mu    sync.Mutex
	moves []MoveMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(startingPlayer int) {
	m.startTime = time.Now()
	m.startingPlayer = startingPlayer
}

func (m *collector) AddMove(move MoveMetric) {
	if move.Captured {
		m.captures.Add(1)
	}
	if move.Passed {
		m.passes.Add(1)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.moves = append(m.moves, move)
}

func (m *collector) Complete(winner string, points1, points2 int) (GameMetric, []MoveMetric) {
	m.mu.Lock()
	defer m.mu.Unlock()

	end := time.Now()
	moves := make([]MoveMetric, len(m.moves))
	copy(moves, m.moves)

	return GameMetric{
		StartingPlayer: m.startingPlayer,
		Winner:         winner,
		StartTime:      m.startTime,
		EndTime:        end,
		Duration:       end.Sub(m.startTime),
		TotalMoves:     len(moves),
		Captures:       int(m.captures.Load()),
		Passes:         int(m.passes.Load()),
		Points1:        points1,
		Points2:        points2,
	}, moves
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(startingPlayer int) {}
func (m *dummyCollector) AddMove(move MoveMetric)  {}
func (m *dummyCollector) Complete(winner string, points1, points2 int) (GameMetric, []MoveMetric) {
	return GameMetric{Winner: winner, Points1: points1, Points2: points2}, nil
}
