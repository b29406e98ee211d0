package game

// Rules holds the board generation and scoring parameters of a game.
type Rules struct {
	GridSize          float64 // side of the square board region
	MinRadius         float64
	MaxRadius         float64
	NumCircles        int     // target node count, fewer may be placed
	PlacementAttempts int     // tries per node before giving up on it
	MinGap            float64 // required space between two disks
	MaxEdgeDistance   float64 // longest candidate edge between centers
	RenderRadius      float64 // hit-test radius around a node center
	PiecesPerPlayer   int
	HoldingPenalty    int // pip count charged per piece still in holding
}

type RuleOption func(r *Rules)
