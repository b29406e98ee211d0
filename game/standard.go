package game

const largeDistance = 1000000.0

func NewStandardRules(options ...RuleOption) *Rules {
	r := &Rules{
		GridSize:          800,
		MinRadius:         20,
		MaxRadius:         200,
		NumCircles:        30,
		PlacementAttempts: 1000,
		MinGap:            5,
		MaxEdgeDistance:   300,
		RenderRadius:      20,
		PiecesPerPlayer:   5,
		HoldingPenalty:    10,
	}
	for _, option := range options {
		option(r)
	}
	return r
}

func WithCircles(n int) RuleOption {
	return func(r *Rules) {
		if n > 0 {
			r.NumCircles = n
		}
	}
}

func WithPieces(n int) RuleOption {
	return func(r *Rules) {
		if n > 0 {
			r.PiecesPerPlayer = n
		}
	}
}

func WithGridSize(size float64) RuleOption {
	return func(r *Rules) {
		if size > 0 {
			r.GridSize = size
		}
	}
}

func WithRadii(minRadius, maxRadius float64) RuleOption {
	return func(r *Rules) {
		if minRadius > 0 && maxRadius >= minRadius {
			r.MinRadius = minRadius
			r.MaxRadius = maxRadius
		}
	}
}

func WithMaxEdgeDistance(d float64) RuleOption {
	return func(r *Rules) {
		if d > 0 {
			r.MaxEdgeDistance = d
		}
	}
}
