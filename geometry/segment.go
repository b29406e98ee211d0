package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// parallelEpsilon bounds the determinant below which two segments are
// treated as parallel.
const parallelEpsilon = 1e-10

// Segment is a straight line between two points.
type Segment struct {
	A, B r2.Vec
}

func NewSegment(a, b r2.Vec) Segment {
	return Segment{A: a, B: b}
}

func (s Segment) Length() float64 {
	return r2.Norm(r2.Sub(s.A, s.B))
}

// Crosses reports whether the segments meet at a point strictly inside both
// of them. Touching endpoints and (near) parallel segments do not cross.
func (s Segment) Crosses(other Segment) bool {
	d1 := r2.Sub(s.A, s.B)
	d2 := r2.Sub(other.A, other.B)
	denom := r2.Cross(d1, d2)
	if math.Abs(denom) < parallelEpsilon {
		return false
	}

	w := r2.Sub(s.A, other.A)
	t := r2.Cross(w, d2) / denom
	u := -r2.Cross(d1, w) / denom

	return t > 0 && t < 1 && u > 0 && u < 1
}
