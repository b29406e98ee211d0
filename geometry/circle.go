package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Circle is a disk in the board plane.
type Circle struct {
	Center r2.Vec
	Radius float64
}

func NewCircle(x, y, radius float64) Circle {
	return Circle{Center: r2.Vec{X: x, Y: y}, Radius: radius}
}

func (c Circle) DistanceSquared(other Circle) float64 {
	return r2.Norm2(r2.Sub(c.Center, other.Center))
}

func (c Circle) Distance(other Circle) float64 {
	return math.Sqrt(c.DistanceSquared(other))
}

func (c Circle) DistanceToPointSquared(p r2.Vec) float64 {
	return r2.Norm2(r2.Sub(c.Center, p))
}

// Contains reports whether p falls inside the hit circle of the given radius
// around the center. The circle's own radius is not used for hit-testing.
func (c Circle) Contains(p r2.Vec, hitRadius float64) bool {
	return c.DistanceToPointSquared(p) <= hitRadius*hitRadius
}

// Overlaps reports whether the two disks are closer than minGap.
func (c Circle) Overlaps(other Circle, minGap float64) bool {
	return c.Distance(other) < c.Radius+other.Radius+minGap
}
