package rules

import "fmt"

// Point is a cell coordinate on the board.
type Point struct {
	X int32 `json:"x"`
	Y int32 `json:"y"`
}

// Equal checks if 2 points are the same x,y coordinate
func (p Point) Equal(other Point) bool {
	return p.X == other.X && p.Y == other.Y
}

// Sub returns the component-wise difference p - other.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// Add returns the component-wise sum p + other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Wrap folds p back onto a width x height torus.
func (p Point) Wrap(width, height uint32) Point {
	return Point{
		X: emod(p.X, int32(width)),
		Y: emod(p.Y, int32(height)),
	}
}

func containsPoint(points []Point, p Point) bool {
	for _, o := range points {
		if o.Equal(p) {
			return true
		}
	}
	return false
}

// emod is the euclidean modulo, the result is always in [0, r).
func emod(l, r int32) int32 {
	return ((l % r) + r) % r
}
