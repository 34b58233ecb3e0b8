// Package core provides fundamental types and utilities for the snake game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Point is a cell coordinate on the game grid.
type Point struct {
	X, Y int
}

// Add returns p translated by d.
func (p Point) Add(d Direction) Point {
	return Point{X: p.X + d.DX, Y: p.Y + d.DY}
}

// Wrap folds p back onto a cols×rows torus.
// Leaving one edge re-enters from the opposite one.
func (p Point) Wrap(cols, rows int) Point {
	return Point{X: Wrap(p.X, cols), Y: Wrap(p.Y, rows)}
}

// In reports whether p lies inside a cols×rows grid.
func (p Point) In(cols, rows int) bool {
	return p.X >= 0 && p.X < cols && p.Y >= 0 && p.Y < rows
}

// Direction is a unit step on the grid.
type Direction struct {
	DX, DY int
}

// The four legal directions. Screen coordinates: y grows downwards.
var (
	DirRight = Direction{DX: 1, DY: 0}
	DirLeft  = Direction{DX: -1, DY: 0}
	DirDown  = Direction{DX: 0, DY: 1}
	DirUp    = Direction{DX: 0, DY: -1}
)

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

// IsReverseOf reports whether d points exactly opposite to other.
func (d Direction) IsReverseOf(other Direction) bool {
	return d == other.Reverse()
}

// Valid reports whether d is one of the four unit vectors.
func (d Direction) Valid() bool {
	return Abs(d.DX)+Abs(d.DY) == 1
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// Rect represents an axis-aligned box on the screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Wrap maps v into [0, n). n must be positive.
func Wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
