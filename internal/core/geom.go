// Package core provides fundamental types and utilities for the bouncer.
// It contains no external dependencies (especially no Bubble Tea) to keep
// game logic pure and testable.
package core

import (
	"fmt"
	"math"
)

// Rect represents an axis-aligned box in screen cells.
// The renderer uses it for boxes and overlays; simulation geometry lives
// in Sprite, which works in pixels.
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

// Between reports whether a <= x <= b.
// Returns ErrInvalidRange if a > b.
func Between(x, a, b float64) (bool, error) {
	if a > b {
		return false, fmt.Errorf("between(%v, %v, %v): %w", x, a, b, ErrInvalidRange)
	}
	return a <= x && x <= b, nil
}

// RestrictToSegment clamps x into [a, b].
// Returns ErrInvalidRange if a > b.
func RestrictToSegment(x, a, b float64) (float64, error) {
	if b < a {
		return 0, fmt.Errorf("restrict %v to [%v, %v]: %w", x, a, b, ErrInvalidRange)
	}
	switch {
	case x < a:
		return a, nil
	case x > b:
		return b, nil
	default:
		return x, nil
	}
}

// ClosenessInSegment returns where x sits in [a, b] as a number in [-1, 1]:
// -1 at a, +1 at b, 0 at the midpoint. Values outside the segment
// extrapolate linearly.
// Returns ErrInvalidRange if a >= b.
func ClosenessInSegment(x, a, b float64) (float64, error) {
	if a >= b {
		return 0, fmt.Errorf("closeness of %v in [%v, %v]: %w", x, a, b, ErrInvalidRange)
	}
	return 2 * (x - (a+b)/2) / (b - a), nil
}

// AngleOfVector returns an angle r in radians such that cos(r) == dx and
// sin(r) == dy for a unit vector (dx, dy).
func AngleOfVector(dx, dy float64) float64 {
	if dx == 0 {
		if dy < 0 {
			return -math.Pi / 2
		}
		return math.Pi / 2
	}
	angle := math.Atan(dy / dx)
	if dx < 0 {
		return angle + math.Pi
	}
	return angle
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

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
